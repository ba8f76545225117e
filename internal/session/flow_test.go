package session

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"fitrack/internal/progress"
	"fitrack/internal/types"
)

func testExercises(names ...string) []types.Exercise {
	out := make([]types.Exercise, 0, len(names))
	for i, name := range names {
		out = append(out, types.Exercise{ID: string(rune('a' + i)), Name: name, Sets: 12})
	}
	return out
}

func newTestFlow(t *testing.T, store *progress.Store, names ...string) *Flow {
	t.Helper()
	flow, err := New(Config{ID: "s1", PlanID: "p1", Exercises: testExercises(names...), Store: store, Timing: ZeroTiming()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return flow
}

func settle(t *testing.T, flow *Flow, tr Transition) Outcome {
	t.Helper()
	outcome, ok := flow.Settle(tr.Seq)
	if !ok {
		t.Fatalf("expected transition %d to settle", tr.Seq)
	}
	return outcome
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(Config{Exercises: testExercises("E1")})
	if !errors.Is(err, ErrNoProgressStore) {
		t.Fatalf("expected ErrNoProgressStore, got %v", err)
	}
}

func TestNewRejectsEmptyPlan(t *testing.T) {
	_, err := New(Config{Store: progress.NewStore(progress.DefaultOptions())})
	if !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}
}

func TestNewAssignsSessionID(t *testing.T) {
	flow, err := New(Config{Exercises: testExercises("E1"), Store: progress.NewStore(progress.DefaultOptions())})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if flow.ID() == "" {
		t.Fatalf("expected generated session id")
	}
}

func TestDoneThroughWholePlanFinishesOnce(t *testing.T) {
	for n := 1; n <= 5; n++ {
		store := progress.NewStore(progress.DefaultOptions())
		names := make([]string, 0, n)
		for i := 0; i < n; i++ {
			names = append(names, "E"+string(rune('1'+i)))
		}
		flow := newTestFlow(t, store, names...)

		finished := 0
		for i := 0; i < n; i++ {
			tr, ok := flow.Done()
			if !ok {
				t.Fatalf("n=%d: Done rejected at %d", n, i)
			}
			if tr.Rest != (i < n-1) {
				t.Fatalf("n=%d: unexpected rest flag %v at %d", n, tr.Rest, i)
			}
			if settle(t, flow, tr).Finished {
				finished++
			}
		}
		if finished != 1 || !flow.Finished() {
			t.Fatalf("n=%d: expected exactly one finish, got %d", n, finished)
		}
		got := store.Snapshot()
		if got.Workouts != n {
			t.Fatalf("n=%d: expected %d workouts, got %d", n, n, got.Workouts)
		}
		if !reflect.DeepEqual(got.Completed, names) {
			t.Fatalf("n=%d: unexpected completed names %#v", n, got.Completed)
		}
		if _, ok := flow.Done(); ok {
			t.Fatalf("n=%d: expected Done after finish to be ignored", n)
		}
	}
}

func TestSkipNeverTouchesProgress(t *testing.T) {
	store := progress.NewStore(progress.DefaultOptions())
	store.MarkDone("earlier")
	before := store.Snapshot()

	flow := newTestFlow(t, store, "E1", "E2", "E3")
	for i := 0; i < 3; i++ {
		tr, ok := flow.Skip()
		if !ok {
			t.Fatalf("Skip rejected at %d", i)
		}
		settle(t, flow, tr)
	}
	if !flow.Finished() {
		t.Fatalf("expected finished after skipping everything")
	}
	if after := store.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Fatalf("skip mutated progress: before=%#v after=%#v", before, after)
	}
}

func TestPrevIgnoredAtFirstExercise(t *testing.T) {
	store := progress.NewStore(progress.DefaultOptions())
	flow := newTestFlow(t, store, "E1", "E2")

	if _, ok := flow.Prev(); ok {
		t.Fatalf("expected Prev at index 0 to be ignored")
	}
	if flow.Index() != 0 {
		t.Fatalf("expected index 0, got %d", flow.Index())
	}
	if _, pending := flow.Pending(); pending {
		t.Fatalf("expected no pending transition")
	}
	if got := store.Snapshot(); got.Workouts != 0 || len(got.Completed) != 0 {
		t.Fatalf("Prev mutated progress: %#v", got)
	}
}

func TestPrevMovesBackWithRest(t *testing.T) {
	flow := newTestFlow(t, progress.NewStore(progress.DefaultOptions()), "E1", "E2")
	tr, _ := flow.Skip()
	settle(t, flow, tr)

	back, ok := flow.Prev()
	if !ok {
		t.Fatalf("expected Prev to be accepted at index 1")
	}
	if !back.Rest || back.To != 0 {
		t.Fatalf("unexpected prev transition: %#v", back)
	}
	if outcome := settle(t, flow, back); outcome.Index != 0 || outcome.Finished {
		t.Fatalf("unexpected outcome: %#v", outcome)
	}
}

func TestActionsIgnoredWhileTransitionPending(t *testing.T) {
	store := progress.NewStore(progress.DefaultOptions())
	flow := newTestFlow(t, store, "E1", "E2")
	if _, ok := flow.Done(); !ok {
		t.Fatalf("expected Done to be accepted")
	}
	if _, ok := flow.Done(); ok {
		t.Fatalf("expected second Done to be ignored while pending")
	}
	if _, ok := flow.Skip(); ok {
		t.Fatalf("expected Skip to be ignored while pending")
	}
	if got := store.Snapshot().Workouts; got != 1 {
		t.Fatalf("expected one workout, got %d", got)
	}
}

func TestCancelDropsPendingTransition(t *testing.T) {
	flow := newTestFlow(t, progress.NewStore(progress.DefaultOptions()), "E1", "E2")
	tr, _ := flow.Skip()
	if !flow.Cancel() {
		t.Fatalf("expected Cancel to drop the pending transition")
	}
	if _, ok := flow.Settle(tr.Seq); ok {
		t.Fatalf("expected cancelled transition not to settle")
	}
	if flow.Index() != 0 {
		t.Fatalf("expected index to stay 0, got %d", flow.Index())
	}
	if flow.Cancel() {
		t.Fatalf("expected second Cancel to be a no-op")
	}
}

func TestSettleIgnoresStaleSequence(t *testing.T) {
	flow := newTestFlow(t, progress.NewStore(progress.DefaultOptions()), "E1", "E2", "E3")
	first, _ := flow.Skip()
	flow.Cancel()
	second, _ := flow.Skip()

	if _, ok := flow.Settle(first.Seq); ok {
		t.Fatalf("expected stale sequence to be ignored")
	}
	if outcome := settle(t, flow, second); outcome.Index != 1 {
		t.Fatalf("expected index 1, got %d", outcome.Index)
	}
}

func TestTransitionCarriesConfiguredDelay(t *testing.T) {
	flow, err := New(Config{Exercises: testExercises("E1"), Store: progress.NewStore(progress.DefaultOptions()), Timing: DefaultTiming()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tr, _ := flow.Skip()
	if tr.Delay != DefaultTransitionDelay {
		t.Fatalf("expected %v delay, got %v", DefaultTransitionDelay, tr.Delay)
	}
	if tr.Rest {
		t.Fatalf("expected the final transition to skip the rest step")
	}
}

func TestTwoExerciseScenario(t *testing.T) {
	store := progress.NewStore(progress.DefaultOptions())
	flow := newTestFlow(t, store, "E1", "E2")

	done, _ := flow.Done()
	got := store.Snapshot()
	if got.Workouts != 1 || math.Abs(got.Minutes-2.5) > 1e-9 || math.Abs(got.Calories-6.3) > 1e-9 {
		t.Fatalf("unexpected progress after done: %#v", got)
	}
	if !reflect.DeepEqual(got.Completed, []string{"E1"}) {
		t.Fatalf("unexpected completed names: %#v", got.Completed)
	}
	if !done.Rest {
		t.Fatalf("expected rest after the first exercise")
	}
	settle(t, flow, done)
	if current, _ := flow.Current(); current.Name != "E2" {
		t.Fatalf("expected E2, got %q", current.Name)
	}

	skip, _ := flow.Skip()
	outcome := settle(t, flow, skip)
	if !outcome.Finished || flow.Index() != 2 {
		t.Fatalf("expected finish at index 2, got %#v index=%d", outcome, flow.Index())
	}
	if store.Snapshot().Workouts != 1 {
		t.Fatalf("expected skip to leave workouts at 1")
	}
}
