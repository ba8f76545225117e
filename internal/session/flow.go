package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fitrack/internal/logging"
	"fitrack/internal/progress"
	"fitrack/internal/types"
)

var (
	ErrNoProgressStore = errors.New("progress store not available")
	ErrEmptyPlan       = errors.New("plan has no exercises")
)

type State int

const (
	StateViewing State = iota
	StateFinished
)

func (s State) String() string {
	if s == StateFinished {
		return "finished"
	}
	return "viewing"
}

type Action int

const (
	ActionDone Action = iota
	ActionSkip
	ActionPrev
)

func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionPrev:
		return "prev"
	default:
		return "done"
	}
}

// Transition is a scheduled cursor move. The host delivers it back through
// Settle once Delay has elapsed. Rest reports whether the rest interstitial
// should be shown while the transition is pending.
type Transition struct {
	Seq    uint64
	Action Action
	From   int
	To     int
	Delay  time.Duration
	Rest   bool
}

type Outcome struct {
	Action   Action
	Index    int
	Finished bool
}

type Snapshot struct {
	ID      string
	PlanID  string
	Index   int
	Total   int
	Current types.Exercise
	State   State
	Pending bool
}

type Config struct {
	ID        string
	PlanID    string
	Exercises []types.Exercise
	Store     *progress.Store
	Timing    Timing
	Logger    logging.Logger
}

// Flow walks one plan's exercises. It never blocks: Done, Skip and Prev only
// schedule a Transition, and the cursor moves when the host calls Settle.
type Flow struct {
	id        string
	planID    string
	exercises []types.Exercise
	store     *progress.Store
	timing    Timing
	logger    logging.Logger

	index   int
	state   State
	seq     uint64
	pending *Transition
}

func New(cfg Config) (*Flow, error) {
	if cfg.Store == nil {
		return nil, ErrNoProgressStore
	}
	if len(cfg.Exercises) == 0 {
		return nil, ErrEmptyPlan
	}
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	f := &Flow{
		id:        id,
		planID:    cfg.PlanID,
		exercises: types.CloneExercises(cfg.Exercises),
		store:     cfg.Store,
		timing:    cfg.Timing.normalized(),
		logger:    logger.With(logging.F("session_id", id), logging.F("plan_id", cfg.PlanID)),
		state:     StateViewing,
	}
	f.logger.Info("session_started", logging.F("exercises", len(f.exercises)))
	return f, nil
}

func (f *Flow) ID() string { return f.id }

func (f *Flow) Timing() Timing { return f.timing }

func (f *Flow) Index() int { return f.index }

func (f *Flow) Total() int { return len(f.exercises) }

func (f *Flow) State() State { return f.state }

func (f *Flow) Finished() bool { return f.state == StateFinished }

func (f *Flow) Pending() (Transition, bool) {
	if f.pending == nil {
		return Transition{}, false
	}
	return *f.pending, true
}

// Current returns the exercise under the cursor. ok is false once finished.
func (f *Flow) Current() (types.Exercise, bool) {
	if f.state != StateViewing || f.index < 0 || f.index >= len(f.exercises) {
		return types.Exercise{}, false
	}
	return f.exercises[f.index], true
}

// IsLast reports whether the cursor sits on the final exercise, i.e. the next
// forward transition ends the session.
func (f *Flow) IsLast() bool {
	return f.index+1 >= len(f.exercises)
}

func (f *Flow) CanPrev() bool {
	return f.ready() && f.index > 0
}

func (f *Flow) Snapshot() Snapshot {
	current, _ := f.Current()
	return Snapshot{
		ID:      f.id,
		PlanID:  f.planID,
		Index:   f.index,
		Total:   len(f.exercises),
		Current: current,
		State:   f.state,
		Pending: f.pending != nil,
	}
}

// Done marks the current exercise complete in the progress store right away
// and schedules the move to the next exercise.
func (f *Flow) Done() (Transition, bool) {
	current, ok := f.Current()
	if !ok || f.pending != nil {
		return Transition{}, false
	}
	f.store.MarkDone(current.Name)
	f.logger.Info("exercise_done", logging.F("index", f.index), logging.F("exercise", current.Name))
	return f.schedule(ActionDone, f.index+1), true
}

func (f *Flow) Skip() (Transition, bool) {
	if !f.ready() {
		return Transition{}, false
	}
	f.logger.Info("exercise_skipped", logging.F("index", f.index))
	return f.schedule(ActionSkip, f.index+1), true
}

// Prev schedules a move back one exercise. It is ignored on the first one.
func (f *Flow) Prev() (Transition, bool) {
	if !f.ready() {
		return Transition{}, false
	}
	if f.index == 0 {
		f.logger.Debug("prev_ignored", logging.F("index", f.index))
		return Transition{}, false
	}
	f.logger.Info("exercise_prev", logging.F("index", f.index))
	return f.schedule(ActionPrev, f.index-1), true
}

// Settle applies the pending transition identified by seq. Unknown or
// already-cancelled sequence numbers are ignored.
func (f *Flow) Settle(seq uint64) (Outcome, bool) {
	if f.pending == nil || f.pending.Seq != seq {
		return Outcome{}, false
	}
	next := *f.pending
	f.pending = nil
	f.index = next.To
	outcome := Outcome{Action: next.Action, Index: f.index}
	if f.index >= len(f.exercises) {
		f.index = len(f.exercises)
		f.state = StateFinished
		outcome.Finished = true
		f.logger.Info("session_finished", logging.F("exercises", len(f.exercises)))
	}
	return outcome, true
}

// Cancel drops any pending transition. It returns true when one was dropped.
func (f *Flow) Cancel() bool {
	if f.pending == nil {
		return false
	}
	f.logger.Info("transition_cancelled", logging.F("action", f.pending.Action), logging.F("index", f.index))
	f.pending = nil
	return true
}

func (f *Flow) ready() bool {
	return f.state == StateViewing && f.pending == nil
}

func (f *Flow) schedule(action Action, to int) Transition {
	f.seq++
	t := Transition{
		Seq:    f.seq,
		Action: action,
		From:   f.index,
		To:     to,
		Delay:  f.timing.TransitionDelay,
		Rest:   to < len(f.exercises),
	}
	f.pending = &t
	return t
}
