package progress

import (
	"fmt"
	"strings"
	"sync"

	"fitrack/internal/types"
)

const (
	DefaultMinutesPerExercise  = 2.5
	DefaultCaloriesPerExercise = 6.3
)

// CounterScope decides whether the numeric counters survive the start of a
// new workout. Completed names are cleared on every start regardless.
type CounterScope string

const (
	CounterScopeLifetime CounterScope = "lifetime"
	CounterScopeSession  CounterScope = "session"
)

func ParseCounterScope(raw string) (CounterScope, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(CounterScopeLifetime):
		return CounterScopeLifetime, nil
	case string(CounterScopeSession):
		return CounterScopeSession, nil
	default:
		return "", fmt.Errorf("unknown counter scope %q", raw)
	}
}

type Options struct {
	MinutesPerExercise  float64
	CaloriesPerExercise float64
	Scope               CounterScope
}

func DefaultOptions() Options {
	return Options{
		MinutesPerExercise:  DefaultMinutesPerExercise,
		CaloriesPerExercise: DefaultCaloriesPerExercise,
		Scope:               CounterScopeLifetime,
	}
}

type Listener func(types.Progress)

// Store holds the process-wide workout progress. One Store is created at
// startup and handed to every screen that reads or mutates progress.
type Store struct {
	mu        sync.Mutex
	opts      Options
	completed []string
	workouts  int
	minutes   float64
	calories  float64
	listeners []Listener
}

func NewStore(opts Options) *Store {
	defaults := DefaultOptions()
	if opts.MinutesPerExercise <= 0 {
		opts.MinutesPerExercise = defaults.MinutesPerExercise
	}
	if opts.CaloriesPerExercise <= 0 {
		opts.CaloriesPerExercise = defaults.CaloriesPerExercise
	}
	if opts.Scope == "" {
		opts.Scope = defaults.Scope
	}
	return &Store{opts: opts}
}

func (s *Store) Scope() CounterScope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Scope
}

// Subscribe registers fn to be called synchronously after every mutation.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// MarkDone records one finished exercise. Duplicate names are kept.
func (s *Store) MarkDone(name string) {
	s.mutate(func() {
		s.completed = append(s.completed, name)
		s.workouts++
		s.minutes += s.opts.MinutesPerExercise
		s.calories += s.opts.CaloriesPerExercise
	})
}

// ResetCompleted clears the completed names. Counters are untouched.
func (s *Store) ResetCompleted() {
	s.mutate(func() {
		s.completed = nil
	})
}

func (s *Store) ResetCounters() {
	s.mutate(func() {
		s.workouts = 0
		s.minutes = 0
		s.calories = 0
	})
}

// BeginWorkout prepares the store for a new session: completed names are
// always cleared, counters only under CounterScopeSession.
func (s *Store) BeginWorkout() {
	s.mutate(func() {
		s.completed = nil
		if s.opts.Scope == CounterScopeSession {
			s.workouts = 0
			s.minutes = 0
			s.calories = 0
		}
	})
}

func (s *Store) Snapshot() types.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() types.Progress {
	return types.Progress{
		Completed: append([]string{}, s.completed...),
		Workouts:  s.workouts,
		Minutes:   s.minutes,
		Calories:  s.calories,
	}
}

func (s *Store) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snapshot := s.snapshotLocked()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	for _, listener := range listeners {
		listener(snapshot)
	}
}

// Summary renders a one-line, human readable progress summary.
func Summary(p types.Progress) string {
	return fmt.Sprintf("%d workouts • %.1f min • %.1f kcal", p.Workouts, p.Minutes, p.Calories)
}
