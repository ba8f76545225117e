package session

import "time"

const (
	DefaultTransitionDelay = 2000 * time.Millisecond
	DefaultRestDuration    = 2
	DefaultRestTick        = time.Second
)

// Timing holds the delays the flow and rest timer run on.
type Timing struct {
	TransitionDelay time.Duration
	// RestDuration is the countdown start value, in ticks.
	RestDuration int
	RestTick     time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		TransitionDelay: DefaultTransitionDelay,
		RestDuration:    DefaultRestDuration,
		RestTick:        DefaultRestTick,
	}
}

// ZeroTiming keeps the rest countdown length but removes every wall-clock delay.
func ZeroTiming() Timing {
	return Timing{RestDuration: DefaultRestDuration}
}

func (t Timing) normalized() Timing {
	if t.TransitionDelay < 0 {
		t.TransitionDelay = 0
	}
	if t.RestDuration < 0 {
		t.RestDuration = 0
	}
	if t.RestTick < 0 {
		t.RestTick = 0
	}
	return t
}
