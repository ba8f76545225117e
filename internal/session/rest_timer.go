package session

type TickResult int

const (
	TickIgnored TickResult = iota
	TickCounted
	TickExpired
)

func (r TickResult) String() string {
	switch r {
	case TickCounted:
		return "counted"
	case TickExpired:
		return "expired"
	default:
		return "ignored"
	}
}

// RestTimer counts down from a fixed value, one step per tick, and reports
// expiry exactly once per Start. Ticks carry the generation returned by Start
// so a tick queued before Stop or a restart is dropped.
type RestTimer struct {
	start     int
	remaining int
	gen       uint64
	running   bool
}

func NewRestTimer(start int) *RestTimer {
	if start < 0 {
		start = 0
	}
	return &RestTimer{start: start, remaining: start}
}

func (t *RestTimer) Start() uint64 {
	t.gen++
	t.remaining = t.start
	t.running = true
	return t.gen
}

func (t *RestTimer) Stop() {
	t.gen++
	t.running = false
}

func (t *RestTimer) Tick(gen uint64) TickResult {
	if !t.running || gen != t.gen {
		return TickIgnored
	}
	if t.remaining <= 0 {
		t.running = false
		return TickExpired
	}
	t.remaining--
	return TickCounted
}

func (t *RestTimer) Remaining() int { return t.remaining }

func (t *RestTimer) Running() bool { return t.running }

func (t *RestTimer) Generation() uint64 { return t.gen }
