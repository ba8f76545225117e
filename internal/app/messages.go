package app

// transitionDueMsg fires when a session transition's delay has elapsed.
type transitionDueMsg struct {
	sessionID string
	seq       uint64
}

type restTickMsg struct {
	gen uint64
}

type clipboardResultMsg struct {
	method clipboardMethod
	err    error
}
