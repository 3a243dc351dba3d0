package state

// Signal is a coalescing wake-up: any number of Notify calls before the
// receiver drains C collapse into a single pending wake. The wake carries no
// payload; the receiver reads the Store.
type Signal struct {
	ch chan struct{}
}

// NewSignal creates a signal with nothing pending.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Notify marks a wake as pending. It never blocks.
func (s *Signal) Notify() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// C returns the channel the UI loop receives wakes from.
func (s *Signal) C() <-chan struct{} {
	return s.ch
}
