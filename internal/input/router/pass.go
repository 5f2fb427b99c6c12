package router

// Pass carries the propagation state of one logical event through its
// listener chain. The raw input event, a synthesized action, and a
// synthesized click each get their own Pass: marking one handled does not
// silence the others.
type Pass struct {
	handled  bool
	deferred *[]func()
}

func newPass(deferred *[]func()) *Pass {
	return &Pass{deferred: deferred}
}

// StopPropagation marks the event handled; listeners on ancestor nodes will
// not observe it.
func (p *Pass) StopPropagation() {
	p.handled = true
}

// Handled reports whether a listener has stopped propagation.
func (p *Pass) Handled() bool {
	return p.handled
}

// Defer schedules fn to run after the current dispatch pass completes.
// Listeners must not block the dispatch thread; this is the supported way
// to continue work once routing has finished.
func (p *Pass) Defer(fn func()) {
	if p.deferred != nil && fn != nil {
		*p.deferred = append(*p.deferred, fn)
	}
}
