package main

// Redraw is a render-when-dirty flag. Requests coalesce until the render loop
// consumes them; it is safe to use from any goroutine.
type Redraw struct {
	ch chan struct{}
}

func NewRedraw() *Redraw {
	return &Redraw{ch: make(chan struct{}, 1)}
}

// Request marks the view dirty. It never blocks.
func (r *Redraw) Request() {
	select {
	case r.ch <- struct{}{}:
	default:
	}
}

// Pending consumes the dirty flag and reports whether it was set.
func (r *Redraw) Pending() bool {
	select {
	case <-r.ch:
		return true
	default:
		return false
	}
}
