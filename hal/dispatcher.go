package hal

import "sort"

type timer struct {
	due uint64
	seq uint64
	fn  func()
}

// Dispatcher is a single-threaded callback registry in the style of a GLUT
// main loop. A runner feeds it time, window sizes and redraw opportunities;
// the application only registers callbacks.
type Dispatcher struct {
	display func()
	reshape func(w, h int)

	now    uint64
	seq    uint64
	timers []timer

	redisplay bool
	w, h      int
	sized     bool
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// DisplayFunc sets the callback that draws a frame.
func (d *Dispatcher) DisplayFunc(fn func()) { d.display = fn }

// ReshapeFunc sets the callback that receives window size changes. If a size
// is already known it is delivered immediately.
func (d *Dispatcher) ReshapeFunc(fn func(w, h int)) {
	d.reshape = fn
	if fn != nil && d.sized {
		fn(d.w, d.h)
	}
}

// TimerFunc arms a one-shot timer that fires delayMs after the current time.
func (d *Dispatcher) TimerFunc(delayMs int, fn func()) {
	if fn == nil {
		return
	}
	if delayMs < 0 {
		delayMs = 0
	}
	d.seq++
	t := timer{due: d.now + uint64(delayMs), seq: d.seq, fn: fn}
	i := sort.Search(len(d.timers), func(i int) bool {
		o := d.timers[i]
		return o.due > t.due || (o.due == t.due && o.seq > t.seq)
	})
	d.timers = append(d.timers, timer{})
	copy(d.timers[i+1:], d.timers[i:])
	d.timers[i] = t
}

// PostRedisplay marks the window for redraw on the next Redraw call.
func (d *Dispatcher) PostRedisplay() { d.redisplay = true }

// Step advances the clock to now (ms) and fires every timer that is due, in
// due order. Timers armed by a callback fire on a later step at the earliest.
// It returns the number of timers fired.
func (d *Dispatcher) Step(now uint64) int {
	if now > d.now {
		d.now = now
	}
	limit := d.seq
	fired := 0
	for len(d.timers) > 0 {
		t := d.timers[0]
		if t.due > d.now || t.seq > limit {
			break
		}
		d.timers = d.timers[1:]
		t.fn()
		fired++
	}
	return fired
}

// Resize records the window size. A change is delivered to the reshape
// callback and posts a redisplay; repeating the same size does nothing.
func (d *Dispatcher) Resize(w, h int) bool {
	if d.sized && w == d.w && h == d.h {
		return false
	}
	d.w, d.h, d.sized = w, h, true
	if d.reshape != nil {
		d.reshape(w, h)
	}
	d.redisplay = true
	return true
}

// Redraw runs the display callback if a redisplay is pending.
func (d *Dispatcher) Redraw() bool {
	if !d.redisplay || d.display == nil {
		return false
	}
	d.redisplay = false
	d.display()
	return true
}

// Now returns the dispatcher clock in ms.
func (d *Dispatcher) Now() uint64 { return d.now }

// Size returns the last size passed to Resize.
func (d *Dispatcher) Size() (w, h int) { return d.w, d.h }

// PendingTimers returns the number of armed timers.
func (d *Dispatcher) PendingTimers() int { return len(d.timers) }
