package hal

import "time"

type hostTime struct {
	ms uint64

	last time.Time
	acc  time.Duration
	now  func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{now: time.Now}
}

func (t *hostTime) Millis() uint64 { return t.ms }

// step advances the clock by the wall time elapsed since the previous call.
// The first call only records the start.
func (t *hostTime) step() uint64 {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		return t.ms
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / time.Millisecond)
	if ticks == 0 {
		return t.ms
	}
	t.acc = t.acc % time.Millisecond
	t.ms += ticks
	return t.ms
}

// advance moves the clock by a fixed amount regardless of wall time.
func (t *hostTime) advance(d time.Duration) uint64 {
	t.acc += d
	t.ms += uint64(t.acc / time.Millisecond)
	t.acc = t.acc % time.Millisecond
	return t.ms
}
