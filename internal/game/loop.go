package game

import (
	"sync"
	"time"
)

// Clock supplies frame timestamps to the loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock; time.Now carries a monotonic reading.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Used by tests and headless runs.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Stepper is the fixed-timestep accumulator. Elapsed real time is banked and
// paid out in whole ticks; the remainder carries over to the next frame.
// The bank is kept in nanoseconds so N ticks of elapsed time always yield
// exactly N ticks.
type Stepper struct {
	Step     time.Duration
	MaxDelta time.Duration // 0 disables the catch-up cap

	last    time.Time
	started bool
	acc     time.Duration
	ticks   uint64
}

func NewStepper() *Stepper {
	return &Stepper{Step: TickDuration, MaxDelta: MaxFrameDelta}
}

// Reset makes now the reference point for the next Advance.
func (st *Stepper) Reset(now time.Time) {
	st.last = now
	st.started = true
	st.acc = 0
}

// Advance banks the time since the previous call and returns how many
// ticks are now due. The first call only sets the reference point.
func (st *Stepper) Advance(now time.Time) int {
	if !st.started {
		st.Reset(now)
		return 0
	}
	dt := now.Sub(st.last)
	st.last = now
	if dt < 0 {
		dt = 0
	}
	if st.MaxDelta > 0 && dt > st.MaxDelta {
		dt = st.MaxDelta
	}
	st.acc += dt

	n := 0
	for st.acc >= st.Step {
		st.acc -= st.Step
		n++
	}
	st.ticks += uint64(n)
	return n
}

// Ticks is the total number of ticks paid out so far.
func (st *Stepper) Ticks() uint64 { return st.ticks }

// Loop runs all due ticks and then renders exactly once per Frame.
type Loop struct {
	Clock   Clock
	Stepper *Stepper
	Tick    func()
	Render  func()
}

func NewLoop(clock Clock, tick, render func()) *Loop {
	l := &Loop{
		Clock:   clock,
		Stepper: NewStepper(),
		Tick:    tick,
		Render:  render,
	}
	l.Stepper.Reset(clock.Now())
	return l
}

// Frame performs one loop iteration and returns the number of ticks run.
func (l *Loop) Frame() int {
	n := l.Stepper.Advance(l.Clock.Now())
	for i := 0; i < n; i++ {
		if l.Tick != nil {
			l.Tick()
		}
	}
	if l.Render != nil {
		l.Render()
	}
	return n
}
