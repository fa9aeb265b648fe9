package study

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// TimerState is the lifecycle of one countdown run.
type TimerState int32

// Timer states
const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerExpired
	TimerCancelled
)

// String implements fmt.Stringer.
func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerExpired:
		return "expired"
	case TimerCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("TimerState(%d)", int32(s))
	}
}

// DefaultTick is the countdown resolution.
const DefaultTick = time.Second

// Countdown counts down whole seconds on a background goroutine.
// Each Start begins a new run and invalidates the previous one, so a stale
// goroutine can never write into the current run.
type Countdown struct {
	tick     time.Duration
	onExpire func()

	mu  sync.Mutex
	run *countdownRun
}

type countdownRun struct {
	remaining  atomic.Int64
	state      atomic.Int32
	cancel     chan struct{}
	cancelOnce sync.Once
	done       chan struct{}
}

// CountdownOption configures a Countdown.
type CountdownOption func(*Countdown)

// WithTick sets the interval between decrements.
func WithTick(d time.Duration) CountdownOption {
	return func(c *Countdown) {
		if d > 0 {
			c.tick = d
		}
	}
}

// WithOnExpire registers a callback run on the timer goroutine when a run
// reaches zero without being cancelled.
func WithOnExpire(fn func()) CountdownOption {
	return func(c *Countdown) {
		c.onExpire = fn
	}
}

// NewCountdown creates an idle Countdown.
func NewCountdown(opts ...CountdownOption) *Countdown {
	c := &Countdown{tick: DefaultTick}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start cancels any previous run and begins counting down from seconds.
// A non-positive value expires immediately with nothing remaining.
func (c *Countdown) Start(seconds int) {
	run := &countdownRun{
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}

	c.mu.Lock()
	prev := c.run
	c.run = run
	c.mu.Unlock()

	if prev != nil {
		prev.stop()
		<-prev.done
	}

	if seconds <= 0 {
		run.state.Store(int32(TimerExpired))
		close(run.done)
		return
	}

	run.remaining.Store(int64(seconds))
	run.state.Store(int32(TimerRunning))
	go run.loop(c.tick, c.onExpire)
}

// Cancel stops the current run. Calling it before Start, after expiry or more
// than once has no effect.
func (c *Countdown) Cancel() {
	if run := c.current(); run != nil {
		run.stop()
	}
}

// Remaining returns the seconds left in the current run, never negative.
// It is 0 before the first Start.
func (c *Countdown) Remaining() int {
	run := c.current()
	if run == nil {
		return 0
	}
	return int(max(run.remaining.Load(), 0))
}

// State returns the state of the current run.
func (c *Countdown) State() TimerState {
	run := c.current()
	if run == nil {
		return TimerIdle
	}
	return TimerState(run.state.Load())
}

// Done returns a channel closed when the current run ends. Before the first
// Start it returns a closed channel.
func (c *Countdown) Done() <-chan struct{} {
	run := c.current()
	if run == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return run.done
}

// Wait blocks until the goroutine of the current run has exited.
func (c *Countdown) Wait() {
	<-c.Done()
}

func (c *Countdown) current() *countdownRun {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run
}

func (r *countdownRun) stop() {
	r.cancelOnce.Do(func() {
		r.state.CompareAndSwap(int32(TimerRunning), int32(TimerCancelled))
		close(r.cancel)
	})
}

func (r *countdownRun) loop(tick time.Duration, onExpire func()) {
	defer close(r.done)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-r.cancel:
			return
		case <-ticker.C:
			if TimerState(r.state.Load()) != TimerRunning {
				return
			}
			if r.remaining.Add(-1) > 0 {
				continue
			}
			r.remaining.Store(0)
			if r.state.CompareAndSwap(int32(TimerRunning), int32(TimerExpired)) && onExpire != nil {
				onExpire()
			}
			return
		}
	}
}
