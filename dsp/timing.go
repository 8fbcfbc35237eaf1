// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"sync"
	"time"
)

// Stats summarizes a sequence of recorded durations.
type Stats struct {
	Count  int
	Mean   time.Duration
	Max    time.Duration
	StdDev time.Duration
}

// CallbackTimer measures the wall-clock time spent inside each callback
// invocation, like probing an interrupt line with a logic analyzer.
//
// MarkStart and MarkStop must be strictly paired: exactly one MarkStop
// between consecutive MarkStart calls. The recorded samples grow without
// bound across a session unless Reset is called.
//
// Safe for concurrent use; the mark path appends to preallocated-growth
// slices under a mutex with no other work in the critical section.
type CallbackTimer struct {
	mu        sync.Mutex
	base      time.Time
	starts    []time.Duration // mark offsets from base, for period stats
	durations []time.Duration
	pending   time.Time
	hasMark   bool

	now func() time.Time // injectable for tests
}

// NewCallbackTimer returns a timer whose first-callback delay is measured
// from this moment.
func NewCallbackTimer() *CallbackTimer {
	t := &CallbackTimer{now: time.Now}
	t.base = t.now()
	return t
}

// MarkStart records the entry timestamp of a callback invocation. Calling
// it again before MarkStop returns ErrMarkPending and leaves the pending
// mark untouched.
func (t *CallbackTimer) MarkStart() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hasMark {
		return ErrMarkPending
	}
	t.pending = t.now()
	t.hasMark = true
	t.starts = append(t.starts, t.pending.Sub(t.base))
	return nil
}

// MarkStop records the exit timestamp of a callback invocation and appends
// the elapsed duration. Without a pending MarkStart it returns
// ErrNoMarkPending.
func (t *CallbackTimer) MarkStop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasMark {
		return ErrNoMarkPending
	}
	t.durations = append(t.durations, t.now().Sub(t.pending))
	t.hasMark = false
	return nil
}

// Durations returns a copy of the recorded callback durations.
func (t *CallbackTimer) Durations() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]time.Duration, len(t.durations))
	copy(out, t.durations)
	return out
}

// Stats summarizes the recorded callback durations. The second return is
// false when no complete start/stop pair has been recorded.
func (t *CallbackTimer) Stats() (Stats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return summarize(t.durations)
}

// PeriodStats summarizes the intervals between successive MarkStart calls,
// the measured callback period. False when fewer than two marks exist.
func (t *CallbackTimer) PeriodStats() (Stats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.starts) < 2 {
		return Stats{}, false
	}
	periods := make([]time.Duration, len(t.starts)-1)
	for i := range periods {
		periods[i] = t.starts[i+1] - t.starts[i]
	}
	return summarize(periods)
}

// FirstStart returns the delay between timer creation (or the last Reset)
// and the first recorded mark. False when no mark has been recorded.
func (t *CallbackTimer) FirstStart() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.starts) == 0 {
		return 0, false
	}
	return t.starts[0], true
}

// Reset discards all recorded samples and restarts the first-mark clock.
func (t *CallbackTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.base = t.now()
	t.starts = t.starts[:0]
	t.durations = t.durations[:0]
	t.hasMark = false
}

func summarize(samples []time.Duration) (Stats, bool) {
	if len(samples) == 0 {
		return Stats{}, false
	}

	var sum, max time.Duration
	for _, d := range samples {
		sum += d
		if d > max {
			max = d
		}
	}
	mean := sum / time.Duration(len(samples))

	// Population standard deviation in float64 nanoseconds
	var acc float64
	for _, d := range samples {
		diff := float64(d - mean)
		acc += diff * diff
	}
	std := time.Duration(math.Sqrt(acc / float64(len(samples))))

	return Stats{
		Count:  len(samples),
		Mean:   mean,
		Max:    max,
		StdDev: std,
	}, true
}
