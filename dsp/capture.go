// SPDX-License-Identifier: EPL-2.0

package dsp

import "sync"

// CaptureBuffer accumulates processed samples for offline inspection
// without ever blocking the real-time path. Appends past the configured
// capacity are truncated and the excess silently dropped; the buffer
// length never exceeds its capacity.
//
// The buffer is safe for concurrent use: the audio callback appends while
// a controlling goroutine inspects. The append critical section is a
// bounds check plus one copy, so the callback side stays short.
type CaptureBuffer struct {
	mu      sync.Mutex
	samples []int16
	packed  []int16 // scratch for stereo interleave, callback side only
}

// NewCaptureBuffer returns a buffer that holds at most capacity samples.
// A capacity of zero (or less) disables capture entirely.
func NewCaptureBuffer(capacity int) *CaptureBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &CaptureBuffer{
		samples: make([]int16, 0, capacity),
	}
}

// Append adds samples until the buffer is full. Once capacity is reached
// the remainder is dropped; Append never blocks.
func (c *CaptureBuffer) Append(samples []int16) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := cap(c.samples) - len(c.samples)
	if room <= 0 {
		return
	}
	if len(samples) > room {
		samples = samples[:room]
	}
	c.samples = append(c.samples, samples...)
}

// AppendStereo interleaves two equal-length channel slices and appends the
// packed result under the same capacity rule as Append.
func (c *CaptureBuffer) AppendStereo(left, right []int16) error {
	if len(left) != len(right) {
		return ErrLengthMismatch
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	room := cap(c.samples) - len(c.samples)
	if room <= 0 {
		return nil
	}

	if need := len(left) * 2; cap(c.packed) < need {
		c.packed = make([]int16, need)
	}
	packed := c.packed[:len(left)*2]
	for i, v := range left {
		packed[2*i] = v
		packed[2*i+1] = right[i]
	}

	if len(packed) > room {
		packed = packed[:room]
	}
	c.samples = append(c.samples, packed...)
	return nil
}

// Samples returns a copy of the captured samples.
func (c *CaptureBuffer) Samples() []int16 {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]int16, len(c.samples))
	copy(out, c.samples)
	return out
}

// Len reports the number of captured samples.
func (c *CaptureBuffer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.samples)
}

// Cap reports the configured capacity.
func (c *CaptureBuffer) Cap() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cap(c.samples)
}

// Reset discards captured samples, keeping the backing array.
func (c *CaptureBuffer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.samples = c.samples[:0]
}
