// SPDX-License-Identifier: EPL-2.0

package dsp

// LoopSource serves successive fixed-size chunks from a finite sample
// buffer, wrapping to the start when the end is reached. It supports
// continuous playback of a short recording without a file-backed stream.
//
// Samples are interleaved when channels > 1 and the cursor advances in
// whole frames, so left/right pairs are never split across a wrap. When a
// request reaches the end of the buffer, the tail is stitched directly to
// the head with no gap. Requests longer than the buffer tile it as many
// times as needed.
//
// A LoopSource is not safe for concurrent use. It is meant to be owned by
// a single FrameProcessor and driven from the callback context; Fill does
// not allocate.
type LoopSource struct {
	samples  []int16
	channels int
	frames   int // len(samples) / channels
	pos      int // cursor in frames, always in [0, frames)
}

// NewLoopSource wraps an interleaved sample buffer for looping playback.
// startOffset is in frames and is normalized modulo the buffer length.
func NewLoopSource(samples []int16, channels, startOffset int) (*LoopSource, error) {
	if channels < 1 {
		channels = 1
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if len(samples)%channels != 0 {
		return nil, ErrInvalidChunkSize
	}

	frames := len(samples) / channels
	pos := startOffset % frames
	if pos < 0 {
		pos += frames
	}

	return &LoopSource{
		samples:  samples,
		channels: channels,
		frames:   frames,
		pos:      pos,
	}, nil
}

// Channels reports the channel count of the loop buffer.
func (l *LoopSource) Channels() int { return l.channels }

// Frames reports the loop length in frames.
func (l *LoopSource) Frames() int { return l.frames }

// Pos reports the cursor position in frames. The cursor is always a valid
// frame index into the loop buffer.
func (l *LoopSource) Pos() int { return l.pos }

// Fill writes the next len(dst) samples into dst, wrapping around the loop
// buffer as needed. len(dst) must be a positive multiple of the channel
// count. The cursor advances by len(dst)/channels frames modulo the loop
// length.
func (l *LoopSource) Fill(dst []int16) error {
	if len(dst) == 0 || len(dst)%l.channels != 0 {
		return ErrInvalidChunkSize
	}

	written := 0
	for written < len(dst) {
		start := l.pos * l.channels
		n := copy(dst[written:], l.samples[start:])
		written += n
		l.pos += n / l.channels
		if l.pos >= l.frames {
			l.pos = 0
		}
	}
	return nil
}

// NextChunk returns the next frames worth of samples as a fresh slice.
// Prefer Fill with a reused buffer on the real-time path.
func (l *LoopSource) NextChunk(frames int) ([]int16, error) {
	if frames <= 0 {
		return nil, ErrInvalidChunkSize
	}

	out := make([]int16, frames*l.channels)
	if err := l.Fill(out); err != nil {
		return nil, err
	}
	return out, nil
}
