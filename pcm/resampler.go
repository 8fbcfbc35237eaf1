// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"

	"github.com/ik5/dspio/utils"
)

// Resampler converts a Source to a target sample rate using Catmull-Rom
// cubic interpolation over a sliding four-frame window. Channel count is
// preserved; interpolation runs per channel on interleaved frames. When
// downsampling, a one-pole low-pass smoother tames the worst aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	step     float64 // source frames consumed per output frame

	// window[0..3] hold frames y0..y3; output interpolates y1..y2
	window [4][]float32
	frac   float64 // position between y1 and y2, in [0, 1)
	primed bool
	eof    bool
	pad    int // synthetic hold frames appended after source EOF

	smooth   []float32
	alpha    float32
	smoothOn bool

	readBuf []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     step,
		smoothOn: step > 1.0,
		alpha:    0.5,
		smooth:   make([]float32, channels),
		readBuf:  make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame fills dst with one full source frame, looping over short reads.
// Returns io.EOF only when no sample of the frame could be read; a partial
// trailing frame is discarded.
func (r *Resampler) readFrame(dst []float32) error {
	filled := 0
	for filled < r.channels {
		n, err := r.src.ReadSamples(dst[filled:r.channels])
		filled += n
		if err == io.EOF {
			if filled < r.channels {
				return io.EOF
			}
			r.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading source frame: %w", err)
		}
		if n == 0 {
			return io.EOF
		}
	}
	return nil
}

// nextFrame reads a source frame into dst, applying the anti-alias
// smoother when enabled. io.EOF means the source is exhausted.
func (r *Resampler) nextFrame(dst []float32) error {
	if r.eof {
		return io.EOF
	}
	if err := r.readFrame(r.readBuf); err != nil {
		if err == io.EOF {
			r.eof = true
		}
		return err
	}

	if r.smoothOn {
		for c := 0; c < r.channels; c++ {
			r.smooth[c] = r.alpha*r.readBuf[c] + (1-r.alpha)*r.smooth[c]
			dst[c] = r.smooth[c]
		}
	} else {
		copy(dst, r.readBuf)
	}
	return nil
}

// prime loads the initial window: the first source frame is duplicated
// into y0 so the very first output sample equals the first source sample.
func (r *Resampler) prime() error {
	if err := r.nextFrame(r.window[1]); err != nil {
		return err
	}
	copy(r.window[0], r.window[1])
	copy(r.smooth, r.window[1]) // avoid smoother warm-up transient

	for i := 2; i < 4; i++ {
		if err := r.nextFrame(r.window[i]); err != nil {
			if err != io.EOF {
				return err
			}
			copy(r.window[i], r.window[i-1])
			r.pad++
		}
	}

	r.primed = true
	return nil
}

// shift advances the window one source frame. After the source ends, the
// last real frame is held; once the hold reaches y1 there is nothing left
// to interpolate and shift reports io.EOF.
func (r *Resampler) shift() error {
	r.window[0], r.window[1], r.window[2], r.window[3] =
		r.window[1], r.window[2], r.window[3], r.window[0]

	err := r.nextFrame(r.window[3])
	if err == io.EOF {
		copy(r.window[3], r.window[2])
		r.pad++
		if r.pad >= 3 {
			return io.EOF
		}
		return nil
	}
	return err
}

// ReadSamples produces samples at the target rate. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, err
		}
	}

	framesNeeded := len(dst) / r.channels
	written := 0
	for written < framesNeeded {
		for r.frac >= 1.0 {
			r.frac -= 1.0
			if err := r.shift(); err != nil {
				if err == io.EOF {
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		x := float32(r.frac)
		base := written * r.channels
		for c := 0; c < r.channels; c++ {
			dst[base+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
