// SPDX-License-Identifier: EPL-2.0

package device

import (
	"sync"

	"github.com/ik5/dspio/dsp"
	"github.com/ik5/dspio/utils"
)

// bridge carries device period buffers through a frame processor. It
// runs inside the native audio callback: process does no allocation,
// no logging and no blocking, and failures are reported by signaling
// stop rather than returning an error.
type bridge struct {
	proc     dsp.FrameProcessor
	channels int
	in       []int16

	stopOnce sync.Once
	stop     func(err error)
}

// newBridge preallocates the input frame for periods of up to frames
// frames. stop is invoked at most once, from callback context, and
// must only record and signal.
func newBridge(proc dsp.FrameProcessor, frames, channels int, stop func(err error)) *bridge {
	return &bridge{
		proc:     proc,
		channels: channels,
		in:       make([]int16, frames*channels),
		stop:     stop,
	}
}

// process converts one device period to int16, runs the processor and
// writes its output back as bytes. The output frame must match the
// input frame length exactly; any other length leaves the period
// silent and stops the stream.
func (b *bridge) process(outBytes, inBytes []byte, frameCount uint32) {
	samples := int(frameCount) * b.channels
	if samples > len(b.in) {
		samples = len(b.in)
	}

	n := utils.Int16FromBytes(b.in[:samples], inBytes)

	out, cont := b.proc.ProcessFrame(b.in[:n])
	if len(out) != n {
		clear(outBytes)
		b.signal(ErrUndersizedFrame)
		return
	}

	utils.BytesFromInt16(outBytes, out)

	if !cont {
		b.signal(nil)
	}
}

func (b *bridge) signal(err error) {
	b.stopOnce.Do(func() {
		b.stop(err)
	})
}
