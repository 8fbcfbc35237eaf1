// SPDX-License-Identifier: EPL-2.0

package dsp

// FrameProcessor receives one input frame per stream callback and produces
// the matching output frame.
//
// Frames are interleaved 16-bit PCM with a fixed length of
// frameLength*channels samples for the lifetime of the stream. The input
// slice is owned by the stream and is only valid for the duration of the
// call; keep a copy if samples are needed later (or better, append them to
// a CaptureBuffer). The returned output frame must have exactly the same
// length as the input frame.
//
// Returning cont == false asks the stream to shut down gracefully after
// this frame.
//
// ProcessFrame runs on the native audio callback context. It must not
// block, allocate per call, or perform I/O; missing the frame deadline
// causes audible glitches. All state carried between invocations belongs
// in the processor value itself, not in package-level variables.
type FrameProcessor interface {
	ProcessFrame(in []int16) (out []int16, cont bool)
}

// FrameFunc adapts a plain function to the FrameProcessor interface.
type FrameFunc func(in []int16) ([]int16, bool)

func (f FrameFunc) ProcessFrame(in []int16) ([]int16, bool) {
	return f(in)
}
