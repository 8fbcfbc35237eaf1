// SPDX-License-Identifier: EPL-2.0

// Package dsp provides the frame-domain building blocks for real-time
// audio callback processing.
//
// All types here work on interleaved 16-bit PCM, the native format of the
// device layer, and none of them touch the audio driver. They fall into
// two groups:
//
// Callback-side primitives, designed to be driven from the native audio
// callback context without blocking or allocating:
//
//   - FrameProcessor, the per-frame processing contract
//   - LoopSource, wrap-around playback of a finite buffer
//   - PackStereoTo / SplitStereoTo, zero-alloc channel interleaving
//
// Shared instrumentation, safe to touch from both the callback context and
// the controlling goroutine:
//
//   - CaptureBuffer, a bounded sample log for offline analysis
//   - CallbackTimer, paired start/stop marks with summary statistics
//
// # Frame Processing
//
// Implement FrameProcessor on a struct that holds every piece of state
// carried between invocations (filter memory, gain, loop cursors):
//
//	type gain struct{ g float32; out []int16 }
//
//	func (p *gain) ProcessFrame(in []int16) ([]int16, bool) {
//	    for i, v := range in {
//	        p.out[i] = int16(float32(v) * p.g)
//	    }
//	    return p.out, true
//	}
//
// # Capture
//
// A CaptureBuffer never exceeds its capacity and never blocks; once full,
// further samples are dropped so the real-time path cannot stall:
//
//	cap := dsp.NewCaptureBuffer(rate * seconds)
//	cap.Append(frame)        // inside the callback
//	samples := cap.Samples() // later, from the controlling goroutine
//
// # Timing
//
// CallbackTimer brackets each invocation and summarizes the cost:
//
//	timer.MarkStart()
//	out, cont := p.ProcessFrame(in)
//	timer.MarkStop()
//
//	if st, ok := timer.Stats(); ok {
//	    fmt.Println(st.Mean, st.Max)
//	}
package dsp
