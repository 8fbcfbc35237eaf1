// SPDX-License-Identifier: EPL-2.0

// Package dspio provides real-time duplex audio streaming for DSP
// experiments in Go.
//
// This package offers a one-object streaming API: frames captured from
// an input device flow through a user-supplied processor and straight
// back out to an output device, while the processed output is recorded
// and every callback is timed. It's designed for algorithm prototyping
// where hearing and measuring the result matters more than plumbing.
//
// # Quick Start
//
// The simplest stream is a loopback with capture enabled:
//
//	stream, err := dspio.Open(device.Config{
//	    Input:       device.DefaultDevice,
//	    Output:      device.DefaultDevice,
//	    SampleRate:  48000,
//	    FrameLength: 1024,
//	}, 2.0) // retain up to two seconds of processed output
//	if err != nil {
//	    // Handle error
//	}
//
//	err = stream.Stream(ctx, 5*time.Second, dsp.FrameFunc(
//	    func(in []int16) ([]int16, bool) {
//	        return in, true
//	    }))
//
//	fmt.Print(stream.Report())
//	samples := stream.Capture().Samples()
//
// # Frame Processors
//
// A dsp.FrameProcessor receives one interleaved int16 frame per device
// period and returns the frame to play. Processors keep their state in
// their own values; the stream never shares state with them. See the
// dsp package for the processor contract and the callback-safe
// primitives (stereo pack/unpack, capture buffer, callback timer, loop
// source).
//
// # Loop Playback
//
// LoadLoop and LoadLoopFile turn an audio file into loop playback
// material matched to the stream geometry:
//
//	loop, err := dspio.LoadLoopFile("riff.wav", dspio.LoopConfig{
//	    SampleRate: 48000,
//	})
//	if err != nil {
//	    // Handle error
//	}
//
//	err = stream.Stream(ctx, 0, dsp.FrameFunc(
//	    func(in []int16) ([]int16, bool) {
//	        out, _ := loop.NextChunk(len(in))
//	        return out, true
//	    }))
//
// Decoders for WAV, MP3, Ogg Vorbis and AIFF are registered in
// DefaultRegistry; the pcm package holds the decode/mix/resample
// pipeline they feed.
//
// # Devices
//
// The device package wraps the native audio backend: Enumerate lists
// endpoints, device.Open validates a configuration against them, and
// device.Stream runs the duplex callback. IOStream accepts any
// FrameStreamer, so everything above the device layer is testable
// without hardware.
package dspio
