// SPDX-License-Identifier: EPL-2.0

// Package device opens duplex audio streams on top of the native
// audio backend (github.com/gen2brain/malgo / miniaudio).
//
// # Enumeration
//
// Enumerate returns a read-only snapshot of the devices the backend
// reports, with capture and playback endpoints merged by name:
//
//	devices, err := device.Enumerate()
//	for _, d := range devices {
//	    fmt.Printf("%d: %s (in=%d out=%d)\n",
//	        d.Index, d.Name, d.MaxInputChannels, d.MaxOutputChannels)
//	}
//
// # Streaming
//
// Open validates a Config against the snapshot and prepares a duplex
// stream; Start pushes every captured period through a
// dsp.FrameProcessor and plays whatever it returns:
//
//	stream, err := device.Open(device.Config{
//	    Input:       device.DefaultDevice,
//	    Output:      device.DefaultDevice,
//	    SampleRate:  48000,
//	    FrameLength: 1024,
//	    Channels:    1,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
//	err = stream.Run(ctx, dsp.FrameFunc(func(in []int16) ([]int16, bool) {
//	    return in, true // loopback
//	}))
//
// The data callback runs on a real-time audio thread. It never
// allocates, logs or blocks; stopping is signaled out of the callback
// and performed by a monitor goroutine, so Stop can always block
// safely until the device confirms.
package device
