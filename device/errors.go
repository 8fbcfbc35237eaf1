// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	// ErrInputUnavailable is returned when the requested input device
	// index is not in the enumerated device list.
	ErrInputUnavailable = errors.New("input device unavailable")
	// ErrOutputUnavailable is returned when the requested output device
	// index is not in the enumerated device list.
	ErrOutputUnavailable = errors.New("output device unavailable")
	// ErrNoInputChannels is returned when the selected input device
	// reports no capture channels.
	ErrNoInputChannels = errors.New("device has no input channels")
	// ErrNoOutputChannels is returned when the selected output device
	// reports no playback channels.
	ErrNoOutputChannels = errors.New("device has no output channels")
	// ErrChannelsUnsupported is returned when the requested channel
	// count exceeds what the selected devices support.
	ErrChannelsUnsupported = errors.New("channel count unsupported by device")
	// ErrUndersizedFrame is recorded when a frame processor returns an
	// output frame whose length does not match the input frame.
	ErrUndersizedFrame = errors.New("processor returned undersized frame")
	// ErrAlreadyRunning is returned by Start when the stream is
	// already streaming.
	ErrAlreadyRunning = errors.New("stream already running")
	// ErrClosed is returned when operating on a closed stream.
	ErrClosed = errors.New("stream closed")
)
