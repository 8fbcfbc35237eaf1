// SPDX-License-Identifier: EPL-2.0

package device

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gen2brain/malgo"

	"github.com/ik5/dspio/dsp"
)

// Config selects the devices and the stream geometry. Input and
// Output are indices into the Enumerate snapshot taken by Open;
// DefaultDevice picks the system default for that direction.
type Config struct {
	Input  int
	Output int
	// SampleRate in Hz, default 44100.
	SampleRate int
	// FrameLength is the period size in frames, default 1024.
	FrameLength int
	// Channels per direction, 1 or 2. Default 1.
	Channels int
	// Logger for lifecycle events. Never used from the audio
	// callback. Defaults to slog.Default().
	Logger *slog.Logger
}

func (cfg Config) withDefaults() Config {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 44100
	}
	if cfg.FrameLength == 0 {
		cfg.FrameLength = 1024
	}
	if cfg.Channels == 0 {
		cfg.Channels = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

// Stream is a duplex audio stream over one input and one output
// device. Frames flow through a dsp.FrameProcessor installed at Start.
// A Stream may be started and stopped repeatedly until Close.
type Stream struct {
	cfg    Config
	log    *slog.Logger
	ctx    *malgo.AllocatedContext
	input  Device
	output Device

	mu      sync.Mutex
	dev     *malgo.Device
	running bool
	closed  bool
	done    chan struct{}
	quit    chan struct{} // closed by halt so the monitor never leaks
	err     error
}

// Open validates the configuration against the current device
// snapshot and prepares a stream. It never partially opens: on any
// failure the backend context is released before returning.
func Open(cfg Config) (*Stream, error) {
	cfg = cfg.withDefaults()
	if cfg.Channels != 1 && cfg.Channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrChannelsUnsupported, cfg.Channels)
	}
	if cfg.FrameLength < 0 || cfg.SampleRate < 0 {
		return nil, fmt.Errorf("invalid stream geometry: %d frames at %d Hz", cfg.FrameLength, cfg.SampleRate)
	}

	log := cfg.Logger
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		log.Debug("audio backend", "message", message)
	})
	if err != nil {
		return nil, fmt.Errorf("initializing audio context: %w", err)
	}

	devices, err := enumerate(mctx.Context)
	if err != nil {
		releaseContext(mctx)
		return nil, err
	}

	input, output, err := selectDevices(cfg, devices)
	if err != nil {
		releaseContext(mctx)
		return nil, err
	}

	closedDone := make(chan struct{})
	close(closedDone)

	log.Info("stream opened",
		"input", input.Name,
		"output", output.Name,
		"sample_rate", cfg.SampleRate,
		"frame_length", cfg.FrameLength,
		"channels", cfg.Channels)

	return &Stream{
		cfg:    cfg,
		log:    log,
		ctx:    mctx,
		input:  input,
		output: output,
		done:   closedDone,
	}, nil
}

// Input reports the selected input device.
func (s *Stream) Input() Device { return s.input }

// Output reports the selected output device.
func (s *Stream) Output() Device { return s.output }

// Start begins duplex streaming through p. The device callback
// converts each period to int16, invokes p, and plays its output.
// Streaming continues until p returns cont == false, Stop is called,
// or a contract violation is recorded.
func (s *Stream) Start(p dsp.FrameProcessor) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}

	stopReq := make(chan error, 1)
	b := newBridge(p, s.cfg.FrameLength, s.cfg.Channels, func(err error) {
		stopReq <- err
	})

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Duplex)
	deviceConfig.SampleRate = uint32(s.cfg.SampleRate)
	deviceConfig.PeriodSizeInFrames = uint32(s.cfg.FrameLength)
	deviceConfig.Capture.Format = malgo.FormatS16
	deviceConfig.Capture.Channels = uint32(s.cfg.Channels)
	deviceConfig.Playback.Format = malgo.FormatS16
	deviceConfig.Playback.Channels = uint32(s.cfg.Channels)
	if s.input.captureID != nil {
		deviceConfig.Capture.DeviceID = s.input.captureID.Pointer()
	}
	if s.output.playbackID != nil {
		deviceConfig.Playback.DeviceID = s.output.playbackID.Pointer()
	}

	dev, err := malgo.InitDevice(s.ctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: b.process,
	})
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("initializing duplex device: %w", err)
	}

	if err := dev.Start(); err != nil {
		dev.Uninit()
		s.mu.Unlock()
		return fmt.Errorf("starting duplex device: %w", err)
	}

	s.dev = dev
	s.running = true
	s.err = nil
	s.done = make(chan struct{})
	s.quit = make(chan struct{})
	quit := s.quit
	s.mu.Unlock()

	// The callback only signals; actual teardown happens here. An
	// external Stop or Close closes quit instead, so the monitor
	// exits either way.
	go func() {
		err, signaled := awaitStop(stopReq, quit)
		if !signaled {
			return
		}
		if err != nil {
			s.log.Warn("stream stopping on error", "error", err)
		}
		s.halt(err)
	}()

	s.log.Info("stream started")
	return nil
}

// Stop halts streaming and blocks until the device confirms the stop.
// Stopping a stream that is not running is a no-op.
func (s *Stream) Stop() error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	s.halt(nil)
	<-done
	return nil
}

// halt tears down the current run exactly once. Safe to call
// concurrently from Stop and from the callback monitor; never called
// from the callback itself.
func (s *Stream) halt(err error) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.err = err
	dev := s.dev
	s.dev = nil
	done := s.done
	close(s.quit)
	s.mu.Unlock()

	_ = dev.Stop()
	dev.Uninit()
	close(done)
	s.log.Info("stream stopped")
}

// Run starts streaming through p and blocks until ctx is done, p
// requests stop, or a contract violation occurs. The stream is
// stopped before Run returns; the returned error is the recorded
// stream error, nil on a clean stop.
func (s *Stream) Run(ctx context.Context, p dsp.FrameProcessor) error {
	if err := s.Start(p); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		_ = s.Stop()
	case <-s.Done():
	}

	return s.Err()
}

// Done reports the completion channel of the current run. The channel
// is closed when the stream is not running.
func (s *Stream) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Err reports the error recorded by the last run, nil on clean stops.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close stops the stream if needed and releases the backend context.
// The stream cannot be restarted after Close.
func (s *Stream) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	done := s.done
	s.mu.Unlock()

	s.halt(nil)
	<-done

	releaseContext(s.ctx)
	s.log.Info("stream closed")
	return nil
}

// awaitStop blocks until the callback signals a stop (returning its
// error and true) or the run is torn down externally through quit
// (false).
func awaitStop(stopReq <-chan error, quit <-chan struct{}) (error, bool) {
	select {
	case err := <-stopReq:
		return err, true
	case <-quit:
		return nil, false
	}
}

func releaseContext(ctx *malgo.AllocatedContext) {
	_ = ctx.Uninit()
	ctx.Free()
}
