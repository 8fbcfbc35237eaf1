// SPDX-License-Identifier: EPL-2.0

package dspio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ik5/dspio/device"
	"github.com/ik5/dspio/dsp"
)

// FrameStreamer drives int16 frames through a processor until the
// processor stops, the context is done, or Stop is called.
// *device.Stream implements it over real hardware; tests substitute
// fakes.
type FrameStreamer interface {
	Run(ctx context.Context, p dsp.FrameProcessor) error
	Stop() error
}

// IOStreamConfig describes the stream geometry and how much processed
// output to retain for inspection.
type IOStreamConfig struct {
	// SampleRate in Hz, default 44100.
	SampleRate int
	// FrameLength is the frame size in frames, default 1024.
	FrameLength int
	// Channels is the interleaved channel count, default 1.
	Channels int
	// CaptureSeconds sizes the capture buffer in seconds of audio.
	// Zero disables both capture and callback timing.
	CaptureSeconds float64
}

func (cfg IOStreamConfig) withDefaults() IOStreamConfig {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 44100
	}
	if cfg.FrameLength == 0 {
		cfg.FrameLength = 1024
	}
	if cfg.Channels == 0 {
		cfg.Channels = 1
	}
	return cfg
}

// IOStream streams audio frames through a user FrameProcessor while
// capturing the processed output and timing every callback. The
// processor stays pure: all bookkeeping lives here, wrapped around it
// per frame.
type IOStream struct {
	streamer FrameStreamer
	cfg      IOStreamConfig
	capture  *dsp.CaptureBuffer
	timer    *dsp.CallbackTimer
}

// NewIOStream wraps a FrameStreamer with capture and timing
// instrumentation sized by cfg.
func NewIOStream(s FrameStreamer, cfg IOStreamConfig) *IOStream {
	cfg = cfg.withDefaults()

	stream := &IOStream{
		streamer: s,
		cfg:      cfg,
	}
	if cfg.CaptureSeconds > 0 {
		capacity := int(float64(cfg.SampleRate)*cfg.CaptureSeconds) * cfg.Channels
		stream.capture = dsp.NewCaptureBuffer(capacity)
		stream.timer = dsp.NewCallbackTimer()
	}
	return stream
}

// Open opens a real duplex device stream and wraps it in an IOStream.
// The stream geometry is taken from devCfg.
func Open(devCfg device.Config, captureSeconds float64) (*IOStream, error) {
	s, err := device.Open(devCfg)
	if err != nil {
		return nil, err
	}
	return NewIOStream(s, IOStreamConfig{
		SampleRate:     devCfg.SampleRate,
		FrameLength:    devCfg.FrameLength,
		Channels:       devCfg.Channels,
		CaptureSeconds: captureSeconds,
	}), nil
}

// Stream runs p for at most d (zero means until ctx is done or p
// requests stop). Capture and timing state is reset before streaming,
// so each call yields a fresh recording.
func (s *IOStream) Stream(ctx context.Context, d time.Duration, p dsp.FrameProcessor) error {
	if s.capture != nil {
		s.capture.Reset()
	}
	if s.timer != nil {
		s.timer.Reset()
	}

	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	return s.streamer.Run(ctx, s.instrument(p))
}

// Stop halts the underlying streamer. Safe to call when not
// streaming.
func (s *IOStream) Stop() error {
	return s.streamer.Stop()
}

// Close releases the underlying streamer when it holds resources,
// like the device stream's backend context. Capture and timing
// results stay readable after Close.
func (s *IOStream) Close() error {
	if c, ok := s.streamer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// instrument wraps p with per-frame timing marks and output capture.
// With capture disabled the processor runs bare.
func (s *IOStream) instrument(p dsp.FrameProcessor) dsp.FrameProcessor {
	if s.capture == nil {
		return p
	}

	return dsp.FrameFunc(func(in []int16) ([]int16, bool) {
		_ = s.timer.MarkStart()
		out, cont := p.ProcessFrame(in)
		_ = s.timer.MarkStop()
		s.capture.Append(out)
		return out, cont
	})
}

// Capture returns the retained processed output, nil when capture is
// disabled.
func (s *IOStream) Capture() *dsp.CaptureBuffer {
	return s.capture
}

// Timer returns the callback timer, nil when capture is disabled.
func (s *IOStream) Timer() *dsp.CallbackTimer {
	return s.timer
}

// Stats summarizes the recorded callback durations of the last run.
func (s *IOStream) Stats() (dsp.Stats, bool) {
	if s.timer == nil {
		return dsp.Stats{}, false
	}
	return s.timer.Stats()
}

// Report renders a plain-text timing summary of the last run: the
// ideal callback period from the stream geometry, the measured period
// between callbacks, and the time spent inside the processor.
func (s *IOStream) Report() string {
	if s.timer == nil {
		return "timing disabled (CaptureSeconds = 0)\n"
	}

	var b strings.Builder

	ideal := time.Duration(float64(s.cfg.FrameLength) / float64(s.cfg.SampleRate) * float64(time.Second))
	fmt.Fprintf(&b, "ideal callback period: %v (%d frames at %d Hz)\n",
		ideal, s.cfg.FrameLength, s.cfg.SampleRate)

	if first, ok := s.timer.FirstStart(); ok {
		fmt.Fprintf(&b, "first callback delay: %v\n", first)
	} else {
		b.WriteString("no callbacks recorded\n")
		return b.String()
	}

	if periods, ok := s.timer.PeriodStats(); ok {
		fmt.Fprintf(&b, "measured period: mean %v, max %v, stddev %v over %d intervals\n",
			periods.Mean, periods.Max, periods.StdDev, periods.Count)
	}

	if stats, ok := s.timer.Stats(); ok {
		fmt.Fprintf(&b, "callback process time: mean %v, max %v, stddev %v over %d calls\n",
			stats.Mean, stats.Max, stats.StdDev, stats.Count)
	}

	return b.String()
}
