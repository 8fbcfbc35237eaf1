// SPDX-License-Identifier: EPL-2.0

package dspio

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ik5/dspio/dsp"
)

// fakeStreamer drives a fixed number of frames through the processor
// synchronously, the way a device callback would, without hardware.
type fakeStreamer struct {
	frame      []int16
	maxPeriods int
	periods    int
	stopped    bool
}

func (f *fakeStreamer) Run(ctx context.Context, p dsp.FrameProcessor) error {
	for f.periods = 0; f.periods < f.maxPeriods; f.periods++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if _, cont := p.ProcessFrame(f.frame); !cont {
			return nil
		}
	}
	return nil
}

func (f *fakeStreamer) Stop() error {
	f.stopped = true
	return nil
}

func TestIOStream_CapturesProcessedOutput(t *testing.T) {
	t.Parallel()

	streamer := &fakeStreamer{
		frame:      []int16{100, -100, 200, -200},
		maxPeriods: 3,
	}
	stream := NewIOStream(streamer, IOStreamConfig{
		SampleRate:     8000,
		FrameLength:    4,
		Channels:       1,
		CaptureSeconds: 1,
	})

	err := stream.Stream(context.Background(), 0, dsp.FrameFunc(
		func(in []int16) ([]int16, bool) {
			out := make([]int16, len(in))
			for i, s := range in {
				out[i] = s / 2
			}
			return out, true
		}))
	if err != nil {
		t.Fatalf("Stream() error = %v, want nil", err)
	}

	got := stream.Capture().Samples()
	want := []int16{50, -50, 100, -100, 50, -50, 100, -100, 50, -50, 100, -100}
	if len(got) != len(want) {
		t.Fatalf("Capture().Samples() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Capture().Samples()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIOStream_TimerRecordsEachFrame(t *testing.T) {
	t.Parallel()

	streamer := &fakeStreamer{
		frame:      make([]int16, 8),
		maxPeriods: 5,
	}
	stream := NewIOStream(streamer, IOStreamConfig{
		SampleRate:     8000,
		FrameLength:    8,
		CaptureSeconds: 1,
	})

	err := stream.Stream(context.Background(), 0, dsp.FrameFunc(
		func(in []int16) ([]int16, bool) {
			return in, true
		}))
	if err != nil {
		t.Fatalf("Stream() error = %v, want nil", err)
	}

	stats, ok := stream.Stats()
	if !ok {
		t.Fatal("Stats() ok = false, want true")
	}
	if stats.Count != 5 {
		t.Errorf("Stats().Count = %d, want 5", stats.Count)
	}

	if _, ok := stream.Timer().FirstStart(); !ok {
		t.Error("Timer().FirstStart() ok = false, want true")
	}
}

func TestIOStream_StreamResetsBetweenRuns(t *testing.T) {
	t.Parallel()

	streamer := &fakeStreamer{
		frame:      []int16{1, 2},
		maxPeriods: 2,
	}
	stream := NewIOStream(streamer, IOStreamConfig{
		SampleRate:     8000,
		FrameLength:    2,
		CaptureSeconds: 1,
	})

	passthrough := dsp.FrameFunc(func(in []int16) ([]int16, bool) {
		return in, true
	})

	if err := stream.Stream(context.Background(), 0, passthrough); err != nil {
		t.Fatalf("first Stream() error = %v, want nil", err)
	}
	if err := stream.Stream(context.Background(), 0, passthrough); err != nil {
		t.Fatalf("second Stream() error = %v, want nil", err)
	}

	if got := stream.Capture().Len(); got != 4 {
		t.Errorf("Capture().Len() after second run = %d, want 4", got)
	}

	stats, ok := stream.Stats()
	if !ok || stats.Count != 2 {
		t.Errorf("Stats() after second run = %+v, %v, want Count 2", stats, ok)
	}
}

func TestIOStream_ProcessorStopsStream(t *testing.T) {
	t.Parallel()

	streamer := &fakeStreamer{
		frame:      []int16{1},
		maxPeriods: 100,
	}
	stream := NewIOStream(streamer, IOStreamConfig{
		SampleRate:     8000,
		FrameLength:    1,
		CaptureSeconds: 1,
	})

	frames := 0
	err := stream.Stream(context.Background(), 0, dsp.FrameFunc(
		func(in []int16) ([]int16, bool) {
			frames++
			return in, frames < 3
		}))
	if err != nil {
		t.Fatalf("Stream() error = %v, want nil", err)
	}

	if frames != 3 {
		t.Errorf("processor ran %d frames, want 3", frames)
	}
}

func TestIOStream_CaptureDisabled(t *testing.T) {
	t.Parallel()

	streamer := &fakeStreamer{
		frame:      []int16{1, 2},
		maxPeriods: 2,
	}
	stream := NewIOStream(streamer, IOStreamConfig{
		SampleRate:  8000,
		FrameLength: 2,
	})

	err := stream.Stream(context.Background(), 0, dsp.FrameFunc(
		func(in []int16) ([]int16, bool) {
			return in, true
		}))
	if err != nil {
		t.Fatalf("Stream() error = %v, want nil", err)
	}

	if stream.Capture() != nil {
		t.Error("Capture() != nil with CaptureSeconds = 0")
	}
	if stream.Timer() != nil {
		t.Error("Timer() != nil with CaptureSeconds = 0")
	}
	if _, ok := stream.Stats(); ok {
		t.Error("Stats() ok = true with CaptureSeconds = 0")
	}
	if !strings.Contains(stream.Report(), "timing disabled") {
		t.Errorf("Report() = %q, want timing-disabled notice", stream.Report())
	}
}

func TestIOStream_DurationLimit(t *testing.T) {
	t.Parallel()

	// A streamer that never stops on its own; the duration must cut
	// it off through the context.
	streamer := &blockingStreamer{started: make(chan struct{})}
	stream := NewIOStream(streamer, IOStreamConfig{
		SampleRate:     8000,
		FrameLength:    2,
		CaptureSeconds: 1,
	})

	done := make(chan error, 1)
	go func() {
		done <- stream.Stream(context.Background(), 20*time.Millisecond, dsp.FrameFunc(
			func(in []int16) ([]int16, bool) {
				return in, true
			}))
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Stream() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Stream() did not return within the duration limit")
	}
}

func TestIOStream_Report(t *testing.T) {
	t.Parallel()

	streamer := &fakeStreamer{
		frame:      make([]int16, 4),
		maxPeriods: 3,
	}
	stream := NewIOStream(streamer, IOStreamConfig{
		SampleRate:     8000,
		FrameLength:    4,
		CaptureSeconds: 1,
	})

	err := stream.Stream(context.Background(), 0, dsp.FrameFunc(
		func(in []int16) ([]int16, bool) {
			return in, true
		}))
	if err != nil {
		t.Fatalf("Stream() error = %v, want nil", err)
	}

	report := stream.Report()
	for _, want := range []string{
		"ideal callback period",
		"first callback delay",
		"callback process time",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("Report() missing %q:\n%s", want, report)
		}
	}
}

// blockingStreamer blocks until its context is cancelled.
type blockingStreamer struct {
	started chan struct{}
}

func (b *blockingStreamer) Run(ctx context.Context, p dsp.FrameProcessor) error {
	close(b.started)
	<-ctx.Done()
	return nil
}

func (b *blockingStreamer) Stop() error { return nil }
