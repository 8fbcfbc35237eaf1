// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"math"
	"testing"
)

// rampSource generates a linear ramp; cubic interpolation reproduces
// linear signals exactly, which makes assertions deterministic.
func rampSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return float32(frame) / 1000.0
	})
}

func readAll(t *testing.T, src Source, chunk int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, chunk)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n == 0 {
			return out
		}
	}
}

func TestResampler_IdentityRate(t *testing.T) {
	t.Parallel()

	// Same source and target rate: samples pass through exactly
	src := rampSource(8000, 1, 100)
	rs := NewResampler(src, 8000)

	if rs.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", rs.SampleRate())
	}

	got := readAll(t, rs, 32)
	if len(got) != 100 {
		t.Fatalf("collected %d samples, want 100", len(got))
	}

	for i := range got {
		want := float32(i) / 1000.0
		if math.Abs(float64(got[i]-want)) > 1e-6 {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestResampler_Upsample(t *testing.T) {
	t.Parallel()

	// Doubling the rate of a linear ramp interpolates linearly
	src := rampSource(8000, 1, 200)
	rs := NewResampler(src, 16000)

	got := readAll(t, rs, 64)

	if len(got) < 2*200-8 || len(got) > 2*200+8 {
		t.Fatalf("collected %d samples, want ≈400", len(got))
	}

	// Output sample k sits at source position k/2
	for i := range got {
		want := float32(i) / 2.0 / 1000.0
		if math.Abs(float64(got[i]-want)) > 0.001 {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestResampler_Downsample(t *testing.T) {
	t.Parallel()

	src := newSineSource(44100, 1, 4410, 440)
	rs := NewResampler(src, 8000)

	got := readAll(t, rs, 512)

	// 4410 frames at 44100Hz is 100ms, so about 800 output frames
	if len(got) < 700 || len(got) > 900 {
		t.Fatalf("collected %d samples, want ≈800", len(got))
	}

	for i, v := range got {
		if v < -1.0 || v > 1.0 {
			t.Fatalf("got[%d] = %v outside [-1, 1]", i, v)
		}
	}
}

func TestResampler_Stereo(t *testing.T) {
	t.Parallel()

	// Channels stay interleaved and independent
	src := newMockSource(8000, 2, 100, func(frame int, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return -0.25
	})
	rs := NewResampler(src, 8000)

	if rs.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", rs.Channels())
	}

	got := readAll(t, rs, 64)
	if len(got) != 200 {
		t.Fatalf("collected %d samples, want 200", len(got))
	}

	for i := 0; i < len(got); i += 2 {
		if math.Abs(float64(got[i]-0.25)) > 0.01 {
			t.Fatalf("left[%d] = %v, want 0.25", i/2, got[i])
		}
		if math.Abs(float64(got[i+1]+0.25)) > 0.01 {
			t.Fatalf("right[%d] = %v, want -0.25", i/2, got[i+1])
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 100)
	rs := NewResampler(src, 8000)

	buf := make([]float32, 7) // not a multiple of 2
	_, err := rs.ReadSamples(buf)
	if !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 0)
	rs := NewResampler(src, 16000)

	buf := make([]float32, 16)
	n, err := rs.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}
