// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 1000, 0.25)
	got, err := Collect(src, 256)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(got) != 1000 {
		t.Fatalf("Collect() len = %d, want 1000", len(got))
	}
	for i, v := range got {
		if v != 0.25 {
			t.Fatalf("got[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestCollect_DefaultBufSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 100)
	got, err := Collect(src, 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(got) != 200 {
		t.Errorf("Collect() len = %d, want 200", len(got))
	}
}

func TestCollect_Empty(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 0)
	got, err := Collect(src, 64)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Collect() len = %d, want 0", len(got))
	}
}

func TestCollectInt16(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 10, 0.5)
	got, err := CollectInt16(src, 64)
	if err != nil {
		t.Fatalf("CollectInt16() error = %v", err)
	}

	if len(got) != 10 {
		t.Fatalf("CollectInt16() len = %d, want 10", len(got))
	}

	half := float32(0.5)
	want := int16(half * 32767.0)
	for i, v := range got {
		if v != want {
			t.Fatalf("got[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestCollect_Pipeline(t *testing.T) {
	t.Parallel()

	// Full offline chain: stereo sine -> mono -> resample -> collect
	src := newSineSource(44100, 2, 4410, 440)
	mono := NewMonoMixer(src)
	rs := NewResampler(mono, 8000)

	got, err := Collect(rs, 512)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(got) < 700 || len(got) > 900 {
		t.Fatalf("Collect() len = %d, want ≈800", len(got))
	}
	for i, v := range got {
		if math.Abs(float64(v)) > 1.0 {
			t.Fatalf("got[%d] = %v outside [-1, 1]", i, v)
		}
	}
}
