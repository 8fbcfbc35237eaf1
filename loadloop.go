// SPDX-License-Identifier: EPL-2.0

package dspio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/dspio/dsp"
	"github.com/ik5/dspio/formats/aiff"
	"github.com/ik5/dspio/formats/mp3"
	"github.com/ik5/dspio/formats/vorbis"
	"github.com/ik5/dspio/formats/wav"
	"github.com/ik5/dspio/pcm"
)

// LoopConfig describes the stream a loaded loop will play on. The
// loop material is converted to match.
type LoopConfig struct {
	// SampleRate in Hz, default 44100.
	SampleRate int
	// Channels of the target stream, 1 or 2. Default 1.
	Channels int
	// StartOffset is the initial playback position in frames.
	StartOffset int
}

func (cfg LoopConfig) withDefaults() LoopConfig {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 44100
	}
	if cfg.Channels == 0 {
		cfg.Channels = 1
	}
	return cfg
}

// DefaultRegistry returns a registry with all built-in decoders
// registered: wav, mp3, ogg and aiff.
func DefaultRegistry() *pcm.Registry {
	reg := pcm.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// LoadLoop decodes r as the named format and prepares it as loop
// playback material: downmixed or duplicated to cfg.Channels,
// resampled to cfg.SampleRate, collected as 16-bit PCM and wrapped in
// a LoopSource starting at cfg.StartOffset.
func LoadLoop(r io.Reader, format string, reg *pcm.Registry, cfg LoopConfig) (*dsp.LoopSource, error) {
	cfg = cfg.withDefaults()

	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s loop: %w", format, err)
	}
	defer src.Close()

	pipeline := pcm.Source(src)

	// Mix down before resampling so the resampler works on the
	// narrowest stream. A mono source headed for a stereo stream is
	// duplicated after collection instead.
	duplicate := false
	switch {
	case cfg.Channels == 1 && pipeline.Channels() > 1:
		pipeline = pcm.NewMonoMixer(pipeline)
	case cfg.Channels == 2 && pipeline.Channels() == 1:
		duplicate = true
	case cfg.Channels == 2 && pipeline.Channels() > 2:
		pipeline = pcm.NewMonoMixer(pipeline)
		duplicate = true
	}

	if pipeline.SampleRate() != cfg.SampleRate {
		pipeline = pcm.NewResampler(pipeline, cfg.SampleRate)
	}

	samples, err := pcm.CollectInt16(pipeline, pipeline.BufSize())
	if err != nil {
		return nil, fmt.Errorf("collecting loop samples: %w", err)
	}

	if duplicate {
		samples, err = dsp.PackStereo(samples, samples)
		if err != nil {
			return nil, fmt.Errorf("widening loop to stereo: %w", err)
		}
	}

	return dsp.NewLoopSource(samples, cfg.Channels, cfg.StartOffset)
}

// LoadLoopFile loads loop material from a file, picking the decoder
// from the file extension via DefaultRegistry.
func LoadLoopFile(path string, cfg LoopConfig) (*dsp.LoopSource, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch format {
	case "aif", "aifc":
		format = "aiff"
	case "oga":
		format = "ogg"
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening loop file: %w", err)
	}
	defer f.Close()

	return LoadLoop(f, format, DefaultRegistry(), cfg)
}
