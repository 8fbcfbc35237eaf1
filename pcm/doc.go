// SPDX-License-Identifier: EPL-2.0

// Package pcm provides the float32 sample pipeline used to prepare audio
// material for streaming.
//
// Samples are normalized float32 in [-1.0, 1.0], interleaved by channel.
// Decoders from the formats subpackages produce a Source; MonoMixer and
// Resampler transform one Source into another, so stages chain freely:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := pcm.NewMonoMixer(src)
//	out := pcm.NewResampler(mono, 48000)
//
//	samples, err := pcm.Collect(out, 4096)
//
// Sources return io.EOF when exhausted; any other error indicates a
// problem with the underlying data. The pipeline runs offline, ahead of
// the real-time path — typically once, to build a dsp.LoopSource — so the
// stages favor clarity over per-sample micro-optimization.
package pcm
