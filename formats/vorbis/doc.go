// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, which decodes
// straight to normalized float32 samples, so the wrapper is thin: it only
// adapts the reader to the pcm.Source interface.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Mono and stereo (and higher channel counts) are supported; samples are
// interleaved in [-1.0, 1.0].
package vorbis
