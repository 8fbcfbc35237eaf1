// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// Decoding is built on github.com/go-audio/aiff. Only 16-bit PCM
// sound data is supported.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns a pcm.Source producing normalized float32 samples
// in [-1.0, 1.0]. When the input is not an io.ReadSeeker the whole stream
// is buffered in memory first.
package aiff
