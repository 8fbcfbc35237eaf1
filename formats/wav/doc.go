// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav, which walks the RIFF
// chunk layout properly, so files with extra chunks (LIST, fact, cue)
// decode fine. Only 16-bit PCM data is supported.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
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
//
// # Writing
//
// WriteWAV16 writes mono 16-bit PCM with the canonical 44-byte header:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WriteWAV16(file, 8000, samples)
//
// A capture buffer written this way decodes back to the same
// normalized samples.
package wav
