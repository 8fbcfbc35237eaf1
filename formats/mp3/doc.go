// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 for the actual MP3
// decoding, wrapping it in the pcm.Source interface. go-mp3 always emits
// 16-bit stereo interleaved PCM, so decoded sources report two channels
// regardless of the source encoding; chain a pcm.MonoMixer to get mono.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are normalized float32 in [-1.0, 1.0].
package mp3
