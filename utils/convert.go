// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float32ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32 in [-1, 1].
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Int16FromBytes decodes little-endian 16-bit PCM bytes into dst and
// returns the number of samples written. Extra bytes beyond full samples,
// and extra room in dst beyond the decoded data, are ignored.
// dst is reused as-is so the callback path stays allocation free.
func Int16FromBytes(dst []int16, src []byte) int {
	n := len(src) / 2
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(src[2*i : 2*i+2]))
	}
	return n
}

// BytesFromInt16 encodes samples as little-endian 16-bit PCM bytes into dst
// and returns the number of bytes written. Samples that do not fit in dst
// are dropped.
func BytesFromInt16(dst []byte, src []int16) int {
	n := len(src)
	if n > len(dst)/2 {
		n = len(dst) / 2
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(dst[2*i:2*i+2], uint16(src[i]))
	}
	return n * 2
}
