// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"

	"github.com/ik5/dspio/utils"
)

// Collect drains src into a single slice of normalized samples, reading
// bufSize samples at a time. bufSize falls back to 4096 when non-positive.
func Collect(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}

	var out []float32
	buf := make([]float32, bufSize)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF || (n == 0 && err == nil) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("collecting samples: %w", err)
		}
	}
}

// CollectInt16 drains src and converts the result to 16-bit PCM.
func CollectInt16(src Source, bufSize int) ([]int16, error) {
	samples, err := Collect(src, bufSize)
	if err != nil {
		return nil, err
	}

	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = utils.Float32ToInt16(s)
	}
	return out, nil
}
