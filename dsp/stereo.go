// SPDX-License-Identifier: EPL-2.0

package dsp

// PackStereo interleaves two equal-length channel slices into a single
// left, right, left, right, ... sequence.
func PackStereo(left, right []int16) ([]int16, error) {
	if len(left) != len(right) {
		return nil, ErrLengthMismatch
	}

	out := make([]int16, len(left)*2)
	if err := PackStereoTo(out, left, right); err != nil {
		return nil, err
	}
	return out, nil
}

// PackStereoTo interleaves left and right into dst without allocating.
// dst must hold exactly len(left)+len(right) samples. Safe for the
// callback path.
func PackStereoTo(dst, left, right []int16) error {
	if len(left) != len(right) {
		return ErrLengthMismatch
	}
	if len(dst) != len(left)*2 {
		return ErrLengthMismatch
	}

	for i, v := range left {
		dst[2*i] = v
		dst[2*i+1] = right[i]
	}
	return nil
}

// SplitStereo separates an interleaved stereo sequence into its left and
// right channels. It is the exact inverse of PackStereo.
func SplitStereo(interleaved []int16) (left, right []int16, err error) {
	if len(interleaved)%2 != 0 {
		return nil, nil, ErrOddInterleaved
	}

	n := len(interleaved) / 2
	left = make([]int16, n)
	right = make([]int16, n)
	if err := SplitStereoTo(left, right, interleaved); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// SplitStereoTo separates interleaved into the preallocated left and right
// slices without allocating. left and right must each hold exactly
// len(interleaved)/2 samples. Safe for the callback path.
func SplitStereoTo(left, right, interleaved []int16) error {
	if len(interleaved)%2 != 0 {
		return ErrOddInterleaved
	}

	n := len(interleaved) / 2
	if len(left) != n || len(right) != n {
		return ErrLengthMismatch
	}

	for i := 0; i < n; i++ {
		left[i] = interleaved[2*i]
		right[i] = interleaved[2*i+1]
	}
	return nil
}
