// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	ErrLengthMismatch   = errors.New("left and right channel lengths differ")
	ErrOddInterleaved   = errors.New("interleaved buffer has odd length")
	ErrMarkPending      = errors.New("start mark already pending")
	ErrNoMarkPending    = errors.New("stop mark without a start mark")
	ErrNoSamples        = errors.New("loop buffer has no samples")
	ErrInvalidChunkSize = errors.New("chunk size must be a positive multiple of channels")
)
