// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrLengthMismatch,
		ErrOddInterleaved,
		ErrMarkPending,
		ErrNoMarkPending,
		ErrNoSamples,
		ErrInvalidChunkSize,
	}

	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("loading material: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
		}
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrLengthMismatch,
		ErrOddInterleaved,
		ErrMarkPending,
		ErrNoMarkPending,
		ErrNoSamples,
		ErrInvalidChunkSize,
	}

	seen := make(map[string]error, len(sentinels))
	for _, sentinel := range sentinels {
		msg := sentinel.Error()
		if other, ok := seen[msg]; ok {
			t.Errorf("%v shares its message with %v: %q", sentinel, other, msg)
		}
		seen[msg] = sentinel
	}
}
