// SPDX-License-Identifier: EPL-2.0

package dspio

import "errors"

var (
	// ErrUnknownFormat is returned when no decoder is registered for
	// the requested audio format.
	ErrUnknownFormat = errors.New("unknown audio format")
)
