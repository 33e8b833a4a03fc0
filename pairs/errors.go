// SPDX-License-Identifier: MIT

package pairs

import "github.com/cockroachdb/errors"

var (
	// ErrBadRange indicates an empty or negative histogram range.
	ErrBadRange = errors.New("pairs: invalid histogram range")

	// ErrBadBins indicates a bin count below one.
	ErrBadBins = errors.New("pairs: bins must be positive")

	// ErrBadDensity indicates a non-positive density or center count.
	ErrBadDensity = errors.New("pairs: density and center count must be positive")
)
