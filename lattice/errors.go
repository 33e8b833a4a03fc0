// SPDX-License-Identifier: MIT

package lattice

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownKind indicates an unsupported crystal kind.
	ErrUnknownKind = errors.New("lattice: unknown kind")

	// ErrBadSize indicates a repetition count below one.
	ErrBadSize = errors.New("lattice: invalid size")

	// ErrNeedRandSource indicates noise without a configured RNG.
	ErrNeedRandSource = errors.New("lattice: rng is required")
)
