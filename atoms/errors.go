// SPDX-License-Identifier: MIT

package atoms

import "github.com/cockroachdb/errors"

var (
	// ErrBoxUnset is returned by any geometric query issued before SetBox.
	ErrBoxUnset = errors.New("atoms: box is not set")

	// ErrIndexOutOfRange indicates an atom handle outside the arena.
	ErrIndexOutOfRange = errors.New("atoms: index out of range")

	// ErrCapacityExceeded indicates that a neighbor table reached its cap.
	ErrCapacityExceeded = errors.New("atoms: neighbor capacity exceeded")

	// ErrDuplicateNeighbor indicates a repeated insertion of one neighbor.
	ErrDuplicateNeighbor = errors.New("atoms: duplicate neighbor")
)
