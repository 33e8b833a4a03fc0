// SPDX-License-Identifier: MIT

package cna

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropagate(t *testing.T) {
	labels := []int{int(Unknown), int(HexDiamond), int(CubicDiamond), int(CubicDiamond1NN)}

	// cubic wins over hexagonal regardless of order
	assert.Equal(t, CubicDiamond1NN, propagate(labels, []int{1, 2}, CubicDiamond1NN, HexDiamond1NN))
	assert.Equal(t, HexDiamond2NN, propagate(labels, []int{0, 1}, CubicDiamond2NN, HexDiamond2NN))
	// 1NN labels do not propagate further
	assert.Equal(t, Unknown, propagate(labels, []int{0, 3}, CubicDiamond2NN, HexDiamond2NN))
}

func TestMatch_RequiresExactCounts(t *testing.T) {
	sigs := make([]Signature, 12)
	for i := range sigs {
		sigs[i] = sigFCC
	}
	assert.Equal(t, FCC, match(sigs, templates12))

	sigs[0] = sigHCP
	assert.Equal(t, Unknown, match(sigs, templates12))

	for i := 0; i < 6; i++ {
		sigs[i] = sigHCP
	}
	assert.Equal(t, HCP, match(sigs, templates12))
	assert.Equal(t, Unknown, match(sigs[:11], templates12))
}
