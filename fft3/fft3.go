// SPDX-License-Identifier: MIT

// Package fft3 runs in-place complex discrete Fourier transforms on a
// row-major n1×n2×n3 grid, axis by axis on top of gonum's 1-D FFT.
//
// Forward is unnormalized; Inverse divides by n1·n2·n3 so that
// Inverse(Forward(x)) == x.
//
// Complexity: O(N log N) for N = n1·n2·n3, plus one scratch line per axis.
package fft3

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/dsp/fourier"
)

var (
	// ErrBadShape indicates a non-positive grid dimension.
	ErrBadShape = errors.New("fft3: grid dimensions must be positive")

	// ErrSizeMismatch indicates data whose length is not n1·n2·n3.
	ErrSizeMismatch = errors.New("fft3: data length does not match grid")
)

// Transformer is the contract consumed by gridded correlation functions.
type Transformer interface {
	Shape() [3]int
	Forward(data []complex128) error
	Inverse(data []complex128) error
}

// Plan caches one 1-D FFT per axis.
type Plan struct {
	n   [3]int
	fft [3]*fourier.CmplxFFT
	in  [3][]complex128
	out [3][]complex128
}

// NewPlan prepares transforms for an n1×n2×n3 grid.
func NewPlan(n1, n2, n3 int) (*Plan, error) {
	p := &Plan{n: [3]int{n1, n2, n3}}
	for a, n := range p.n {
		if n < 1 {
			return nil, errors.Wrapf(ErrBadShape, "axis %d has %d points", a, n)
		}
		p.fft[a] = fourier.NewCmplxFFT(n)
		p.in[a] = make([]complex128, n)
		p.out[a] = make([]complex128, n)
	}
	return p, nil
}

// Shape returns the grid dimensions.
func (p *Plan) Shape() [3]int { return p.n }

// Len is n1·n2·n3.
func (p *Plan) Len() int { return p.n[0] * p.n[1] * p.n[2] }

// Forward replaces data by its unnormalized 3-D transform.
func (p *Plan) Forward(data []complex128) error {
	return p.apply(data, false)
}

// Inverse replaces data by its normalized inverse transform.
func (p *Plan) Inverse(data []complex128) error {
	if err := p.apply(data, true); err != nil {
		return err
	}
	scale := complex(1/float64(p.Len()), 0)
	for i := range data {
		data[i] *= scale
	}
	return nil
}

// apply walks every line along each axis: gather, transform, scatter.
func (p *Plan) apply(data []complex128, inverse bool) error {
	if len(data) != p.Len() {
		return errors.Wrapf(ErrSizeMismatch, "got %d, want %d", len(data), p.Len())
	}
	stride := [3]int{p.n[1] * p.n[2], p.n[2], 1}
	for axis := 0; axis < 3; axis++ {
		u, v := (axis+1)%3, (axis+2)%3
		for a := 0; a < p.n[u]; a++ {
			for b := 0; b < p.n[v]; b++ {
				base := a*stride[u] + b*stride[v]
				line := p.in[axis]
				for k := range line {
					line[k] = data[base+k*stride[axis]]
				}
				var res []complex128
				if inverse {
					res = p.fft[axis].Sequence(p.out[axis], line)
				} else {
					res = p.fft[axis].Coefficients(p.out[axis], line)
				}
				for k := range res {
					data[base+k*stride[axis]] = res[k]
				}
			}
		}
	}
	return nil
}
