// SPDX-License-Identifier: MIT
// Package matrix: fill policies and bulk mutators for Dense.
// A Fill names a bulk-initialization strategy applied at construction
// (NewDenseFill) or at any later point through the corresponding mutator.

package matrix

import (
	"math/rand"
	"time"
)

// Fill enumerates the bulk-initialization policies.
type Fill uint8

const (
	// FillNone leaves the zero-initialized buffer untouched.
	FillNone Fill = iota
	// FillZeros sets every element to 0.
	FillZeros
	// FillOnes sets every element to 1.
	FillOnes
	// FillEye sets the identity pattern; square shapes only.
	FillEye
	// FillRand sets every element to a uniform value in [0, 1).
	// Only meaningful for floating-point scalars — converting to an integer
	// scalar truncates every draw to 0.
	FillRand
)

// apply dispatches a fill policy onto the receiver.
// Errors: ErrNonSquare (FillEye on a non-square shape), ErrUnknownFill.
func (m *Dense[T]) apply(fill Fill) error {
	switch fill {
	case FillNone:
		// buffer is already zeroed by allocation
	case FillZeros:
		m.Zeros()
	case FillOnes:
		m.Ones()
	case FillEye:
		return m.Eye()
	case FillRand:
		m.Rand(nil)
	default:
		return ErrUnknownFill
	}

	return nil
}

// Zeros sets all elements to zero. Complexity: O(rows*cols).
func (m *Dense[T]) Zeros() {
	m.FillValue(0)
}

// Ones sets all elements to one. Complexity: O(rows*cols).
func (m *Dense[T]) Ones() {
	m.FillValue(1)
}

// Eye overwrites the matrix with the identity pattern: zeros everywhere,
// ones on the main diagonal. The identity is only defined for square
// shapes; a non-square receiver is rejected before any element is touched.
// Errors: ErrNonSquare. Complexity: O(rows*cols).
func (m *Dense[T]) Eye() error {
	if m.rows != m.cols {
		return validatorErrorf("Eye", ErrNonSquare)
	}
	m.Zeros()
	for i := 0; i < m.rows && i < len(m.data); i++ {
		m.data[i*m.cols+i] = 1
	}

	return nil
}

// Rand sets all elements to uniform values in [0, 1) drawn from rng.
// A nil rng falls back to a time-seeded source; pass an explicit
// rand.New(rand.NewSource(seed)) for reproducible fills.
// Complexity: O(rows*cols).
func (m *Dense[T]) Rand(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := range m.data {
		m.data[i] = T(rng.Float64())
	}
}

// FillValue sets all elements to the specified value.
// Complexity: O(rows*cols).
func (m *Dense[T]) FillValue(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// FillFunc sets all elements from successive calls to the generator, in
// row-major order. The generator may be stateful (e.g. a counter).
// Complexity: O(rows*cols).
func (m *Dense[T]) FillFunc(fn func() T) {
	for i := range m.data {
		m.data[i] = fn()
	}
}
