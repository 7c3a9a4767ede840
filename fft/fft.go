// Package fft isolates the real-FFT backend used by the spectral operators.
//
// Both directions of a RealTransformer are unnormalized: a forward transform
// followed by an inverse multiplies the input sequence by its length. The
// operator scaling factors in package SP1D assume exactly this convention.
package fft

import "fmt"

// RealTransformer is a planned transform pair for a fixed-length real signal.
// Implementations may share internal scratch storage between calls, so a
// single instance supports one in-flight transform at a time.
type RealTransformer interface {
	// Len is the number of real samples the plan was built for.
	Len() int
	// SpectrumLen is the half-spectrum size, Len()/2 + 1.
	SpectrumLen() int
	// Coefficients computes the forward real->complex transform of src
	// into dst. len(src) must equal Len(), len(dst) must equal SpectrumLen().
	Coefficients(dst []complex128, src []float64)
	// Sequence computes the inverse complex->real transform of src into
	// dst, without dividing by Len(). len(src) must equal SpectrumLen(),
	// len(dst) must equal Len().
	Sequence(dst []float64, src []complex128)
}

func checkLen(name string, got, want int) {
	if got != want {
		err := fmt.Errorf("dimension mismatch: %s length = %d, expected %d", name, got, want)
		panic(err)
	}
}
