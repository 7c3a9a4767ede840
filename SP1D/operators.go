// Package SP1D implements 1D Fourier collocation operators on a uniform
// periodic grid: an FFT-based first derivative, the equivalent dense
// differentiation matrix, and a spectral viscosity (artificial dissipation)
// operator used to stabilize under-resolved pseudo-spectral simulations.
package SP1D

import (
	"fmt"
	"math"

	"github.com/notargets/spectral/fft"
	"github.com/notargets/spectral/utils"
)

// Operator is the capability set shared by the derivative and viscosity
// operators, allowing callers to treat either as an opaque linear operator
// over samples on the compute grid.
type Operator interface {
	Order() int
	IsSymmetric() bool
	Grid() utils.Vector
	ApplyTo(dest, source []float64)
}

// FourierDerivative is the exact first derivative of an N-point periodic
// sample set, applied through a forward/inverse real FFT pair.
//
// The scratch buffer is overwritten on every ApplyTo call, so a single
// instance supports at most one in-flight application. Give each goroutine
// its own operator or serialize calls externally.
type FourierDerivative struct {
	jac     float64 // 2*pi/period/N, folds the unnormalized inverse rescale
	gp      GridPair
	scratch []complex128
	rt      fft.RealTransformer
}

// NewFourierDerivative plans a derivative operator for N points on
// [xmin, xmax) using the default gonum transform backend. Construction is
// the expensive step; the operator is meant to be applied many times.
func NewFourierDerivative(xmin, xmax float64, N int) (d *FourierDerivative, err error) {
	if N < 1 {
		err = fmt.Errorf("invalid mode count: N = %d, must be >= 1", N)
		return
	}
	return NewFourierDerivativeWith(xmin, xmax, N, fft.NewGonum(N))
}

// NewFourierDerivativeWith plans a derivative operator over an explicit
// transform backend. The backend must be unnormalized in both directions
// and sized for N real samples.
func NewFourierDerivativeWith(xmin, xmax float64, N int, rt fft.RealTransformer) (d *FourierDerivative, err error) {
	var (
		gp GridPair
	)
	if N < 1 {
		err = fmt.Errorf("invalid mode count: N = %d, must be >= 1", N)
		return
	}
	if gp, err = NewGridPair(xmin, xmax, N); err != nil {
		return
	}
	if rt.Len() != N {
		err = fmt.Errorf("dimension mismatch: transform sized for %d samples, grid has %d", rt.Len(), N)
		return
	}
	if rt.SpectrumLen() != N/2+1 {
		err = fmt.Errorf("dimension mismatch: transform spectrum length %d, expected %d", rt.SpectrumLen(), N/2+1)
		return
	}
	d = &FourierDerivative{
		jac:     2. * math.Pi / (xmax - xmin) / float64(N),
		gp:      gp,
		scratch: make([]complex128, N/2+1),
		rt:      rt,
	}
	return
}

func (d *FourierDerivative) Order() int         { return 1 }
func (d *FourierDerivative) IsSymmetric() bool  { return false }
func (d *FourierDerivative) Grid() utils.Vector { return d.gp.Evaluate }

// GridPair returns both grids of the operator.
func (d *FourierDerivative) GridPair() GridPair { return d.gp }

// Len is the compute-grid size N.
func (d *FourierDerivative) Len() int { return d.gp.Compute.Len() }

// ApplyTo writes the derivative of source into dest. Both must have the
// compute-grid length. Differentiation is multiplication by i*k in
// frequency space; the Nyquist mode is zeroed rather than differentiated,
// which keeps the reconstruction real and drops the one mode whose
// derivative is not well defined on the grid.
func (d *FourierDerivative) ApplyTo(dest, source []float64) {
	var (
		n    = d.gp.Compute.Len()
		half = len(d.scratch) - 1
	)
	if len(source) != n || len(dest) != n {
		err := fmt.Errorf("dimension mismatch: ApplyTo N = %d, len(source) = %d, len(dest) = %d", n, len(source), len(dest))
		panic(err)
	}
	d.rt.Coefficients(d.scratch, source)
	for k := 0; k < half; k++ {
		d.scratch[k] *= complex(0, float64(k)*d.jac)
	}
	d.scratch[half] = 0
	d.rt.Sequence(dest, d.scratch)
}

// FourierDerivativeMatrix builds the same first-derivative operator as an
// explicit NxN matrix on the compute-grid nodal basis via the closed-form
// cotangent identity (Kopriva, Implementing Spectral Methods for PDEs,
// Algorithm 18). Bounds default to 0, 2*pi. Each diagonal entry is the
// negated off-diagonal row sum, so rows sum to zero exactly and constants
// differentiate to zero.
func FourierDerivativeMatrix(N int, bounds ...float64) (D utils.Matrix) {
	var (
		xmin, xmax = 0., 2. * math.Pi
	)
	if len(bounds) == 2 {
		xmin, xmax = bounds[0], bounds[1]
	}
	jac2 := math.Pi / (xmax - xmin)
	D = utils.NewMatrix(N, N)
	for i := 0; i < N; i++ {
		var sum float64
		for j := 0; j < N; j++ {
			if i == j {
				continue
			}
			val := jac2 / math.Tan(float64(i-j)*math.Pi/float64(N))
			if (i+j)%2 != 0 {
				val = -val
			}
			D.Set(i, j, val)
			sum += val
		}
		D.Set(i, i, -sum)
	}
	return
}
