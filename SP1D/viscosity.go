package SP1D

import (
	"fmt"
	"math"

	"github.com/notargets/spectral/utils"
)

// SpectralViscosity applies frequency-selective artificial dissipation:
// modes below the cutoff are untouched, modes above it are damped along a
// smooth exponential ramp that grows toward the highest resolved
// wavenumber. It wraps an existing FourierDerivative and reuses its grids,
// scratch buffer and transforms, so the two operators must not be applied
// concurrently.
type SpectralViscosity struct {
	strength float64
	cutoff   int
	coeffs   []float64
	d        *FourierDerivative
}

// NewSpectralViscosity precomputes the damping coefficients for the given
// strength (epsilon > 0) and cutoff mode index (m >= 1) on top of d.
func NewSpectralViscosity(strength float64, cutoff int, d *FourierDerivative) (sv *SpectralViscosity, err error) {
	if d == nil {
		err = fmt.Errorf("spectral viscosity requires a derivative operator")
		return
	}
	if strength <= 0 {
		err = fmt.Errorf("invalid viscosity strength: %v, must be > 0", strength)
		return
	}
	if cutoff < 1 {
		err = fmt.Errorf("invalid cutoff mode: %d, must be >= 1", cutoff)
		return
	}
	var (
		n    = d.gp.Compute.Len()
		fn   = float64(n)
		jac2 = fn * d.jac * d.jac // second-derivative scaling, one /N re-compensated
	)
	coeffs := make([]float64, len(d.scratch))
	// Bins below the cutoff stay zero. The first damped wavenumber,
	// k = cutoff-1, has a singular ramp denominator and is pinned to zero
	// here instead of relying on exp(-Inf) evaluating to zero.
	for i := cutoff; i < len(coeffs); i++ {
		k := float64(i)
		r := (fn - k) / (k - float64(cutoff) + 1)
		coeffs[i] = -strength * k * k * jac2 * math.Exp(-r*r)
	}
	sv = &SpectralViscosity{
		strength: strength,
		cutoff:   cutoff,
		coeffs:   coeffs,
		d:        d,
	}
	return
}

// NewDefaultSpectralViscosity uses the standard defaults epsilon = 1/N and
// cutoff = round(sqrt(N)).
func NewDefaultSpectralViscosity(d *FourierDerivative) (sv *SpectralViscosity, err error) {
	if d == nil {
		err = fmt.Errorf("spectral viscosity requires a derivative operator")
		return
	}
	n := d.gp.Compute.Len()
	return NewSpectralViscosity(1./float64(n), int(math.Round(math.Sqrt(float64(n)))), d)
}

func (sv *SpectralViscosity) Order() int         { return 2 }
func (sv *SpectralViscosity) IsSymmetric() bool  { return true }
func (sv *SpectralViscosity) Grid() utils.Vector { return sv.d.Grid() }

// Strength returns epsilon.
func (sv *SpectralViscosity) Strength() float64 { return sv.strength }

// Cutoff returns the mode index at which damping begins.
func (sv *SpectralViscosity) Cutoff() int { return sv.cutoff }

// Coefficients returns the per-frequency damping coefficients, zero below
// the cutoff and non-positive at and above it. The slice is the operator's
// own storage and must not be modified.
func (sv *SpectralViscosity) Coefficients() []float64 { return sv.coeffs }

// ApplyTo writes the dissipation term for source into dest. Same contract
// as FourierDerivative.ApplyTo; no Nyquist special case is needed because
// the coefficient formula already covers the topmost bin.
func (sv *SpectralViscosity) ApplyTo(dest, source []float64) {
	var (
		d = sv.d
		n = d.gp.Compute.Len()
	)
	if len(source) != n || len(dest) != n {
		err := fmt.Errorf("dimension mismatch: ApplyTo N = %d, len(source) = %d, len(dest) = %d", n, len(source), len(dest))
		panic(err)
	}
	d.rt.Coefficients(d.scratch, source)
	for k, c := range sv.coeffs {
		d.scratch[k] *= complex(c, 0)
	}
	d.rt.Sequence(dest, d.scratch)
}
