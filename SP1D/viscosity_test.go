package SP1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpectralViscosityCoefficients(t *testing.T) {
	// Defaults: epsilon = 1/N, cutoff = round(sqrt(N))
	{
		d, err := NewFourierDerivative(0, 2*math.Pi, 16)
		assert.NoError(t, err)
		sv, err := NewDefaultSpectralViscosity(d)
		assert.NoError(t, err)
		assert.Equal(t, 1./16., sv.Strength())
		assert.Equal(t, 4, sv.Cutoff())
	}
	// Zero below the cutoff, pinned zero at the singular first damped
	// wavenumber, non-positive at and above the cutoff
	{
		var (
			n      = 16
			eps    = 0.05
			cutoff = 5
		)
		d, err := NewFourierDerivative(0, 2*math.Pi, n)
		assert.NoError(t, err)
		sv, err := NewSpectralViscosity(eps, cutoff, d)
		assert.NoError(t, err)
		coeffs := sv.Coefficients()
		assert.Equal(t, n/2+1, len(coeffs))
		for i := 0; i < cutoff; i++ {
			assert.Equal(t, 0., coeffs[i])
		}
		for i := cutoff; i < len(coeffs); i++ {
			assert.True(t, coeffs[i] < 0)
		}
		// spot-check against the damping formula
		jac2 := 1. / float64(n)
		for _, i := range []int{cutoff, n / 2} {
			k := float64(i)
			r := (float64(n) - k) / (k - float64(cutoff) + 1)
			want := -eps * k * k * jac2 * math.Exp(-r*r)
			assert.True(t, near(coeffs[i], want))
		}
	}
	// Damping grows toward the highest resolved wavenumber
	{
		d, err := NewFourierDerivative(0, 2*math.Pi, 32)
		assert.NoError(t, err)
		sv, err := NewDefaultSpectralViscosity(d)
		assert.NoError(t, err)
		coeffs := sv.Coefficients()
		for i := sv.Cutoff() + 1; i < len(coeffs); i++ {
			assert.True(t, coeffs[i] < coeffs[i-1])
		}
	}
	// Construction failures
	{
		d, err := NewFourierDerivative(0, 2*math.Pi, 16)
		assert.NoError(t, err)
		_, err = NewSpectralViscosity(0, 4, d)
		assert.Error(t, err)
		_, err = NewSpectralViscosity(-1, 4, d)
		assert.Error(t, err)
		_, err = NewSpectralViscosity(0.1, 0, d)
		assert.Error(t, err)
		_, err = NewSpectralViscosity(0.1, 4, nil)
		assert.Error(t, err)
	}
}

func TestSpectralViscosityApply(t *testing.T) {
	// A constant (the mean) is never damped
	{
		d, err := NewFourierDerivative(0, 2*math.Pi, 16)
		assert.NoError(t, err)
		sv, err := NewDefaultSpectralViscosity(d)
		assert.NoError(t, err)
		u := make([]float64, 16)
		svu := make([]float64, 16)
		for i := range u {
			u[i] = -2.25
		}
		sv.ApplyTo(svu, u)
		for i := range svu {
			assert.InDelta(t, 0, svu[i], 1.e-12)
		}
	}
	// A single damped mode scales by N * coeff[k] (unnormalized round trip)
	{
		n := 16
		d, err := NewFourierDerivative(0, 2*math.Pi, n)
		assert.NoError(t, err)
		sv, err := NewDefaultSpectralViscosity(d)
		assert.NoError(t, err)
		x := d.GridPair().Compute
		k := 7
		u := make([]float64, n)
		svu := make([]float64, n)
		for i := range u {
			u[i] = math.Sin(float64(k) * x.AtVec(i))
		}
		sv.ApplyTo(svu, u)
		lambda := float64(n) * sv.Coefficients()[k]
		assert.True(t, lambda < 0)
		for i := range svu {
			assert.True(t, nearTol(svu[i], lambda*u[i], 1.e-10))
		}
	}
	// A resolved mode below the cutoff passes through untouched
	{
		n := 16
		d, err := NewFourierDerivative(0, 2*math.Pi, n)
		assert.NoError(t, err)
		sv, err := NewDefaultSpectralViscosity(d)
		assert.NoError(t, err)
		x := d.GridPair().Compute
		u := make([]float64, n)
		svu := make([]float64, n)
		for i := range u {
			u[i] = math.Sin(2 * x.AtVec(i))
		}
		sv.ApplyTo(svu, u)
		for i := range svu {
			assert.InDelta(t, 0, svu[i], 1.e-12)
		}
	}
	// The operator is dissipative: <u, SVu> <= 0 for any sample vector
	{
		n := 32
		d, err := NewFourierDerivative(0, 2*math.Pi, n)
		assert.NoError(t, err)
		sv, err := NewDefaultSpectralViscosity(d)
		assert.NoError(t, err)
		x := d.GridPair().Compute
		u := make([]float64, n)
		svu := make([]float64, n)
		for i := range u {
			xi := x.AtVec(i)
			u[i] = math.Sin(xi) + 0.3*math.Sin(13*xi) + 0.1*math.Cos(15*xi)
		}
		sv.ApplyTo(svu, u)
		var dot float64
		for i := range u {
			dot += u[i] * svu[i]
		}
		assert.True(t, dot < 0)
	}
	// Metadata, shared grid, contract violations
	{
		d, err := NewFourierDerivative(0, 2*math.Pi, 16)
		assert.NoError(t, err)
		sv, err := NewDefaultSpectralViscosity(d)
		assert.NoError(t, err)
		assert.Equal(t, 2, sv.Order())
		assert.True(t, sv.IsSymmetric())
		assert.False(t, d.IsSymmetric())
		assert.Equal(t, d.Grid(), sv.Grid())
		assert.Panics(t, func() {
			sv.ApplyTo(make([]float64, 15), make([]float64, 16))
		})
	}
}
