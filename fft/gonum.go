package fft

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// Gonum wraps a gonum dsp/fourier real FFT plan. It works for any length
// N >= 1 and is the default backend. gonum's convention is already
// unnormalized in both directions, so the plan is used as-is.
type Gonum struct {
	fft *fourier.FFT
}

func NewGonum(n int) *Gonum {
	return &Gonum{fft: fourier.NewFFT(n)}
}

func (g *Gonum) Len() int         { return g.fft.Len() }
func (g *Gonum) SpectrumLen() int { return g.fft.Len()/2 + 1 }

func (g *Gonum) Coefficients(dst []complex128, src []float64) {
	checkLen("src", len(src), g.Len())
	checkLen("dst", len(dst), g.SpectrumLen())
	g.fft.Coefficients(dst, src)
}

func (g *Gonum) Sequence(dst []float64, src []complex128) {
	checkLen("src", len(src), g.SpectrumLen())
	checkLen("dst", len(dst), g.Len())
	g.fft.Sequence(dst, src)
}
