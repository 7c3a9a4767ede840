package fft

import (
	algofft "github.com/cwbudde/algo-fft"
)

// AlgoFFT wraps a cwbudde/algo-fft FastPlanReal64 plan. Only power-of-two
// lengths are supported. The library's inverse is normalized (a round trip
// reproduces the input), so Sequence rescales by N to present the same
// unnormalized convention as the gonum backend.
type AlgoFFT struct {
	n    int
	plan *algofft.FastPlanReal[float64, complex128]
}

func NewAlgoFFT(n int) (*AlgoFFT, error) {
	plan, err := algofft.NewFastPlanReal64(n)
	if err != nil {
		return nil, err
	}
	return &AlgoFFT{n: n, plan: plan}, nil
}

func (a *AlgoFFT) Len() int         { return a.n }
func (a *AlgoFFT) SpectrumLen() int { return a.n/2 + 1 }

func (a *AlgoFFT) Coefficients(dst []complex128, src []float64) {
	checkLen("src", len(src), a.Len())
	checkLen("dst", len(dst), a.SpectrumLen())
	a.plan.Forward(dst, src)
}

func (a *AlgoFFT) Sequence(dst []float64, src []complex128) {
	checkLen("src", len(src), a.SpectrumLen())
	checkLen("dst", len(dst), a.Len())
	a.plan.Inverse(dst, src)
	// scaling by N is exact for power-of-two lengths
	fn := float64(a.n)
	for i := range dst {
		dst[i] *= fn
	}
}
