package Burgers1D

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/notargets/spectral/SP1D"
	"github.com/notargets/spectral/utils"
)

// Burgers solves the periodic inviscid Burgers equation
// u_t + (u^2/2)_x = 0 with a Fourier pseudo-spectral discretization,
// stabilized by spectral viscosity once the solution steepens.
type Burgers struct {
	// Input parameters
	CFL, FinalTime, XMax float64
	N                    int
	D                    *SP1D.FourierDerivative
	SV                   *SP1D.SpectralViscosity
	U                    utils.Vector
	PlotOnce             sync.Once
	chart                *chart2d.Chart2D
	colorMap             *utils2.ColorMap
}

func NewBurgers(CFL, FinalTime, XMax float64, N int) *Burgers {
	return NewBurgersSV(CFL, FinalTime, XMax, N, 0, 0)
}

// NewBurgersSV overrides the spectral viscosity parameters; strength <= 0
// or cutoff < 1 select the 1/N and round(sqrt(N)) defaults.
func NewBurgersSV(CFL, FinalTime, XMax float64, N int, strength float64, cutoff int) *Burgers {
	if XMax == 0 {
		XMax = 2 * math.Pi
	}
	D, err := SP1D.NewFourierDerivative(0, XMax, N)
	if err != nil {
		panic(err)
	}
	if strength <= 0 {
		strength = 1. / float64(N)
	}
	if cutoff < 1 {
		cutoff = int(math.Round(math.Sqrt(float64(N))))
	}
	SV, err := SP1D.NewSpectralViscosity(strength, cutoff, D)
	if err != nil {
		panic(err)
	}
	U := D.GridPair().Compute.Copy().Apply(math.Sin)
	fmt.Printf("CFL = %8.4f, Modes N = %d, SV cutoff = %d, SV strength = %8.5f\n\n",
		CFL, N, SV.Cutoff(), SV.Strength())
	return &Burgers{
		CFL:       CFL,
		FinalTime: FinalTime,
		XMax:      XMax,
		N:         N,
		D:         D,
		SV:        SV,
		U:         U,
	}
}

func (c *Burgers) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		logFrequency = 50
		dx           = c.XMax / float64(c.N)
		Time         float64
	)
	U := c.U
	fmt.Printf("Umin, Umax = %8.5f, %8.5f\n", U.Min(), U.Max())
	resid := utils.NewVector(c.N)
	var tstep int
	for Time < c.FinalTime {
		c.Plot(showGraph, graphDelay, U)
		umax := math.Max(math.Abs(U.Min()), math.Abs(U.Max()))
		if umax == 0 {
			umax = 1
		}
		dt := c.CFL * dx / umax
		if Time+dt > c.FinalTime {
			dt = c.FinalTime - Time
		}
		for INTRK := 0; INTRK < 5; INTRK++ {
			RHSU := c.RHS(U)
			// resid = rk4a(INTRK) * resid + dt * rhsu;
			resid.Scale(utils.RK4a[INTRK]).Add(RHSU.Scale(dt))
			// u += rk4b(INTRK) * resid;
			U.Add(resid.Copy().Scale(utils.RK4b[INTRK]))
		}
		Time += dt
		tstep++
		if tstep%logFrequency == 0 {
			fmt.Printf("Time = %8.4f, max_resid[%d] = %8.4f, umin = %8.4f, umax = %8.4f\n",
				Time, tstep, resid.Max(), U.Min(), U.Max())
		}
	}
	c.U = U
}

// RHS forms -u*du/dx + SV(u). The derivative and viscosity operators share
// one scratch buffer, so the two applications must stay sequential.
func (c *Burgers) RHS(U utils.Vector) (RHSU utils.Vector) {
	var (
		u  = U.DataP()
		du = make([]float64, c.N)
		sv = make([]float64, c.N)
	)
	c.D.ApplyTo(du, u)
	c.SV.ApplyTo(sv, u)
	RHSU = utils.NewVector(c.N)
	rhs := RHSU.DataP()
	for i := range rhs {
		rhs[i] = -u[i]*du[i] + sv[i]
	}
	return
}

func (c *Burgers) Plot(showGraph bool, graphDelay []time.Duration, U utils.Vector) {
	var (
		x          = c.D.GridPair().Compute
		pMin, pMax = float32(-1.2), float32(1.2)
	)
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024, float32(x.Min()), float32(x.Max()), pMin, pMax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})

	if err := c.chart.AddSeries("U", x.DataP(), U.DataP(),
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
