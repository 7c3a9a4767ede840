/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/notargets/spectral/InputParameters"
	"github.com/notargets/spectral/model_problems/Burgers1D"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// BurgersCmd represents the burgers command
var BurgersCmd = &cobra.Command{
	Use:   "burgers",
	Short: "Periodic inviscid Burgers model problem",
	Long: `
Solves u_t + (u^2/2)_x = 0 on [0, XMax) with a Fourier pseudo-spectral
discretization stabilized by spectral viscosity,

spectral burgers -n 64 --finalTime 0.5`,
	Run: func(cmd *cobra.Command, args []string) {
		mb := ParseBurgersFlags(cmd)
		if input, _ := cmd.Flags().GetString("input"); input != "" {
			data, err := os.ReadFile(input)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			var sp InputParameters.SimParameters
			if err = sp.Parse(data); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			sp.Print()
			mb.LoadParameters(&sp)
		}
		if doProfile, _ := cmd.Flags().GetBool("profile"); doProfile {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		RunBurgers(mb)
	},
}

func init() {
	rootCmd.AddCommand(BurgersCmd)
	BurgersCmd.Flags().IntP("n", "n", 64, "number of Fourier modes")
	BurgersCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	BurgersCmd.Flags().Float64("CFL", 0.25, "CFL - increase for speedup, decrease for stability")
	BurgersCmd.Flags().Float64("finalTime", 0.5, "FinalTime - the target end time for the sim")
	BurgersCmd.Flags().Float64("xMax", 0, "domain length, 0 selects 2*pi")
	BurgersCmd.Flags().Float64("viscStrength", 0, "spectral viscosity strength, 0 selects 1/N")
	BurgersCmd.Flags().Int("viscCutoff", 0, "spectral viscosity cutoff mode, 0 selects round(sqrt(N))")
	BurgersCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	BurgersCmd.Flags().String("input", "", "YAML input file with simulation parameters")
	BurgersCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

// ParseBurgersFlags collects the command line into a ModelBurgers; the
// yaml input file, when given, overrides these afterwards.
func ParseBurgersFlags(cmd *cobra.Command) (mb *ModelBurgers) {
	mb = &ModelBurgers{}
	mb.N, _ = cmd.Flags().GetInt("n")
	mb.CFL, _ = cmd.Flags().GetFloat64("CFL")
	mb.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
	mb.XMax, _ = cmd.Flags().GetFloat64("xMax")
	mb.ViscStrength, _ = cmd.Flags().GetFloat64("viscStrength")
	mb.ViscCutoff, _ = cmd.Flags().GetInt("viscCutoff")
	mb.Graph, _ = cmd.Flags().GetBool("graph")
	delay, _ := cmd.Flags().GetInt("delay")
	mb.Delay = time.Duration(delay) * time.Millisecond
	return
}

type ModelBurgers struct {
	N                    int
	Delay                time.Duration
	CFL, FinalTime, XMax float64
	ViscStrength         float64
	ViscCutoff           int
	Graph                bool
}

func (mb *ModelBurgers) LoadParameters(sp *InputParameters.SimParameters) {
	if sp.Modes != 0 {
		mb.N = sp.Modes
	}
	if sp.CFL != 0 {
		mb.CFL = sp.CFL
	}
	if sp.FinalTime != 0 {
		mb.FinalTime = sp.FinalTime
	}
	if sp.XMax != 0 {
		mb.XMax = sp.XMax
	}
	if sp.ViscStrength != 0 {
		mb.ViscStrength = sp.ViscStrength
	}
	if sp.ViscCutoff != 0 {
		mb.ViscCutoff = sp.ViscCutoff
	}
}

func RunBurgers(mb *ModelBurgers) {
	c := Burgers1D.NewBurgersSV(mb.CFL, mb.FinalTime, mb.XMax, mb.N, mb.ViscStrength, mb.ViscCutoff)
	c.Run(mb.Graph, mb.Delay)
}
