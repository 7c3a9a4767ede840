package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. The mode count key is
// "Modes" rather than "N": YAML 1.1 reads a bare N as a boolean, so an
// unquoted "N:" key would never reach the struct field.
type SimParameters struct {
	Title        string  `yaml:"Title"`
	CFL          float64 `yaml:"CFL"`
	FinalTime    float64 `yaml:"FinalTime"`
	XMax         float64 `yaml:"XMax"`
	Modes        int     `yaml:"Modes"`
	ViscStrength float64 `yaml:"ViscStrength"` // 0 selects the 1/N default
	ViscCutoff   int     `yaml:"ViscCutoff"`   // 0 selects the round(sqrt(N)) default
}

func (sp *SimParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", sp.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", sp.FinalTime)
	fmt.Printf("%8.5f\t\t= XMax\n", sp.XMax)
	fmt.Printf("[%d]\t\t\t\t= Fourier Modes\n", sp.Modes)
	fmt.Printf("%8.5f\t\t= Spectral Viscosity Strength\n", sp.ViscStrength)
	fmt.Printf("[%d]\t\t\t\t= Spectral Viscosity Cutoff Mode\n", sp.ViscCutoff)
}
