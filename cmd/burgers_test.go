package cmd

import (
	"testing"

	"github.com/notargets/spectral/InputParameters"
	"github.com/stretchr/testify/assert"
)

func TestBurgersFlags(t *testing.T) {
	// Every registered flag lands in the model, the viscosity pair included
	{
		assert.NoError(t, BurgersCmd.Flags().Set("n", "32"))
		assert.NoError(t, BurgersCmd.Flags().Set("CFL", "0.1"))
		assert.NoError(t, BurgersCmd.Flags().Set("viscStrength", "0.05"))
		assert.NoError(t, BurgersCmd.Flags().Set("viscCutoff", "9"))
		mb := ParseBurgersFlags(BurgersCmd)
		assert.Equal(t, 32, mb.N)
		assert.Equal(t, 0.1, mb.CFL)
		assert.Equal(t, 0.05, mb.ViscStrength)
		assert.Equal(t, 9, mb.ViscCutoff)
	}
	// The yaml file overrides set fields and leaves unset ones alone
	{
		mb := &ModelBurgers{N: 32, CFL: 0.1, ViscStrength: 0.05, ViscCutoff: 9}
		var sp InputParameters.SimParameters
		assert.NoError(t, sp.Parse([]byte("Modes: 64\nViscCutoff: 4\n")))
		mb.LoadParameters(&sp)
		assert.Equal(t, 64, mb.N)
		assert.Equal(t, 4, mb.ViscCutoff)
		assert.Equal(t, 0.1, mb.CFL)
		assert.Equal(t, 0.05, mb.ViscStrength)
	}
}
