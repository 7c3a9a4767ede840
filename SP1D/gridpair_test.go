package SP1D

import (
	"math"
	"testing"

	"github.com/notargets/spectral/utils"
	"github.com/stretchr/testify/assert"
)

func TestGridPair(t *testing.T) {
	// Standard construction
	{
		gp, err := NewGridPair(0, 2*math.Pi, 8)
		assert.NoError(t, err)
		assert.Equal(t, 8, gp.Compute.Len())
		assert.Equal(t, 9, gp.Evaluate.Len())
		assert.Equal(t, gp.Compute.AtVec(0), gp.Evaluate.AtVec(0))
		assert.True(t, gp.Compute.AtVec(7) < gp.Evaluate.AtVec(8))
		assert.True(t, near(gp.Compute.AtVec(1), math.Pi/4))
		assert.True(t, near(gp.Compute.AtVec(7), 7*math.Pi/4))
		assert.True(t, near(gp.Evaluate.AtVec(8), 2*math.Pi))
	}
	// Smallest grid
	{
		gp, err := NewGridPair(-1, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, gp.Compute.Len())
		assert.Equal(t, 2, gp.Evaluate.Len())
		assert.Equal(t, -1., gp.Compute.AtVec(0))
		assert.Equal(t, 1., gp.Evaluate.AtVec(1))
	}
	// Offset domain shares origin and spacing
	{
		gp, err := NewGridPair(1, 3, 4)
		assert.NoError(t, err)
		assert.Equal(t, 1., gp.Compute.AtVec(0))
		hC := gp.Compute.AtVec(1) - gp.Compute.AtVec(0)
		hE := gp.Evaluate.AtVec(1) - gp.Evaluate.AtVec(0)
		assert.True(t, near(hC, hE))
		assert.True(t, near(hC, 0.5))
	}
	// Construction failures
	{
		_, err := NewGridPair(0, 1, 0)
		assert.Error(t, err)
		_, err = NewGridPair(1, 1, 4)
		assert.Error(t, err)
		_, err = NewGridPair(2, 1, 4)
		assert.Error(t, err)
	}
}

func TestGridPairFromGrids(t *testing.T) {
	// Length mismatch
	{
		_, err := NewGridPairFromGrids(utils.NewVectorLinspace(0, 1, 4), utils.NewVectorLinspace(0, 1, 4))
		assert.Error(t, err)
	}
	// Origin mismatch
	{
		_, err := NewGridPairFromGrids(utils.NewVectorLinspace(0.5, 1, 4), utils.NewVectorLinspace(0, 1, 5))
		assert.Error(t, err)
	}
	// Spacing mismatch
	{
		_, err := NewGridPairFromGrids(utils.NewVectorLinspace(0, 2, 4), utils.NewVectorLinspace(0, 1, 5))
		assert.Error(t, err)
	}
	// Compute grid must end strictly below the evaluate grid
	{
		evaluate := utils.NewVector(5, []float64{0, 0.25, 0.5, 0.75, 0.75})
		compute := utils.NewVectorLinspace(0, 0.75, 4)
		_, err := NewGridPairFromGrids(compute, evaluate)
		assert.Error(t, err)
	}
	// Consistent pair passes
	{
		evaluate := utils.NewVectorLinspace(0, 1, 5)
		compute := utils.NewVector(4)
		copy(compute.DataP(), evaluate.DataP()[:4])
		gp, err := NewGridPairFromGrids(compute, evaluate)
		assert.NoError(t, err)
		assert.Equal(t, 4, gp.Compute.Len())
	}
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*(1+math.Abs(b)) {
		l = true
	}
	return
}

func nearTol(a, b, tol float64) (l bool) {
	if math.Abs(a-b) < tol*(1+math.Abs(b)) {
		l = true
	}
	return
}
