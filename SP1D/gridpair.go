package SP1D

import (
	"fmt"
	"math"

	"github.com/notargets/spectral/utils"
)

// GridPair holds the two related uniform grids of a periodic operator:
// the N-point compute grid (right boundary excluded, the transform basis)
// and the N+1 point evaluate grid (both boundaries included). Both share
// origin and spacing. Immutable once constructed.
type GridPair struct {
	Compute, Evaluate utils.Vector
}

// NewGridPair builds the grids for N modes on [xmin, xmax).
func NewGridPair(xmin, xmax float64, N int) (gp GridPair, err error) {
	if N < 1 {
		err = fmt.Errorf("invalid mode count: N = %d, must be >= 1", N)
		return
	}
	if xmin >= xmax {
		err = fmt.Errorf("invalid domain: xmin = %v, xmax = %v, must satisfy xmin < xmax", xmin, xmax)
		return
	}
	evaluate := utils.NewVectorLinspace(xmin, xmax, N+1)
	compute := utils.NewVector(N)
	copy(compute.DataP(), evaluate.DataP()[:N])
	return NewGridPairFromGrids(compute, evaluate)
}

// NewGridPairFromGrids validates raw grids and pairs them. The checks are
// defensive for the standard constructor path but load-bearing here.
func NewGridPairFromGrids(compute, evaluate utils.Vector) (gp GridPair, err error) {
	var (
		nC = compute.Len()
		nE = evaluate.Len()
	)
	if nC != nE-1 {
		err = fmt.Errorf("dimension mismatch: compute grid length %d, evaluate grid length %d, expected %d", nC, nE, nE-1)
		return
	}
	if compute.AtVec(0) != evaluate.AtVec(0) {
		err = fmt.Errorf("inconsistent grids: compute origin %v, evaluate origin %v", compute.AtVec(0), evaluate.AtVec(0))
		return
	}
	if nC > 1 {
		var (
			hC  = compute.AtVec(1) - compute.AtVec(0)
			hE  = evaluate.AtVec(1) - evaluate.AtVec(0)
			tol = utils.NODETOL * math.Max(1, math.Abs(hE))
		)
		if math.Abs(hC-hE) > tol {
			err = fmt.Errorf("inconsistent grids: compute spacing %v, evaluate spacing %v", hC, hE)
			return
		}
	}
	if !(compute.AtVec(nC-1) < evaluate.AtVec(nE-1)) {
		err = fmt.Errorf("inconsistent grids: compute grid must exclude the right boundary %v", evaluate.AtVec(nE-1))
		return
	}
	gp = GridPair{Compute: compute, Evaluate: evaluate}
	return
}
