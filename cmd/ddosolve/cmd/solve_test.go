package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ryanjoneil/ddo/maxtwosat"
)

func TestBranchAndBoundFindsTheOptimum(t *testing.T) {
	inst, err := maxtwosat.NewInstance(2, []maxtwosat.RawClause{
		{Weight: 5, Lit1: 1, Lit2: 2},
		{Weight: 3, Lit1: -1, Lit2: 2},
		{Weight: 2, Lit1: 1},
	})
	require.NoError(t, err)

	p := maxtwosat.NewProblem(inst)
	r := maxtwosat.NewRelaxation(inst)

	best, explored, err := branchAndBound(p, r, maxtwosat.Ranking{}, 1)
	require.NoError(t, err)
	require.Equal(t, int64(10), best)
	require.GreaterOrEqual(t, explored, 1)
}

func TestBranchAndBoundNeverExceedsRelaxedWidthOne(t *testing.T) {
	inst, err := maxtwosat.NewInstance(3, []maxtwosat.RawClause{
		{Weight: 4, Lit1: 1, Lit2: 2},
		{Weight: 6, Lit1: -2, Lit2: 3},
		{Weight: 1, Lit1: -1, Lit2: -3},
	})
	require.NoError(t, err)

	p := maxtwosat.NewProblem(inst)
	r := maxtwosat.NewRelaxation(inst)

	best, _, err := branchAndBound(p, r, maxtwosat.Ranking{}, 1)
	require.NoError(t, err)
	require.Positive(t, best)
}
