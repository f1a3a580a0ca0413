package export_test

import (
	"bytes"
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ryanjoneil/ddo/diagram"
	"github.com/ryanjoneil/ddo/export"
	"github.com/ryanjoneil/ddo/problem"
)

type binaryState struct{ depth, sum int }

func (s binaryState) Key() string { return string(rune('a'+s.depth)) + string(rune('0'+s.sum)) }

type binaryProblem struct{}

func (binaryProblem) NextVariable(frontier iter.Seq[problem.State]) (problem.Variable, bool) {
	for s := range frontier {
		d := s.(binaryState).depth
		if d < 2 {
			return problem.Variable(d), true
		}
		return 0, false
	}
	return 0, false
}

func (binaryProblem) ForEachInDomain(v problem.Variable, _ problem.State, yield func(problem.Decision)) {
	yield(problem.Decision{Variable: v, Value: 0})
	yield(problem.Decision{Variable: v, Value: 1})
}

func (binaryProblem) Transition(s problem.State, d problem.Decision) problem.State {
	bs := s.(binaryState)
	return binaryState{depth: bs.depth + 1, sum: bs.sum + d.Value}
}

func (binaryProblem) TransitionCost(_ problem.State, d problem.Decision) int64 { return int64(d.Value) }

type binaryRelax struct{}

func (binaryRelax) Merge(states iter.Seq[problem.State]) problem.State {
	for s := range states {
		return s
	}
	return binaryState{}
}
func (binaryRelax) Relax(_, _, _ problem.State, _ problem.Decision, cost int64) int64 { return cost }
func (binaryRelax) FastUpperBound(problem.State) int64                                { return math.MaxInt64 }

type binaryRanking struct{}

func (binaryRanking) Compare(a, b problem.State) int {
	return a.(binaryState).sum - b.(binaryState).sum
}

func TestFromDiagramAndWriteDOT(t *testing.T) {
	input := &problem.CompilationInput{
		CompType:   problem.Exact,
		Problem:    binaryProblem{},
		Relaxation: binaryRelax{},
		Ranking:    binaryRanking{},
		Cutoff:     problem.NoCutoff{},
		MaxWidth:   1,
		BestLB:     math.MinInt64,
		Residual:   problem.SubProblem{State: binaryState{}, UB: math.MaxInt64},
	}

	d := diagram.New()
	_, err := d.Compile(input)
	require.NoError(t, err)

	g := export.FromDiagram(d)
	require.NotEmpty(t, g.Vertices)
	require.True(t, g.HasVertex("0"))

	var buf bytes.Buffer
	require.NoError(t, export.WriteDOT(&buf, g))
	require.Contains(t, buf.String(), "digraph diagram")
	require.Contains(t, buf.String(), "->")
}
