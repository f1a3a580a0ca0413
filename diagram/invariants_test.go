package diagram_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/ryanjoneil/ddo/diagram"
	"github.com/ryanjoneil/ddo/problem"
)

// TestExactIgnoresMaxWidth checks invariant 1: an Exact compile's best value
// never depends on MaxWidth, since Exact never triggers width control.
func TestExactIgnoresMaxWidth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 64).Draw(t, "width")

		input := baseInput()
		input.CompType = problem.Exact
		input.MaxWidth = width

		d := diagram.New()
		_, err := d.Compile(input)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		bv := d.BestValue()
		if bv == nil || *bv != 6 {
			t.Fatalf("width=%d: expected best value 6, got %v", width, bv)
		}
	})
}

// TestPrimalExactDualOrdering checks invariant 5: for any width, a
// Restricted compile's best value never exceeds an Exact compile's, which
// never exceeds a Relaxed compile's (primal <= exact <= dual).
func TestPrimalExactDualOrdering(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 9).Draw(t, "width")

		exactV := compileBestValue(t, problem.Exact, width)
		restrictedV := compileBestValue(t, problem.Restricted, width)
		relaxedV := compileBestValue(t, problem.Relaxed, width)

		if restrictedV > exactV {
			t.Fatalf("width=%d: restricted %d > exact %d", width, restrictedV, exactV)
		}
		if exactV > relaxedV {
			t.Fatalf("width=%d: exact %d > relaxed %d", width, exactV, relaxedV)
		}
	})
}

func compileBestValue(t *rapid.T, ct problem.CompilationType, width int) int64 {
	input := baseInput()
	input.CompType = ct
	input.MaxWidth = width

	d := diagram.New()
	_, err := d.Compile(input)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	bv := d.BestValue()
	if bv == nil {
		t.Fatalf("%v width=%d: expected a value, got none", ct, width)
	}
	return *bv
}

// TestCutoffAlwaysAborts checks invariant 7: whatever the compilation type
// or width, a Cutoff that always fires aborts the compile with
// ErrCutoffOccurred before any Completion is produced.
func TestCutoffAlwaysAborts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 32).Draw(t, "width")
		ctIdx := rapid.IntRange(0, 2).Draw(t, "compType")

		input := baseInput()
		input.CompType = problem.CompilationType(ctIdx)
		input.MaxWidth = width
		input.Cutoff = cutoffAlways{}

		d := diagram.New()
		_, err := d.Compile(input)
		if err == nil {
			t.Fatalf("expected ErrCutoffOccurred, got nil")
		}
	})
}

// TestInfeasibleYieldsEmptyCutsetAndNoValue checks invariant 6: an
// infeasible residual never produces a best value, a best solution, or a
// non-empty cutset, regardless of width or best-known lower bound.
func TestInfeasibleYieldsEmptyCutsetAndNoValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 32).Draw(t, "width")
		bestLB := rapid.Int64Range(math.MinInt32, math.MaxInt32).Draw(t, "bestLB")
		ctIdx := rapid.IntRange(0, 2).Draw(t, "compType")

		input := baseInput()
		input.Problem = dummyInfeasibleProblem{}
		input.CompType = problem.CompilationType(ctIdx)
		input.MaxWidth = width
		input.BestLB = bestLB

		d := diagram.New()
		_, err := d.Compile(input)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		if d.BestValue() != nil {
			t.Fatalf("expected no best value, got %v", *d.BestValue())
		}
		var cutset int
		d.DrainCutset(func(problem.SubProblem) { cutset++ })
		if cutset != 0 {
			t.Fatalf("expected empty cutset, got %d entries", cutset)
		}
	})
}

// TestSaturatingAddNeverPanicsOrWrapsPastSentinels exercises the package's
// internal saturating arithmetic through repeated Exact compiles whose
// BestLB is drawn from half the int64 range on either side of zero, and
// checks that a root whose rough upper bound (50) cannot beat BestLB is
// pruned.
func TestSaturatingAddNeverPanicsOrWrapsPastSentinels(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bestLB := rapid.Int64Range(math.MinInt64/2, math.MaxInt64/2).Draw(t, "bestLB")

		input := baseInput()
		input.CompType = problem.Exact
		input.BestLB = bestLB

		d := diagram.New()
		_, err := d.Compile(input)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		// With a relaxation that always returns a FastUpperBound of 50, any
		// bestLB >= 50 must prune the root before it ever branches, so the
		// diagram never obtains a terminal frontier — it reports infeasible,
		// exactly as it would for a genuinely infeasible problem.
		if bestLB >= 50 {
			if d.BestValue() != nil {
				t.Fatalf("bestLB=%d: expected root-level RUB pruning to yield no best value, got %v", bestLB, *d.BestValue())
			}
		}
	})
}
