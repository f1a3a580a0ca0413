package diagram_test

import (
	"fmt"
	"math"

	"github.com/ryanjoneil/ddo/diagram"
	"github.com/ryanjoneil/ddo/problem"
)

// ExampleDiagram_Compile compiles a 3-variable, domain-{0,1,2} sum problem
// exactly and prints its optimum and the decisions that reach it.
func ExampleDiagram_Compile() {
	input := &problem.CompilationInput{
		CompType:   problem.Exact,
		Problem:    dummyProblem{},
		Relaxation: dummyRelax{},
		Ranking:    dummyRanking{},
		Cutoff:     problem.NoCutoff{},
		MaxWidth:   1, // ignored in Exact mode
		BestLB:     math.MinInt64,
		Residual: problem.SubProblem{
			State: dummyState{value: 0, depth: 0},
			UB:    math.MaxInt64,
		},
	}

	d := diagram.New()
	completion, err := d.Compile(input)
	if err != nil {
		panic(err)
	}

	sol, _ := d.BestSolution()
	fmt.Println(*completion.BestValue, completion.IsExact, sol)
	// Output:
	// 6 true [x2=2 x1=2 x0=2]
}
