package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ryanjoneil/ddo/diagram"
	"github.com/ryanjoneil/ddo/maxtwosat"
	"github.com/ryanjoneil/ddo/problem"
)

var (
	inputFile string
	maxWidth  int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a .wcnf MAX-2-SAT instance",
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to a .wcnf instance (required)")
	solveCmd.Flags().IntVarP(&maxWidth, "width", "w", 64, "max width for Restricted/Relaxed compiles")
	solveCmd.MarkFlagRequired("input")

	viper.BindPFlag("width", solveCmd.Flags().Lookup("width"))
}

func runSolve(cmd *cobra.Command, args []string) error {
	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("open %s: %w", inputFile, err)
	}
	defer f.Close()

	inst, err := maxtwosat.ReadWCNF(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputFile, err)
	}

	width := viper.GetInt("width")
	if width <= 0 {
		width = maxWidth
	}

	p := maxtwosat.NewProblem(inst)
	r := maxtwosat.NewRelaxation(inst)
	ranking := maxtwosat.Ranking{}

	result, explored, err := branchAndBound(p, r, ranking, width)
	if err != nil {
		return err
	}

	logger.Info("solve complete",
		"instance", inputFile,
		"width", width,
		"subproblems_explored", explored,
		"optimum", result,
	)
	fmt.Println(result)
	return nil
}

// branchAndBound drives a minimal single-threaded search: a LIFO stack of
// cutset subproblems, each Relaxed-compiled for a dual bound and fresh
// cutset and Restricted-compiled for a primal bound, pruned whenever a
// subproblem's dual bound can no longer beat the best known primal value.
func branchAndBound(p maxtwosat.Problem, r maxtwosat.Relaxation, ranking problem.Ranking, width int) (best int64, explored int, err error) {
	stack := []problem.SubProblem{p.Root()}
	best = 0

	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		explored++

		if sp.UB <= best {
			continue
		}

		restricted := diagram.New()
		_, err := restricted.Compile(&problem.CompilationInput{
			CompType:   problem.Restricted,
			Problem:    p,
			Relaxation: r,
			Ranking:    ranking,
			Cutoff:     problem.NoCutoff{},
			MaxWidth:   width,
			BestLB:     best,
			Residual:   sp,
		})
		if err != nil {
			return 0, explored, err
		}
		if v := restricted.BestValue(); v != nil && *v > best {
			best = *v
		}

		relaxed := diagram.New()
		_, err = relaxed.Compile(&problem.CompilationInput{
			CompType:   problem.Relaxed,
			Problem:    p,
			Relaxation: r,
			Ranking:    ranking,
			Cutoff:     problem.NoCutoff{},
			MaxWidth:   width,
			BestLB:     best,
			Residual:   sp,
		})
		if err != nil {
			return 0, explored, err
		}
		if relaxed.IsExact() {
			if v := relaxed.BestValue(); v != nil && *v > best {
				best = *v
			}
			continue
		}

		relaxed.DrainCutset(func(child problem.SubProblem) {
			if child.UB > best {
				stack = append(stack, child)
			}
		})
	}

	return best, explored, nil
}
