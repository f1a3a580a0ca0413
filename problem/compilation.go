package problem

// CompilationType selects the width-control policy a compile runs under.
type CompilationType int

const (
	// Exact never limits width: the full decision diagram is unrolled.
	Exact CompilationType = iota
	// Restricted drops nodes beyond MaxWidth, yielding a primal bound.
	Restricted
	// Relaxed merges nodes beyond MaxWidth, yielding a dual bound.
	Relaxed
)

// String renders the compilation type for logs and test failure messages.
func (t CompilationType) String() string {
	switch t {
	case Exact:
		return "Exact"
	case Restricted:
		return "Restricted"
	case Relaxed:
		return "Relaxed"
	default:
		return "CompilationType(?)"
	}
}

// CompilationInput bundles everything a single Diagram.Compile call needs:
// the four capabilities, the compilation type and width limit, the global
// lower bound used for RUB pruning, and the residual subproblem to expand.
type CompilationInput struct {
	CompType   CompilationType
	Problem    Problem
	Relaxation Relaxation
	Ranking    Ranking
	Cutoff     Cutoff
	MaxWidth   int
	BestLB     int64
	Residual   SubProblem
}
