package diagram_test

import (
	"testing"

	"github.com/ryanjoneil/ddo/diagram"
	"github.com/ryanjoneil/ddo/problem"
)

// BenchmarkCompile measures Compile's cost across modes and widths on the
// fixed 3-variable dummy problem, whose 27 full-width paths deduplicate to
// 7 terminal nodes (sums 0 through 6).
func BenchmarkCompile(b *testing.B) {
	cases := []struct {
		name     string
		compType problem.CompilationType
		width    int
	}{
		{"Exact", problem.Exact, 1},
		{"Restricted/Width2", problem.Restricted, 2},
		{"Restricted/Width8", problem.Restricted, 8},
		{"Relaxed/Width2", problem.Relaxed, 2},
		{"Relaxed/Width8", problem.Relaxed, 8},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			input := baseInput()
			input.CompType = tc.compType
			input.MaxWidth = tc.width

			d := diagram.New()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := d.Compile(input); err != nil {
					b.Fatalf("compile: %v", err)
				}
			}
		})
	}
}
