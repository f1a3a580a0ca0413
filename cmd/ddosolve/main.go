// Command ddosolve reads a DIMACS weighted-CNF (.wcnf) MAX-2-SAT instance
// and solves it by repeated decision-diagram compilation.
package main

import "github.com/ryanjoneil/ddo/cmd/ddosolve/cmd"

func main() {
	cmd.Execute()
}
