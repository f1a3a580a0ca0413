// SPDX-License-Identifier: MIT
package diagram

import "errors"

// ErrCutoffOccurred is returned by Compile when the problem.Cutoff
// predicate returns true at an iteration boundary. It is the only error
// Compile returns once its input has passed validation (see ErrNilProblem,
// ErrNilRelaxation, ErrInvalidWidth); every other terminal state —
// infeasibility, empty domains, early exhaustion — is a normal completion,
// possibly with a nil Completion.BestValue.
var ErrCutoffOccurred = errors.New("diagram: cutoff occurred")

// ErrNilProblem indicates a CompilationInput was submitted with a nil
// Problem capability.
var ErrNilProblem = errors.New("diagram: problem is nil")

// ErrNilRelaxation indicates a compile was requested without a Relaxation
// capability. FastUpperBound is consulted for every node regardless of
// compilation type, so Relaxation is never optional, even for Exact.
var ErrNilRelaxation = errors.New("diagram: relaxation is nil")

// ErrInvalidWidth indicates MaxWidth <= 0 was given to a Restricted or
// Relaxed compile; Exact compiles ignore MaxWidth entirely (invariant 1,
// spec.md §8) and so never return this error.
var ErrInvalidWidth = errors.New("diagram: max width must be positive")
