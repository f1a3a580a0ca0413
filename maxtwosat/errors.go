package maxtwosat

import "errors"

// ErrMalformedHeader indicates a .wcnf file's "p wcnf ..." header line was
// missing or could not be parsed.
var ErrMalformedHeader = errors.New("maxtwosat: malformed wcnf header")

// ErrMalformedClause indicates a clause line had the wrong number of
// fields, a non-integer field, or a literal referencing a variable outside
// the header's declared range.
var ErrMalformedClause = errors.New("maxtwosat: malformed wcnf clause")

// ErrTooManyLiterals indicates a clause line declared more than two
// literals; maxtwosat only models 2-SAT instances.
var ErrTooManyLiterals = errors.New("maxtwosat: clause has more than two literals")
