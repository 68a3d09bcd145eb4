package petrick

import "errors"

var (
	// ErrInvalidInput flags a minterm value outside the input range or a
	// value listed both as required and as don't-care.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoPrimeImplicants means prime implicant extraction came up
	// empty; the function has no realizable cover (e.g. no required
	// minterms at all).
	ErrNoPrimeImplicants = errors.New("no prime implicants")

	// ErrCoverageGap means a required minterm is covered by no prime
	// implicant. The merge rounds guarantee this cannot happen; seeing it
	// means a bug in the generator, not bad input.
	ErrCoverageGap = errors.New("coverage gap")
)
