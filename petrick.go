package petrick

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// petrick builds, for every required minterm, the sum of the prime
// implicants covering it, and folds the sums into a running product. The
// absorption pass runs to a fixed point after every multiplication;
// deferring it to the end makes the distributive expansion blow up.
func (f *Function) petrick(alg *Algebra, primes []*Implicant) (*ExprPtr, error) {
	ops := make([]*ExprPtr, len(primes))
	for i := 0; i < len(primes); i++ {
		ops[i] = alg.Leaf(primes[i])
	}

	mult := alg.Identity()
	for _, min := range f.terms {
		if min.dontCare {
			continue
		}

		sum := alg.Identity()
		for i := 0; i < len(primes); i++ {
			if primes[i].Contains(min.val) {
				sum = alg.Sum(sum, ops[i])
			}
		}
		if sum.IsIdentity() {
			// unreachable if the merge rounds are correct
			return nil, fmt.Errorf("%w: minterm %d is covered by no prime implicant",
				ErrCoverageGap, min.val)
		}

		mult = alg.Product(mult, sum)
		mult = alg.ApplySumAbsorption(mult)
		f.log.WithFields(logrus.Fields{"minterm": min.val, "covers": mult.String()}).
			Debug("petrick step")
	}
	return mult, nil
}
