package petrick

import (
	"fmt"
	"io"
	"math/bits"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	OUT_ZERO     = 0
	OUT_ONE      = 1
	OUT_DONTCARE = 2
)

// Function is a single-output boolean function over numInputs binary
// inputs, given by its required minterms and don't-care combinations.
type Function struct {
	terms     []Minterm
	imps      []*Implicant
	numInputs int
	name      string
	log       logrus.FieldLogger
}

// NewFunction validates the required and don't-care value lists and merges
// them into one ascending stream. A value outside [0, 2^numInputs-1] or
// appearing in both lists fails with ErrInvalidInput.
func NewFunction(numInputs int, minterms, dontCares []int) (*Function, error) {
	if numInputs <= 0 || numInputs > bits.UintSize-2 {
		return nil, fmt.Errorf("%w: number of inputs must be in [1, %d], got %d",
			ErrInvalidInput, bits.UintSize-2, numInputs)
	}
	limit := 1 << numInputs

	mins := sortedUnique(minterms)
	dncs := sortedUnique(dontCares)
	if err := checkRange(mins, limit); err != nil {
		return nil, err
	}
	if err := checkRange(dncs, limit); err != nil {
		return nil, err
	}

	terms := make([]Minterm, 0, len(mins)+len(dncs))
	i, j := 0, 0
	for i < len(mins) || j < len(dncs) {
		switch {
		case j == len(dncs) || (i < len(mins) && mins[i] < dncs[j]):
			terms = append(terms, MakeMinterm(mins[i], false))
			i++
		case i == len(mins) || dncs[j] < mins[i]:
			terms = append(terms, MakeMinterm(dncs[j], true))
			j++
		default:
			return nil, fmt.Errorf("%w: %d is listed both as a minterm and as a don't-care",
				ErrInvalidInput, mins[i])
		}
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Function{
		terms:     terms,
		numInputs: numInputs,
		name:      "Q",
		log:       log,
	}, nil
}

func checkRange(vals []int, limit int) error {
	for _, v := range vals {
		if v < 0 || v >= limit {
			return fmt.Errorf("%w: value %d is outside [0, %d]", ErrInvalidInput, v, limit-1)
		}
	}
	return nil
}

func sortedUnique(vals []int) []int {
	cpy := make([]int, len(vals))
	copy(cpy, vals)
	sort.Ints(cpy)
	out := cpy[:0]
	for i := 0; i < len(cpy); i++ {
		if i > 0 && cpy[i-1] == cpy[i] {
			continue
		}
		out = append(out, cpy[i])
	}
	return out
}

func (f *Function) NumInputs() int {
	return f.numInputs
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) SetName(name string) {
	f.name = name
}

// SetLogger installs a logger for the debug traces of the reduction.
// The default logger discards everything.
func (f *Function) SetLogger(log logrus.FieldLogger) {
	f.log = log
}

// Output reports the specified output for one input combination.
func (f *Function) Output(value int) int {
	for _, m := range f.terms {
		if m.val == value {
			if m.dontCare {
				return OUT_DONTCARE
			}
			return OUT_ONE
		}
	}
	return OUT_ZERO
}

// TruthTable renders the function as specified, one row per input
// combination: '1' for required, 'x' for don't-care, '0' otherwise.
func (f *Function) TruthTable() string {
	b := strings.Builder{}
	for i := 0; i < f.numInputs; i++ {
		b.WriteByte(byte('a' + i))
	}
	b.WriteString("  ")
	b.WriteString(f.name)
	b.WriteByte('\n')

	for i := 0; i < 1<<f.numInputs; i++ {
		for j := f.numInputs - 1; j >= 0; j-- {
			if i&(1<<j) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteString("  ")
		switch f.Output(i) {
		case OUT_ONE:
			b.WriteByte('1')
		case OUT_DONTCARE:
			b.WriteByte('x')
		default:
			b.WriteByte('0')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// computeImplicants runs the merge rounds. Round r pairs the implicants
// produced in round r-1 (the singletons, for round 0); a successful join
// marks both operands non-prime even when the merged implicant duplicates
// one already in the pool.
func (f *Function) computeImplicants() {
	pool := make([]*Implicant, 0, len(f.terms))
	for _, m := range f.terms {
		pool = append(pool, mkSingletonImplicant(m, f.numInputs))
	}

	prev := pool
	for round := 0; round < f.numInputs; round++ {
		added := make([]*Implicant, 0)
		for i := 0; i < len(prev); i++ {
			for j := i + 1; j < len(prev); j++ {
				joined := prev[i].joinWith(prev[j])
				if joined == nil {
					continue
				}
				prev[i].prime = false
				prev[j].prime = false

				if containsImplicant(pool, joined) || containsImplicant(added, joined) {
					continue
				}
				added = append(added, joined)
			}
		}
		f.log.WithFields(logrus.Fields{"round": round, "new": len(added)}).
			Debug("merge round complete")
		if len(added) == 0 {
			break
		}
		pool = append(pool, added...)
		prev = added
	}
	f.imps = pool
}

func containsImplicant(pool []*Implicant, imp *Implicant) bool {
	for _, p := range pool {
		if p.eq(imp) {
			return true
		}
	}
	return false
}

// primeImplicants filters the pool down to the implicants that were never
// merged into a larger one and cover at least one required minterm, and
// names them 'A', 'B', ... for the traces.
func (f *Function) primeImplicants() ([]*Implicant, error) {
	primes := make([]*Implicant, 0)
	name := byte('A')
	for _, imp := range f.imps {
		if !imp.prime || !imp.hasRequiredMember() {
			continue
		}
		imp.name = name
		name++
		primes = append(primes, imp)
		f.log.Debug(imp.Detailed(f.numInputs))
	}
	if len(primes) == 0 {
		return nil, fmt.Errorf("%w: the function has no realizable cover", ErrNoPrimeImplicants)
	}
	return primes, nil
}

// Reduce runs the full minimization: prime implicant generation, Petrick's
// method, and cost-based selection of the cheapest cover.
func (f *Function) Reduce() (*Result, error) {
	f.computeImplicants()
	primes, err := f.primeImplicants()
	if err != nil {
		return nil, err
	}

	alg := NewAlgebra()
	covers, err := f.petrick(alg, primes)
	if err != nil {
		return nil, err
	}

	term, count := selectCover(covers, f.numInputs)
	res := mkResult(term, count, f.numInputs, f.name)
	f.log.WithFields(logrus.Fields{"expression": res.String(), "operations": count}).
		Debug("selected cover")
	return res, nil
}
