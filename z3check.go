package petrick

import (
	"github.com/aclements/go-z3/z3"
)

const (
	VERIFY_OK       = 1
	VERIFY_MISMATCH = 2
	VERIFY_UNKNOWN  = 3
)

type z3checker struct {
	ctx    *z3.Context
	cfg    *z3.Config
	solver *z3.Solver

	// one boolean symbol per input bit, named after the display letters
	inputs []z3.Bool
}

func newZ3Checker(numInputs int) *z3checker {
	cfg := z3.NewContextConfig()
	ctx := z3.NewContext(cfg)
	c := &z3checker{
		ctx:    ctx,
		cfg:    cfg,
		solver: z3.NewSolver(ctx),
		inputs: make([]z3.Bool, numInputs),
	}
	for bit := 0; bit < numInputs; bit++ {
		c.inputs[bit] = ctx.BoolConst(string(rune('a' + numInputs - 1 - bit)))
	}
	return c
}

// point is the product selecting exactly one input combination.
func (c *z3checker) point(value, numInputs int) z3.Bool {
	p := c.ctx.FromBool(true)
	for bit := 0; bit < numInputs; bit++ {
		lit := c.inputs[bit]
		if value&(1<<bit) == 0 {
			lit = lit.Not()
		}
		p = p.And(lit)
	}
	return p
}

// cover is the OR over the chosen implicants, each an AND over its
// masked-in literals.
func (c *z3checker) cover(r *Result) z3.Bool {
	e := c.ctx.FromBool(false)
	for _, imp := range r.Implicants {
		t := c.ctx.FromBool(true)
		for bit := 0; bit < r.numInputs; bit++ {
			if imp.mask&(1<<bit) == 0 {
				continue
			}
			lit := c.inputs[bit]
			if imp.mins[0].val&(1<<bit) == 0 {
				lit = lit.Not()
			}
			t = t.And(lit)
		}
		e = e.Or(t)
	}
	return e
}

// VerifyWithZ3 cross-checks a reduction with z3: the chosen cover must
// agree with the specified function on every combination that is not a
// don't-care. Needs libz3 on the system, like the rest of the go-z3
// bindings.
func VerifyWithZ3(f *Function, r *Result) int {
	c := newZ3Checker(f.numInputs)

	ref := c.ctx.FromBool(false)
	for _, m := range f.terms {
		if m.dontCare {
			// unconstrained point: mask it out of the comparison
			c.solver.Assert(c.point(m.val, f.numInputs).Not())
			continue
		}
		ref = ref.Or(c.point(m.val, f.numInputs))
	}

	// sat iff the cover and the reference disagree on some care point
	c.solver.Assert(c.cover(r).Xor(ref))

	sat, err := c.solver.Check()
	if err != nil {
		return VERIFY_UNKNOWN
	}
	if sat {
		return VERIFY_MISMATCH
	}
	return VERIFY_OK
}
