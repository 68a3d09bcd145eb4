package petrick

import (
	"strings"

	"github.com/fatih/color"
)

// Term is one AND of literals in the rendered answer, i.e. one chosen
// implicant. A term with no literals is the constant-true function.
type Term struct {
	Literals []Literal
}

// Result is a minimal realization of the function: the chosen implicants
// in selection order and the total gate count. The implicants of a cover
// term are joined by OR in the realized expression; the algebra's
// operators invert when crossing from cover terms to logic.
type Result struct {
	Implicants []*Implicant
	OpCount    int

	numInputs int
	name      string
}

func mkResult(term *ExprPtr, count int, numInputs int, name string) *Result {
	imps := make([]*Implicant, 0)
	switch term.Kind() {
	case TY_LEAF:
		imp, _ := term.Implicant()
		imps = append(imps, imp)
	case TY_PRODUCT:
		inner := term.e.(*internalNaryOp)
		for i := 0; i < len(inner.children); i++ {
			imp, _ := inner.children[i].Implicant()
			imps = append(imps, imp)
		}
	}
	return &Result{
		Implicants: imps,
		OpCount:    count,
		numInputs:  numInputs,
		name:       name,
	}
}

func (r *Result) Name() string {
	return r.name
}

// Terms returns the literal rendering of the cover, one term per chosen
// implicant.
func (r *Result) Terms() []Term {
	terms := make([]Term, 0, len(r.Implicants))
	for _, imp := range r.Implicants {
		terms = append(terms, Term{Literals: imp.Literals(r.numInputs)})
	}
	return terms
}

// Eval evaluates the cover on one input combination: true when any chosen
// implicant matches the pattern on its masked-in bits.
func (r *Result) Eval(input int) bool {
	for _, imp := range r.Implicants {
		if input&imp.mask == imp.mins[0].val&imp.mask {
			return true
		}
	}
	return false
}

// String renders the cover algebraically with '~' marking negated
// literals, e.g. "~ab + c".
func (r *Result) String() string {
	b := strings.Builder{}
	for i, t := range r.Terms() {
		if i > 0 {
			b.WriteString(" + ")
		}
		if len(t.Literals) == 0 {
			b.WriteByte('1')
			continue
		}
		for _, l := range t.Literals {
			if l.Negated {
				b.WriteByte('~')
			}
			b.WriteByte(l.Input)
		}
	}
	return b.String()
}

// ColorString renders literals with polarity carried by color alone,
// green for a true input and red for a complemented one.
func (r *Result) ColorString() string {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	b := strings.Builder{}
	for i, t := range r.Terms() {
		if i > 0 {
			b.WriteString(" + ")
		}
		if len(t.Literals) == 0 {
			b.WriteByte('1')
			continue
		}
		for _, l := range t.Literals {
			if l.Negated {
				b.WriteString(red.Sprint(string(l.Input)))
			} else {
				b.WriteString(green.Sprint(string(l.Input)))
			}
		}
	}
	return b.String()
}
