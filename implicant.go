package petrick

import (
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

// Implicant groups minterms that are identical on every bit still set in
// the common mask. Over 4 inputs, m(4,12) has mask 0111: bit 3 is the one
// that ranges over the members. Members are kept sorted by value.
type Implicant struct {
	mins  []Minterm
	mask  int
	prime bool
	name  byte
}

func mkSingletonImplicant(m Minterm, numInputs int) *Implicant {
	return &Implicant{
		mins:  []Minterm{m},
		mask:  1<<numInputs - 1,
		prime: true,
	}
}

func (imp *Implicant) Size() int {
	return len(imp.mins)
}

func (imp *Implicant) Mask() int {
	return imp.mask
}

func (imp *Implicant) IsPrime() bool {
	return imp.prime
}

func (imp *Implicant) Name() byte {
	return imp.name
}

// Contains reports whether value is one of the implicant members.
func (imp *Implicant) Contains(value int) bool {
	for i := 0; i < len(imp.mins); i++ {
		if imp.mins[i].val == value {
			return true
		}
	}
	return false
}

func (imp *Implicant) hasRequiredMember() bool {
	for i := 0; i < len(imp.mins); i++ {
		if !imp.mins[i].dontCare {
			return true
		}
	}
	return false
}

// joinWith merges two implicants that have the same mask and member count
// and whose members differ in exactly one still-common bit. It returns
// nil when the pair cannot be merged.
func (imp *Implicant) joinWith(other *Implicant) *Implicant {
	if imp.mask != other.mask || len(imp.mins) != len(other.mins) {
		return nil
	}
	diff := (imp.mins[0].val ^ other.mins[0].val) & imp.mask
	if bits.OnesCount(uint(diff)) != 1 {
		return nil
	}

	mins := make([]Minterm, 0, len(imp.mins)*2)
	mins = append(mins, imp.mins...)
	mins = append(mins, other.mins...)
	sort.Slice(mins, func(i, j int) bool { return mins[i].val < mins[j].val })

	return &Implicant{
		mins:  mins,
		mask:  imp.mask &^ diff,
		prime: true,
	}
}

// eq is member-set equality; the mask is implied by the members.
func (imp *Implicant) eq(other *Implicant) bool {
	if len(imp.mins) != len(other.mins) {
		return false
	}
	for i := 0; i < len(imp.mins); i++ {
		if imp.mins[i].val != other.mins[i].val {
			return false
		}
	}
	return true
}

// OperationCount is the number of gates needed to realize the implicant:
// one AND per literal beyond the first, plus one NOT per negated literal.
// A mask with at most one bit set needs no AND gate.
func (imp *Implicant) OperationCount(numInputs int) int {
	ands := bits.OnesCount(uint(imp.mask)) - 1
	if ands < 0 {
		ands = 0
	}
	nots := 0
	for i := 0; i < numInputs; i++ {
		if imp.mask&(1<<i) != 0 && imp.mins[0].val&(1<<i) == 0 {
			nots++
		}
	}
	return ands + nots
}

// Literal is one input of the function in a rendered product term.
type Literal struct {
	Input   byte
	Negated bool
}

// Literals maps the masked-in bits to display literals, most significant
// bit first: 'a' is the leftmost input.
func (imp *Implicant) Literals(numInputs int) []Literal {
	lits := make([]Literal, 0, numInputs)
	letter := byte('a')
	for bit := numInputs - 1; bit >= 0; bit-- {
		if imp.mask&(1<<bit) != 0 {
			lits = append(lits, Literal{
				Input:   letter,
				Negated: imp.mins[0].val&(1<<bit) == 0,
			})
		}
		letter++
	}
	return lits
}

func (imp *Implicant) String() string {
	b := strings.Builder{}
	b.WriteString("m(")
	for i := 0; i < len(imp.mins); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(imp.mins[i].val))
	}
	b.WriteByte(')')
	return b.String()
}

// Detailed returns the named listing used by the debug traces, e.g.
// "A = m(0,1) Mask: 1 Prime". The printed mask marks the bits that range
// over the members.
func (imp *Implicant) Detailed(numInputs int) string {
	b := strings.Builder{}
	if imp.name != 0 {
		b.WriteByte(imp.name)
		b.WriteString(" = ")
	}
	b.WriteString(imp.String())
	b.WriteString(fmt.Sprintf(" Mask: %d", ^imp.mask&(1<<numInputs-1)))
	if imp.prime {
		b.WriteString(" Prime")
	}
	return b.String()
}
