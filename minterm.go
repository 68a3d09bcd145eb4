package petrick

import "math/bits"

// Minterm is one input combination of the function, tagged with whether
// the output there is a don't-care. The popcount of the value is
// precomputed since the merge rounds pair implicants by it.
type Minterm struct {
	val      int
	dontCare bool
	bitCount int
}

func MakeMinterm(val int, dontCare bool) Minterm {
	return Minterm{val: val, dontCare: dontCare, bitCount: bits.OnesCount(uint(val))}
}

func (m Minterm) Value() int {
	return m.val
}

func (m Minterm) IsDontCare() bool {
	return m.dontCare
}

func (m Minterm) BitCount() int {
	return m.bitCount
}
