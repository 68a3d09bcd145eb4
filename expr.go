package petrick

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

const (
	TY_IDENTITY = 1
	TY_LEAF     = 2
	TY_SUM      = 3
	TY_PRODUCT  = 4
)

/*
 *   Public Interface
 */

type ExprPtr struct {
	e internalExpr
}

func (e *ExprPtr) IsIdentity() bool {
	return e.e.kind() == TY_IDENTITY
}

func (e *ExprPtr) Implicant() (*Implicant, error) {
	if e.e.kind() != TY_LEAF {
		return nil, fmt.Errorf("not a leaf")
	}
	l := e.e.(*internalLeaf)
	return l.imp, nil
}

func (e *ExprPtr) String() string {
	return e.e.String()
}

func (e *ExprPtr) Id() uintptr {
	return e.e.rawPtr()
}

func (e *ExprPtr) Kind() int {
	return e.e.kind()
}

/*
 *   Private Interface
 */

type internalExpr interface {
	String() string

	kind() int
	hash() uint64
	isLeaf() bool
	rawPtr() uintptr
	shallowEq(internalExpr) bool
}

/*
 *  TY_IDENTITY
 */

// internalIdentity is the neutral element of both Sum and Product; it
// exists so a fold can start from an explicit empty operation instead of
// a default-constructed sentinel.
type internalIdentity struct{}

func (e *internalIdentity) String() string {
	return "<empty>"
}

func (e *internalIdentity) kind() int {
	return TY_IDENTITY
}

func (e *internalIdentity) hash() uint64 {
	return 0
}

func (e *internalIdentity) isLeaf() bool {
	return true
}

func (e *internalIdentity) rawPtr() uintptr {
	return uintptr(unsafe.Pointer(e))
}

func (e *internalIdentity) shallowEq(other internalExpr) bool {
	return other.kind() == TY_IDENTITY
}

/*
 *  TY_LEAF
 */

type internalLeaf struct {
	imp *Implicant
}

func mkinternalLeaf(imp *Implicant) *internalLeaf {
	return &internalLeaf{imp: imp}
}

func (e *internalLeaf) String() string {
	if e.imp.name != 0 {
		return string(e.imp.name)
	}
	return e.imp.String()
}

func (e *internalLeaf) kind() int {
	return TY_LEAF
}

func (e *internalLeaf) hash() uint64 {
	h := xxhash.New()
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(uintptr(unsafe.Pointer(e.imp))))
	h.Write(raw)
	return h.Sum64()
}

func (e *internalLeaf) isLeaf() bool {
	return true
}

func (e *internalLeaf) rawPtr() uintptr {
	return uintptr(unsafe.Pointer(e))
}

func (e *internalLeaf) shallowEq(other internalExpr) bool {
	if other.kind() != TY_LEAF {
		return false
	}
	oe := other.(*internalLeaf)
	return e.imp == oe.imp
}

/*
 * TY_SUM, TY_PRODUCT
 */

type internalNaryOp struct {
	knd      uint8
	symbol   string
	children []*ExprPtr
}

func mkinternalSum(children []*ExprPtr) *internalNaryOp {
	return &internalNaryOp{knd: TY_SUM, symbol: "+", children: children}
}

func mkinternalProduct(children []*ExprPtr) *internalNaryOp {
	return &internalNaryOp{knd: TY_PRODUCT, symbol: "*", children: children}
}

func (e *internalNaryOp) String() string {
	b := strings.Builder{}
	b.WriteString("[")
	for i := 0; i < len(e.children); i++ {
		if i > 0 {
			b.WriteString(e.symbol)
		}
		b.WriteString(e.children[i].String())
	}
	b.WriteString("]")
	return b.String()
}

func (e *internalNaryOp) kind() int {
	return int(e.knd)
}

func (e *internalNaryOp) hash() uint64 {
	h := xxhash.New()
	h.Write([]byte(e.symbol))
	for i := 0; i < len(e.children); i++ {
		raw := make([]byte, 8)
		binary.BigEndian.PutUint64(raw, uint64(e.children[i].e.rawPtr()))
		h.Write(raw)
	}
	return h.Sum64()
}

func (e *internalNaryOp) isLeaf() bool {
	return false
}

func (e *internalNaryOp) rawPtr() uintptr {
	return uintptr(unsafe.Pointer(e))
}

func (e *internalNaryOp) shallowEq(other internalExpr) bool {
	if other.kind() != e.kind() {
		return false
	}
	oe := other.(*internalNaryOp)
	if len(e.children) != len(oe.children) {
		return false
	}
	for i := 0; i < len(e.children); i++ {
		if e.children[i].e.rawPtr() != oe.children[i].e.rawPtr() {
			return false
		}
	}
	return true
}
