package petrick

type AlgebraStats struct {
	CacheHits    uint
	CacheLookups uint
	CachedNodes  uint
}

// Algebra builds and deduplicates expression nodes. Structurally equal
// nodes always come back as the same object, so equality tests downstream
// are pointer comparisons on Id(). Every node pool is owned by a single
// reduction and discarded with it, so entries are never evicted.
type Algebra struct {
	cache    map[uint64][]internalExpr
	identity *ExprPtr

	Stats AlgebraStats
}

func NewAlgebra() *Algebra {
	return &Algebra{
		cache:    map[uint64][]internalExpr{},
		identity: &ExprPtr{&internalIdentity{}},
		Stats:    AlgebraStats{},
	}
}

func (a *Algebra) getOrCreate(e internalExpr) *ExprPtr {
	a.Stats.CacheLookups += 1

	h := e.hash()
	if _, ok := a.cache[h]; !ok {
		a.cache[h] = make([]internalExpr, 0)
	}

	bucket := a.cache[h]
	for i := 0; i < len(bucket); i++ {
		if bucket[i].shallowEq(e) {
			a.Stats.CacheHits += 1
			return &ExprPtr{bucket[i]}
		}
	}
	a.Stats.CachedNodes += 1

	a.cache[h] = append(bucket, e)
	return &ExprPtr{e}
}

// Identity returns the empty operation, neutral for both Sum and Product.
func (a *Algebra) Identity() *ExprPtr {
	return a.identity
}

func (a *Algebra) Leaf(imp *Implicant) *ExprPtr {
	return a.getOrCreate(mkinternalLeaf(imp))
}

func flattenOrAddOpArg(e *ExprPtr, ty int, children []*ExprPtr) []*ExprPtr {
	if e.Kind() == ty {
		inner := e.e.(*internalNaryOp)
		children = append(children, inner.children...)
	} else {
		children = append(children, e)
	}
	return children
}

func dedupById(children []*ExprPtr) []*ExprPtr {
	seen := make(map[uintptr]bool, len(children))
	pruned := make([]*ExprPtr, 0, len(children))
	for i := 0; i < len(children); i++ {
		if seen[children[i].Id()] {
			continue
		}
		seen[children[i].Id()] = true
		pruned = append(pruned, children[i])
	}
	return pruned
}

// termLeaves collects the leaf ids of a product term (a leaf or a PRODUCT
// of leaves). SUM nodes never appear below a product after leveling.
func termLeaves(e *ExprPtr) []uintptr {
	switch e.Kind() {
	case TY_LEAF:
		return []uintptr{e.Id()}
	case TY_PRODUCT:
		inner := e.e.(*internalNaryOp)
		ids := make([]uintptr, 0, len(inner.children))
		for i := 0; i < len(inner.children); i++ {
			ids = append(ids, termLeaves(inner.children[i])...)
		}
		return ids
	}
	return nil
}

// containsTerm reports whether every leaf of inner appears among the
// leaves of outer. Both the product law X * XY = XY and sum absorption
// A + AB = A reduce to this subset test.
func containsTerm(outer, inner *ExprPtr) bool {
	out := termLeaves(outer)
	in := termLeaves(inner)
	if len(in) == 0 || len(in) > len(out) {
		return false
	}
	for i := 0; i < len(in); i++ {
		found := false
		for j := 0; j < len(out); j++ {
			if in[i] == out[j] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Sum composes lhs and rhs with logical OR. Identity operands vanish and
// X + X = X; absorption between sum terms is left to ApplySumAbsorption.
// Nested sums are leveled into a single node, keeping first-occurrence
// order of the children.
func (a *Algebra) Sum(lhs, rhs *ExprPtr) *ExprPtr {
	if lhs.IsIdentity() {
		return rhs
	}
	if rhs.IsIdentity() {
		return lhs
	}
	if lhs.Id() == rhs.Id() {
		return rhs
	}

	children := make([]*ExprPtr, 0)
	children = flattenOrAddOpArg(lhs, TY_SUM, children)
	children = flattenOrAddOpArg(rhs, TY_SUM, children)
	children = dedupById(children)
	if len(children) == 1 {
		return children[0]
	}
	return a.getOrCreate(mkinternalSum(children))
}

// Product composes lhs and rhs with logical AND. A SUM operand is
// distributed over the other operand; this is the only place a
// product-of-sums is expanded into a sum-of-products. Otherwise the
// product absorption X * XY = XY applies and nested products are leveled.
func (a *Algebra) Product(lhs, rhs *ExprPtr) *ExprPtr {
	if lhs.IsIdentity() {
		return rhs
	}
	if rhs.IsIdentity() {
		return lhs
	}
	if lhs.Id() == rhs.Id() {
		return rhs
	}

	if lhs.Kind() == TY_SUM {
		inner := lhs.e.(*internalNaryOp)
		sum := a.Identity()
		for i := 0; i < len(inner.children); i++ {
			sum = a.Sum(sum, a.Product(rhs, inner.children[i]))
		}
		return sum
	}
	if rhs.Kind() == TY_SUM {
		inner := rhs.e.(*internalNaryOp)
		sum := a.Identity()
		for i := 0; i < len(inner.children); i++ {
			sum = a.Sum(sum, a.Product(lhs, inner.children[i]))
		}
		return sum
	}

	if containsTerm(lhs, rhs) {
		return lhs
	}
	if containsTerm(rhs, lhs) {
		return rhs
	}

	children := make([]*ExprPtr, 0)
	children = flattenOrAddOpArg(lhs, TY_PRODUCT, children)
	children = flattenOrAddOpArg(rhs, TY_PRODUCT, children)
	children = dedupById(children)
	if len(children) == 1 {
		return children[0]
	}
	return a.getOrCreate(mkinternalProduct(children))
}

// ApplySumAbsorption removes sum terms subsumed by a more general term
// (A + AB = A), repeating until no removal applies. When the subsuming
// term sits to the right, it is moved into the left slot so iteration
// order is preserved. Non-SUM nodes are returned unchanged.
func (a *Algebra) ApplySumAbsorption(e *ExprPtr) *ExprPtr {
	if e.Kind() != TY_SUM {
		return e
	}
	inner := e.e.(*internalNaryOp)
	children := make([]*ExprPtr, len(inner.children))
	copy(children, inner.children)

	for changed := true; changed; {
		changed = false
		for i := 0; i < len(children); i++ {
			for j := i + 1; j < len(children); {
				if containsTerm(children[j], children[i]) {
					children = append(children[:j], children[j+1:]...)
				} else if containsTerm(children[i], children[j]) {
					children[i], children[j] = children[j], children[i]
					children = append(children[:j], children[j+1:]...)
					changed = true
				} else {
					j++
				}
			}
		}
	}

	if len(children) == 1 {
		return children[0]
	}
	if len(children) == len(inner.children) {
		return e
	}
	return a.getOrCreate(mkinternalSum(children))
}
