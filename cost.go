package petrick

// operationCount is the total gate count of an expression: the AND/NOT
// gates inside each implicant plus one joining gate per extra child of an
// n-ary node.
func operationCount(e *ExprPtr, numInputs int) int {
	switch e.Kind() {
	case TY_LEAF:
		imp, _ := e.Implicant()
		return imp.OperationCount(numInputs)
	case TY_SUM, TY_PRODUCT:
		inner := e.e.(*internalNaryOp)
		count := len(inner.children) - 1
		for i := 0; i < len(inner.children); i++ {
			count += operationCount(inner.children[i], numInputs)
		}
		return count
	}
	return 0
}

// selectCover picks the cheapest covering term out of the final
// sum-of-covers. Ties keep the first term encountered.
func selectCover(covers *ExprPtr, numInputs int) (*ExprPtr, int) {
	if covers.Kind() != TY_SUM {
		return covers, operationCount(covers, numInputs)
	}

	inner := covers.e.(*internalNaryOp)
	best := inner.children[0]
	bestCount := operationCount(best, numInputs)
	for i := 1; i < len(inner.children); i++ {
		if c := operationCount(inner.children[i], numInputs); c < bestCount {
			best = inner.children[i]
			bestCount = c
		}
	}
	return best, bestCount
}
