package petrick

import "testing"

func reduce(t *testing.T, numInputs int, minterms, dontCares []int) *Result {
	t.Helper()
	f, err := NewFunction(numInputs, minterms, dontCares)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.Reduce()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestReduceSingleVariable(t *testing.T) {
	r := reduce(t, 1, []int{1}, nil)
	if r.String() != "a" {
		t.Errorf("wrong expression: %s", r)
	}
	if r.OpCount != 0 {
		t.Errorf("wrong operation count: %d", r.OpCount)
	}

	r = reduce(t, 1, []int{0}, nil)
	if r.String() != "~a" {
		t.Errorf("wrong expression: %s", r)
	}
	if r.OpCount != 1 {
		t.Errorf("wrong operation count: %d", r.OpCount)
	}
}

func TestReduceHalfCube(t *testing.T) {
	r := reduce(t, 3, []int{0, 1, 2, 3}, nil)
	if r.String() != "~a" {
		t.Errorf("wrong expression: %s", r)
	}
	if r.OpCount != 1 {
		t.Errorf("wrong operation count: %d", r.OpCount)
	}
	if len(r.Implicants) != 1 {
		t.Errorf("expected a single implicant, got %d", len(r.Implicants))
	}
}

func TestReduceTautology(t *testing.T) {
	r := reduce(t, 2, []int{0, 1, 2, 3}, nil)
	if r.String() != "1" {
		t.Errorf("wrong expression: %s", r)
	}
	if r.OpCount != 0 {
		t.Errorf("wrong operation count: %d", r.OpCount)
	}
}

func TestReduceWithDontCares(t *testing.T) {
	r := reduce(t, 3, []int{1, 2, 5}, []int{3, 7})
	if r.String() != "c + ~ab" {
		t.Errorf("wrong expression: %s", r)
	}
	if r.OpCount != 3 {
		t.Errorf("wrong operation count: %d", r.OpCount)
	}
}

func checkAgainstTruthTable(t *testing.T, r *Result, f *Function) {
	t.Helper()
	for v := 0; v < 1<<f.NumInputs(); v++ {
		switch f.Output(v) {
		case OUT_ONE:
			if !r.Eval(v) {
				t.Errorf("required minterm %d is not covered", v)
			}
		case OUT_ZERO:
			if r.Eval(v) {
				t.Errorf("the cover wrongly includes %d", v)
			}
		}
	}
}

func TestReduceSoundness(t *testing.T) {
	cases := []struct {
		numInputs int
		minterms  []int
		dontCares []int
	}{
		{3, []int{1, 2, 5}, []int{3, 7}},
		{4, []int{4, 8, 10, 11, 12, 15}, []int{9, 14}},
		{4, []int{0, 1, 2, 5, 6, 7}, nil},
		{4, []int{2, 3, 7, 9, 11, 13}, []int{1, 10, 15}},
		{5, []int{0, 4, 12, 16, 19, 24, 27, 28, 29, 31}, nil},
	}
	for _, tc := range cases {
		f, err := NewFunction(tc.numInputs, tc.minterms, tc.dontCares)
		if err != nil {
			t.Error(err)
			continue
		}
		r, err := f.Reduce()
		if err != nil {
			t.Error(err)
			continue
		}
		checkAgainstTruthTable(t, r, f)
	}
}

func TestReduceDeterminism(t *testing.T) {
	first := reduce(t, 4, []int{4, 8, 10, 11, 12, 15}, []int{9, 14})
	for i := 0; i < 8; i++ {
		r := reduce(t, 4, []int{4, 8, 10, 11, 12, 15}, []int{9, 14})
		if r.String() != first.String() || r.OpCount != first.OpCount {
			t.Errorf("non-deterministic reduction: %s vs %s", r, first)
			return
		}
	}
}

func TestReduceIdempotent(t *testing.T) {
	f, err := NewFunction(3, []int{1, 2, 5}, []int{3, 7})
	if err != nil {
		t.Error(err)
		return
	}
	r1, err := f.Reduce()
	if err != nil {
		t.Error(err)
		return
	}
	r2, err := f.Reduce()
	if err != nil {
		t.Error(err)
		return
	}
	if r1.String() != r2.String() || r1.OpCount != r2.OpCount {
		t.Error("reducing twice should give the same result")
	}
}

func TestResultName(t *testing.T) {
	f, err := NewFunction(2, []int{1, 3}, nil)
	if err != nil {
		t.Error(err)
		return
	}
	f.SetName("F")
	r, err := f.Reduce()
	if err != nil {
		t.Error(err)
		return
	}
	if r.Name() != "F" {
		t.Errorf("wrong name: %s", r.Name())
	}
	if r.String() != "b" {
		t.Errorf("wrong expression: %s", r)
	}
}

func TestResultTerms(t *testing.T) {
	r := reduce(t, 3, []int{1, 2, 5}, []int{3, 7})
	terms := r.Terms()
	if len(terms) != 2 {
		t.Errorf("expected 2 terms, got %d", len(terms))
		return
	}
	if len(terms[0].Literals) != 1 || len(terms[1].Literals) != 2 {
		t.Error("unexpected literal counts")
		return
	}
	if terms[0].Literals[0].Input != 'c' || terms[0].Literals[0].Negated {
		t.Error("the first term should be the plain c literal")
	}
}
