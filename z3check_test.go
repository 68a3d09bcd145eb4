package petrick

import "testing"

func TestVerifyWithZ3(t *testing.T) {
	cases := []struct {
		numInputs int
		minterms  []int
		dontCares []int
	}{
		{1, []int{0}, nil},
		{2, []int{0, 1, 2, 3}, nil},
		{3, []int{1, 2, 5}, []int{3, 7}},
		{4, []int{4, 8, 10, 11, 12, 15}, []int{9, 14}},
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
		if res := VerifyWithZ3(f, r); res != VERIFY_OK {
			t.Errorf("verification failed with %d for %s", res, r)
		}
	}
}

func TestVerifyWithZ3Mismatch(t *testing.T) {
	f, err := NewFunction(3, []int{1, 2, 5}, nil)
	if err != nil {
		t.Error(err)
		return
	}
	r, err := f.Reduce()
	if err != nil {
		t.Error(err)
		return
	}

	// a realization of a different function
	g, err := NewFunction(3, []int{0, 6}, nil)
	if err != nil {
		t.Error(err)
		return
	}
	if res := VerifyWithZ3(g, r); res != VERIFY_MISMATCH {
		t.Errorf("expected a mismatch, got %d", res)
	}
}
