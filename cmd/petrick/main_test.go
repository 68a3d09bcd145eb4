package main

import "testing"

func TestParseList(t *testing.T) {
	vals, err := parseList("[1,2,3]")
	if err != nil {
		t.Error(err)
		return
	}
	if len(vals) != 3 || vals[0] != 1 || vals[1] != 2 || vals[2] != 3 {
		t.Errorf("wrong values: %v", vals)
	}

	vals, err = parseList("[ 4, 7 ]")
	if err != nil {
		t.Error(err)
		return
	}
	if len(vals) != 2 || vals[0] != 4 || vals[1] != 7 {
		t.Errorf("wrong values: %v", vals)
	}
}

func TestParseListEmpty(t *testing.T) {
	vals, err := parseList("[]")
	if err != nil {
		t.Error(err)
		return
	}
	if len(vals) != 0 {
		t.Errorf("expected an empty list, got %v", vals)
	}
}

func TestParseListInvalid(t *testing.T) {
	if _, err := parseList("1,2"); err == nil {
		t.Error("a list without brackets should be rejected")
	}
	if _, err := parseList("[1,x]"); err == nil {
		t.Error("a non-numeric element should be rejected")
	}
	if _, err := parseList(""); err == nil {
		t.Error("an empty string should be rejected")
	}
}
