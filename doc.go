// Package petrick reduces single-output boolean functions to minimal
// two-level sum-of-products expressions. Prime implicants are enumerated
// with Quine-McCluskey tabulation and a lowest-cost cover is selected with
// Petrick's method, carried out as symbolic sum/product algebra with
// idempotence and absorption applied after every multiplication step.
//
// A function is built from its required minterms and optional don't-care
// combinations:
//
//	f, err := petrick.NewFunction(3, []int{1, 2, 5}, []int{3, 7})
//	if err != nil { ... }
//	res, err := f.Reduce()
//	if err != nil { ... }
//	fmt.Println(res.String(), res.OpCount)
package petrick
