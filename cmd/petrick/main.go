package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/borzacchiello/petrick"
)

var (
	flagTable   bool
	flagVerbose bool
	flagNoColor bool
	flagCheck   bool
)

func main() {
	root := &cobra.Command{
		Use:   "petrick <numInputs> [minterms] [dontcares]",
		Short: "Reduce a boolean function to a minimal two-level expression",
		Long: `petrick computes all prime implicants of a boolean function given by its
minterms and don't-care combinations, then selects a lowest-cost cover
with Petrick's method.

Lists are comma separated and enclosed in brackets, e.g.:

  petrick 3 [1,2,5] [3,7]`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.Flags().BoolVarP(&flagTable, "table", "t", false, "print the truth table")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "trace the reduction steps")
	root.Flags().BoolVar(&flagNoColor, "no-color", false, "do not color the output expression")
	root.Flags().BoolVar(&flagCheck, "check", false, "verify the result with z3")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	numInputs, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("the number of inputs must be a valid number, got %q", args[0])
	}
	minterms, err := parseList(args[1])
	if err != nil {
		return err
	}
	var dontCares []int
	if len(args) == 3 {
		dontCares, err = parseList(args[2])
		if err != nil {
			return err
		}
	}

	f, err := petrick.NewFunction(numInputs, minterms, dontCares)
	if err != nil {
		return err
	}
	if flagVerbose {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		f.SetLogger(log)
	}

	if flagTable {
		fmt.Print(f.TruthTable())
	}

	res, err := f.Reduce()
	if err != nil {
		return err
	}

	expr := res.ColorString()
	if flagNoColor || color.NoColor {
		expr = res.String()
	}
	fmt.Printf("%s: %s  Number of operations: %d\n", f.Name(), expr, res.OpCount)

	if flagCheck {
		switch petrick.VerifyWithZ3(f, res) {
		case petrick.VERIFY_OK:
			fmt.Println("z3: equivalent on all care points")
		case petrick.VERIFY_MISMATCH:
			return errors.New("z3: the cover does not match the function")
		default:
			return errors.New("z3: verification inconclusive")
		}
	}
	return nil
}

// parseList parses the bracketed list syntax, e.g. "[1,2,3]". An empty
// list may be written "[]".
func parseList(s string) ([]int, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("list %q should be enclosed in []", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil, nil
	}

	vals := make([]int, 0)
	for _, tok := range strings.Split(inner, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("invalid list element %q", tok)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
