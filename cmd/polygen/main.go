// Command polygen writes the fixed-degree evaluator routines of
// hwy/contrib/poly and the per-width entry points of hwy/contrib/math.
//
// Usage:
//
//	polygen -mode poly -output poly_gen.go -maxdeg 29 -maxrat 12
//	polygen -mode widths -output widths_gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/polygen -mode poly -output poly_gen.go
//
// Each degree gets its own named routine so every Horner step is a visible
// multiply-add in the generated source.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	mode      = flag.String("mode", "poly", "What to generate: poly or widths")
	output    = flag.String("output", "", "Output file (required)")
	packageNm = flag.String("pkg", "", "Output package name (default: poly or math by mode)")
	maxDegree = flag.Int("maxdeg", 29, "Highest polynomial degree")
	maxRatio  = flag.Int("maxrat", 12, "Highest total degree of rational routines")
)

func main() {
	flag.Parse()

	if *output == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var (
		src []byte
		err error
	)
	switch *mode {
	case "poly":
		pkg := *packageNm
		if pkg == "" {
			pkg = "poly"
		}
		src, err = generatePoly(pkg, *maxDegree, *maxRatio)
	case "widths":
		pkg := *packageNm
		if pkg == "" {
			pkg = "math"
		}
		src, err = generateWidths(pkg, kernels)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err == nil {
		err = writeSource(*output, src)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
