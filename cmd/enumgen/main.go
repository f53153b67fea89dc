// Enumgen generates the methods required by the enum package's contracts
// for a type whose values are declared as a single contiguous iota run:
//
//	type Pill uint8
//
//	const (
//		Placebo Pill = iota
//		Aspirin
//		Ibuprofen
//	)
//
// Given "enumgen -type Pill", typically via a go:generate directive, it
// writes pill_enum.go containing the Size, Min, Max, Succ, Pred, Index
// and Bit methods, an O(1) PillFromIndex inverse, String and text
// marshalling methods, and a PillSet alias over the smallest word type
// that holds one bit per value. With -opt it also emits an OptPill
// alias wrapping Pill in enum.Opt, one word width up when the extra
// slot requires it.
//
// The value list must not be empty, must not assign discriminants
// manually, and must not exceed 64 values (the widest representation Go
// offers). Conversions in the generated code go through the type's own
// declared underlying integer type.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	typeName = flag.String("type", "", "type name; required")
	withOpt  = flag.Bool("opt", false, "also emit an optional-wrapper alias one slot wider")
	output   = flag.String("output", "", "output file name; default srcdir/<type>_enum.go")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: enumgen -type T [-opt] [-output file] [package]\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("enumgen: ")
	flag.Usage = usage
	flag.Parse()
	if *typeName == "" {
		flag.Usage()
		os.Exit(2)
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	g, err := load(patterns, *typeName)
	if err != nil {
		log.Fatal(err)
	}
	g.args = strings.Join(os.Args[1:], " ")

	src, err := g.generate(*withOpt)
	if err != nil {
		log.Fatal(err)
	}

	out := *output
	if out == "" {
		out = filepath.Join(g.dir, strings.ToLower(*typeName)+"_enum.go")
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
