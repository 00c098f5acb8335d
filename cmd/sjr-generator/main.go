// Package main provides the CLI entrypoint for sjr-generator.
//
// sjr-generator is a one-shot data preparation tool that:
//   - Reads a semicolon-delimited Scimago journal ranking CSV export
//   - Normalizes ISSNs and SJR scores (max score wins on duplicates)
//   - Emits the mapping as a generated JavaScript module
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"sjr-generator/internal/build"
	"sjr-generator/internal/gen"
)

// Default artifact paths, overridable with --input and --output.
const (
	DefaultInput  = "scimagojr_2026.csv"
	DefaultOutput = "scimago.js"
)

func main() {
	input := flag.String("input", DefaultInput, "Path to the Scimago CSV export")
	output := flag.String("output", DefaultOutput, "Path to write the generated JavaScript module")
	flag.Parse()

	if err := run(*input, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output string) error {
	sjrMap, report, err := build.Load(input)
	if err != nil {
		return err
	}

	dir, base := filepath.Split(output)
	file := gen.Module(sjrMap, base, filepath.Base(input))

	if err := gen.Write(file, dir); err != nil {
		return err
	}

	fmt.Printf("Rows read: %d\n", report.Rows)
	fmt.Printf("Rows without score: %d\n", report.Unscored)
	fmt.Printf("ISSN tokens discarded: %d\n", report.Dropped)
	fmt.Printf("Entries written: %d -> %s\n", len(sjrMap), output)

	return nil
}
