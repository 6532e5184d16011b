// Command displace expands a labelled 3D point list into an augmented set
// of displaced points.
//
// Usage:
//
//	displace [flags] inputFile outputFile [--no-original]
//
// Each input point is classified by the digits in its label, assigned a
// displacement category, and expanded into seven derived points (four
// diagonal, three radial). The output is CSV with 3-decimal precision.
// With --no-original only the displaced points are written to the output
// file; any requested plot or scene output still shows the originals,
// since the classification-key labels are attached to them.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/metrolab/displace/internal/displace"
	"github.com/metrolab/displace/internal/plotview"
	"github.com/metrolab/displace/internal/pointset"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("displace", flag.ContinueOnError)
	noOriginal := fs.Bool("no-original", false, "write only displaced points; skip the originals in the output file")
	configPath := fs.String("config", "", "JSON file overriding displacement geometry and category ranges")
	plotPath := fs.String("plot", "", "write a PNG scatter of the expanded set to this file")
	scenePath := fs.String("scene", "", "write an interactive HTML scene snapshot to this file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: displace [flags] inputFile outputFile [--no-original]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	// The historical invocation puts --no-original after the positional
	// arguments, where the flag package no longer looks. Accept it there
	// too; any other trailing option is an error.
	var positional []string
	for _, a := range fs.Args() {
		switch {
		case a == "--no-original" || a == "-no-original":
			*noOriginal = true
		case strings.HasPrefix(a, "-") && a != "-":
			return fmt.Errorf("unknown option: %s", a)
		default:
			positional = append(positional, a)
		}
	}
	if len(positional) != 2 {
		fs.Usage()
		return fmt.Errorf("expected inputFile and outputFile, got %d arguments", len(positional))
	}
	inputFile, outputFile := positional[0], positional[1]

	cfg := displace.Default()
	if *configPath != "" {
		fc, err := displace.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		if err := fc.Apply(&cfg); err != nil {
			return err
		}
	}

	points, err := pointset.ReadFile(inputFile)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		log.Printf("WARNING: no points read from %s", inputFile)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("cannot open output file %s: %w", outputFile, err)
	}
	defer out.Close()

	eng := displace.NewEngine(cfg)
	expanded := eng.Expand(points, true)

	w := pointset.NewWriter(out)
	var nOriginal, nDisplaced int
	for _, e := range expanded {
		if !e.Derived {
			if *noOriginal {
				continue
			}
			nOriginal++
		} else {
			nDisplaced++
		}
		w.WritePoint(e.Point)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outputFile, err)
	}

	if *plotPath != "" {
		if err := plotview.ScatterPNG(*plotPath, expanded, eng.Table()); err != nil {
			return err
		}
	}
	if *scenePath != "" {
		if err := plotview.SceneHTML(*scenePath, expanded, eng.Table()); err != nil {
			return err
		}
	}

	if *noOriginal {
		fmt.Fprintf(stdout, "Wrote %s with %d displaced points.\n", outputFile, nDisplaced)
	} else {
		fmt.Fprintf(stdout, "Wrote %s with %d original points and %d displaced points.\n", outputFile, nOriginal, nDisplaced)
	}
	return nil
}
