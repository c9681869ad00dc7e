// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchgraph converts the mixed-format output of the gohivex benchmark
// suite into comparison charts and, optionally, reports.
//
// Usage:
//
//	go test -bench . -benchmem ./... | benchgraph [options]
//
// Benchgraph reads benchmark lines (JSON or plain text, see package
// benchfmt) from -input or standard input, pairs gohivex and hivex
// measurements per operation and hive size, and renders three
// horizontal bar charts per category: time, memory, and allocations.
// Standard and mutation-heavy operations are charted separately
// because their scales differ by orders of magnitude; mutation chart
// filenames carry a "mutation_" prefix.
//
// Each chart is written twice: a timestamped copy under -output for
// the archive, and a fixed-name copy under -docs-dir for embedding in
// documentation. A category with no comparisons produces no files.
//
// With -report or -report-html, benchgraph also writes the comparison
// as a markdown or HTML document covering both categories.
//
// Progress and errors go to standard error. The exit code is 1 if the
// input cannot be opened or any chart or report fails to render, and 0
// otherwise; unparseable input lines are skipped silently.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/gohivex/benchgraph/benchchart"
	"github.com/gohivex/benchgraph/benchcmp"
	"github.com/gohivex/benchgraph/benchfmt"
	"github.com/gohivex/benchgraph/benchreport"
)

var (
	flagInput      = flag.String("input", "", "read benchmark output from `file` (default standard input)")
	flagOutput     = flag.String("output", "benchmarks/graphs/png", "write timestamped charts into `dir`")
	flagDocsDir    = flag.String("docs-dir", "docs/images", "write fixed-name documentation charts into `dir`")
	flagTimestamp  = flag.String("timestamp", "", "`timestamp` for archive filenames (default current time)")
	flagReport     = flag.String("report", "", "also write a markdown report to `file`")
	flagReportHTML = flag.String("report-html", "", "also write an HTML report to `file`")
	flagQuiet      = flag.Bool("quiet", false, "suppress progress output")
)

func main() {
	log.SetPrefix("benchgraph: ")
	log.SetFlags(0)
	flag.Parse()

	cfg := config{
		input:      *flagInput,
		output:     *flagOutput,
		docsDir:    *flagDocsDir,
		timestamp:  *flagTimestamp,
		report:     *flagReport,
		reportHTML: *flagReportHTML,
		quiet:      *flagQuiet,
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	input      string
	output     string
	docsDir    string
	timestamp  string
	report     string
	reportHTML string
	quiet      bool
}

func run(cfg config) error {
	in, name, err := benchfmt.Open(cfg.input)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	results, err := benchfmt.ReadAll(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	progress := func(format string, args ...interface{}) {
		if !cfg.quiet {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	progress("Parsed %d benchmark results", len(results))

	standard := benchcmp.Compare(results, benchcmp.Standard)
	progress("Generated %d standard comparisons", len(standard))
	mutation := benchcmp.Compare(results, benchcmp.Mutation)
	progress("Generated %d mutation comparisons", len(mutation))

	timestamp := cfg.timestamp
	if timestamp == "" {
		timestamp = time.Now().Format("2006-01-02_150405")
	}

	for _, dir := range []string{cfg.output, cfg.docsDir} {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	chartCfg := benchchart.Config{
		Dir:       cfg.output,
		DocsDir:   cfg.docsDir,
		Timestamp: timestamp,
	}
	if len(standard) > 0 {
		if err := renderAll(standard, chartCfg); err != nil {
			return fmt.Errorf("generating standard graphs: %w", err)
		}
		progress("Generated standard graphs (%d ops)", len(standard))
	}
	if len(mutation) > 0 {
		chartCfg.Prefix = "mutation_"
		if err := renderAll(mutation, chartCfg); err != nil {
			return fmt.Errorf("generating mutation graphs: %w", err)
		}
		progress("Generated mutation graphs (%d ops)", len(mutation))
	}

	if cfg.report != "" || cfg.reportHTML != "" {
		// Reports cover both categories in one document.
		all := make([]benchcmp.Comparison, 0, len(standard)+len(mutation))
		all = append(all, standard...)
		all = append(all, mutation...)
		sort.Slice(all, func(i, j int) bool {
			if all[i].Operation != all[j].Operation {
				return all[i].Operation < all[j].Operation
			}
			return all[i].HiveSize < all[j].HiveSize
		})
		now := time.Now()
		if cfg.report != "" {
			err := writeReport(cfg.report, func(w io.Writer) error {
				return benchreport.FormatText(w, all, now)
			})
			if err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			progress("Report written to %s", cfg.report)
		}
		if cfg.reportHTML != "" {
			err := writeReport(cfg.reportHTML, func(w io.Writer) error {
				return benchreport.FormatHTML(w, all, now)
			})
			if err != nil {
				return fmt.Errorf("writing HTML report: %w", err)
			}
			progress("HTML report written to %s", cfg.reportHTML)
		}
	}

	progress("All graphs generated in %s", cfg.output)
	progress("Static documentation images in %s", cfg.docsDir)
	return nil
}

func renderAll(cs []benchcmp.Comparison, cfg benchchart.Config) error {
	for _, m := range []benchchart.Metric{benchchart.Time, benchchart.Memory, benchchart.Allocs} {
		if err := benchchart.Render(cs, m, cfg); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(path string, format func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := format(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
