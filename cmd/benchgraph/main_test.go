// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.txt")
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun(t *testing.T) {
	input := writeInput(t, `
{"Name":"BenchmarkNodeGetChild/gohivex/medium","N":1000000,"T":120.5,"B":48,"A":2}
BenchmarkNodeGetChild/hivex/medium-8  900000  150.2 ns/op  64 B/op  3 allocs/op
{"Name":"BenchmarkCommit/gohivex/small","N":100,"T":52000,"B":4096,"A":20}
{"Name":"BenchmarkCommit/hivex/small","N":80,"T":61000,"B":8192,"A":40}
`)
	base := t.TempDir()
	cfg := config{
		input:     input,
		output:    filepath.Join(base, "graphs"),
		docsDir:   filepath.Join(base, "docs"),
		timestamp: "2025-06-01_120000",
		report:    filepath.Join(base, "report.md"),
		quiet:     true,
	}
	if err := run(cfg); err != nil {
		t.Fatal(err)
	}

	wantArchive := []string{
		"2025-06-01_120000_allocations.png",
		"2025-06-01_120000_memory.png",
		"2025-06-01_120000_mutation_allocations.png",
		"2025-06-01_120000_mutation_memory.png",
		"2025-06-01_120000_mutation_time.png",
		"2025-06-01_120000_time.png",
	}
	if got := listFiles(t, cfg.output); !equalStrings(got, wantArchive) {
		t.Errorf("archive dir = %v, want %v", got, wantArchive)
	}

	wantDocs := []string{
		"allocations.png",
		"memory.png",
		"mutation_allocations.png",
		"mutation_memory.png",
		"mutation_time.png",
		"time.png",
	}
	if got := listFiles(t, cfg.docsDir); !equalStrings(got, wantDocs) {
		t.Errorf("docs dir = %v, want %v", got, wantDocs)
	}

	report, err := os.ReadFile(cfg.report)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"NodeGetChild", "Commit", "- **Total benchmarks**: 2"} {
		if !strings.Contains(string(report), want) {
			t.Errorf("report missing %q", want)
		}
	}
}

// One category with no comparisons is skipped, not rendered empty.
func TestRunStandardOnly(t *testing.T) {
	input := writeInput(t, "BenchmarkOpen/gohivex/small-8 100 12.5 ns/op\nBenchmarkOpen/hivex/small-8 100 20 ns/op\n")
	base := t.TempDir()
	cfg := config{
		input:     input,
		output:    filepath.Join(base, "graphs"),
		docsDir:   filepath.Join(base, "docs"),
		timestamp: "ts",
		quiet:     true,
	}
	if err := run(cfg); err != nil {
		t.Fatal(err)
	}
	for _, name := range listFiles(t, cfg.output) {
		if strings.Contains(name, "mutation") {
			t.Errorf("unexpected mutation chart %s", name)
		}
	}
	if got := listFiles(t, cfg.output); len(got) != 3 {
		t.Errorf("archive dir = %v, want 3 charts", got)
	}
}

// Empty input exits cleanly with no image files written.
func TestRunEmptyInput(t *testing.T) {
	input := writeInput(t, "nothing parseable here\n")
	base := t.TempDir()
	cfg := config{
		input:   input,
		output:  filepath.Join(base, "graphs"),
		docsDir: filepath.Join(base, "docs"),
		quiet:   true,
	}
	if err := run(cfg); err != nil {
		t.Fatal(err)
	}
	if got := listFiles(t, cfg.output); len(got) != 0 {
		t.Errorf("archive dir = %v, want no files", got)
	}
	if got := listFiles(t, cfg.docsDir); len(got) != 0 {
		t.Errorf("docs dir = %v, want no files", got)
	}
}

func TestRunMissingInput(t *testing.T) {
	cfg := config{
		input:   filepath.Join(t.TempDir(), "does-not-exist.txt"),
		output:  t.TempDir(),
		docsDir: t.TempDir(),
		quiet:   true,
	}
	if err := run(cfg); err == nil {
		t.Error("run with a missing input file succeeded")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
