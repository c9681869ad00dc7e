// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcmp

import (
	"math"
	"reflect"
	"testing"

	"github.com/gohivex/benchgraph/benchfmt"
)

func result(op, size, impl string, ns float64, mem, allocs int64) benchfmt.Result {
	return benchfmt.Result{
		Name:        "Benchmark" + op + "/" + impl + "/" + size,
		Operation:   op,
		HiveSize:    size,
		Impl:        impl,
		Iters:       1000,
		NsPerOp:     ns,
		BytesPerOp:  mem,
		AllocsPerOp: allocs,
	}
}

func TestCompare(t *testing.T) {
	results := []benchfmt.Result{
		result("NodeGetChild", "medium", "gohivex", 120.5, 48, 2),
		result("NodeGetChild", "medium", "hivex", 150.2, 64, 3),
	}
	got := Compare(results, Standard)
	if len(got) != 1 {
		t.Fatalf("got %d comparisons, want 1", len(got))
	}
	c := got[0]
	if c.Operation != "NodeGetChild" || c.HiveSize != "medium" {
		t.Errorf("unexpected group %q/%q", c.Operation, c.HiveSize)
	}
	if want := 150.2 / 120.5; math.Abs(c.Speedup-want) > 1e-12 {
		t.Errorf("Speedup = %v, want %v", c.Speedup, want)
	}
	if c.GohivexOnly {
		t.Error("GohivexOnly set with data from both implementations")
	}
	if c.GohivexMem != 48 || c.HivexMem != 64 || c.GohivexAllocs != 2 || c.HivexAllocs != 3 {
		t.Errorf("memory fields not copied: %+v", c)
	}
}

func TestCompareGohivexOnly(t *testing.T) {
	got := Compare([]benchfmt.Result{
		result("OpenBytes", "small", "gohivex", 42, 16, 1),
	}, Standard)
	if len(got) != 1 {
		t.Fatalf("got %d comparisons, want 1", len(got))
	}
	c := got[0]
	if !c.GohivexOnly {
		t.Error("GohivexOnly not set")
	}
	if c.Speedup != 0 {
		t.Errorf("Speedup = %v, want 0", c.Speedup)
	}
}

// A hivex-only group still yields a comparison; the gohivex side stays
// zero and GohivexOnly stays false.
func TestCompareHivexOnly(t *testing.T) {
	got := Compare([]benchfmt.Result{
		result("Close", "small", "hivex", 42, 0, 0),
	}, Standard)
	if len(got) != 1 {
		t.Fatalf("got %d comparisons, want 1", len(got))
	}
	c := got[0]
	if c.GohivexOnly {
		t.Error("GohivexOnly set for a hivex-only group")
	}
	if c.GohivexNs != 0 || c.HivexNs != 42 {
		t.Errorf("got gohivex=%v hivex=%v, want 0 and 42", c.GohivexNs, c.HivexNs)
	}
	if c.Speedup != 0 {
		t.Errorf("Speedup = %v, want 0", c.Speedup)
	}
}

func TestCompareCategorySplit(t *testing.T) {
	results := []benchfmt.Result{
		result("NodeGetChild", "small", "gohivex", 10, 0, 0),
		result("Commit", "small", "gohivex", 100, 0, 0),
		result("Commit", "small", "hivex", 200, 0, 0),
		result("Commit/noop", "small", "gohivex", 5, 0, 0),
	}
	standard := Compare(results, Standard)
	if len(standard) != 1 || standard[0].Operation != "NodeGetChild" {
		t.Errorf("standard = %+v, want only NodeGetChild", standard)
	}
	mutation := Compare(results, Mutation)
	if len(mutation) != 2 {
		t.Fatalf("got %d mutation comparisons, want 2", len(mutation))
	}
	if mutation[0].Operation != "Commit" || mutation[1].Operation != "Commit/noop" {
		t.Errorf("mutation order = %q, %q", mutation[0].Operation, mutation[1].Operation)
	}
}

// Every operation lands in exactly one category.
func TestCategoryPartition(t *testing.T) {
	ops := []string{
		"Open", "Close", "Root", "NodeGetChild", "NodeGetValue/unicode",
		"NodeAddChild", "NodeSetValue", "NodeSetValues", "NodeDeleteChild",
		"Commit", "Commit/noop", "IntrospectionRecursive",
	}
	for _, op := range ops {
		var results []benchfmt.Result
		results = append(results, result(op, "small", "gohivex", 1, 0, 0))
		inStandard := len(Compare(results, Standard)) > 0
		inMutation := len(Compare(results, Mutation)) > 0
		if inStandard == inMutation {
			t.Errorf("%s: standard=%v mutation=%v, want exactly one", op, inStandard, inMutation)
		}
		if inMutation != IsMutation(op) {
			t.Errorf("%s: Compare and IsMutation disagree", op)
		}
	}
}

func TestIsMutation(t *testing.T) {
	for op, want := range map[string]bool{
		"Commit":                 true,
		"Commit/noop":            true,
		"IntrospectionRecursive": true,
		"NodeGetChild":           false,
		"Introspection":          false,
		"":                       false,
	} {
		if got := IsMutation(op); got != want {
			t.Errorf("IsMutation(%q) = %v, want %v", op, got, want)
		}
	}
}

func TestCompareLastWins(t *testing.T) {
	results := []benchfmt.Result{
		result("Open", "small", "gohivex", 10, 0, 0),
		result("Open", "small", "gohivex", 20, 0, 0),
		result("Open", "small", "hivex", 40, 0, 0),
	}
	got := Compare(results, Standard)
	if len(got) != 1 {
		t.Fatalf("got %d comparisons, want 1", len(got))
	}
	if got[0].GohivexNs != 20 {
		t.Errorf("GohivexNs = %v, want the later record's 20", got[0].GohivexNs)
	}
	if got[0].Speedup != 2 {
		t.Errorf("Speedup = %v, want 2", got[0].Speedup)
	}
}

func TestCompareSortOrder(t *testing.T) {
	results := []benchfmt.Result{
		result("Root", "small", "gohivex", 1, 0, 0),
		result("NodeGetChild", "small", "gohivex", 1, 0, 0),
		result("NodeGetChild", "large", "gohivex", 1, 0, 0),
		result("NodeGetChild", "medium", "gohivex", 1, 0, 0),
	}
	got := Compare(results, Standard)
	var order [][2]string
	for _, c := range got {
		order = append(order, [2]string{c.Operation, c.HiveSize})
	}
	want := [][2]string{
		{"NodeGetChild", "large"},
		{"NodeGetChild", "medium"},
		{"NodeGetChild", "small"},
		{"Root", "small"},
	}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("sort order = %v, want %v", order, want)
	}
}

func TestCompareEmpty(t *testing.T) {
	if got := Compare(nil, Standard); len(got) != 0 {
		t.Errorf("got %d comparisons from no results, want 0", len(got))
	}
	if got := Compare(nil, Mutation); len(got) != 0 {
		t.Errorf("got %d comparisons from no results, want 0", len(got))
	}
}

func TestLabel(t *testing.T) {
	withSize := Comparison{Operation: "Open", HiveSize: "small"}
	if got := withSize.Label(); got != "Open (small)" {
		t.Errorf("Label = %q, want %q", got, "Open (small)")
	}
	noSize := Comparison{Operation: "Open"}
	if got := noSize.Label(); got != "Open" {
		t.Errorf("Label = %q, want %q", got, "Open")
	}
}
