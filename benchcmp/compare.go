// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcmp pairs gohivex and hivex measurements of the same
// operation and hive size and derives the relative speedup.
package benchcmp

import (
	"sort"
	"strings"

	"github.com/gohivex/benchgraph/benchfmt"
)

// A Category selects which operations Compare keeps. Every operation
// belongs to exactly one category.
type Category string

const (
	// Standard covers the read-mostly operations.
	Standard Category = "standard"

	// Mutation covers the write/delete/commit-style operations, which
	// run at a memory scale that would drown the standard charts.
	Mutation Category = "mutation"
)

// mutationOps is the fixed set of operations charted separately.
var mutationOps = map[string]bool{
	"NodeAddChild":           true,
	"NodeSetValue":           true,
	"NodeSetValues":          true,
	"NodeDeleteChild":        true,
	"Commit":                 true,
	"IntrospectionRecursive": true,
}

// IsMutation reports whether operation belongs to the mutation
// category. Variant suffixes are ignored: "Commit/noop" is a mutation
// because "Commit" is.
func IsMutation(operation string) bool {
	if i := strings.IndexByte(operation, '/'); i >= 0 {
		operation = operation[:i]
	}
	return mutationOps[operation]
}

// A Comparison is one chart row: the paired measurements for a single
// (operation, hive size) group.
type Comparison struct {
	Operation string
	HiveSize  string

	GohivexNs float64
	HivexNs   float64

	// Speedup is HivexNs/GohivexNs when both times are strictly
	// positive, and 0 otherwise. Values above 1 mean gohivex is
	// faster.
	Speedup float64

	GohivexMem    int64
	HivexMem      int64
	GohivexAllocs int64
	HivexAllocs   int64

	// GohivexOnly is set when gohivex has data for the group and
	// hivex does not. The reverse case keeps the gohivex fields zero
	// with no flag set; the renderer then shows a zero-height gohivex
	// bar. There is deliberately no HivexOnly counterpart.
	GohivexOnly bool
}

// Label is the chart row label for the comparison.
func (c *Comparison) Label() string {
	if c.HiveSize != "" {
		return c.Operation + " (" + c.HiveSize + ")"
	}
	return c.Operation
}

// Compare groups the results of the requested category by (operation,
// hive size) and pairs the two implementations within each group. If
// an implementation appears more than once in a group, the last record
// wins; callers should not rely on that tie-break.
//
// The returned comparisons are sorted by operation name, then hive
// size.
func Compare(results []benchfmt.Result, cat Category) []Comparison {
	type key struct {
		operation string
		hiveSize  string
	}
	grouped := make(map[key]map[string]benchfmt.Result)
	for _, res := range results {
		if IsMutation(res.Operation) != (cat == Mutation) {
			continue
		}
		k := key{res.Operation, res.HiveSize}
		if grouped[k] == nil {
			grouped[k] = make(map[string]benchfmt.Result)
		}
		grouped[k][res.Impl] = res
	}

	comparisons := make([]Comparison, 0, len(grouped))
	for k, impls := range grouped {
		c := Comparison{Operation: k.operation, HiveSize: k.hiveSize}
		gohivex, hasGohivex := impls[benchfmt.ImplGohivex]
		hivex, hasHivex := impls[benchfmt.ImplHivex]
		if hasGohivex {
			c.GohivexNs = gohivex.NsPerOp
			c.GohivexMem = gohivex.BytesPerOp
			c.GohivexAllocs = gohivex.AllocsPerOp
		}
		if hasHivex {
			c.HivexNs = hivex.NsPerOp
			c.HivexMem = hivex.BytesPerOp
			c.HivexAllocs = hivex.AllocsPerOp
		}
		c.GohivexOnly = hasGohivex && !hasHivex
		if c.GohivexNs > 0 && c.HivexNs > 0 {
			c.Speedup = c.HivexNs / c.GohivexNs
		}
		comparisons = append(comparisons, c)
	}

	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Operation != comparisons[j].Operation {
			return comparisons[i].Operation < comparisons[j].Operation
		}
		return comparisons[i].HiveSize < comparisons[j].HiveSize
	})
	return comparisons
}
