// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport writes a gohivex vs hivex comparison set as a
// markdown or HTML report.
package benchreport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aclements/go-moremath/stats"

	"github.com/gohivex/benchgraph/benchcmp"
)

// Operation categories for the per-category breakdown, in report
// order. Matching is by substring of the lowercased operation name;
// the first matching category wins.
var categories = []struct {
	name  string
	match []string
}{
	{"Open/Close", []string{"open", "close"}},
	{"Navigation", []string{"root", "children", "getchild", "walk"}},
	{"Metadata", []string{"timestamp", "nrchildren", "nrvalues", "stat", "nodename", "detail"}},
	{"Typed Values", []string{"string", "dword", "qword"}},
	{"Values", []string{"value"}},
}

const (
	introspectionCategory = "Introspection"
	gohivexOnlyCategory   = "gohivex Features"
)

func categorize(c *benchcmp.Comparison) string {
	if c.GohivexOnly {
		return gohivexOnlyCategory
	}
	op := strings.ToLower(c.Operation)
	for _, cat := range categories {
		for _, m := range cat.match {
			if strings.Contains(op, m) {
				return cat.name
			}
		}
	}
	return introspectionCategory
}

func categoryOrder() []string {
	order := make([]string, 0, len(categories)+2)
	for _, cat := range categories {
		order = append(order, cat.name)
	}
	return append(order, introspectionCategory, gohivexOnlyCategory)
}

// FormatText writes cs as a markdown report: summary statistics, the
// detailed comparison table, per-category averages, and reading notes.
// The generation time is stamped from now.
func FormatText(w io.Writer, cs []benchcmp.Comparison, now time.Time) error {
	var sb strings.Builder
	s := benchcmp.Summarize(cs)

	sb.WriteString("# Benchmark Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- **Total benchmarks**: %d\n", s.Total)
	fmt.Fprintf(&sb, "- **Comparable** (both implementations): %d\n", s.Comparable)
	if s.Comparable > 0 {
		fmt.Fprintf(&sb, "  - gohivex faster: %d (%.1f%%)\n",
			s.GohivexFaster, float64(s.GohivexFaster)/float64(s.Comparable)*100)
		fmt.Fprintf(&sb, "  - hivex faster: %d (%.1f%%)\n",
			s.HivexFaster, float64(s.HivexFaster)/float64(s.Comparable)*100)
		fmt.Fprintf(&sb, "  - Average speedup: **%.2fx** (geometric mean %.2fx)\n",
			s.MeanSpeedup, s.GeoMeanSpeedup)
	}
	fmt.Fprintf(&sb, "- **gohivex-only features**: %d\n\n", s.GohivexOnly)

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | Hive | gohivex (ns/op) | hivex (ns/op) | Speedup | Memory (B/op) | Allocs |\n")
	sb.WriteString("|-----------|------|-----------------|---------------|---------|---------------|--------|\n")
	for i := range cs {
		writeTableRow(&sb, &cs[i])
	}
	sb.WriteString("\n")

	sb.WriteString("## Performance by Category\n\n")
	byCategory := make(map[string][]float64)
	for i := range cs {
		c := &cs[i]
		if c.Speedup > 0 && !c.GohivexOnly {
			cat := categorize(c)
			byCategory[cat] = append(byCategory[cat], c.Speedup)
		}
	}
	for _, cat := range categoryOrder() {
		if cat == gohivexOnlyCategory {
			if s.GohivexOnly > 0 {
				fmt.Fprintf(&sb, "- **%s**: gohivex-only features\n", cat)
			}
			continue
		}
		speedups := byCategory[cat]
		if len(speedups) == 0 {
			continue
		}
		avg := stats.Mean(speedups)
		status := "✓"
		if avg < 1.0 {
			status = "✗"
		}
		fmt.Fprintf(&sb, "- %s **%s**: %.2fx average speedup\n", status, cat, avg)
	}
	sb.WriteString("\n")

	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **Speedup > 1.0**: gohivex is faster ✓\n")
	sb.WriteString("- **Speedup < 1.0**: hivex is faster ✗\n")
	sb.WriteString("- **Memory comparison**: Lower is better\n")
	sb.WriteString("- **Allocations**: Fewer is better\n")
	sb.WriteString("- **gohivex-only**: Features not available in hivex\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTableRow(sb *strings.Builder, c *benchcmp.Comparison) {
	if c.GohivexOnly {
		fmt.Fprintf(sb, "| %s | %s | %s | *N/A* | *gohivex only* | %s | %s |\n",
			c.Operation, c.HiveSize,
			formatNumber(c.GohivexNs),
			formatBytes(c.GohivexMem),
			formatNumber(float64(c.GohivexAllocs)))
		return
	}

	indicator, speedupStyle := "✓", "**"
	if c.Speedup < 1.0 {
		indicator, speedupStyle = "✗", ""
	}
	fmt.Fprintf(sb, "| %s | %s | %s | %s | %s%.2fx%s %s | %s vs %s%s | %s vs %s%s |\n",
		c.Operation, c.HiveSize,
		formatNumber(c.GohivexNs), formatNumber(c.HivexNs),
		speedupStyle, c.Speedup, speedupStyle, indicator,
		formatBytes(c.GohivexMem), formatBytes(c.HivexMem), lessIsBetter(c.GohivexMem, c.HivexMem),
		formatNumber(float64(c.GohivexAllocs)), formatNumber(float64(c.HivexAllocs)),
		lessIsBetter(c.GohivexAllocs, c.HivexAllocs))
}

func lessIsBetter(gohivex, hivex int64) string {
	switch {
	case gohivex < hivex:
		return " ✓"
	case gohivex > hivex:
		return " ✗"
	}
	return ""
}

func formatNumber(n float64) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.2fM", n/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1024*1024:
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	case b >= 1024:
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
