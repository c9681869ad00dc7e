// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"io"
	"time"

	"github.com/google/safehtml/template"

	"github.com/gohivex/benchgraph/benchcmp"
)

var htmlTemplate = template.Must(template.New("benchreport").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>gohivex vs hivex</title>
<style>
.benchcmp { border-collapse: collapse; }
.benchcmp th:nth-child(1) { text-align: left; }
.benchcmp td:nth-child(1n+3) { text-align: right; padding: 0em 1em; }
.benchcmp th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
.benchcmp .better td:nth-child(5) { font-weight: bold; }
.benchcmp .worse td:nth-child(5) { font-weight: bold; color: #c00; }
.benchcmp .only td:nth-child(5) { font-style: italic; }
</style>
</head>
<body>
<h1>Benchmark Report</h1>
<p>Generated: {{.Generated}}</p>
<ul>
<li>Total benchmarks: {{.Summary.Total}}</li>
<li>Comparable (both implementations): {{.Summary.Comparable}}</li>
{{if gt .Summary.Comparable 0 -}}
<li>gohivex faster: {{.Summary.GohivexFaster}}, hivex faster: {{.Summary.HivexFaster}}</li>
<li>Average speedup: {{.MeanSpeedup}} (geometric mean {{.GeoMeanSpeedup}})</li>
{{end -}}
<li>gohivex-only features: {{.Summary.GohivexOnly}}</li>
</ul>
<table class='benchcmp'>
<tr><th>Operation<th>Hive<th>gohivex (ns/op)<th>hivex (ns/op)<th>Speedup<th>Memory (B/op)<th>Allocs
{{range .Rows -}}
<tr class='{{.Class}}'><td>{{.Operation}}<td>{{.HiveSize}}<td>{{.GohivexNs}}<td>{{.HivexNs}}<td>{{.Speedup}}<td>{{.Memory}}<td>{{.Allocs}}
{{end -}}
</table>
</body>
</html>
`)))

type htmlData struct {
	Generated      string
	Summary        benchcmp.Summary
	MeanSpeedup    string
	GeoMeanSpeedup string
	Rows           []htmlRow
}

type htmlRow struct {
	Class     string
	Operation string
	HiveSize  string
	GohivexNs string
	HivexNs   string
	Speedup   string
	Memory    string
	Allocs    string
}

// FormatHTML writes the same report as FormatText as a standalone HTML
// page.
func FormatHTML(w io.Writer, cs []benchcmp.Comparison, now time.Time) error {
	s := benchcmp.Summarize(cs)
	data := htmlData{
		Generated:      now.Format("2006-01-02 15:04:05"),
		Summary:        s,
		MeanSpeedup:    fmt.Sprintf("%.2fx", s.MeanSpeedup),
		GeoMeanSpeedup: fmt.Sprintf("%.2fx", s.GeoMeanSpeedup),
		Rows:           make([]htmlRow, 0, len(cs)),
	}
	for i := range cs {
		data.Rows = append(data.Rows, htmlRowFor(&cs[i]))
	}
	return htmlTemplate.Execute(w, data)
}

func htmlRowFor(c *benchcmp.Comparison) htmlRow {
	if c.GohivexOnly {
		return htmlRow{
			Class:     "only",
			Operation: c.Operation,
			HiveSize:  c.HiveSize,
			GohivexNs: formatNumber(c.GohivexNs),
			HivexNs:   "N/A",
			Speedup:   "gohivex only",
			Memory:    formatBytes(c.GohivexMem),
			Allocs:    formatNumber(float64(c.GohivexAllocs)),
		}
	}
	class := "better"
	if c.Speedup < 1.0 {
		class = "worse"
	}
	return htmlRow{
		Class:     class,
		Operation: c.Operation,
		HiveSize:  c.HiveSize,
		GohivexNs: formatNumber(c.GohivexNs),
		HivexNs:   formatNumber(c.HivexNs),
		Speedup:   fmt.Sprintf("%.2fx", c.Speedup),
		Memory:    formatBytes(c.GohivexMem) + " vs " + formatBytes(c.HivexMem),
		Allocs:    formatNumber(float64(c.GohivexAllocs)) + " vs " + formatNumber(float64(c.HivexAllocs)),
	}
}
