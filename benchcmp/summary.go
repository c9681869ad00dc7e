// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcmp

import "github.com/aclements/go-moremath/stats"

// A Summary aggregates a comparison set for reporting.
type Summary struct {
	// Total is the number of comparisons summarized.
	Total int

	// Comparable counts the rows with a computed speedup, that is,
	// rows where both implementations reported a positive time.
	Comparable int

	GohivexFaster int // comparable rows with Speedup > 1
	HivexFaster   int // comparable rows with Speedup < 1
	GohivexOnly   int

	// MeanSpeedup and GeoMeanSpeedup are taken over the comparable
	// rows. Both are 0 when there are none.
	MeanSpeedup    float64
	GeoMeanSpeedup float64
}

// Summarize computes the Summary of cs. Rows with no computed speedup
// and no GohivexOnly flag count toward Total only.
func Summarize(cs []Comparison) Summary {
	s := Summary{Total: len(cs)}
	var speedups []float64
	for i := range cs {
		c := &cs[i]
		if c.GohivexOnly {
			s.GohivexOnly++
			continue
		}
		if c.Speedup == 0 {
			continue
		}
		s.Comparable++
		speedups = append(speedups, c.Speedup)
		switch {
		case c.Speedup > 1:
			s.GohivexFaster++
		case c.Speedup < 1:
			s.HivexFaster++
		}
	}
	if len(speedups) > 0 {
		s.MeanSpeedup = stats.Mean(speedups)
		s.GeoMeanSpeedup = stats.GeoMean(speedups)
	}
	return s
}
