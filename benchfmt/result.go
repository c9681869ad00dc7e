// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt parses the benchmark output of the gohivex
// comparison suite.
//
// The suite emits one measurement per line in one of two encodings: a
// JSON object per line (the post-processed form of "go test -bench
// -json") or the plain text benchmark line printed by the testing
// package. Reader accepts a stream mixing both, along with arbitrary
// noise, and yields only the lines that parse.
package benchfmt

import "strings"

// The two implementations under comparison. These are the only
// implementation tags the parser accepts in benchmark names.
const (
	ImplGohivex = "gohivex"
	ImplHivex   = "hivex"
)

// A Result is a single parsed benchmark measurement.
//
// Results are immutable once returned by a Reader.
type Result struct {
	// Name is the raw benchmark identifier, without the trailing
	// -GOMAXPROCS suffix.
	Name string

	// Operation is the operation under test, including an optional
	// "/variant" suffix (for example "NodeGetValue/unicode").
	Operation string

	// HiveSize labels the hive file's size category ("small",
	// "medium", ...). It may be empty.
	HiveSize string

	// Impl is the implementation tag, ImplGohivex or ImplHivex.
	Impl string

	// Iters is the iteration count the measurement was averaged over.
	Iters int

	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// BaseOperation returns Operation without any "/variant" suffix.
func (r *Result) BaseOperation() string {
	if i := strings.IndexByte(r.Operation, '/'); i >= 0 {
		return r.Operation[:i]
	}
	return r.Operation
}
