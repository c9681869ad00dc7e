// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"encoding/json"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// A Reader reads benchmark results from a line-oriented stream.
//
// Its API is modeled on bufio.Scanner: call Scan to advance to the
// next result, Result to retrieve it, and Err after Scan returns false
// to check for I/O errors.
//
// Lines that match neither encoding are skipped. Skipping is normal
// for mixed or noisy input and is never reported as an error.
type Reader struct {
	s      *bufio.Scanner
	result Result
	err    error
}

// NewReader constructs a Reader parsing benchmark results from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// Scan advances the reader to the next parseable line and reports
// whether one was found. Once Scan returns false, it always returns
// false.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		line := strings.TrimSpace(r.s.Text())
		if line == "" {
			continue
		}
		// The JSON encoding is self-delimiting, so try it first when
		// the line can possibly be one. A line that starts with "{"
		// but fails to decode still gets a shot at the text grammar.
		if line[0] == '{' {
			if res, ok := parseJSONLine(line); ok {
				r.result = res
				return true
			}
		}
		if res, ok := parseTextLine(line); ok {
			r.result = res
			return true
		}
	}
	r.err = r.s.Err()
	return false
}

// Result returns the record read by the last successful call to Scan.
// The returned Result is overwritten by the next call to Scan; callers
// that retain it should copy the value.
func (r *Reader) Result() *Result {
	return &r.result
}

// Err returns the first I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll collects every parseable result from rd.
func ReadAll(rd io.Reader) ([]Result, error) {
	r := NewReader(rd)
	var out []Result
	for r.Scan() {
		out = append(out, *r.Result())
	}
	return out, r.Err()
}

// jsonLine is the wire form of one structured benchmark record, as
// written by the suite's JSON post-processor. B and A are omitted for
// benchmarks run without -benchmem.
type jsonLine struct {
	Name string
	N    int
	T    float64
	B    int64
	A    int64
}

// parseJSONLine decodes the structured encoding. The benchmark name
// carries the grouping key as slash-separated segments:
//
//	Benchmark<Operation>/<impl>[/<size>[/<variant>]]
//
// Names with fewer than two segments belong to some other suite and
// are skipped.
func parseJSONLine(line string) (Result, bool) {
	var j jsonLine
	if err := json.Unmarshal([]byte(line), &j); err != nil {
		return Result{}, false
	}
	parts := strings.Split(j.Name, "/")
	if len(parts) < 2 {
		return Result{}, false
	}
	op := strings.TrimPrefix(parts[0], "Benchmark")
	var size string
	if len(parts) >= 3 {
		size = parts[2]
	}
	if len(parts) >= 4 && parts[3] != "" {
		op += "/" + parts[3]
	}
	return Result{
		Name:        j.Name,
		Operation:   op,
		HiveSize:    size,
		Impl:        parts[1],
		Iters:       j.N,
		NsPerOp:     j.T,
		BytesPerOp:  j.B,
		AllocsPerOp: j.A,
	}, true
}

// textLine matches a plain benchmark line such as
//
//	BenchmarkNodeGetChild/hivex/medium-8  900000  150.2 ns/op  64 B/op  3 allocs/op
//
// The implementation segment is restricted to the two known tags so
// that unrelated benchmarks in a mixed stream are ignored. The B/op
// and allocs/op fields are optional.
var textLine = regexp.MustCompile(`^(Benchmark(\w+)/(gohivex|hivex)/(\w+)(?:/(.+?))?)-\d+\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)

func parseTextLine(line string) (Result, bool) {
	m := textLine.FindStringSubmatch(line)
	if m == nil {
		return Result{}, false
	}
	op := m[2]
	if m[5] != "" {
		op += "/" + m[5]
	}
	iters, err := strconv.Atoi(m[6])
	if err != nil {
		return Result{}, false
	}
	ns, err := strconv.ParseFloat(m[7], 64)
	if err != nil {
		return Result{}, false
	}
	var bytesPerOp, allocsPerOp int64
	if m[8] != "" {
		bytesPerOp, _ = strconv.ParseInt(m[8], 10, 64)
	}
	if m[9] != "" {
		allocsPerOp, _ = strconv.ParseInt(m[9], 10, 64)
	}
	return Result{
		Name:        m[1],
		Operation:   op,
		HiveSize:    m[4],
		Impl:        m[3],
		Iters:       iters,
		NsPerOp:     ns,
		BytesPerOp:  bytesPerOp,
		AllocsPerOp: allocsPerOp,
	}, true
}
