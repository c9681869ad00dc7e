// Copyright 2025 The gohivex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"io"
	"os"
)

// Open resolves a benchmark input source: a non-empty path opens that
// file, the empty string means standard input. This is the desired
// behavior when the path comes from a command-line flag.
//
// The returned name is purely diagnostic, for error messages.
func Open(path string) (rc io.ReadCloser, name string, err error) {
	if path == "" {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}
