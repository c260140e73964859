// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bufio"
	"io"
	"io/fs"
	"os"

	"cogentcore.org/core/base/errors"
)

// Open reads a grid from the given CSV file, one record per line.
// Note that the expected dialect is a plain spreadsheet export with an
// arbitrary single-character delimiter and no quoting, not RFC 4180.
func Open(filename string, cfg Config) (*Grid, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp), cfg)
}

// OpenFS is the version of [Open] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, cfg Config) (*Grid, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return Read(bufio.NewReader(fp), cfg)
}

// Read reads a grid from the given reader, one record per line,
// and constructs a [Grid] via [New].
func Read(r io.Reader, cfg Config) (*Grid, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(lines, cfg)
}
