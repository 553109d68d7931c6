// Copyright 2026 Interlink Data, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package interlink

import (
	"bufio"
	"io"
	"io/fs"
	"strings"

	"github.com/interlink-data/interlink/fsio"
)

// LineReader yields the line records of one Split.
//
// The stream is sequential, forward-only, and finite;
// restarting means creating a new LineReader from the
// same Split value. A LineReader holds an open file
// handle until Close is called, even after Next has
// returned io.EOF.
//
// Line attribution across the splits of a target follows
// the usual convention for byte-range text splits: a split
// owns every line that *begins* inside [Start, Start+Length),
// reading past its nominal end to finish the final line if
// it straddles the boundary, and skipping the leading
// fragment of a line begun by the previous split. Reading
// all splits of a target in order therefore yields each of
// its lines exactly once.
type LineReader struct {
	rc     io.ReadCloser
	br     *bufio.Reader
	pos    int64 // offset in the target of the next unread byte
	end    int64 // nominal end; no line may begin at or beyond it
	err    error
	closed bool
}

// NewLineReader opens the target of [split] and positions
// the reader on the first line owned by the split.
//
// If the target is missing, unreadable, or (when the split
// carries an ETag) has changed since planning, NewLineReader
// fails without retrying.
func NewLineReader(src fs.FS, split *Split) (*LineReader, error) {
	off := split.Start
	if off > 0 {
		// open one byte early: if that byte is the previous
		// line's terminator, our first line starts exactly at
		// split.Start and nothing real gets skipped below
		off--
	}
	rc, err := fsio.OpenRange(src, split.Path, split.ETag, off, -1)
	if err != nil {
		return nil, err
	}
	r := &LineReader{
		rc:  rc,
		br:  bufio.NewReader(rc),
		pos: off,
		end: split.End(),
	}
	if split.Start > 0 {
		// the line straddling our start belongs to the
		// previous split; discard through its terminator
		raw, err := r.br.ReadString('\n')
		if err != nil && err != io.EOF {
			rc.Close()
			return nil, err
		}
		r.pos += int64(len(raw))
	}
	return r, nil
}

// Next returns the byte offset at which the next line begins
// in the target file along with the line's text, stripped of
// its terminator. It returns io.EOF once every line owned by
// the split has been returned.
func (r *LineReader) Next() (pos int64, line string, err error) {
	if r.err != nil {
		return 0, "", r.err
	}
	if r.pos >= r.end {
		r.err = io.EOF
		return 0, "", r.err
	}
	start := r.pos
	raw, err := r.br.ReadString('\n')
	if err != nil && err != io.EOF {
		r.err = err
		return 0, "", r.err
	}
	if raw == "" {
		r.err = io.EOF
		return 0, "", r.err
	}
	r.pos += int64(len(raw))
	line = strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	return start, line, nil
}

// Close releases the underlying file handle.
// It is safe to call Close more than once and
// safe to call it before the split is exhausted.
func (r *LineReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.err == nil {
		r.err = fs.ErrClosed
	}
	return r.rc.Close()
}
