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

// Package fsio defines the filesystem capabilities consumed
// by the planning and record-reading layers.
//
// Everything in this module reads (and, in tests, writes)
// through these interfaces rather than through a concrete
// runtime, so the same planning code runs against a local
// directory, an object store, or an in-memory fake.
package fsio

import (
	"io/fs"
)

// InputFS describes the FS implementation
// that is required for reading inputs.
type InputFS interface {
	fs.FS

	// Prefix should return a string
	// that is prepended to filesystem
	// paths to indicate the filesystem "origin."
	//
	// For example, an S3 bucket FS would have
	//   s3://bucket/
	// as its prefix.
	Prefix() string

	// ETag should return the ETag
	// for a given file. ETag should
	// be implemented for *at least*
	// ordinary files.
	ETag(fullpath string, info fs.FileInfo) (string, error)
}

// UploadFS describes the FS implementation
// that is required for writing outputs.
// Planning never writes; UploadFS exists for
// producers and test harnesses that create
// sample inputs.
type UploadFS interface {
	InputFS

	// WriteFile should create the
	// file at path with the given contents.
	// If the file already exists, it should
	// be overwritten atomically.
	// WriteFile should return the ETag associated
	// with the written file along with the first encountered error.
	WriteFile(path string, buf []byte) (etag string, err error)
}

// Block is one contiguous region of a file
// along with the hosts that store it.
// Hosts are scheduling hints only; reading
// through the FS works regardless of locality.
type Block struct {
	// Offset is the byte offset of the
	// block within its file.
	Offset int64
	// Length is the length of the block in bytes.
	// The final block of a file may be short.
	Length int64
	// Hosts lists the hosts that hold a
	// replica of this block.
	Hosts []string
}

// LocateFS can be implemented by an FS
// that knows where file blocks physically live.
// Filesystems with no locality knowledge
// simply do not implement it.
type LocateFS interface {
	fs.FS

	// Locations returns the block layout of the
	// file given by [name] with file info [info]
	// that has been produced by an [fs.Stat] call.
	Locations(name string, info fs.FileInfo) ([]Block, error)
}

// Locations returns the block layout of the named file
// if [src] implements [LocateFS], and (nil, nil) otherwise.
func Locations(src fs.FS, name string, info fs.FileInfo) ([]Block, error) {
	if l, ok := src.(LocateFS); ok {
		return l.Locations(name, info)
	}
	return nil, nil
}
