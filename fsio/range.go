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

package fsio

import (
	"fmt"
	"io"
	"io/fs"
)

// OpenRangeFS is an [fs.FS] that can open a byte range
// of a named file at the same time that the etag of the
// file is checked against the etag of the file currently
// residing in the filesystem.
type OpenRangeFS interface {
	OpenRange(name, etag string, off, width int64) (io.ReadCloser, error)
}

type readCloser struct {
	io.Reader
	io.Closer
}

// OpenRange tries to open the byte range given by [off] to [off+width]
// of the file given by [name] with etag [etag].
// A negative [width] opens the range from [off] to the end of the file.
// An empty [etag] skips ETag verification; otherwise [src] must either
// implement [OpenRangeFS] or have an ETag method (see [InputFS]),
// and a mismatch between [etag] and the file's current ETag is an error.
//
// Unless [src] implements [OpenRangeFS], the file returned by
// [src.Open] must be either an [io.ReaderAt] or an [io.Seeker].
func OpenRange(src fs.FS, name, etag string, off, width int64) (io.ReadCloser, error) {
	if or, ok := src.(OpenRangeFS); ok {
		return or.OpenRange(name, etag, off, width)
	}
	f, err := src.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if etag != "" {
		etfs, ok := src.(interface {
			ETag(name string, info fs.FileInfo) (string, error)
		})
		if !ok {
			f.Close()
			return nil, fmt.Errorf("fsio.OpenRange: %T cannot verify ETags", src)
		}
		fetag, err := etfs.ETag(name, info)
		if err != nil {
			f.Close()
			return nil, err
		}
		if etag != fetag {
			f.Close()
			return nil, fmt.Errorf("fsio.OpenRange: ETag mismatch: %s != %s", etag, fetag)
		}
	}
	if width < 0 {
		width = info.Size() - off
		if width < 0 {
			width = 0
		}
	}
	if ra, ok := f.(io.ReaderAt); ok {
		return &readCloser{
			Reader: io.NewSectionReader(ra, off, width),
			Closer: f,
		}, nil
	}
	if seeker, ok := f.(io.Seeker); ok {
		_, err := seeker.Seek(off, io.SeekStart)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{
			Reader: io.LimitReader(f, width),
			Closer: f,
		}, nil
	}
	f.Close()
	return nil, fmt.Errorf("cannot OpenRange on fs %T file %T", src, f)
}
