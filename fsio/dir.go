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
	"encoding/base32"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// NewDirFS creates a new DirFS in dir.
func NewDirFS(dir string) *DirFS {
	return &DirFS{
		FS:   os.DirFS(dir),
		Root: dir,
	}
}

// DirFS is an InputFS and UploadFS
// that is rooted in a particular directory.
type DirFS struct {
	fs.FS
	Root string
	Log  func(f string, args ...interface{})

	// BlockSize, if non-zero, causes Locations
	// to report the file carved into blocks of
	// this size, all hosted locally. Useful for
	// exercising block-aligned split planning
	// against local data.
	BlockSize int64
}

var (
	_ InputFS  = (*DirFS)(nil)
	_ UploadFS = (*DirFS)(nil)
	_ LocateFS = (*DirFS)(nil)
)

func hashFile(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	_, err = io.Copy(h, r)
	if err != nil {
		return "", err
	}
	return "b2sum:" + base32.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// Prefix implements InputFS.Prefix
func (d *DirFS) Prefix() string {
	return "file://"
}

// ETag implements InputFS.ETag
func (d *DirFS) ETag(fullpath string, info fs.FileInfo) (string, error) {
	fullpath = path.Clean(fullpath)
	if d.Log != nil {
		d.Log("ETag %s", fullpath)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("cannot get ETag of non-regular file %s", fullpath)
	}
	f, err := d.Open(fullpath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return hashFile(f)
}

// Locations implements LocateFS.Locations.
// When BlockSize is zero the whole file is
// reported as a single local block.
func (d *DirFS) Locations(fullpath string, info fs.FileInfo) ([]Block, error) {
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("cannot get block locations of non-regular file %s", fullpath)
	}
	size := info.Size()
	if size == 0 {
		return nil, nil
	}
	bs := d.BlockSize
	if bs <= 0 || bs >= size {
		return []Block{{Offset: 0, Length: size, Hosts: []string{"localhost"}}}, nil
	}
	var blocks []Block
	for off := int64(0); off < size; off += bs {
		length := bs
		if size-off < length {
			length = size - off
		}
		blocks = append(blocks, Block{Offset: off, Length: length, Hosts: []string{"localhost"}})
	}
	return blocks, nil
}

// WriteFile implements UploadFS.WriteFile
func (d *DirFS) WriteFile(fullpath string, buf []byte) (string, error) {
	if d.Log != nil {
		d.Log("WriteFile %s", fullpath)
	}
	if !fs.ValidPath(fullpath) {
		return "", fs.ErrInvalid
	}
	fullpath = filepath.Clean(filepath.Join(d.Root, fullpath))
	dir, base := filepath.Split(fullpath)
	if dir == "" {
		dir = "."
	}
	err := os.MkdirAll(dir, 0750)
	if err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(dir, base)
	if err != nil {
		if d.Log != nil {
			d.Log("CreateTemp: %s", err)
		}
		return "", err
	}
	_, err = tmp.Write(buf)
	tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	err = os.Rename(tmp.Name(), fullpath)
	if err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	ret := blake2b.Sum256(buf)
	return "b2sum:" + base32.StdEncoding.EncodeToString(ret[:]), nil
}
