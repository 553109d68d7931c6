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
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/interlink-data/interlink/fsio"
)

// Target is one resolved reference to a data file.
// Targets are immutable once resolved; planning and
// reading consume them without further filesystem access
// beyond opening the file itself.
type Target struct {
	// Path is the path of the file within the InputFS.
	Path string
	// Size is the length of the file in bytes
	// at resolution time.
	Size int64
	// ETag identifies the file contents at
	// resolution time. May be empty if the
	// filesystem cannot produce ETags.
	ETag string
	// Blocks is the block layout of the file,
	// or nil if the filesystem has no locality
	// knowledge.
	Blocks []fsio.Block
}

// resolveSymlinks walks each root and treats every regular
// file found there as a manifest: a newline-separated list
// of paths to the real data files. Every non-blank manifest
// line is resolved to a Target.
//
// The result preserves root order, then the walk order of
// manifests within a root, then line order within a manifest.
// A root with no manifest files contributes nothing; a line
// naming a missing file or a directory fails the whole
// resolution.
func resolveSymlinks(src fsio.InputFS, roots []string) ([]Target, error) {
	var out []Target
	for _, root := range roots {
		err := fs.WalkDir(src, path.Clean(root), func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			targets, err := resolveManifest(src, p)
			if err != nil {
				return err
			}
			out = append(out, targets...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// resolveManifest reads one manifest file and resolves
// each of its lines in order.
func resolveManifest(src fsio.InputFS, name string) ([]Target, error) {
	f, err := src.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []Target
	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t, err := resolveTarget(src, line)
		if err != nil {
			return nil, fmt.Errorf("manifest %s line %d: %w", name, lineno, err)
		}
		out = append(out, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", name, err)
	}
	return out, nil
}

// cleanTarget normalizes one manifest line into a path
// that is valid for the given InputFS. Lines may carry
// the filesystem's origin prefix (e.g. "file://") or a
// leading slash; both are accepted and stripped.
func cleanTarget(src fsio.InputFS, line string) (string, error) {
	p := strings.TrimPrefix(line, src.Prefix())
	p = strings.TrimPrefix(p, "/")
	p = path.Clean(p)
	if !fs.ValidPath(p) {
		return "", fmt.Errorf("target %q: %w", line, fs.ErrInvalid)
	}
	return p, nil
}

func resolveTarget(src fsio.InputFS, line string) (Target, error) {
	p, err := cleanTarget(src, line)
	if err != nil {
		return Target{}, err
	}
	info, err := fs.Stat(src, p)
	if err != nil {
		return Target{}, err
	}
	if info.IsDir() {
		return Target{}, fmt.Errorf("target %s is a directory, not a data file", p)
	}
	etag, err := src.ETag(p, info)
	if err != nil {
		return Target{}, err
	}
	blocks, err := fsio.Locations(src, p, info)
	if err != nil {
		return Target{}, err
	}
	return Target{
		Path:   p,
		Size:   info.Size(),
		ETag:   etag,
		Blocks: blocks,
	}, nil
}

// resolveDirect walks each root and treats every regular
// file found there as a data file in its own right.
// This is the degenerate, non-indirected input layout;
// it shares resolution metadata with the symlink layout
// so summaries, planning, and reading are identical
// downstream.
func resolveDirect(src fsio.InputFS, roots []string) ([]Target, error) {
	var out []Target
	for _, root := range roots {
		err := fs.WalkDir(src, path.Clean(root), func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			etag, err := src.ETag(p, info)
			if err != nil {
				return err
			}
			blocks, err := fsio.Locations(src, p, info)
			if err != nil {
				return err
			}
			out = append(out, Target{
				Path:   p,
				Size:   info.Size(),
				ETag:   etag,
				Blocks: blocks,
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
