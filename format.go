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

// Package interlink makes manifest-indirected inputs look
// like ordinary directories of data files to a split-based
// batch processing framework.
//
// An input root holds manifest files, each a plain list of
// paths to the real data files. The package resolves that
// indirection and exposes the three operations the framework
// needs: an aggregate content summary, a size-based split
// plan with correct byte boundaries, and per-split line
// record readers that never duplicate or drop a line across
// split boundaries.
package interlink

import (
	"errors"

	"github.com/interlink-data/interlink/fsio"
)

// ErrNoInputPaths is returned by planning entry points when
// the configuration lists no input paths. The message text is
// fixed; the surrounding framework matches on it.
var ErrNoInputPaths = errors.New("No input paths specified in job.")

// InputFormat is the interface the execution framework plans
// and reads inputs through. Implementations differ only in
// how configured roots resolve to data files; summaries,
// split geometry, and record reading are shared.
type InputFormat interface {
	// ContentSummary resolves the configured input
	// and reduces it to aggregate size and file counts.
	ContentSummary(src fsio.InputFS, conf *SplitConfig) (ContentSummary, error)

	// Splits resolves the configured input and partitions
	// it into splits sized from conf. The configured split
	// count is advisory; see SplitConfig.
	Splits(src fsio.InputFS, conf *SplitConfig) ([]Split, error)

	// Records opens a reader for the line records of
	// one split previously produced by Splits.
	Records(src fsio.InputFS, split *Split) (*LineReader, error)
}

// checkInputs is the fail-fast input validation applied
// before any resolution or planning work touches the
// filesystem.
func checkInputs(conf *SplitConfig) error {
	if conf == nil || len(conf.InputPaths) == 0 {
		return ErrNoInputPaths
	}
	return nil
}

// SymlinkFormat is the manifest-indirected input format:
// the configured roots contain manifest files whose lines
// name the real data files.
type SymlinkFormat struct {
	// Log, if non-nil, receives diagnostic output
	// during resolution and planning.
	Log func(f string, args ...interface{})
}

var _ InputFormat = (*SymlinkFormat)(nil)

func (s *SymlinkFormat) logf(f string, args ...interface{}) {
	if s.Log != nil {
		s.Log(f, args...)
	}
}

// ContentSummary implements InputFormat.ContentSummary
func (s *SymlinkFormat) ContentSummary(src fsio.InputFS, conf *SplitConfig) (ContentSummary, error) {
	if err := checkInputs(conf); err != nil {
		return ContentSummary{}, err
	}
	targets, err := resolveSymlinks(src, conf.InputPaths)
	if err != nil {
		return ContentSummary{}, err
	}
	return summarize(targets), nil
}

// Splits implements InputFormat.Splits
func (s *SymlinkFormat) Splits(src fsio.InputFS, conf *SplitConfig) ([]Split, error) {
	if err := checkInputs(conf); err != nil {
		return nil, err
	}
	targets, err := resolveSymlinks(src, conf.InputPaths)
	if err != nil {
		return nil, err
	}
	splits := plan(targets, conf)
	s.logf("planned %d splits over %d targets", len(splits), len(targets))
	return splits, nil
}

// Records implements InputFormat.Records
func (s *SymlinkFormat) Records(src fsio.InputFS, split *Split) (*LineReader, error) {
	return NewLineReader(src, split)
}

// DirectFormat is the non-indirected input format: every
// regular file under the configured roots is itself a data
// file. It shares split geometry and record reading with
// SymlinkFormat.
type DirectFormat struct {
	// Log, if non-nil, receives diagnostic output
	// during resolution and planning.
	Log func(f string, args ...interface{})
}

var _ InputFormat = (*DirectFormat)(nil)

func (d *DirectFormat) logf(f string, args ...interface{}) {
	if d.Log != nil {
		d.Log(f, args...)
	}
}

// ContentSummary implements InputFormat.ContentSummary
func (d *DirectFormat) ContentSummary(src fsio.InputFS, conf *SplitConfig) (ContentSummary, error) {
	if err := checkInputs(conf); err != nil {
		return ContentSummary{}, err
	}
	targets, err := resolveDirect(src, conf.InputPaths)
	if err != nil {
		return ContentSummary{}, err
	}
	return summarize(targets), nil
}

// Splits implements InputFormat.Splits
func (d *DirectFormat) Splits(src fsio.InputFS, conf *SplitConfig) ([]Split, error) {
	if err := checkInputs(conf); err != nil {
		return nil, err
	}
	targets, err := resolveDirect(src, conf.InputPaths)
	if err != nil {
		return nil, err
	}
	splits := plan(targets, conf)
	d.logf("planned %d splits over %d targets", len(splits), len(targets))
	return splits, nil
}

// Records implements InputFormat.Records
func (d *DirectFormat) Records(src fsio.InputFS, split *Split) (*LineReader, error) {
	return NewLineReader(src, split)
}
