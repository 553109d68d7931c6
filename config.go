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
	"fmt"
	"io"
	"io/fs"

	"sigs.k8s.io/yaml"
)

// DefaultSlopFraction is the fraction of the nominal split
// size below which a trailing remainder is merged into the
// preceding split. It applies when SplitConfig.SlopFraction
// is zero.
const DefaultSlopFraction = 0.1

// SplitConfig carries the planning parameters that the
// surrounding execution framework would otherwise keep
// in ambient job configuration. Every entry point takes
// the configuration explicitly; nothing in this module
// reads global state.
type SplitConfig struct {
	// InputPaths are the configured input roots,
	// as paths within the InputFS being planned.
	// At least one path must be present.
	InputPaths []string `json:"input_paths"`
	// WantSplits is the desired number of splits.
	// It is advisory: the planner sizes splits from
	// it but the actual count may differ.
	WantSplits int `json:"want_splits,omitempty"`
	// MinSplitSize, if non-zero, is a lower bound
	// on the nominal split size in bytes.
	MinSplitSize int64 `json:"min_split_size,omitempty"`
	// MaxSplitSize, if non-zero, is an upper bound
	// on the nominal split size in bytes.
	MaxSplitSize int64 `json:"max_split_size,omitempty"`
	// SlopFraction overrides DefaultSlopFraction
	// when non-zero.
	SlopFraction float64 `json:"slop_fraction,omitempty"`
}

// just pick an upper limit to prevent DoS
const maxConfSize = 1024 * 1024

// DecodeConfig decodes a SplitConfig from src.
// The contents may be YAML or JSON.
//
// See also: OpenConfig
func DecodeConfig(src io.Reader) (*SplitConfig, error) {
	buf, err := io.ReadAll(io.LimitReader(src, maxConfSize+1))
	if err != nil {
		return nil, err
	}
	if len(buf) > maxConfSize {
		return nil, fmt.Errorf("config beyond size limit %d", maxConfSize)
	}
	c := new(SplitConfig)
	if err := yaml.Unmarshal(buf, c); err != nil {
		return nil, err
	}
	return c, nil
}

// OpenConfig calls DecodeConfig on the named file in s.
func OpenConfig(s fs.FS, name string) (*SplitConfig, error) {
	f, err := s.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeConfig(f)
}

// nominal computes the nominal split size for
// a total input of [total] bytes.
func (c *SplitConfig) nominal(total int64) int64 {
	want := c.WantSplits
	if want <= 0 {
		want = 1
	}
	nominal := total / int64(want)
	if nominal < c.MinSplitSize {
		nominal = c.MinSplitSize
	}
	if nominal < 1 {
		nominal = 1
	}
	if c.MaxSplitSize > 0 && nominal > c.MaxSplitSize {
		nominal = c.MaxSplitSize
	}
	return nominal
}

// slop computes the merge threshold for trailing
// remainders given the nominal split size.
func (c *SplitConfig) slop(nominal int64) int64 {
	frac := c.SlopFraction
	if frac == 0 {
		frac = DefaultSlopFraction
	}
	if frac < 0 {
		return 0
	}
	return int64(frac * float64(nominal))
}
