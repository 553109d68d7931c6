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
	"github.com/interlink-data/interlink/fsio"

	"golang.org/x/exp/slices"
)

// Split is one contiguous byte range of exactly one target
// file, assigned to one parallel work unit.
//
// A Split is immutable and self-describing: it carries
// everything a worker needs to read its records, with no
// back-reference to resolver or planner state, so it can be
// serialized and handed to a remote process as-is.
type Split struct {
	// Path is the target file path within the InputFS.
	Path string `json:"path"`
	// Start is the byte offset at which the split begins.
	Start int64 `json:"start"`
	// Length is the nominal length of the split in bytes.
	// The record reader may read slightly past
	// Start+Length to finish a line that straddles
	// the boundary.
	Length int64 `json:"length"`
	// ETag identifies the target contents at planning
	// time. When non-empty, reading verifies it against
	// the file's current ETag so that a target swapped
	// out between planning and execution is detected
	// rather than silently misread.
	ETag string `json:"etag,omitempty"`
	// Hosts lists hosts that store the blocks this
	// split overlaps. Scheduling hints only.
	Hosts []string `json:"hosts,omitempty"`
}

// End returns the nominal end offset of the split.
func (s *Split) End() int64 { return s.Start + s.Length }

// plan partitions each target independently into splits of
// roughly nominal size, where nominal is derived from the
// total input size and the desired split count.
//
// For every target the produced ranges exactly tile
// [0, target.Size) in ascending order with no gap or overlap,
// and no split spans two targets. The split count is advisory:
// short targets produce a single split and trailing remainders
// smaller than the slop threshold are folded into the
// preceding split.
func plan(targets []Target, conf *SplitConfig) []Split {
	total := int64(0)
	for i := range targets {
		total += targets[i].Size
	}
	nominal := conf.nominal(total)
	slop := conf.slop(nominal)
	var out []Split
	for i := range targets {
		out = append(out, planTarget(&targets[i], nominal, slop)...)
	}
	return out
}

func planTarget(t *Target, nominal, slop int64) []Split {
	if t.Size <= nominal {
		return []Split{{
			Path:   t.Path,
			Start:  0,
			Length: t.Size,
			ETag:   t.ETag,
			Hosts:  hostsIn(t.Blocks, 0, t.Size),
		}}
	}
	var out []Split
	off := int64(0)
	for off < t.Size {
		end := off + nominal
		// prefer ending on a block boundary so a split's
		// bytes stay on as few hosts as possible
		if a := alignDown(t.Blocks, end); a > off {
			end = a
		}
		if end >= t.Size || t.Size-end < slop {
			end = t.Size
		}
		out = append(out, Split{
			Path:   t.Path,
			Start:  off,
			Length: end - off,
			ETag:   t.ETag,
			Hosts:  hostsIn(t.Blocks, off, end),
		})
		off = end
	}
	return out
}

// alignDown returns the largest block start boundary
// at or below x, or 0 if there are no blocks.
func alignDown(blocks []fsio.Block, x int64) int64 {
	best := int64(0)
	for i := range blocks {
		if blocks[i].Offset <= x && blocks[i].Offset > best {
			best = blocks[i].Offset
		}
	}
	return best
}

// hostsIn returns the union of the hosts of all blocks
// overlapping [start, end), preserving block order and
// dropping duplicates.
func hostsIn(blocks []fsio.Block, start, end int64) []string {
	var hosts []string
	for i := range blocks {
		b := &blocks[i]
		if b.Offset >= end || b.Offset+b.Length <= start {
			continue
		}
		for _, h := range b.Hosts {
			if !slices.Contains(hosts, h) {
				hosts = append(hosts, h)
			}
		}
	}
	return hosts
}
