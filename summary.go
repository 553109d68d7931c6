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

// ContentSummary is the aggregate view of a logical input:
// the total number of bytes and files behind it, regardless
// of any manifest indirection in between.
type ContentSummary struct {
	// TotalLength is the sum of the sizes of all
	// resolved targets. Repeated references are
	// counted once per reference.
	TotalLength int64 `json:"total_length"`
	// FileCount is the number of resolved references,
	// not the number of distinct files.
	FileCount int64 `json:"file_count"`
	// DirCount is always zero: a reference that
	// resolves to a directory is a configuration
	// error, not a countable entry.
	DirCount int64 `json:"dir_count"`
}

// summarize reduces a resolved target sequence to its
// ContentSummary. It performs no I/O.
func summarize(targets []Target) ContentSummary {
	var cs ContentSummary
	for i := range targets {
		cs.TotalLength += targets[i].Size
		cs.FileCount++
	}
	return cs
}
