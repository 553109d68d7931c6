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
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	cases := []struct {
		sizes []int64
		want  ContentSummary
	}{
		{nil, ContentSummary{}},
		{[]int64{40, 42}, ContentSummary{TotalLength: 82, FileCount: 2}},
		{[]int64{0, 0}, ContentSummary{FileCount: 2}},
		{[]int64{7, 7, 7}, ContentSummary{TotalLength: 21, FileCount: 3}},
	}
	for i := range cases {
		got := summarize(mktargets(cases[i].sizes...))
		if got != cases[i].want {
			t.Errorf("case %d: want %+v got %+v", i, cases[i].want, got)
		}
	}
}

// Scenario from the format contract: a manifest referencing a
// 40-byte file and then a 42-byte file reports 82 bytes over
// 2 files and no directories.
func TestSummaryThroughManifest(t *testing.T) {
	dfs := testFS(t)
	writeText(t, dfs, "data/a", strings.Repeat("x", 39)+"\n")
	writeText(t, dfs, "data/b", strings.Repeat("y", 41)+"\n")
	writeManifest(t, dfs, "links/m", "data/a", "data/b")

	f := &SymlinkFormat{}
	cs, err := f.ContentSummary(dfs, &SplitConfig{InputPaths: []string{"links"}})
	if err != nil {
		t.Fatal(err)
	}
	want := ContentSummary{TotalLength: 82, FileCount: 2, DirCount: 0}
	if cs != want {
		t.Errorf("want %+v got %+v", want, cs)
	}
}
