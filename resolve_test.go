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
	"reflect"
	"strings"
	"testing"
)

func targetPaths(targets []Target) []string {
	var out []string
	for i := range targets {
		out = append(out, targets[i].Path)
	}
	return out
}

// Resolution preserves manifest enumeration order and
// line order within each manifest.
func TestResolveOrder(t *testing.T) {
	dfs := testFS(t)
	writeText(t, dfs, "data/a", "1\n")
	writeText(t, dfs, "data/b", "2\n")
	writeText(t, dfs, "data/c", "3\n")
	writeManifest(t, dfs, "links/m1", "data/c", "data/a")
	writeManifest(t, dfs, "links/m2", "data/b")

	targets, err := resolveSymlinks(dfs, []string{"links"})
	if err != nil {
		t.Fatal(err)
	}
	// m1 before m2 in the directory listing
	want := []string{"data/c", "data/a", "data/b"}
	if got := targetPaths(targets); !reflect.DeepEqual(want, got) {
		t.Errorf("want %v got %v", want, got)
	}
	for i := range targets {
		if targets[i].Size != 2 {
			t.Errorf("target %s: size %d", targets[i].Path, targets[i].Size)
		}
		if targets[i].ETag == "" {
			t.Errorf("target %s: no ETag", targets[i].Path)
		}
		if len(targets[i].Blocks) == 0 {
			t.Errorf("target %s: no block locations", targets[i].Path)
		}
	}
}

// Repeated references are kept, not deduplicated: each
// reference is its own entry in the logical input.
func TestResolveDuplicates(t *testing.T) {
	dfs := testFS(t)
	writeText(t, dfs, "data/a", "1\n")
	writeManifest(t, dfs, "links/m", "data/a", "data/a")

	targets, err := resolveSymlinks(dfs, []string{"links"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"data/a", "data/a"}
	if got := targetPaths(targets); !reflect.DeepEqual(want, got) {
		t.Errorf("want %v got %v", want, got)
	}
	cs := summarize(targets)
	if cs.TotalLength != 4 || cs.FileCount != 2 {
		t.Errorf("duplicates must double-count: %+v", cs)
	}
}

// Manifest lines may carry the filesystem origin prefix or
// a leading slash; blank lines are skipped.
func TestResolveLineForms(t *testing.T) {
	dfs := testFS(t)
	writeText(t, dfs, "data/a", "1\n")
	writeText(t, dfs, "data/b", "2\n")
	manifest := strings.Join([]string{
		"file://data/a",
		"",
		"/data/b",
		"",
	}, "\n") + "\n"
	if _, err := dfs.WriteFile("links/m", []byte(manifest)); err != nil {
		t.Fatal(err)
	}
	targets, err := resolveSymlinks(dfs, []string{"links"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"data/a", "data/b"}
	if got := targetPaths(targets); !reflect.DeepEqual(want, got) {
		t.Errorf("want %v got %v", want, got)
	}
}

func TestResolveDirectoryTarget(t *testing.T) {
	dfs := testFS(t)
	writeText(t, dfs, "data/sub/a", "1\n")
	writeManifest(t, dfs, "links/m", "data/sub")

	_, err := resolveSymlinks(dfs, []string{"links"})
	if err == nil {
		t.Fatal("expected error for directory target")
	}
	if !strings.Contains(err.Error(), "directory") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolveMissingRoot(t *testing.T) {
	dfs := testFS(t)
	if _, err := resolveSymlinks(dfs, []string{"nowhere"}); err == nil {
		t.Fatal("expected error for missing root")
	}
}

// Multiple roots resolve in configured order.
func TestResolveMultipleRoots(t *testing.T) {
	dfs := testFS(t)
	writeText(t, dfs, "data/a", "1\n")
	writeText(t, dfs, "data/b", "2\n")
	writeManifest(t, dfs, "links1/m", "data/b")
	writeManifest(t, dfs, "links2/m", "data/a")

	targets, err := resolveSymlinks(dfs, []string{"links2", "links1"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"data/a", "data/b"}
	if got := targetPaths(targets); !reflect.DeepEqual(want, got) {
		t.Errorf("want %v got %v", want, got)
	}
}

func TestResolveDirect(t *testing.T) {
	dfs := testFS(t)
	writeText(t, dfs, "data/x/a", "1\n")
	writeText(t, dfs, "data/y/b", "22\n")

	targets, err := resolveDirect(dfs, []string{"data"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"data/x/a", "data/y/b"}
	if got := targetPaths(targets); !reflect.DeepEqual(want, got) {
		t.Errorf("want %v got %v", want, got)
	}
	if targets[1].Size != 3 {
		t.Errorf("size %d", targets[1].Size)
	}
}
