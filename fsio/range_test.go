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
	"io"
	"strings"
	"testing"
)

func TestOpenRange(t *testing.T) {
	d := NewDirFS(t.TempDir())
	etag, err := d.WriteFile("f", []byte("0123456789"))
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		off, width int64
		want       string
	}{
		{0, 10, "0123456789"},
		{0, 4, "0123"},
		{3, 4, "3456"},
		{3, -1, "3456789"},
		{10, -1, ""},
		{9, 100, "9"},
	}
	for i := range cases {
		rc, err := OpenRange(d, "f", etag, cases[i].off, cases[i].width)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		buf, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if string(buf) != cases[i].want {
			t.Errorf("case %d: want %q got %q", i, cases[i].want, buf)
		}
	}
}

func TestOpenRangeETagMismatch(t *testing.T) {
	d := NewDirFS(t.TempDir())
	if _, err := d.WriteFile("f", []byte("contents A")); err != nil {
		t.Fatal(err)
	}
	_, err := OpenRange(d, "f", "b2sum:bogus", 0, -1)
	if err == nil {
		t.Fatal("expected ETag mismatch")
	}
	if !strings.Contains(err.Error(), "ETag mismatch") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestOpenRangeNoETagCheck(t *testing.T) {
	d := NewDirFS(t.TempDir())
	if _, err := d.WriteFile("f", []byte("xyz")); err != nil {
		t.Fatal(err)
	}
	rc, err := OpenRange(d, "f", "", 1, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	buf, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "yz" {
		t.Errorf("got %q", buf)
	}
}

func TestOpenRangeMissing(t *testing.T) {
	d := NewDirFS(t.TempDir())
	if _, err := OpenRange(d, "absent", "", 0, -1); err == nil {
		t.Fatal("expected error")
	}
}
