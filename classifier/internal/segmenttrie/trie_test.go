/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import "testing"

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("com.example", 1))
	must(t, tr.Insert("org.freedesktop.DBus.Error.Spawn", 2))
	must(t, tr.Insert("org.gnome.Shell.Error", 3))

	if v, ok, p := tr.MatchWithPattern("com.example.Net.Down"); !ok || v != 1 || p != "com.example" {
		t.Fatalf("match com.example.Net.Down => ok=%v v=%v p=%q; want 1, com.example", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("org.freedesktop.DBus.Error.Spawn.Unheard"); !ok || v != 2 || p != "org.freedesktop.DBus.Error.Spawn" {
		t.Fatalf("match Spawn.Unheard => ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("org.freedesktop.DBus.Error.Timeout"); ok {
		t.Fatalf("unrelated name must not match")
	}
}

func TestMatch_ElementBoundary(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("com.example", 1))
	if _, ok := tr.Match("com.examples.Error"); ok {
		t.Fatalf("must not match across element boundary")
	}
	if _, ok := tr.Match("com.exampl"); ok {
		t.Fatalf("partial element must not match")
	}
}

func TestMatch_CaseSensitive(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("org.freedesktop.DBus", 1))
	if _, ok := tr.Match("org.freedesktop.dbus.Error.Timeout"); ok {
		t.Fatalf("elements must be compared case-sensitively")
	}
}

func TestWildcard_OneElement(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("com.*.Net", 7))
	must(t, tr.Insert("com.example.Net", 8)) // exact should beat wildcard at same depth

	if v, ok, p := tr.MatchWithPattern("com.example.Net.Down"); !ok || v != 8 || p != "com.example.Net" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("com.acme.Net.Down"); !ok || v != 7 || p != "com.*.Net" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("com.Net"); ok {
		t.Fatalf("wildcard should not match zero elements")
	}
}

func TestLPM_PrefersDeeperEvenIfExactBranchExists(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestInsert_LastValueWins(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("com.example", 1))
	must(t, tr.Insert("com.example", 2))
	if v, _ := tr.Match("com.example.X"); v != 2 {
		t.Fatalf("re-insert must replace value, got %d", v)
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "a..b", "*", "*.*", "com.my-app", "1com.example", "com.example."} {
		if err := tr.Insert(p, 1); err == nil {
			t.Fatalf("Insert(%q) must be invalid", p)
		}
	}

	must(t, tr.Insert("a.b", 1))
	for _, s := range []string{"a..b", "a.b-c", "a.", ".a.b"} {
		if _, ok := tr.Match(s); ok {
			t.Fatalf("Match(%q) should be false for malformed name", s)
		}
	}
}

func TestNilTrie(t *testing.T) {
	var tr *Trie[int]
	if err := tr.Insert("a.b", 1); err == nil {
		t.Fatalf("insert into nil trie must fail")
	}
	if _, ok := tr.Match("a.b"); ok {
		t.Fatalf("nil trie must not match")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
