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

import (
	"errors"
	"strings"
)

// Trie is an element-aware prefix index for dot-separated bus names.
// Each node represents one element; the wildcard "*" matches exactly one
// element. Matching is longest-prefix-match (LPM) on element boundaries, so
// a more specific rule wins over a shorter one.
//
// Elements are case-sensitive, like the names they index.
type Trie[T any] struct {
	// children contains next elements, including "*" for a single-element wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the prefix as inserted, set only when hasVal=true, so
	// MatchWithPattern does not build strings during lookup.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty elements, contains invalid characters, or consists only of
	// wildcards.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated prefix to the trie and associates it with val.
//
// Examples:
//
//	"com.example"
//	"org.freedesktop.DBus.Error.Spawn"
//	"com.*.Net"
//
// A prefix made only of "*" elements is rejected because it would catch
// every name. Inserting the same prefix twice keeps the last value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match finds the value of the deepest prefix matching name.
// If name is malformed or nothing matches, it returns the zero value and false.
func (t *Trie[T]) Match(name string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(name)
	return v, ok
}

// MatchWithPattern is Match that also returns the stored rule pattern,
// for diagnostics.
//
// Both the exact child and the "*" child are explored at every element, so
// a wildcard path that reaches deeper beats a shallower exact one. At equal
// depth the exact path wins because it is explored first.
func (t *Trie[T]) MatchWithPattern(name string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(name) {
			return
		}
		// scan the next element [off:i), validating [A-Za-z_][A-Za-z0-9_]*
		i := off
		if !elementStart(name[i]) {
			return
		}
		i++
		for i < len(name) && name[i] != '.' {
			if !elementByte(name[i]) {
				return
			}
			i++
		}
		seg := name[off:i]
		nextOff := i
		if nextOff < len(name) {
			nextOff++ // skip '.'
			if nextOff == len(name) {
				return // trailing dot
			}
		}

		if next, ok := n.children[seg]; ok {
			dfs(next, nextOff, depth+1)
		}
		if next, ok := n.children["*"]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// splitAndValidate splits a dot-separated prefix and validates each
// element. "*" is accepted as a wildcard element.
func splitAndValidate(s string) ([]string, bool) {
	if s == "" {
		return nil, false
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !ValidElement(seg, true) {
			return nil, false
		}
	}
	return segs, true
}

// ValidElement reports whether seg is a valid name element
// ([A-Za-z_][A-Za-z0-9_]*). When allowWildcard is true, "*" is accepted too.
func ValidElement(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	if !elementStart(seg[0]) {
		return false
	}
	for i := 1; i < len(seg); i++ {
		if !elementByte(seg[i]) {
			return false
		}
	}
	return true
}

func elementStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func elementByte(c byte) bool {
	return elementStart(c) || (c >= '0' && c <= '9')
}
