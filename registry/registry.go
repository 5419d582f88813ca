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

package registry

import (
	"fmt"

	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/name"
)

// Ordinal is the stable small integer assigned to a known error name.
// Ordinals are 0-based and equal to the declaration position; they are
// never reassigned.
type Ordinal uint16

// Entry describes one known error name.
type Entry struct {
	Ordinal     Ordinal
	Name        name.Name
	Category    category.Category
	Description string
}

// entries and byName are built once at package init and never mutated, so
// concurrent readers need no locking.
var (
	entries []Entry
	byName  map[name.Name]Ordinal
)

func init() {
	entries = make([]Entry, len(table))
	byName = make(map[name.Name]Ordinal, len(table))
	for i, row := range table {
		if _, dup := byName[row.name]; dup {
			panic(fmt.Sprintf("registry: duplicate name %q at ordinal %d", row.name, i))
		}
		entries[i] = Entry{
			Ordinal:     Ordinal(i),
			Name:        row.name,
			Category:    row.category,
			Description: row.description,
		}
		byName[row.name] = Ordinal(i)
	}
}

// Len returns the number of known names.
func Len() int { return len(entries) }

// Lookup returns the entry for an exact, case-sensitive wire string.
// Any string is accepted; unknown ones simply report false.
func Lookup(s string) (Entry, bool) {
	o, ok := byName[name.Name(s)]
	if !ok {
		return Entry{}, false
	}
	return entries[o], true
}

// LookupOrdinal returns the entry registered under o.
func LookupOrdinal(o Ordinal) (Entry, bool) {
	if int(o) >= len(entries) {
		return Entry{}, false
	}
	return entries[o], true
}

// Entries returns all known entries in ordinal order. The slice is a copy.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Identifier is an error name resolved against the registry. It has two
// arms: a known name carries its ordinal and category; a custom name is an
// opaque string with no ordinal that classifies as category.Generic.
//
// The zero Identifier is a custom identifier with an empty name.
type Identifier struct {
	name  name.Name
	ord   Ordinal
	known bool
}

// Identify resolves s. It never fails.
func Identify(s string) Identifier {
	if o, ok := byName[name.Name(s)]; ok {
		return Identifier{name: entries[o].Name, ord: o, known: true}
	}
	return Identifier{name: name.Name(s)}
}

// Name returns the wire string.
func (id Identifier) Name() name.Name { return id.name }

// String returns the wire string.
func (id Identifier) String() string { return string(id.name) }

// Known reports whether the identifier is in the registry.
func (id Identifier) Known() bool { return id.known }

// Ordinal returns the ordinal of a known identifier. The second result is
// false for custom identifiers.
func (id Identifier) Ordinal() (Ordinal, bool) {
	return id.ord, id.known
}

// Category returns the registry category, or category.Generic for custom
// identifiers.
func (id Identifier) Category() category.Category {
	if !id.known {
		return category.Generic
	}
	return entries[id.ord].Category
}

// Description returns the registry description, or "" for custom
// identifiers.
func (id Identifier) Description() string {
	if !id.known {
		return ""
	}
	return entries[id.ord].Description
}
