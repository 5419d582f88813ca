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

package name

import (
	"encoding"
	"errors"
)

// Name is an error name as it travels on the bus, e.g.
// "org.freedesktop.DBus.Error.Timeout".
//
// It is a separate type (not just string) so that callers can tell a raw
// reply field apart from a value that is meant to be an error identifier.
//
// IMPORTANT: names are case-sensitive and are never normalized. Peers match
// them as opaque strings, so "org.freedesktop.DBus.Error.timeout" is a
// different (custom) error, not a spelling variant of Timeout.
type Name string

// MinLength and MaxLength bound the byte length of a well-formed name.
const (
	// MinLength is the shortest possible two-element name ("a.b").
	MinLength = 3

	// MaxLength is the bus-wide limit for interface and error names.
	MaxLength = 255
)

// MinElements is the minimum number of dot-separated elements.
const MinElements = 2

var (
	// ErrNameInvalidLength is returned when a name is shorter than
	// MinLength or longer than MaxLength bytes.
	ErrNameInvalidLength = errors.New("buserr: invalid name length")

	// ErrNameInvalidFormat is returned when a name violates the element
	// rules: at least two elements, none empty, none starting with a digit,
	// only [A-Za-z0-9_] inside an element.
	ErrNameInvalidFormat = errors.New("buserr: invalid name format")
)

// Ensure Name implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Name)(nil)
	_ encoding.TextUnmarshaler = (*Name)(nil)
)

// Empty is the zero-value name. It never identifies an error.
var Empty Name = ""

// IsWellFormed reports whether s follows the bus naming rules for error
// names.
//
// The predicate is diagnostic only: a malformed name is still usable as an
// opaque token, because remote peers are not always strict about what they
// send.
func IsWellFormed(s string) bool {
	return validate(s) == nil
}

// Parse validates s and returns it as a Name. Unlike most parsers in this
// module it performs no normalization at all; see the Name docs.
func Parse(s string) (Name, error) {
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Name(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level names for application-specific errors.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Validate checks whether the provided Name is well-formed.
func Validate(n Name) error {
	return validate(string(n))
}

// String returns the wire form of the name.
func (n Name) String() string {
	return string(n)
}

// IsWellFormed is the method form of the package-level predicate.
func (n Name) IsWellFormed() bool {
	return IsWellFormed(string(n))
}

// Interface returns everything before the last element, e.g.
// "org.freedesktop.DBus.Error" for "org.freedesktop.DBus.Error.Timeout".
// A name without dots yields the empty string.
func (n Name) Interface() string {
	s := string(n)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[:i]
		}
	}
	return ""
}

// Member returns the last element, e.g. "Timeout".
func (n Name) Member() string {
	s := string(n)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// The text is taken verbatim: surrounding whitespace is part of the value
// and makes it invalid.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// validate checks length first and then walks the elements once.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrNameInvalidLength
	}
	elements := 1
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '.' {
			continue
		}
		if !validElement(s[start:i]) {
			return ErrNameInvalidFormat
		}
		if i < len(s) {
			elements++
		}
		start = i + 1
	}
	if elements < MinElements {
		return ErrNameInvalidFormat
	}
	return nil
}

// validElement reports whether el matches [A-Za-z_][A-Za-z0-9_]*.
func validElement(el string) bool {
	if el == "" {
		return false
	}
	if c := el[0]; c >= '0' && c <= '9' {
		return false
	}
	for i := 0; i < len(el); i++ {
		c := el[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
