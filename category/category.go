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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Category is the semantic group of an error name. It answers "what can the
// caller do about it?" rather than "what exactly went wrong?".
//
// Every error name maps to exactly one Category. Names nobody knows about
// land in Generic.
type Category string

const (
	// Transient errors may go away on their own: reply timeouts, no
	// network, no server, address in use.
	Transient Category = "transient"

	// ProtocolViolation errors are caller mistakes: invalid arguments or
	// signature, unknown method/object/interface/property, inconsistent
	// message. Retrying the same call cannot help.
	ProtocolViolation Category = "protocol_violation"

	// Permission errors come from security policy: access denied, failed
	// authentication, read-only properties, interactive authorization.
	Permission Category = "permission"

	// ResourceSpawn errors are raised while the bus activates a helper
	// process: exec, fork, child exit or signal, setup, config, file and
	// permission problems.
	ResourceSpawn Category = "resource_spawn"

	// ResourceExhaustion errors mean memory or a configured limit ran out.
	ResourceExhaustion Category = "resource_exhaustion"

	// NotFound errors mean a name, file, rule or credential does not exist,
	// or its slot is already taken (object path in use, file exists).
	NotFound Category = "not_found"

	// Generic is everything without a sharper meaning: Failed,
	// NotSupported, Disconnected and every unknown name.
	Generic Category = "generic"
)

var (
	// ErrCategoryInvalid is returned when a value is not one of the
	// categories above.
	ErrCategoryInvalid = errors.New("buserr: invalid category")
)

// Ensure Category implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// all lists the categories in a fixed order used by All and by tests that
// need to cover every value.
var all = [...]Category{
	Transient,
	ProtocolViolation,
	Permission,
	ResourceSpawn,
	ResourceExhaustion,
	NotFound,
	Generic,
}

// All returns every category. The returned slice is a fresh copy.
func All() []Category {
	out := make([]Category, len(all))
	copy(out, all[:])
	return out
}

// Normalize trims spaces, lower-cases and turns '-' into '_'. It does NOT
// guarantee validity; call Parse for that.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes s and checks it against the known categories.
func Parse(s string) (Category, error) {
	c := Category(Normalize(s))
	if err := Validate(c); err != nil {
		return "", err
	}
	return c, nil
}

// Validate reports whether c is one of the known categories.
func Validate(c Category) error {
	for _, k := range all {
		if c == k {
			return nil
		}
	}
	return ErrCategoryInvalid
}

// String returns the canonical string representation of the category.
func (c Category) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
