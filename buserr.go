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

package buserr

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"dirpx.dev/buserr/apis"
	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/classifier"
	"dirpx.dev/buserr/name"
	"dirpx.dev/buserr/registry"
)

// Error is the runtime representation of a failed bus call.
//
// It carries:
//   - the identifier: a registry.Identifier, known or custom (required);
//   - detail: human-oriented text, usually the body of the error reply;
//   - payload: arbitrary key/value data such as an offending argument index;
//   - cause: the wrapped underlying error, for errors.Is / errors.As.
//
// The category is derived from the name on every call and never stored.
// Error values are immutable; all WithX helpers return a shallow copy.
//
// Every method accepts a nil receiver. A nil *Error reads as name.Failed
// with no detail, payload or cause; Error() reports "<nil>".
type Error struct {
	id      registry.Identifier
	detail  string
	payload map[string]any
	cause   error
}

// New constructs an Error. It never fails: any name is accepted as an
// opaque token, and an empty name becomes name.Failed so the value always
// has a wire identity.
//
// Usage:
//
//	return buserr.New(name.InvalidArgs, "expected a uint32",
//	    buserr.WithPayloadOption("arg", 2),
//	)
func New(n name.Name, detail string, opts ...Option) *Error {
	if n == name.Empty {
		n = name.Failed
	}
	e := &Error{id: registry.Identify(string(n)), detail: detail}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// FromWire rebuilds an Error from the (name, detail) pair carried by an
// error reply. It never fails.
//
// The payload rendered by ToWire stays part of the detail text; it is not
// parsed back.
func FromWire(n, detail string) *Error {
	return New(name.Name(n), detail)
}

// ToWire returns the exact wire name and the detail text. A non-empty
// payload is appended to the detail as " [k=v ...]" with sorted keys,
// which is lossy: FromWire keeps it as plain text.
func (e *Error) ToWire() (string, string) {
	if e == nil {
		return string(name.Failed), ""
	}
	if len(e.payload) == 0 {
		return e.id.String(), e.detail
	}
	var b strings.Builder
	b.WriteString(e.detail)
	if e.detail != "" {
		b.WriteByte(' ')
	}
	b.WriteByte('[')
	for i, k := range slices.Sorted(maps.Keys(e.payload)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(&b, "%s=%v", k, e.payload[k])
	}
	b.WriteByte(']')
	return e.id.String(), b.String()
}

// failedID is what a nil *Error reads as.
var failedID = registry.Identify(string(name.Failed))

// ident returns the identifier, treating a nil receiver as name.Failed.
func (e *Error) ident() registry.Identifier {
	if e == nil {
		return failedID
	}
	return e.id
}

// clone returns a shallow copy; a nil receiver yields a Failed value.
func (e *Error) clone() Error {
	if e == nil {
		return Error{id: failedID}
	}
	return *e
}

// Equal reports whether a and b name the same error. Detail, payload and
// cause are diagnostic and do not take part.
func Equal(a, b *Error) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.id.Name() == b.id.Name()
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<name>: <message>
//
// or just <name> when there is neither detail nor a registry description.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if msg := e.Message(); msg != "" {
		return e.id.String() + ": " + msg
	}
	return e.id.String()
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause() }

// Is makes errors.Is match any *Error with the same name, so callers can
// test against a bare value:
//
//	errors.Is(err, buserr.New(name.AccessDenied, ""))
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return Equal(e, t)
}

// Name returns the wire name.
func (e *Error) Name() name.Name { return e.ident().Name() }

// Identifier returns the registry-resolved identifier.
func (e *Error) Identifier() registry.Identifier { return e.ident() }

// Known reports whether the name is in the registry.
func (e *Error) Known() bool { return e.ident().Known() }

// Ordinal returns the registry ordinal; false for custom names.
func (e *Error) Ordinal() (registry.Ordinal, bool) { return e.ident().Ordinal() }

// Category classifies the name with the default classifier.
func (e *Error) Category() category.Category { return classifier.Classify(e.Name()) }

// Disposition returns the default classifier's advice for the name.
func (e *Error) Disposition() category.Disposition { return classifier.Advise(e.Name()) }

// Detail returns the detail text as given.
func (e *Error) Detail() string {
	if e == nil {
		return ""
	}
	return e.detail
}

// Message returns the detail, or the registry description when the detail
// is empty.
func (e *Error) Message() string {
	if d := e.Detail(); d != "" {
		return d
	}
	return e.ident().Description()
}

// Payload returns a copy of the payload; nil when there is none.
func (e *Error) Payload() map[string]any {
	if e == nil || len(e.payload) == 0 {
		return nil
	}
	return maps.Clone(e.payload)
}

// ErrorName implements apis.NamedError.
func (e *Error) ErrorName() string { return e.ident().String() }

// ErrorPayload implements apis.PayloadError. The map must not be modified.
func (e *Error) ErrorPayload() map[string]any {
	if e == nil {
		return nil
	}
	return e.payload
}

// Cause implements apis.CausedError.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// ErrorView implements apis.ViewProvider using the default classifier.
func (e *Error) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Name:      e.ErrorName(),
		Category:  string(e.Category()),
		Message:   e.Message(),
		Retryable: e.Disposition().Retryable(),
		Payload:   e.Payload(),
	}
}

// WithDetail returns a shallow copy of e with a replaced detail.
// The original error is not modified.
func (e *Error) WithDetail(detail string) *Error {
	cp := e.clone()
	cp.detail = detail
	return &cp
}

// WithPayload returns a shallow copy of e with one extra key/value in the
// payload.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithPayload(k string, v any) *Error {
	cp := e.clone()
	// No payload yet: create a new single-entry map.
	if len(cp.payload) == 0 {
		cp.payload = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.payload)+1)
	maps.Copy(m, cp.payload)
	m[k] = v
	cp.payload = m
	return &cp
}

// WithPayloadMap returns a shallow copy of e with kv merged into the
// payload, kv taking precedence on key conflicts.
func (e *Error) WithPayloadMap(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := e.clone()
	m := make(map[string]any, len(cp.payload)+len(kv))
	maps.Copy(m, cp.payload)
	maps.Copy(m, kv)
	cp.payload = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := e.clone()
	cp.cause = err
	return &cp
}
