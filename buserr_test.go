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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"
	"testing"

	"dirpx.dev/buserr/apis"
	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/name"
	"dirpx.dev/buserr/registry"
	"github.com/google/go-cmp/cmp"
)

func TestError_Basics(t *testing.T) {
	e := New(name.InvalidArgs, "expected a uint32",
		WithPayloadOption("arg", 2),
	)

	if e.Name() != name.InvalidArgs {
		t.Fatal("name mismatch")
	}
	if e.Category() != category.ProtocolViolation {
		t.Fatalf("category = %q", e.Category())
	}
	if e.Disposition().Action != category.FailFast {
		t.Fatalf("disposition = %v", e.Disposition())
	}
	if o, ok := e.Ordinal(); !ok || o != 16 {
		t.Fatalf("Ordinal() = %d, %v; want 16, true", o, ok)
	}
	if e.Payload()["arg"] != 2 {
		t.Fatal("payload missing")
	}

	s := e.Error()
	for _, sub := range []string{"org.freedesktop.DBus.Error.InvalidArgs", "expected a uint32"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestNew_NeverFails(t *testing.T) {
	if e := New(name.Empty, ""); e.Name() != name.Failed {
		t.Fatalf("empty name must become Failed; got %q", e.Name())
	}
	e := New("not a name", "")
	if e.Name() != "not a name" || e.Known() || e.Category() != category.Generic {
		t.Fatalf("malformed name must stay opaque and generic: %+v", e)
	}
	if e.Disposition().Action != category.Escalate {
		t.Fatalf("custom name must escalate; got %v", e.Disposition())
	}
}

func TestMessage_FallsBackToDescription(t *testing.T) {
	e := New(name.AccessDenied, "")
	if want := registry.Identify(string(name.AccessDenied)).Description(); e.Message() != want {
		t.Fatalf("Message() = %q; want %q", e.Message(), want)
	}
	if got := New("com.example.E", "").Error(); got != "com.example.E" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestEqual_ByNameOnly(t *testing.T) {
	a := New(name.Timeout, "first")
	b := New(name.Timeout, "second", WithPayloadOption("k", 1))
	c := New(name.TimedOut, "first")

	if !Equal(a, b) {
		t.Fatal("same name with different detail must be equal")
	}
	if Equal(a, c) {
		t.Fatal("different names must never be equal")
	}
	if !Equal(nil, nil) || Equal(a, nil) || Equal(nil, a) {
		t.Fatal("nil handling")
	}
	if !errors.Is(fmt.Errorf("call: %w", b), a) {
		t.Fatal("errors.Is must match by name through wrapping")
	}
	if errors.Is(a, c) {
		t.Fatal("errors.Is must not match a different name")
	}
}

func TestEqual_IsCaseSensitive(t *testing.T) {
	if Equal(New(name.Timeout, ""), New("org.freedesktop.DBus.Error.timeout", "")) {
		t.Fatal("names are compared exactly")
	}
}

func TestWire_RoundTrip(t *testing.T) {
	values := []*Error{
		New(name.Timeout, ""),
		New(name.AccessDenied, "rejected by policy"),
		New(name.InvalidArgs, "bad", WithPayloadOption("arg", 1)),
		New("com.example.MadeUpError", "custom"),
		New("not a name", ""),
	}
	for _, reg := range registry.Entries() {
		values = append(values, New(reg.Name, "x"))
	}
	for _, e := range values {
		got := FromWire(e.ToWire())
		if !Equal(got, e) {
			t.Errorf("FromWire(ToWire(%q)) = %q", e.Name(), got.Name())
		}
		if got.Known() != e.Known() {
			t.Errorf("%q: known arm changed in round trip", e.Name())
		}
	}
}

func TestToWire_PayloadIsRenderedSorted(t *testing.T) {
	e := New(name.InvalidArgs, "bad input",
		WithPayloadMapOption(map[string]any{"b": "two", "a": 1}),
	)
	n, detail := e.ToWire()
	if n != "org.freedesktop.DBus.Error.InvalidArgs" {
		t.Fatalf("wire name = %q", n)
	}
	if detail != "bad input [a=1 b=two]" {
		t.Fatalf("wire detail = %q", detail)
	}

	back := FromWire(n, detail)
	if back.Payload() != nil {
		t.Fatal("payload must not be parsed back")
	}
	if back.Detail() != detail {
		t.Fatalf("detail = %q", back.Detail())
	}

	_, detail = New(name.Failed, "", WithPayloadOption("k", "v")).ToWire()
	if detail != "[k=v]" {
		t.Fatalf("payload-only detail = %q", detail)
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := New(name.InvalidArgs, "bad").WithPayload("k1", 1)
	e2 := e1.WithPayload("k2", 2)
	e3 := e2.WithDetail("worse")

	if len(e1.Payload()) != 1 || len(e2.Payload()) != 2 {
		t.Fatal("payload size mismatch")
	}
	if _, ok := e1.Payload()["k2"]; ok {
		t.Fatal("original mutated")
	}
	if e2.Detail() != "bad" || e3.Detail() != "worse" {
		t.Fatal("WithDetail must copy")
	}

	p := e2.Payload()
	p["k1"] = "changed"
	if e2.Payload()["k1"] != 1 {
		t.Fatal("Payload() must return a copy")
	}
}

func TestError_WithPayloadMap_Merge(t *testing.T) {
	e := New(name.Failed, "x").WithPayloadMap(map[string]any{"a": 1})
	e2 := e.WithPayloadMap(map[string]any{"b": 2, "a": 3})
	if diff := cmp.Diff(map[string]any{"a": 1}, e.Payload()); diff != "" {
		t.Fatalf("original mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"a": 3, "b": 2}, e2.Payload()); diff != "" {
		t.Fatalf("merge failed (-want +got):\n%s", diff)
	}
	if e.WithPayloadMap(nil) != e {
		t.Fatal("empty merge must return the receiver")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := New(name.Failed, "x").WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root || e.Cause() != root {
		t.Fatal("Unwrap failed")
	}
	if e.WithCause(nil) != e {
		t.Fatal("nil cause must return the receiver")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		err  error
		want name.Name
	}{
		{context.DeadlineExceeded, name.NoReply},
		{fmt.Errorf("open: %w", fs.ErrNotExist), name.FileNotFound},
		{&fs.PathError{Op: "mkdir", Path: "/x", Err: fs.ErrExist}, name.FileExists},
		{os.ErrPermission, name.AccessDenied},
		{net.ErrClosed, name.Disconnected},
		{errors.New("boom"), name.Failed},
	}
	for _, tt := range tests {
		got := Wrap(tt.err)
		if got.Name() != tt.want {
			t.Errorf("Wrap(%v) = %q; want %q", tt.err, got.Name(), tt.want)
		}
		if !errors.Is(got, tt.err) {
			t.Errorf("Wrap(%v) lost its cause", tt.err)
		}
	}

	if Wrap(nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
	orig := New(name.AccessDenied, "no")
	if Wrap(fmt.Errorf("ctx: %w", orig)) != orig {
		t.Fatal("an *Error in the chain must pass through")
	}
}

func TestAs_NameOf(t *testing.T) {
	err := fmt.Errorf("call: %w", New(name.ServiceUnknown, ""))
	e, ok := As(err)
	if !ok || e.Name() != name.ServiceUnknown {
		t.Fatalf("As() = %v, %v", e, ok)
	}
	if n, ok := NameOf(err); !ok || n != name.ServiceUnknown {
		t.Fatalf("NameOf() = %q, %v", n, ok)
	}
	if _, ok := As(errors.New("plain")); ok {
		t.Fatal("As must fail on plain errors")
	}
	if _, ok := NameOf(errors.New("plain")); ok {
		t.Fatal("NameOf must fail on plain errors")
	}
}

func TestErrorView(t *testing.T) {
	v := New(name.Timeout, "", WithPayloadOption("after", "25s")).ErrorView()
	want := apis.ErrorView{
		Name:      "org.freedesktop.DBus.Error.Timeout",
		Category:  "transient",
		Message:   "Certain timeout errors, possibly ETIMEDOUT on a socket.",
		Retryable: true,
		Payload:   map[string]any{"after": "25s"},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("ErrorView() mismatch (-want +got):\n%s", diff)
	}
}

func TestError_NilReceiver(t *testing.T) {
	var e *Error

	if e.Name() != name.Failed || !e.Known() || e.Category() != category.Generic {
		t.Fatalf("nil must read as Failed: name=%q known=%v category=%q", e.Name(), e.Known(), e.Category())
	}
	if e.Disposition().Action != category.Escalate {
		t.Fatalf("Disposition() = %v", e.Disposition())
	}
	if o, ok := e.Ordinal(); !ok || o != 0 {
		t.Fatalf("Ordinal() = %d, %v", o, ok)
	}
	if e.Detail() != "" || e.Payload() != nil || e.ErrorPayload() != nil || e.Cause() != nil || e.Unwrap() != nil {
		t.Fatal("nil must have no detail, payload or cause")
	}
	if e.Message() != e.Identifier().Description() || e.ErrorName() != string(name.Failed) {
		t.Fatalf("Message() = %q, ErrorName() = %q", e.Message(), e.ErrorName())
	}
	if v := e.ErrorView(); v.Name != string(name.Failed) || v.Category != "generic" {
		t.Fatalf("ErrorView() = %+v", v)
	}
	if n, d := e.ToWire(); n != string(name.Failed) || d != "" {
		t.Fatalf("ToWire() = %q, %q", n, d)
	}
	if e.Error() != "<nil>" {
		t.Fatalf("Error() = %q", e.Error())
	}

	root := errors.New("root")
	got := e.WithDetail("d").WithPayload("k", 1).WithCause(root)
	if got.Name() != name.Failed || got.Detail() != "d" || got.Payload()["k"] != 1 || got.Cause() != root {
		t.Fatalf("WithX on nil must start from Failed: %+v", got)
	}
}

// Ensure Error implements the apis contracts
func TestError_InterfaceSatisfaction(t *testing.T) {
	var _ apis.NamedError = (*Error)(nil)
	var _ apis.PayloadError = (*Error)(nil)
	var _ apis.CausedError = (*Error)(nil)
	var _ apis.ViewProvider = (*Error)(nil)
}
