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
	"sync"
	"testing"

	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/name"
	"github.com/google/go-cmp/cmp"
)

// wantOrdinals is the frozen ordinal sequence. Append only.
var wantOrdinals = []string{
	"org.freedesktop.DBus.Error.Failed",                           // 0
	"org.freedesktop.DBus.Error.NoMemory",                         // 1
	"org.freedesktop.DBus.Error.ServiceUnknown",                   // 2
	"org.freedesktop.DBus.Error.NameHasNoOwner",                   // 3
	"org.freedesktop.DBus.Error.NoReply",                          // 4
	"org.freedesktop.DBus.Error.IOError",                          // 5
	"org.freedesktop.DBus.Error.BadAddress",                       // 6
	"org.freedesktop.DBus.Error.NotSupported",                     // 7
	"org.freedesktop.DBus.Error.LimitsExceeded",                   // 8
	"org.freedesktop.DBus.Error.AccessDenied",                     // 9
	"org.freedesktop.DBus.Error.AuthFailed",                       // 10
	"org.freedesktop.DBus.Error.NoServer",                         // 11
	"org.freedesktop.DBus.Error.Timeout",                          // 12
	"org.freedesktop.DBus.Error.NoNetwork",                        // 13
	"org.freedesktop.DBus.Error.AddressInUse",                     // 14
	"org.freedesktop.DBus.Error.Disconnected",                     // 15
	"org.freedesktop.DBus.Error.InvalidArgs",                      // 16
	"org.freedesktop.DBus.Error.FileNotFound",                     // 17
	"org.freedesktop.DBus.Error.FileExists",                       // 18
	"org.freedesktop.DBus.Error.UnknownMethod",                    // 19
	"org.freedesktop.DBus.Error.UnknownObject",                    // 20
	"org.freedesktop.DBus.Error.UnknownInterface",                 // 21
	"org.freedesktop.DBus.Error.UnknownProperty",                  // 22
	"org.freedesktop.DBus.Error.PropertyReadOnly",                 // 23
	"org.freedesktop.DBus.Error.TimedOut",                         // 24
	"org.freedesktop.DBus.Error.MatchRuleNotFound",                // 25
	"org.freedesktop.DBus.Error.MatchRuleInvalid",                 // 26
	"org.freedesktop.DBus.Error.Spawn.ExecFailed",                 // 27
	"org.freedesktop.DBus.Error.Spawn.ForkFailed",                 // 28
	"org.freedesktop.DBus.Error.Spawn.ChildExited",                // 29
	"org.freedesktop.DBus.Error.Spawn.ChildSignaled",              // 30
	"org.freedesktop.DBus.Error.Spawn.Failed",                     // 31
	"org.freedesktop.DBus.Error.Spawn.FailedToSetup",              // 32
	"org.freedesktop.DBus.Error.Spawn.ConfigInvalid",              // 33
	"org.freedesktop.DBus.Error.Spawn.ServiceNotValid",            // 34
	"org.freedesktop.DBus.Error.Spawn.ServiceNotFound",            // 35
	"org.freedesktop.DBus.Error.Spawn.PermissionsInvalid",         // 36
	"org.freedesktop.DBus.Error.Spawn.FileInvalid",                // 37
	"org.freedesktop.DBus.Error.Spawn.NoMemory",                   // 38
	"org.freedesktop.DBus.Error.UnixProcessIdUnknown",             // 39
	"org.freedesktop.DBus.Error.InvalidSignature",                 // 40
	"org.freedesktop.DBus.Error.InvalidFileContent",               // 41
	"org.freedesktop.DBus.Error.SELinuxSecurityContextUnknown",    // 42
	"org.freedesktop.DBus.Error.AdtAuditDataUnknown",              // 43
	"org.freedesktop.DBus.Error.ObjectPathInUse",                  // 44
	"org.freedesktop.DBus.Error.InconsistentMessage",              // 45
	"org.freedesktop.DBus.Error.InteractiveAuthorizationRequired", // 46
	"org.freedesktop.DBus.Error.NotContainer",                     // 47
}

func TestOrdinals(t *testing.T) {
	got := make([]string, 0, Len())
	for i, e := range Entries() {
		if int(e.Ordinal) != i {
			t.Fatalf("entry %q has ordinal %d at position %d", e.Name, e.Ordinal, i)
		}
		got = append(got, e.Name.String())
	}
	if diff := cmp.Diff(wantOrdinals, got); diff != "" {
		t.Fatalf("ordinal table changed (-want +got):\n%s", diff)
	}
}

func TestLookup_KnownNames(t *testing.T) {
	seen := make(map[Ordinal]string, Len())
	for i, s := range wantOrdinals {
		e, ok := Lookup(s)
		if !ok {
			t.Fatalf("Lookup(%q) not found", s)
		}
		if int(e.Ordinal) != i {
			t.Fatalf("Lookup(%q).Ordinal = %d, want %d", s, e.Ordinal, i)
		}
		if prev, dup := seen[e.Ordinal]; dup {
			t.Fatalf("ordinal %d shared by %q and %q", e.Ordinal, prev, s)
		}
		seen[e.Ordinal] = s
		if err := category.Validate(e.Category); err != nil {
			t.Fatalf("%q has invalid category %q", s, e.Category)
		}
		if e.Description == "" {
			t.Fatalf("%q has no description", s)
		}
		if !name.IsWellFormed(s) {
			t.Fatalf("%q is not well-formed", s)
		}

		// Stable across repeated calls.
		again, _ := Lookup(s)
		if again != e {
			t.Fatalf("Lookup(%q) not stable: %+v vs %+v", s, e, again)
		}
	}
}

func TestLookup_IsExact(t *testing.T) {
	for _, s := range []string{
		"org.freedesktop.DBus.Error.timeout",
		"org.freedesktop.dbus.Error.Timeout",
		"org.freedesktop.DBus.Error.Timeout ",
		"org.freedesktop.DBus.Error.NoSuchObject",
		"",
		"not a name at all",
	} {
		if _, ok := Lookup(s); ok {
			t.Fatalf("Lookup(%q) must not match", s)
		}
	}
}

func TestLookupOrdinal(t *testing.T) {
	e, ok := LookupOrdinal(12)
	if !ok || e.Name != name.Timeout {
		t.Fatalf("LookupOrdinal(12) = %+v, %v", e, ok)
	}
	if _, ok := LookupOrdinal(Ordinal(Len())); ok {
		t.Fatalf("LookupOrdinal past the end must fail")
	}
}

func TestIdentify(t *testing.T) {
	id := Identify("org.freedesktop.DBus.Error.AccessDenied")
	if !id.Known() {
		t.Fatalf("AccessDenied must be known")
	}
	if o, ok := id.Ordinal(); !ok || o != 9 {
		t.Fatalf("AccessDenied ordinal = %d, %v", o, ok)
	}
	if id.Category() != category.Permission {
		t.Fatalf("AccessDenied category = %q", id.Category())
	}

	custom := Identify("com.example.MadeUpError")
	if custom.Known() {
		t.Fatalf("custom name must not be known")
	}
	if _, ok := custom.Ordinal(); ok {
		t.Fatalf("custom name must not have an ordinal")
	}
	if custom.Category() != category.Generic {
		t.Fatalf("custom category = %q, want generic", custom.Category())
	}
	if custom.Description() != "" {
		t.Fatalf("custom description must be empty")
	}
	if custom.String() != "com.example.MadeUpError" {
		t.Fatalf("custom name not preserved: %q", custom)
	}

	malformed := Identify("..!")
	if malformed.Known() || malformed.Name() != "..!" {
		t.Fatalf("malformed input must be kept as an opaque custom identifier")
	}

	var zero Identifier
	if zero.Known() || zero.Category() != category.Generic {
		t.Fatalf("zero Identifier must be a generic custom identifier")
	}
}

func TestSharedDescriptionStaysDistinct(t *testing.T) {
	a, _ := Lookup(name.SpawnNoMemory.String())
	b, _ := Lookup(name.UnixProcessIDUnknown.String())
	if a.Description != b.Description {
		t.Fatalf("upstream descriptions are identical and must be preserved verbatim")
	}
	if a.Ordinal == b.Ordinal || a.Name == b.Name {
		t.Fatalf("SpawnNoMemory and UnixProcessIdUnknown must stay distinct")
	}
}

func TestEntries_IsACopy(t *testing.T) {
	es := Entries()
	es[0].Name = "mutated"
	if e, _ := LookupOrdinal(0); e.Name != name.Failed {
		t.Fatalf("Entries() must return a copy")
	}
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range wantOrdinals {
				if id := Identify(s); !id.Known() {
					t.Errorf("Identify(%q) lost", s)
					return
				}
			}
		}()
	}
	wg.Wait()
}
