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

// Package buserr models D-Bus error replies as typed Go errors.
//
// The subpackages split the problem the way a bus library meets it:
//
//   - name: the error identifier type and the well-known names;
//   - registry: the append-only ordinal table of well-known names;
//   - category and classifier: what kind of failure a name is and what to
//     do about it;
//   - dbusx: the boundary to github.com/godbus/dbus/v5;
//   - grpcx, httpx and retry: consumers of the classification.
//
// This package holds the error value itself:
//
//	err := buserr.FromWire("org.freedesktop.DBus.Error.Timeout", "no reply in 25s")
//	err.Category()              // category.Transient
//	err.Disposition().Action    // category.Retry
//
// Two errors are equal when their names are equal; detail and payload are
// diagnostic only. ToWire renders the payload into the detail text, so a
// round trip through the wire keeps the name but flattens the payload.
package buserr
