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

// Package name provides validation and the well-known constants for bus
// error names.
//
// An error name is the wire-level equivalent of an error code: a
// dot-separated, namespaced string such as
// "org.freedesktop.DBus.Error.AccessDenied" carried in the ERROR_NAME header
// of an error reply. Names are:
//
//   - case-sensitive and compared byte for byte;
//   - at most 255 bytes;
//   - made of two or more elements of [A-Za-z0-9_], none starting with a
//     digit.
//
// The set of names is open: peers may define application-specific errors
// in their own namespace. The constants in this package cover the closed
// set known to the bus reference implementation; package registry assigns
// them stable ordinals.
package name
