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

// Package registry is the read-only catalogue of well-known bus error
// names.
//
// Each entry carries a stable ordinal, its wire string, its category and a
// short description. The table is compiled in, built once at package init,
// and safe for unsynchronized concurrent reads.
//
// Ordinals follow declaration order and form an append-only contract:
// changing an existing ordinal is a breaking change. A unit test pins the
// complete sequence so that reordering fails loudly.
//
// Lookups are exact and case-sensitive. Anything not in the table resolves
// to a custom Identifier (no ordinal, category generic), because remote
// peers are free to define their own errors.
package registry
