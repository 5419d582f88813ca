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

// Package category defines the semantic groups bus errors fall into and the
// handling each group recommends.
//
// Where an error name answers "what exactly went wrong?", a Category answers
// "what can the caller do about it?":
//
//   - transient            -> retry with backoff;
//   - resource_exhaustion  -> retry, but aggressively capped;
//   - protocol_violation, permission, resource_spawn, not_found -> fail fast;
//   - generic              -> escalate to the caller or user.
//
// The zero value of Category is not valid; unknown names are classified as
// Generic by package classifier, never left empty.
package category
