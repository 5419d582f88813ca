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

// Package classifier maps D-Bus error names onto a coarse category, a
// handling disposition, and HTTP/gRPC statuses for gateways that expose
// bus calls over other transports.
//
// # Overview
//
// A caller that receives an error reply from the bus needs to answer three
// questions: what kind of failure is this, should I retry, and what should I
// tell my own client. Package classifier answers all three from the error
// name alone. Classification is:
//
//   - total: every string gets a category, including the empty name and
//     names that are not well-formed;
//   - immutable: a Classifier is a snapshot, safe for concurrent reuse;
//   - extensible: applications can pin their own names or whole namespaces.
//
// # Resolution model
//
// The category of a name is resolved in the following order:
//
//  1. exact per-name override (WithCategory);
//  2. the well-known registry (dirpx.dev/buserr/registry);
//  3. longest namespace prefix rule (WithPrefix);
//  4. category.Generic.
//
// Prefix rules match whole elements, and "*" matches exactly one element:
//
//	WithPrefix("com.example.Net", category.Transient)
//	WithPrefix("com.*.Auth", category.Permission)
//
// The disposition comes from the category unless a per-name refinement
// exists; the library ships one, Spawn.ForkFailed, which is retried with a
// capped budget even though the rest of its category fails fast.
//
// Transport statuses follow the same shape: per-name, then per-category,
// then the global fallback (500 / codes.Unknown).
//
// # Building a classifier
//
//	c, err := classifier.New(
//	    classifier.WithPrefix("com.example.Net", category.Transient),
//	    classifier.WithCategory("com.example.Store.Busy", category.ResourceExhaustion),
//	)
//	if err != nil {
//	    // empty name, unknown category, malformed prefix
//	}
//
//	c.Classify("com.example.Net.Down") // category.Transient
//
// Most callers never need options; Default, Classify and Advise use the
// library defaults.
//
// # Diagnostics
//
// Classifier.Explain returns a human-readable trace of which tier decided
// each result. It is meant for logs and tests, not for machine parsing.
package classifier
