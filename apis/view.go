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

package apis

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error as shown
// to API clients.
//
// This is *not* the concrete error type used internally: it is the shape we
// are comfortable exposing over the wire or logging.
type ErrorView struct {
	// Name is the bus error name.
	Name string `json:"name"`
	// Category is the semantic category, e.g. "permission".
	Category string `json:"category"`
	// Message is an optional human-friendly message.
	Message string `json:"message,omitempty"`
	// Retryable tells clients whether trying again may help.
	Retryable bool `json:"retryable"`
	// Payload carries optional structured data, copied as-is from the error.
	Payload map[string]any `json:"payload,omitempty"`
}
