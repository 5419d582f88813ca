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

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithPayloadOption adds a single payload key/value on construction.
// Intended to be used with New(...).
func WithPayloadOption(k string, v any) Option {
	return func(e *Error) *Error {
		return e.WithPayload(k, v)
	}
}

// WithPayloadMapOption merges multiple payload key/values on construction.
// Intended to be used with New(...).
func WithPayloadMapOption(kv map[string]any) Option {
	return func(e *Error) *Error {
		return e.WithPayloadMap(kv)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with New(...).
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
