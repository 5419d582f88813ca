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

// NamedError represents an error identified by a bus error name, e.g.
// "org.freedesktop.DBus.Error.AccessDenied".
//
// The name is the wire identity of the error: adapters use it verbatim when
// sending an error reply and classifiers key their decisions on it.
type NamedError interface {
	error

	// ErrorName returns the bus error name.
	//
	// The returned value is never empty. It MAY be malformed if it came from
	// a sloppy peer; callers should treat it as an opaque token.
	ErrorName() string
}

// PayloadError represents an error carrying structured diagnostic data,
// e.g. the index of an offending argument.
//
// Implementations SHOULD return a map that the callee will not modify.
// Returning nil is allowed and simply means "no payload".
type PayloadError interface {
	error

	// ErrorPayload returns structured data attached to the error. May return nil.
	ErrorPayload() map[string]any
}

// CausedError represents an error that exposes its underlying cause.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
