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

// ErrorDescriptor is a flat description of one error occurrence together
// with the decisions made about it. It is meant for structured logging,
// tracing and bus-side propagation.
//
// This type intentionally uses plain strings and ints (not the internal
// Name / Category types) so that it can be marshaled anywhere without
// importing the concrete error implementation.
type ErrorDescriptor struct {
	// Name is the bus error name as it goes on the wire.
	Name string `json:"name"`

	// Ordinal is the registry ordinal. It is nil for custom names.
	Ordinal *int `json:"ordinal,omitempty"`

	// Category is the classifier's category, e.g. "transient".
	Category string `json:"category"`

	// Action is the recommended action: "retry", "fail_fast" or "escalate".
	Action string `json:"action"`

	// MaxAttempts bounds retries when Action is "retry". 0 otherwise.
	MaxAttempts int `json:"max_attempts,omitempty"`

	// HTTPStatus and GRPCCode are the transport projections. A value of 0
	// means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`
	GRPCCode   int `json:"grpc_code,omitempty"`

	// Message is the human-readable detail.
	Message string `json:"message,omitempty"`
}
