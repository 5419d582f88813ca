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

package adapter

import (
	"dirpx.dev/buserr"
	"dirpx.dev/buserr/apis"
	"dirpx.dev/buserr/classifier"
)

// ToDescriptor converts an error value together with the decisions c makes
// about it into a portable ErrorDescriptor. A nil c means
// classifier.Default().
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the wire name and ordinal, the category and
// advice, and the concrete transport statuses (HTTP and gRPC).
func ToDescriptor(e *buserr.Error, c apis.Classifier) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	if c == nil {
		c = classifier.Default()
	}
	n := e.Name()
	d := c.Advise(n)
	st := c.Status(n)

	desc := apis.ErrorDescriptor{
		Name:       string(n),
		Category:   string(c.Classify(n)),
		Action:     d.Action.String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message(),
	}
	if d.Retryable() {
		desc.MaxAttempts = d.Backoff.MaxAttempts
	}
	if o, ok := e.Ordinal(); ok {
		v := int(o)
		desc.Ordinal = &v
	}
	return desc
}

// ToView converts an error value into a public ErrorView using c. A nil c
// means classifier.Default(). This function performs no automatic redaction
// or filtering; it exposes exactly what the error instance contains.
//
// The payload is copied into the view as-is. It is up to the caller or API
// layer to decide whether to redact or filter sensitive fields.
func ToView(e *buserr.Error, c apis.Classifier) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	if c == nil {
		c = classifier.Default()
	}
	n := e.Name()
	return apis.ErrorView{
		Name:      string(n),
		Category:  string(c.Classify(n)),
		Message:   e.Message(),
		Retryable: c.Advise(n).Retryable(),
		Payload:   e.Payload(),
	}
}
