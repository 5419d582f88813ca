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

package classifier

import (
	"errors"
	"fmt"
	"net/http"

	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/name"
	"google.golang.org/grpc/codes"
)

// Option configures the Classifier at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Classifier.
type Option func(*builder)

// WithCategory pins the category of one exact name. Use it for
// application-defined errors, e.g. "com.example.Store.Busy" -> transient.
// It also beats the registry for well-known names.
func WithCategory(n name.Name, c category.Category) Option {
	return func(b *builder) {
		if n == name.Empty {
			b.errs = append(b.errs, fmt.Errorf("classifier: empty name in WithCategory"))
			return
		}
		if err := category.Validate(c); err != nil {
			b.errs = append(b.errs, fmt.Errorf("classifier: category %q for %q: %w", c, n, err))
			return
		}
		b.overrides[n] = c
	}
}

// WithPrefix adds a namespace rule for names the registry does not know.
// The rule matches whole elements; "*" matches exactly one element and the
// longest matching prefix wins:
//
//	WithPrefix("com.example.Net", category.Transient)
//	WithPrefix("com.*.Auth", category.Permission)
func WithPrefix(prefix string, c category.Category) Option {
	return func(b *builder) {
		if err := category.Validate(c); err != nil {
			b.errs = append(b.errs, fmt.Errorf("classifier: category %q for prefix %q: %w", c, prefix, err))
			return
		}
		b.prefixes = append(b.prefixes, prefixRule{prefix: prefix, cat: c})
	}
}

// WithDisposition refines the disposition for one exact name, regardless
// of its category.
func WithDisposition(n name.Name, d category.Disposition) Option {
	return func(b *builder) {
		if n == name.Empty {
			b.errs = append(b.errs, fmt.Errorf("classifier: empty name in WithDisposition"))
			return
		}
		b.dispositions[n] = d
	}
}

// WithHTTPStatus sets the HTTP projection of a category. The status must
// be an error status (400..599).
func WithHTTPStatus(c category.Category, status int) Option {
	return func(b *builder) {
		if err := category.Validate(c); err != nil {
			b.errs = append(b.errs, fmt.Errorf("classifier: category %q in WithHTTPStatus: %w", c, err))
			return
		}
		if err := validateHTTP(status); err != nil {
			b.errs = append(b.errs, fmt.Errorf("classifier: category %q: %w", c, err))
			return
		}
		b.httpByCategory[c] = status
	}
}

// WithGRPCCode sets the gRPC projection of a category. The code must not
// be codes.OK.
func WithGRPCCode(c category.Category, code codes.Code) Option {
	return func(b *builder) {
		if err := category.Validate(c); err != nil {
			b.errs = append(b.errs, fmt.Errorf("classifier: category %q in WithGRPCCode: %w", c, err))
			return
		}
		if err := validateGRPC(code); err != nil {
			b.errs = append(b.errs, fmt.Errorf("classifier: category %q: %w", c, err))
			return
		}
		b.grpcByCategory[c] = code
	}
}

// WithNameStatus sets both transport projections for one exact name, with
// the same constraints as WithHTTPStatus and WithGRPCCode.
func WithNameStatus(n name.Name, status int, code codes.Code) Option {
	return func(b *builder) {
		if n == name.Empty {
			b.errs = append(b.errs, fmt.Errorf("classifier: empty name in WithNameStatus"))
			return
		}
		if err := errors.Join(validateHTTP(status), validateGRPC(code)); err != nil {
			b.errs = append(b.errs, fmt.Errorf("classifier: name %q: %w", n, err))
			return
		}
		b.httpByName[n] = status
		b.grpcByName[n] = code
	}
}

// validateHTTP accepts only client and server error statuses.
func validateHTTP(status int) error {
	if status < http.StatusBadRequest || status > 599 {
		return fmt.Errorf("http status %d is not an error status (400..599)", status)
	}
	return nil
}

// validateGRPC rejects codes.OK and codes outside the canonical set.
func validateGRPC(code codes.Code) error {
	if code == codes.OK || code > codes.Unauthenticated {
		return fmt.Errorf("grpc code %v is not an error code", code)
	}
	return nil
}
