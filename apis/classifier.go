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

import (
	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/name"
	"google.golang.org/grpc/codes"
)

// Classifier is an immutable, concurrency-safe view of the classification
// rules. It is the single place that turns an error name into a decision;
// no other component should match on names to decide what to do.
type Classifier interface {
	// Classify returns the category of n. It is total: unknown names yield
	// category.Generic.
	Classify(n name.Name) category.Category

	// Advise returns the recommended disposition for n: the category's
	// disposition, possibly refined for that specific name.
	Advise(n name.Name) category.Disposition

	// Status resolves HTTP and gRPC projections for n.
	Status(n name.Name) Status

	// Explain returns a human-readable description of which rule decided
	// each result. It is meant for debugging and tests.
	Explain(n name.Name) string
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
