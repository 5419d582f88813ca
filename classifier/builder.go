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
	"net/http"

	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/name"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw, dot-separated name prefix (may contain "*").
	// It is validated when we build the trie.
	prefix string
	// cat is the category applied when this prefix matches.
	cat category.Category
}

type builder struct {
	// overrides holds exact per-name categories. They beat the registry.
	overrides map[name.Name]category.Category
	// prefixes holds namespace rules for names the registry doesn't know.
	prefixes []prefixRule

	// dispositions holds per-name refinements of the category disposition.
	dispositions map[name.Name]category.Disposition

	// httpByCategory / grpcByCategory project categories onto transports.
	httpByCategory map[category.Category]int
	grpcByCategory map[category.Category]codes.Code

	// httpByName / grpcByName refine the projection for specific names.
	httpByName map[name.Name]int
	grpcByName map[name.Name]codes.Code

	// errs collects option errors reported by New.
	errs []error

	// global fallbacks used when a category has no projection at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		overrides:    make(map[name.Name]category.Category),
		dispositions: make(map[name.Name]category.Disposition, len(defaultDispositions)),

		httpByCategory: make(map[category.Category]int, len(defaultHTTP)),
		grpcByCategory: make(map[category.Category]codes.Code, len(defaultGRPC)),
		httpByName:     make(map[name.Name]int, len(defaultNameHTTP)),
		grpcByName:     make(map[name.Name]codes.Code, len(defaultNameGRPC)),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Unknown,
	}
}
