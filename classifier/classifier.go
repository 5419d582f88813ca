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
	"strings"

	"dirpx.dev/buserr/apis"
	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/classifier/internal/segmenttrie"
	"dirpx.dev/buserr/name"
	"dirpx.dev/buserr/registry"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Classifier snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (dispositions, HTTP & gRPC).
//  2. Apply user-provided options.
//  3. Compile namespace prefixes into a segment trie.
//  4. Freeze all maps into fresh copies.
//
// Errors returned from this function indicate invalid options: an empty
// name, an unknown category, or a malformed prefix.
func New(opts ...Option) (apis.Classifier, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults. Copy into builder-owned maps
	// to prevent external mutation.
	seed(b.dispositions, defaultDispositions)
	seed(b.httpByCategory, defaultHTTP)
	seed(b.grpcByCategory, defaultGRPC)
	seed(b.httpByName, defaultNameHTTP)
	seed(b.grpcByName, defaultNameGRPC)

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	// (3) Compile prefix rules.
	var trie *segmenttrie.Trie[category.Category]
	if len(b.prefixes) > 0 {
		trie = segmenttrie.New[category.Category]()
		for _, r := range b.prefixes {
			if err := trie.Insert(r.prefix, r.cat); err != nil {
				return nil, fmt.Errorf("classifier: invalid name prefix %q: %w", r.prefix, err)
			}
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	return &classifier{
		overrides:      freeze(b.overrides),
		prefixes:       trie,
		dispositions:   freeze(b.dispositions),
		httpByCategory: freeze(b.httpByCategory),
		grpcByCategory: freeze(b.grpcByCategory),
		httpByName:     freeze(b.httpByName),
		grpcByName:     freeze(b.grpcByName),
		fallbackHTTP:   b.fallbackHTTP,
		fallbackGRPC:   b.fallbackGRPC,
	}, nil
}

// MustNew is the panic-on-error variant of New, for package-level
// classifiers built from constant options.
func MustNew(opts ...Option) apis.Classifier {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// defaultClassifier is built once; it carries library defaults only.
var defaultClassifier = MustNew()

// Default returns the shared classifier with library defaults only.
func Default() apis.Classifier { return defaultClassifier }

// Classify classifies n with the default classifier.
func Classify(n name.Name) category.Category { return defaultClassifier.Classify(n) }

// Advise advises on n with the default classifier.
func Advise(n name.Name) category.Disposition { return defaultClassifier.Advise(n) }

// classifier is an immutable implementation combining exact overrides, the
// registry, and a namespace prefix trie. Lookups are O(depth) and safe for
// concurrent use once constructed.
type classifier struct {
	overrides map[name.Name]category.Category
	prefixes  *segmenttrie.Trie[category.Category]

	dispositions map[name.Name]category.Disposition

	httpByCategory map[category.Category]int
	grpcByCategory map[category.Category]codes.Code
	httpByName     map[name.Name]int
	grpcByName     map[name.Name]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// Source tiers reported by Explain.
const (
	sourceOverride = "override"
	sourceRegistry = "registry"
	sourcePrefix   = "prefix"
	sourceFallback = "fallback"
	sourceName     = "name"
	sourceCategory = "category"
)

// Classify resolves the category of n.
//
// Resolution order (highest to lowest):
//  1. exact per-name override;
//  2. registry entry for a well-known name;
//  3. longest namespace prefix rule;
//  4. category.Generic.
func (c *classifier) Classify(n name.Name) category.Category {
	cat, _, _ := c.classify(n)
	return cat
}

func (c *classifier) classify(n name.Name) (cat category.Category, source, pattern string) {
	if v, ok := c.overrides[n]; ok {
		return v, sourceOverride, ""
	}
	if e, ok := registry.Lookup(string(n)); ok {
		return e.Category, sourceRegistry, ""
	}
	if v, ok, pat := c.prefixes.MatchWithPattern(string(n)); ok {
		return v, sourcePrefix, pat
	}
	return category.Generic, sourceFallback, ""
}

// Advise returns the per-name disposition if one is configured, else the
// disposition of n's category.
func (c *classifier) Advise(n name.Name) category.Disposition {
	d, _ := c.advise(n)
	return d
}

func (c *classifier) advise(n name.Name) (category.Disposition, string) {
	if d, ok := c.dispositions[n]; ok {
		return d, sourceName
	}
	return c.Classify(n).Disposition(), sourceCategory
}

// HTTPStatus resolves the HTTP projection: per-name, then per-category,
// then the fallback (500).
func (c *classifier) HTTPStatus(n name.Name) int {
	v, _ := c.httpStatus(n)
	return v
}

func (c *classifier) httpStatus(n name.Name) (int, string) {
	if v, ok := c.httpByName[n]; ok {
		return v, sourceName
	}
	if v, ok := c.httpByCategory[c.Classify(n)]; ok {
		return v, sourceCategory
	}
	return c.fallbackHTTP, sourceFallback
}

// GRPCStatus resolves the gRPC projection with the same precedence as
// HTTPStatus; the fallback is codes.Unknown.
func (c *classifier) GRPCStatus(n name.Name) codes.Code {
	v, _ := c.grpcStatus(n)
	return v
}

func (c *classifier) grpcStatus(n name.Name) (codes.Code, string) {
	if v, ok := c.grpcByName[n]; ok {
		return v, sourceName
	}
	if v, ok := c.grpcByCategory[c.Classify(n)]; ok {
		return v, sourceCategory
	}
	return c.fallbackGRPC, sourceFallback
}

// Status resolves both transports using the same inputs.
func (c *classifier) Status(n name.Name) apis.Status {
	return apis.Status{
		HTTP: c.HTTPStatus(n),
		GRPC: c.GRPCStatus(n),
	}
}

// Explain produces a textual trace of how the classifier resolved n.
//
// Example output:
//
//	name="com.example.Net.Down"
//	category: source=prefix pattern="com.example.Net" -> transient
//	disposition: source=category -> retry(max=5 initial=100ms max_delay=5s)
//	http: source=category -> 503
//	grpc: source=category -> UNAVAILABLE(14)
//
// Category sources are override, registry, prefix or fallback; the other
// lines report name, category or fallback. Known names also show their
// ordinal.
func (c *classifier) Explain(n name.Name) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "name=%q", n)
	if e, ok := registry.Lookup(string(n)); ok {
		_, _ = fmt.Fprintf(&b, " ordinal=%d", e.Ordinal)
	}
	if !n.IsWellFormed() {
		b.WriteString(" malformed")
	}
	b.WriteByte('\n')

	cat, src, pat := c.classify(n)
	if pat != "" {
		_, _ = fmt.Fprintf(&b, "category: source=%s pattern=%q -> %s\n", src, pat, cat)
	} else {
		_, _ = fmt.Fprintf(&b, "category: source=%s -> %s\n", src, cat)
	}

	d, dsrc := c.advise(n)
	_, _ = fmt.Fprintf(&b, "disposition: source=%s -> %s\n", dsrc, d)

	h, hsrc := c.httpStatus(n)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, h)

	g, gsrc := c.grpcStatus(n)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", gsrc, strings.ToUpper(g.String()), int(g))

	return b.String()
}
