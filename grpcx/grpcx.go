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

package grpcx

import (
	"context"
	"strconv"
	"time"

	"dirpx.dev/buserr"
	"dirpx.dev/buserr/apis"
	"dirpx.dev/buserr/classifier"
	"dirpx.dev/buserr/dbusx"
	"dirpx.dev/buserr/name"
	"dirpx.dev/buserr/registry"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
)

// Metadata keys set on errdetails.ErrorInfo.
const (
	MetaName     = "name"
	MetaCategory = "category"
	MetaOrdinal  = "ordinal"
)

// Extras holds optional, rich metadata that can be attached to the status
// next to the ErrorInfo. All fields are optional.
type Extras struct {
	// RequestID is a client/server correlation token (request ID, idempotency key).
	RequestID string

	// Violations lists input/validation problems (usually for InvalidArgs).
	Violations []*errdetails.BadRequest_FieldViolation

	// Links are human-facing links to docs/support/more info.
	Links []*errdetails.Help_Link

	// Localized is a translated message for end users.
	Localized *errdetails.LocalizedMessage
}

// MetaFn extracts Extras from context and the error value.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *buserr.Error) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// maps bus errors into gRPC statuses carrying errdetails.
//
// Handlers may return a *buserr.Error or the raw error of a godbus call;
// both are recognized. Other errors are returned as-is.
//
// The provided apis.Classifier decides the status code and retry hint; nil
// means classifier.Default(). The optional MetaFn can add request-scoped
// details; if nil, only ErrorInfo and RetryInfo are attached.
func UnaryServerInterceptor(c apis.Classifier, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if c == nil {
		c = classifier.Default()
	}
	if metaFn == nil {
		metaFn = func(context.Context, *buserr.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		be, ok := dbusx.Decode(err)
		if !ok {
			// Not ours, return as-is.
			return nil, err
		}
		return nil, ToStatus(c, be, metaFn(ctx, be)).Err()
	}
}

// ToStatus projects e onto a gRPC status using c. A nil e is treated as
// name.Failed, and a classifier answering codes.OK is overridden with
// codes.Unknown: an error never becomes a success on the wire.
//
// The status always carries an ErrorInfo whose Reason is the member of the
// name, whose Domain is its interface and whose metadata holds the full
// name, category and (for known names) ordinal. Retryable dispositions add
// a RetryInfo with the initial delay of the backoff hint.
func ToStatus(c apis.Classifier, e *buserr.Error, ex Extras) *gstatus.Status {
	if e == nil {
		e = buserr.New(name.Failed, "")
	}
	n := e.Name()
	cat := c.Classify(n)
	code := c.Status(n).GRPC
	if code == gcodes.OK {
		code = gcodes.Unknown
	}
	base := gstatus.New(code, e.Message())

	meta := map[string]string{
		MetaName:     string(n),
		MetaCategory: string(cat),
	}
	if o, ok := e.Ordinal(); ok {
		meta[MetaOrdinal] = strconv.Itoa(int(o))
	}
	details := []protoadapt.MessageV1{
		&errdetails.ErrorInfo{
			Reason:   n.Member(),
			Domain:   n.Interface(),
			Metadata: meta,
		},
	}
	if d := c.Advise(n); d.Retryable() {
		details = append(details, &errdetails.RetryInfo{
			RetryDelay: durationpb.New(d.Backoff.InitialDelay),
		})
	}
	if ex.RequestID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.RequestID})
	}
	if len(ex.Violations) > 0 {
		details = append(details, &errdetails.BadRequest{FieldViolations: ex.Violations})
	}
	if len(ex.Links) > 0 {
		details = append(details, &errdetails.Help{Links: ex.Links})
	}
	if ex.Localized != nil {
		details = append(details, ex.Localized)
	}

	// Try to attach details. If it fails, return base.
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// statuses produced by UnaryServerInterceptor back into *buserr.Error. The
// original status error is kept as the cause, so status.FromError still
// works on the result. Other errors pass through unchanged.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if be, ok := ExtractError(err); ok {
			return be
		}
		return err
	}
}

// ExtractError rebuilds the error value from a gRPC error carrying an
// ErrorInfo written by ToStatus. Useful in tests and client code.
//
// The name comes from the metadata. When the metadata was dropped, the
// name rebuilt by NameFromInfo is used only if the registry knows it, so
// ErrorInfo from other services (e.g. Domain "googleapis.com") is left
// alone.
func ExtractError(err error) (*buserr.Error, bool) {
	info, st, ok := extractInfo(err)
	if !ok {
		return nil, false
	}
	n := name.Name(info.GetMetadata()[MetaName])
	if n == name.Empty {
		if fromInfo := NameFromInfo(info); registry.Identify(string(fromInfo)).Known() {
			n = fromInfo
		}
	}
	if n == name.Empty {
		return nil, false
	}
	return buserr.FromWire(string(n), st.Message()).WithCause(err), true
}

// ExtractRetryDelay returns the RetryInfo delay of a gRPC error, if present.
func ExtractRetryDelay(err error) (time.Duration, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || st.Code() == gcodes.OK {
		return 0, false
	}
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RetryInfo); ok && ri.GetRetryDelay() != nil {
			return ri.GetRetryDelay().AsDuration(), true
		}
	}
	return 0, false
}

func extractInfo(err error) (*errdetails.ErrorInfo, *gstatus.Status, bool) {
	if err == nil {
		return nil, nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, st, true
		}
	}
	return nil, nil, false
}

// NameFromInfo rebuilds the bus name from the Domain and Reason of an
// ErrorInfo, for peers that drop the metadata.
func NameFromInfo(info *errdetails.ErrorInfo) name.Name {
	if info.GetDomain() == "" {
		return name.Name(info.GetReason())
	}
	return name.Name(info.GetDomain() + "." + info.GetReason())
}
