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

package httpx

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"dirpx.dev/buserr/apis"
	"dirpx.dev/buserr/classifier"
	"dirpx.dev/buserr/dbusx"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Meta carries extra context that the HTTP layer can add on top of the bus
// error. All fields are optional and typically come from request context,
// headers, or router-level logic.
type Meta struct {
	Correlation string
	TraceID     string
	SpanID      string

	// RetryAfterSeconds overrides the Retry-After derived from the
	// disposition. Zero means "derive".
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn a bus error into an HTTP
// response using the provided classifier. A nil Classifier means
// classifier.Default().
type Writer struct {
	Classifier apis.Classifier
}

// Write serializes the error view as JSON and writes it to the response
// writer. err may be a *buserr.Error, a godbus error or any Go error; it is
// decoded with dbusx.FromError. A nil err writes nothing.
//
// The HTTP status is resolved via the Classifier; anything outside
// 400..599 is written as 500. Retryable dispositions
// set Retry-After to the initial delay of the backoff hint, rounded up to
// whole seconds.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	e := dbusx.FromError(err)
	if e == nil {
		return
	}
	c := w.Classifier
	if c == nil {
		c = classifier.Default()
	}

	n := e.Name()
	d := c.Advise(n)
	fields := map[string]*structpb.Value{
		"name":      structpb.NewStringValue(string(n)),
		"category":  structpb.NewStringValue(string(c.Classify(n))),
		"action":    structpb.NewStringValue(d.Action.String()),
		"retryable": structpb.NewBoolValue(d.Retryable()),
	}
	if msg := e.Message(); msg != "" {
		fields["message"] = structpb.NewStringValue(msg)
	}
	if o, ok := e.Ordinal(); ok {
		fields["ordinal"] = structpb.NewNumberValue(float64(o))
	}
	if p := e.ErrorPayload(); len(p) > 0 {
		fields["payload"] = structpb.NewStructValue(toStruct(p))
	}
	for k, v := range map[string]string{
		"correlation": meta.Correlation,
		"traceId":     meta.TraceID,
		"spanId":      meta.SpanID,
	} {
		if v != "" {
			fields[k] = structpb.NewStringValue(v)
		}
	}

	retryAfter := meta.RetryAfterSeconds
	if retryAfter <= 0 && d.Retryable() {
		retryAfter = int32(math.Max(1, math.Ceil(d.Backoff.InitialDelay.Seconds())))
	}
	if retryAfter > 0 {
		fields["retryAfterSeconds"] = structpb.NewNumberValue(float64(retryAfter))
	}

	rw.Header().Set("Content-Type", "application/json")
	if retryAfter > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)))
	}
	status := c.Status(n).HTTP
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}
	rw.WriteHeader(status)

	// protojson keeps the output stable for well-known types; encoding/json
	// has no notion of structpb.
	b, _ := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(&structpb.Struct{Fields: fields})
	_, _ = rw.Write(b)
}

// toStruct converts a payload into a Struct. Values structpb cannot
// represent, such as godbus variants or object paths, are rendered with
// fmt.Sprint.
func toStruct(m map[string]any) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(m))
	for k, v := range m {
		fields[k] = toValue(v)
	}
	return &structpb.Struct{Fields: fields}
}

func toValue(v any) *structpb.Value {
	switch t := v.(type) {
	case map[string]any:
		return structpb.NewStructValue(toStruct(t))
	case []any:
		vals := make([]*structpb.Value, len(t))
		for i, x := range t {
			vals[i] = toValue(x)
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals})
	}
	if pv, err := structpb.NewValue(v); err == nil {
		return pv
	}
	return structpb.NewStringValue(fmt.Sprint(v))
}
