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

package dbusx

import (
	"errors"

	"dirpx.dev/buserr"
	"dirpx.dev/buserr/name"
	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
)

// bodyKey is the payload key holding body elements that did not become the
// detail text.
const bodyKey = "body"

// Codec translates between *buserr.Error and the godbus wire error.
// The zero value logs to the logrus standard logger.
//
// A Codec holds no mutable state and is safe for concurrent use.
type Codec struct {
	log logrus.FieldLogger
}

func (c *Codec) logger() logrus.FieldLogger {
	if c.log == nil {
		return logrus.StandardLogger()
	}
	return c.log
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger used to report degraded input. Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Codec) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCodec builds a Codec. Without WithLogger it logs to the logrus
// standard logger.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// FromWire decodes an inbound error reply with the default codec.
func FromWire(n string, body []any) *buserr.Error { return defaultCodec.FromWire(n, body) }

// FromError decodes err with the default codec.
func FromError(err error) *buserr.Error { return defaultCodec.FromError(err) }

// Decode recognizes bus errors with the default codec.
func Decode(err error) (*buserr.Error, bool) { return defaultCodec.Decode(err) }

// ToError encodes e with the default codec.
func ToError(e *buserr.Error) *dbus.Error { return defaultCodec.ToError(e) }

// Reply encodes err for an exported method with the default codec.
func Reply(err error) *dbus.Error { return defaultCodec.Reply(err) }

// FromWire turns the name and body of an error reply into an error value.
// It never fails.
//
// The detail is the first body element when it is a string, which is how
// the bus daemon and most peers send it. Any other elements are kept under
// the "body" payload key. An empty name becomes name.Failed; a malformed
// name is kept verbatim and classifies as generic. Both cases are logged
// at debug level.
func (c *Codec) FromWire(n string, body []any) *buserr.Error {
	switch {
	case n == "":
		c.logger().WithField("body_len", len(body)).Debug("dbusx: error reply without a name")
		n = string(name.Failed)
	case !name.IsWellFormed(n):
		c.logger().WithField("name", n).Debug("dbusx: malformed error name")
	}

	var detail string
	rest := body
	if len(body) > 0 {
		if s, ok := body[0].(string); ok {
			detail = s
			rest = body[1:]
		}
	}

	e := buserr.New(name.Name(n), detail)
	if len(rest) > 0 {
		e = e.WithPayload(bodyKey, append([]any(nil), rest...))
	}
	return e
}

// FromError turns any error returned by a godbus call into an error value.
// A nil error yields nil.
//
// Errors that Decode recognizes keep its result. Anything else, such as a
// closed connection, goes through buserr.Wrap.
func (c *Codec) FromError(err error) *buserr.Error {
	if err == nil {
		return nil
	}
	if e, ok := c.Decode(err); ok {
		return e
	}
	return buserr.Wrap(err)
}

// Decode recognizes the errors that carry a bus name. An *buserr.Error in
// the chain is returned as is. A dbus.Error, by value or by pointer, is
// decoded with FromWire and kept as the cause. Decode reports false for
// everything else.
func (c *Codec) Decode(err error) (*buserr.Error, bool) {
	if err == nil {
		return nil, false
	}
	if e, ok := buserr.As(err); ok {
		return e, true
	}
	var pe *dbus.Error
	if errors.As(err, &pe) && pe != nil {
		return c.FromWire(pe.Name, pe.Body).WithCause(err), true
	}
	var ve dbus.Error
	if errors.As(err, &ve) {
		return c.FromWire(ve.Name, ve.Body).WithCause(err), true
	}
	return nil, false
}

// ToError encodes e for an outbound error reply. A nil e yields nil.
//
// The name goes out exactly as stored: a well-known name carries its
// registry spelling, and a custom name is sent verbatim, typos included.
// The body is the single detail string produced by ToWire.
func (c *Codec) ToError(e *buserr.Error) *dbus.Error {
	if e == nil {
		return nil
	}
	n, detail := e.ToWire()
	if !e.Known() {
		c.logger().WithFields(logrus.Fields{
			"name":      n,
			"malformed": !name.IsWellFormed(n),
		}).Trace("dbusx: sending custom error name")
	}
	return dbus.NewError(n, []any{detail})
}

// Reply is FromError followed by ToError. It fits the last return value of
// a method exported with (*dbus.Conn).Export:
//
//	func (s *Service) Get(key string) (string, *dbus.Error) {
//	    v, err := s.store.Get(key)
//	    return v, dbusx.Reply(err)
//	}
func (c *Codec) Reply(err error) *dbus.Error {
	return c.ToError(c.FromError(err))
}
