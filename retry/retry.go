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

package retry

import (
	"context"
	"time"

	"dirpx.dev/buserr"
	"dirpx.dev/buserr/apis"
	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/classifier"
	"dirpx.dev/buserr/dbusx"
	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"
)

// Op is one attempt of a bus call.
type Op[T any] func(ctx context.Context) (T, error)

type options struct {
	log        logrus.FieldLogger
	maxElapsed time.Duration
}

// Option configures Do.
type Option func(*options)

// WithLogger sets the logger that reports each scheduled retry at debug
// level. Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaxElapsedTime bounds the total time spent retrying. Zero keeps the
// backoff default.
func WithMaxElapsedTime(d time.Duration) Option {
	return func(o *options) { o.maxElapsed = d }
}

// Do runs op until it succeeds or c advises against another attempt. A nil
// c means classifier.Default().
//
// Each failure is decoded with dbusx.FromError and advised on by name:
//
//   - fail_fast and escalate stop immediately;
//   - retry waits with exponential backoff shaped by the BackoffHint and
//     stops once MaxAttempts attempts were made (zero means no cap).
//
// The hint is re-read after every failure, so a call that first times out
// and then hits LimitsExceeded switches to the tighter budget.
//
// On failure the returned error is the *buserr.Error of the last attempt,
// with the original error as its cause. If ctx is done while waiting, the
// context error is returned instead.
func Do[T any](ctx context.Context, c apis.Classifier, op Op[T], opts ...Option) (T, error) {
	if c == nil {
		c = classifier.Default()
	}
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	b := &hintBackOff{exp: backoff.NewExponentialBackOff()}
	attempts := 0
	var last *buserr.Error

	operation := func() (T, error) {
		attempts++
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		last = dbusx.FromError(err)
		if ctx.Err() != nil {
			return v, backoff.Permanent(last)
		}
		d := c.Advise(last.Name())
		if !d.Retryable() {
			return v, backoff.Permanent(last)
		}
		if d.Backoff.MaxAttempts > 0 && attempts >= d.Backoff.MaxAttempts {
			return v, backoff.Permanent(last)
		}
		b.use(d.Backoff)
		return v, last
	}

	notify := func(err error, next time.Duration) {
		o.log.WithFields(logrus.Fields{
			"name":    last.Name(),
			"attempt": attempts,
			"delay":   next,
		}).WithError(err).Debug("retry: bus call failed, retrying")
	}

	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithNotify(notify),
	}
	if o.maxElapsed > 0 {
		retryOpts = append(retryOpts, backoff.WithMaxElapsedTime(o.maxElapsed))
	}

	return backoff.Retry(ctx, operation, retryOpts...)
}

// hintBackOff is an exponential backoff whose bounds follow the most
// recent BackoffHint. Jitter may push a delay past MaxInterval, so
// NextBackOff clamps every delay to the hint's MaxDelay.
type hintBackOff struct {
	exp  *backoff.ExponentialBackOff
	hint category.BackoffHint
}

func (h *hintBackOff) NextBackOff() time.Duration {
	d := h.exp.NextBackOff()
	if d != backoff.Stop && h.hint.MaxDelay > 0 && d > h.hint.MaxDelay {
		return h.hint.MaxDelay
	}
	return d
}

func (h *hintBackOff) Reset() { h.exp.Reset() }

func (h *hintBackOff) use(hint category.BackoffHint) {
	if hint == h.hint {
		return
	}
	h.hint = hint
	if hint.InitialDelay > 0 {
		h.exp.InitialInterval = hint.InitialDelay
	}
	if hint.MaxDelay > 0 {
		h.exp.MaxInterval = hint.MaxDelay
	}
	h.exp.Reset()
}
