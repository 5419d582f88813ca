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

package category

import (
	"fmt"
	"time"
)

// Action is what a caller is advised to do with a failed call.
type Action int

const (
	// Escalate means there is not enough information to decide
	// automatically; surface the error to the caller or user.
	Escalate Action = iota

	// FailFast means retrying without changing the inputs cannot help.
	FailFast

	// Retry means a later attempt may succeed. The caller owns the actual
	// backoff schedule; BackoffHint only bounds it.
	Retry
)

// String returns a stable lower-case name for logs.
func (a Action) String() string {
	switch a {
	case Escalate:
		return "escalate"
	case FailFast:
		return "fail_fast"
	case Retry:
		return "retry"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// BackoffHint bounds a retry schedule. It is advisory: the executor that
// consumes it (see package retry) decides on jitter and timers.
type BackoffHint struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps any single delay.
	MaxDelay time.Duration
}

// IsZero reports whether the hint carries no bounds at all.
func (h BackoffHint) IsZero() bool {
	return h == BackoffHint{}
}

// Disposition is the recommended handling of an error.
// Backoff is only set when Action is Retry.
type Disposition struct {
	Action  Action
	Backoff BackoffHint
}

// Retryable reports whether the disposition allows another attempt.
func (d Disposition) Retryable() bool {
	return d.Action == Retry
}

// String renders the disposition for logs, e.g. "retry(max=5 initial=100ms max_delay=5s)".
func (d Disposition) String() string {
	if d.Action != Retry {
		return d.Action.String()
	}
	return fmt.Sprintf("retry(max=%d initial=%s max_delay=%s)",
		d.Backoff.MaxAttempts, d.Backoff.InitialDelay, d.Backoff.MaxDelay)
}

// Default backoff bounds. Resource pressure may or may not clear, so
// cappedBackoff allows a single retry with a longer pause.
var (
	transientBackoff = BackoffHint{MaxAttempts: 5, InitialDelay: 100 * time.Millisecond, MaxDelay: 5 * time.Second}
	cappedBackoff    = BackoffHint{MaxAttempts: 2, InitialDelay: time.Second, MaxDelay: 2 * time.Second}
)

// Disposition maps the category to its recommended handling. This is the
// single source of truth; callers must not match on error names to decide
// whether to retry.
//
//   - Transient          -> Retry (transientBackoff)
//   - ResourceExhaustion -> Retry (cappedBackoff)
//   - ProtocolViolation, Permission, ResourceSpawn, NotFound -> FailFast
//   - Generic and anything unrecognized -> Escalate
func (c Category) Disposition() Disposition {
	switch c {
	case Transient:
		return Disposition{Action: Retry, Backoff: transientBackoff}
	case ResourceExhaustion:
		return Disposition{Action: Retry, Backoff: cappedBackoff}
	case ProtocolViolation, Permission, ResourceSpawn, NotFound:
		return Disposition{Action: FailFast}
	default:
		return Disposition{Action: Escalate}
	}
}
