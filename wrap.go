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

package buserr

import (
	"context"
	"errors"
	"net"
	"os"

	"dirpx.dev/buserr/apis"
	"dirpx.dev/buserr/name"
)

// stdMappings translates well-known Go errors into bus error names.
// Order matters: the first match wins.
var stdMappings = []struct {
	target error
	name   name.Name
}{
	{context.DeadlineExceeded, name.NoReply},
	{os.ErrNotExist, name.FileNotFound},
	{os.ErrExist, name.FileExists},
	{os.ErrPermission, name.AccessDenied},
	{net.ErrClosed, name.Disconnected},
}

// Wrap turns any Go error into an *Error so it can be sent as an error
// reply. A nil error yields nil.
//
// An *Error anywhere in the chain is returned as is. Well-known standard
// errors map to their bus equivalents (a context deadline becomes NoReply,
// fs.ErrNotExist becomes FileNotFound, and so on); everything else becomes
// Failed. The original error is kept as the cause.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}
	n := name.Failed
	for _, m := range stdMappings {
		if errors.Is(err, m.target) {
			n = m.name
			break
		}
	}
	return New(n, err.Error(), WithCauseOption(err))
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// NameOf returns the bus error name carried by err, from any
// apis.NamedError in its chain. It reports false when there is none.
func NameOf(err error) (name.Name, bool) {
	var ne apis.NamedError
	if errors.As(err, &ne) {
		return name.Name(ne.ErrorName()), true
	}
	return name.Empty, false
}
