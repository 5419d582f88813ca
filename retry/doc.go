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

// Package retry runs bus calls again when the classifier says it may help.
//
//	v, err := retry.Do(ctx, nil, func(ctx context.Context) (string, error) {
//	    var out string
//	    err := obj.CallWithContext(ctx, "org.example.Store.Get", 0, key).Store(&out)
//	    return out, err
//	})
//
// Pacing comes from the BackoffHint of each failure and is executed by
// github.com/cenkalti/backoff/v5.
package retry
