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

// defaultDispositions refines category dispositions for specific names.
//
// Spawn.ForkFailed is usually EAGAIN from fork(): a process-table or memory
// squeeze on the bus host that tends to clear, unlike the other spawn
// errors which point at broken service files or helpers.
var defaultDispositions = map[name.Name]category.Disposition{
	name.SpawnForkFailed: category.ResourceExhaustion.Disposition(),
}

// defaultHTTP projects categories onto HTTP statuses for gateways that
// expose bus calls over REST.
var defaultHTTP = map[category.Category]int{
	category.Transient:          http.StatusServiceUnavailable,  // Peer or bus temporarily unreachable.
	category.ProtocolViolation:  http.StatusBadRequest,          // Caller sent something the peer can't accept.
	category.Permission:         http.StatusForbidden,           // Policy said no.
	category.ResourceSpawn:      http.StatusBadGateway,          // Bus could not start the service behind the name.
	category.ResourceExhaustion: http.StatusServiceUnavailable,  // Memory or limits ran out on the other side.
	category.NotFound:           http.StatusNotFound,            // Name, file or rule does not exist.
	category.Generic:            http.StatusInternalServerError, // Nothing sharper to say.
}

// defaultGRPC projects categories onto canonical gRPC codes.
var defaultGRPC = map[category.Category]codes.Code{
	category.Transient:          codes.Unavailable,
	category.ProtocolViolation:  codes.InvalidArgument,
	category.Permission:         codes.PermissionDenied,
	category.ResourceSpawn:      codes.Internal,
	category.ResourceExhaustion: codes.ResourceExhausted,
	category.NotFound:           codes.NotFound,
	category.Generic:            codes.Unknown,
}

// defaultNameHTTP refines the HTTP projection where a single name has a
// closer match than its category.
var defaultNameHTTP = map[name.Name]int{
	name.NoReply:  http.StatusGatewayTimeout,
	name.Timeout:  http.StatusGatewayTimeout,
	name.TimedOut: http.StatusGatewayTimeout,

	name.AuthFailed:                       http.StatusUnauthorized,
	name.InteractiveAuthorizationRequired: http.StatusUnauthorized,

	name.NotSupported:     http.StatusNotImplemented,
	name.UnknownMethod:    http.StatusNotImplemented,
	name.UnknownInterface: http.StatusNotImplemented,

	name.UnknownObject:   http.StatusNotFound,
	name.UnknownProperty: http.StatusNotFound,

	name.FileExists:      http.StatusConflict,
	name.ObjectPathInUse: http.StatusConflict,
}

// defaultNameGRPC mirrors defaultNameHTTP for gRPC.
var defaultNameGRPC = map[name.Name]codes.Code{
	name.NoReply:  codes.DeadlineExceeded,
	name.Timeout:  codes.DeadlineExceeded,
	name.TimedOut: codes.DeadlineExceeded,

	name.AuthFailed:                       codes.Unauthenticated,
	name.InteractiveAuthorizationRequired: codes.Unauthenticated,

	name.NotSupported:     codes.Unimplemented,
	name.UnknownMethod:    codes.Unimplemented,
	name.UnknownInterface: codes.Unimplemented,

	name.UnknownObject:   codes.NotFound,
	name.UnknownProperty: codes.NotFound,

	name.FileExists:      codes.AlreadyExists,
	name.ObjectPathInUse: codes.AlreadyExists,
}
