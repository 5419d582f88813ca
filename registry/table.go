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

package registry

import (
	"dirpx.dev/buserr/category"
	"dirpx.dev/buserr/name"
)

// table is the ordinal-ordered catalogue. An entry's index is its ordinal.
//
// WARNING: the order is a wire/ABI contract (dbus-glib derives its error
// enum from the same sequence). Never reorder, remove or insert; append new
// names at the end. TestOrdinals pins the full sequence.
var table = [...]struct {
	name        name.Name
	category    category.Category
	description string
}{
	{name.Failed, category.Generic, `A generic error; "something went wrong" - see the error message for more.`},
	{name.NoMemory, category.ResourceExhaustion, "There was not enough memory to complete an operation."},
	{name.ServiceUnknown, category.NotFound, "The bus doesn't know how to launch a service to supply the bus name you wanted."},
	{name.NameHasNoOwner, category.NotFound, "The bus name you referenced doesn't exist (i.e. no application owns it)."},
	{name.NoReply, category.Transient, "No reply to a message expecting one, usually means a timeout occurred."},
	{name.IOError, category.Transient, "Something went wrong reading or writing to a socket, for example."},
	{name.BadAddress, category.ProtocolViolation, "A D-Bus bus address was malformed."},
	{name.NotSupported, category.Generic, "Requested operation isn't supported (like ENOSYS on UNIX)."},
	{name.LimitsExceeded, category.ResourceExhaustion, "Some limited resource is exhausted."},
	{name.AccessDenied, category.Permission, "Security restrictions don't allow doing what you're trying to do."},
	{name.AuthFailed, category.Permission, "Authentication didn't work."},
	{name.NoServer, category.Transient, "Unable to connect to server (probably caused by ECONNREFUSED on a socket)."},
	{name.Timeout, category.Transient, "Certain timeout errors, possibly ETIMEDOUT on a socket."},
	{name.NoNetwork, category.Transient, "No network access (probably ENETUNREACH on a socket)."},
	{name.AddressInUse, category.Transient, "Can't bind a socket since its address is in use (i.e. EADDRINUSE)."},
	{name.Disconnected, category.Generic, "The connection is disconnected and you're trying to use it."},
	{name.InvalidArgs, category.ProtocolViolation, "Invalid arguments passed to a method call."},
	{name.FileNotFound, category.NotFound, "Missing file."},
	{name.FileExists, category.NotFound, "Existing file and the operation you're using does not silently overwrite."},
	{name.UnknownMethod, category.ProtocolViolation, "Method name you invoked isn't known by the object you invoked it on."},
	{name.UnknownObject, category.ProtocolViolation, "Object you invoked a method on isn't known."},
	{name.UnknownInterface, category.ProtocolViolation, "Interface you invoked a method on isn't known by the object."},
	{name.UnknownProperty, category.ProtocolViolation, "Property you tried to access isn't known by the object."},
	{name.PropertyReadOnly, category.Permission, "Property you tried to set is read-only."},
	{name.TimedOut, category.Transient, "Certain timeout errors, e.g. while starting a service."},
	{name.MatchRuleNotFound, category.NotFound, "Tried to remove or modify a match rule that didn't exist."},
	{name.MatchRuleInvalid, category.ProtocolViolation, "The match rule isn't syntactically valid."},
	{name.SpawnExecFailed, category.ResourceSpawn, "While starting a new process, the exec() call failed."},
	{name.SpawnForkFailed, category.ResourceSpawn, "While starting a new process, the fork() call failed."},
	{name.SpawnChildExited, category.ResourceSpawn, "While starting a new process, the child exited with a status code."},
	{name.SpawnChildSignaled, category.ResourceSpawn, "While starting a new process, the child exited on a signal."},
	{name.SpawnFailed, category.ResourceSpawn, "While starting a new process, something went wrong."},
	{name.SpawnSetupFailed, category.ResourceSpawn, "We failed to setup the environment correctly."},
	{name.SpawnConfigInvalid, category.ResourceSpawn, "We failed to setup the config parser correctly."},
	{name.SpawnServiceInvalid, category.ResourceSpawn, "Bus name was not valid."},
	{name.SpawnServiceNotFound, category.NotFound, "Service file not found in system-services directory."},
	{name.SpawnPermissionsInvalid, category.ResourceSpawn, "Permissions are incorrect on the setuid helper."},
	{name.SpawnFileInvalid, category.ResourceSpawn, "Service file invalid (Name, User or Exec missing)."},
	// Same upstream text as UnixProcessIdUnknown; kept verbatim.
	{name.SpawnNoMemory, category.ResourceExhaustion, "Tried to get a UNIX process ID and it wasn't available."},
	{name.UnixProcessIDUnknown, category.NotFound, "Tried to get a UNIX process ID and it wasn't available."},
	{name.InvalidSignature, category.ProtocolViolation, "A type signature is not valid."},
	{name.InvalidFileContent, category.ProtocolViolation, "A file contains invalid syntax or is otherwise broken."},
	{name.SELinuxSecurityContextUnknown, category.NotFound, "Asked for SELinux security context and it wasn't available."},
	{name.AdtAuditDataUnknown, category.NotFound, "Asked for ADT audit data and it wasn't available."},
	{name.ObjectPathInUse, category.NotFound, "There's already an object with the requested object path."},
	{name.InconsistentMessage, category.ProtocolViolation, "The message meta data does not match the payload."},
	{name.InteractiveAuthorizationRequired, category.Permission, "The message is not allowed without performing interactive authorization."},
	{name.NotContainer, category.NotFound, "The connection is not from a container, or the specified container instance does not exist."},
}
