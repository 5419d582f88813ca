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

package name

// Well-known error names defined by the message bus reference
// implementation.
//
// The declaration order below is the registry ordinal order and must never
// change: new names are appended at the end of the last block.

// Generic and daemon-level errors.
const (
	// Failed is the generic "something went wrong" error; the message says
	// more.
	Failed Name = "org.freedesktop.DBus.Error.Failed"

	// NoMemory means there was not enough memory to complete an operation.
	NoMemory Name = "org.freedesktop.DBus.Error.NoMemory"

	// ServiceUnknown means the bus doesn't know how to launch a service to
	// supply the requested bus name.
	ServiceUnknown Name = "org.freedesktop.DBus.Error.ServiceUnknown"

	// NameHasNoOwner means the referenced bus name doesn't exist, i.e. no
	// application owns it.
	NameHasNoOwner Name = "org.freedesktop.DBus.Error.NameHasNoOwner"

	// NoReply means a message expecting a reply got none, usually because of
	// a timeout.
	NoReply Name = "org.freedesktop.DBus.Error.NoReply"

	// IOError means something went wrong reading or writing a socket.
	IOError Name = "org.freedesktop.DBus.Error.IOError"

	// BadAddress means a bus address was malformed.
	BadAddress Name = "org.freedesktop.DBus.Error.BadAddress"

	// NotSupported means the requested operation isn't supported (like
	// ENOSYS on UNIX).
	NotSupported Name = "org.freedesktop.DBus.Error.NotSupported"

	// LimitsExceeded means some limited resource is exhausted.
	LimitsExceeded Name = "org.freedesktop.DBus.Error.LimitsExceeded"

	// AccessDenied means security restrictions don't allow the operation.
	AccessDenied Name = "org.freedesktop.DBus.Error.AccessDenied"

	// AuthFailed means authentication didn't work.
	AuthFailed Name = "org.freedesktop.DBus.Error.AuthFailed"

	// NoServer means the server could not be reached (probably
	// ECONNREFUSED on a socket).
	NoServer Name = "org.freedesktop.DBus.Error.NoServer"

	// Timeout covers certain socket-level timeouts, possibly ETIMEDOUT.
	// NoReply is used for message reply timeouts.
	//
	// NOTE: easy to confuse with TimedOut. Both exist upstream and neither
	// can be renamed.
	Timeout Name = "org.freedesktop.DBus.Error.Timeout"

	// NoNetwork means there is no network access (probably ENETUNREACH).
	NoNetwork Name = "org.freedesktop.DBus.Error.NoNetwork"

	// AddressInUse means a socket can't be bound because its address is in
	// use (EADDRINUSE).
	AddressInUse Name = "org.freedesktop.DBus.Error.AddressInUse"

	// Disconnected means the connection is closed and is being used anyway.
	Disconnected Name = "org.freedesktop.DBus.Error.Disconnected"

	// InvalidArgs means invalid arguments were passed to a method call.
	InvalidArgs Name = "org.freedesktop.DBus.Error.InvalidArgs"

	// FileNotFound means a file is missing.
	FileNotFound Name = "org.freedesktop.DBus.Error.FileNotFound"

	// FileExists means a file exists and the operation does not silently
	// overwrite.
	FileExists Name = "org.freedesktop.DBus.Error.FileExists"
)

// Object model errors.
const (
	// UnknownMethod means the invoked method isn't known by the object.
	UnknownMethod Name = "org.freedesktop.DBus.Error.UnknownMethod"

	// UnknownObject means the object a method was invoked on isn't known.
	UnknownObject Name = "org.freedesktop.DBus.Error.UnknownObject"

	// UnknownInterface means the interface isn't known by the object.
	UnknownInterface Name = "org.freedesktop.DBus.Error.UnknownInterface"

	// UnknownProperty means the property isn't known by the object.
	UnknownProperty Name = "org.freedesktop.DBus.Error.UnknownProperty"

	// PropertyReadOnly means the property being set is read-only.
	PropertyReadOnly Name = "org.freedesktop.DBus.Error.PropertyReadOnly"

	// TimedOut covers certain timeouts, e.g. while starting a service.
	//
	// NOTE: easy to confuse with Timeout. Both exist upstream and neither
	// can be renamed.
	TimedOut Name = "org.freedesktop.DBus.Error.TimedOut"

	// MatchRuleNotFound means a match rule being removed or modified didn't
	// exist.
	MatchRuleNotFound Name = "org.freedesktop.DBus.Error.MatchRuleNotFound"

	// MatchRuleInvalid means a match rule isn't syntactically valid.
	MatchRuleInvalid Name = "org.freedesktop.DBus.Error.MatchRuleInvalid"
)

// Service activation (spawn) errors.
const (
	// SpawnExecFailed means the exec() call failed while starting a process.
	SpawnExecFailed Name = "org.freedesktop.DBus.Error.Spawn.ExecFailed"

	// SpawnForkFailed means the fork() call failed while starting a process.
	SpawnForkFailed Name = "org.freedesktop.DBus.Error.Spawn.ForkFailed"

	// SpawnChildExited means the child exited with a status code while
	// starting.
	SpawnChildExited Name = "org.freedesktop.DBus.Error.Spawn.ChildExited"

	// SpawnChildSignaled means the child exited on a signal while starting.
	SpawnChildSignaled Name = "org.freedesktop.DBus.Error.Spawn.ChildSignaled"

	// SpawnFailed means something else went wrong while starting a process.
	SpawnFailed Name = "org.freedesktop.DBus.Error.Spawn.Failed"

	// SpawnSetupFailed means the environment could not be set up.
	SpawnSetupFailed Name = "org.freedesktop.DBus.Error.Spawn.FailedToSetup"

	// SpawnConfigInvalid means the config parser could not be set up.
	SpawnConfigInvalid Name = "org.freedesktop.DBus.Error.Spawn.ConfigInvalid"

	// SpawnServiceInvalid means the bus name was not valid.
	SpawnServiceInvalid Name = "org.freedesktop.DBus.Error.Spawn.ServiceNotValid"

	// SpawnServiceNotFound means no service file was found in the
	// system-services directory.
	SpawnServiceNotFound Name = "org.freedesktop.DBus.Error.Spawn.ServiceNotFound"

	// SpawnPermissionsInvalid means permissions are wrong on the setuid
	// helper.
	SpawnPermissionsInvalid Name = "org.freedesktop.DBus.Error.Spawn.PermissionsInvalid"

	// SpawnFileInvalid means the service file is invalid (Name, User or Exec
	// missing).
	SpawnFileInvalid Name = "org.freedesktop.DBus.Error.Spawn.FileInvalid"

	// SpawnNoMemory is documented upstream with the same text as
	// UnixProcessIDUnknown. The name suggests an out-of-memory condition
	// during activation; the two stay distinct.
	SpawnNoMemory Name = "org.freedesktop.DBus.Error.Spawn.NoMemory"
)

// Credentials, message and container errors.
const (
	// UnixProcessIDUnknown means a UNIX process ID was requested and wasn't
	// available.
	UnixProcessIDUnknown Name = "org.freedesktop.DBus.Error.UnixProcessIdUnknown"

	// InvalidSignature means a type signature is not valid.
	InvalidSignature Name = "org.freedesktop.DBus.Error.InvalidSignature"

	// InvalidFileContent means a file contains invalid syntax or is
	// otherwise broken.
	InvalidFileContent Name = "org.freedesktop.DBus.Error.InvalidFileContent"

	// SELinuxSecurityContextUnknown means an SELinux security context was
	// requested and wasn't available.
	SELinuxSecurityContextUnknown Name = "org.freedesktop.DBus.Error.SELinuxSecurityContextUnknown"

	// AdtAuditDataUnknown means ADT audit data was requested and wasn't
	// available.
	AdtAuditDataUnknown Name = "org.freedesktop.DBus.Error.AdtAuditDataUnknown"

	// ObjectPathInUse means there's already an object at the requested
	// object path.
	ObjectPathInUse Name = "org.freedesktop.DBus.Error.ObjectPathInUse"

	// InconsistentMessage means the message metadata does not match the
	// payload, e.g. the expected number of file descriptors did not arrive.
	InconsistentMessage Name = "org.freedesktop.DBus.Error.InconsistentMessage"

	// InteractiveAuthorizationRequired means the message would have been
	// allowed after an interactive authorization step.
	InteractiveAuthorizationRequired Name = "org.freedesktop.DBus.Error.InteractiveAuthorizationRequired"

	// NotContainer means the connection is not from a container, or the
	// container instance does not exist.
	NotContainer Name = "org.freedesktop.DBus.Error.NotContainer"
)
