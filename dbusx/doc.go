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

// Package dbusx is the boundary between buserr and
// github.com/godbus/dbus/v5.
//
// Inbound, a godbus call fails with a dbus.Error holding a name and a body;
// FromError and FromWire turn it into a *buserr.Error without ever failing,
// whatever the peer sent. Outbound, ToError and Reply produce the
// *dbus.Error that exported methods return.
//
// Names are opaque on the wire and compared exactly. A misspelled name is
// not an error here: it is sent or received as a custom name and
// classifies as generic.
package dbusx
