// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// DefaultWidth is the width assumed when output is not a terminal.
const DefaultWidth = uint(80)

// IsTerminal checks whether standard output is attached to a terminal, in
// which case ANSI escapes can be used.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width (in characters) of the terminal attached to
// standard output, or DefaultWidth if there is none.
func TerminalWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	//
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		log.Debugf("unable to determine terminal size: %v", err)
		return DefaultWidth
	}
	//
	return uint(w)
}
