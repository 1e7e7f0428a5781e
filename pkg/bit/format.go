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
package bit

import (
	"fmt"
	"io"
)

// Format implementation for fmt.Formatter.  The verbs %x and %X print the bits
// in hexadecimal (zero padded up to a whole number of bytes), whilst all other
// verbs print binary digits.
func (p Slice) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		format := "%x"
		//
		if verb == 'X' {
			format = "%X"
		}
		//
		if f.Flag('#') {
			format = "%#" + format[1:]
		}
		//
		fmt.Fprintf(f, format, p.Bytes())
	default:
		io.WriteString(f, p.String()) //nolint:errcheck
	}
}

// Format implementation for fmt.Formatter.
func (p MutSlice) Format(f fmt.State, verb rune) {
	p.AsSlice().Format(f, verb)
}

// Format implementation for fmt.Formatter.
func (p *Vec) Format(f fmt.State, verb rune) {
	p.AsSlice().Format(f, verb)
}
