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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-bitcursor/pkg/buf"
	"github.com/consensys/go-bitcursor/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected 64-bit unsigned integer flag, or exits if an error
// arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine whether colour escapes should be used for output.
func useColour(cmd *cobra.Command) bool {
	return !GetFlag(cmd, "no-colour") && termio.IsTerminal()
}

// Read the contents of a given file, or exit if an error arises.
func readInputFile(filename string) []byte {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	log.Debugf("read %d bytes from %s", len(bytes), filename)
	//
	return bytes
}

// Parse a string of binary digits (e.g. "0b1011_0011") into a sequence of bits.
// An optional "0b" prefix is permitted, and underscores are ignored.
func parseBinary(text string) (buf.Bits, error) {
	var bits = buf.NewBitsMut()
	//
	for i, c := range strings.TrimPrefix(text, "0b") {
		switch c {
		case '0', '1':
			bits.PutBit(c == '1')
		case '_':
			continue
		default:
			return buf.Bits{}, fmt.Errorf("invalid binary digit '%c' at index %d", c, i)
		}
	}
	//
	return bits.Freeze(), nil
}

// Parse a string of hexadecimal digits (e.g. "0xdead_b") into a sequence of
// bits, where each digit contributes four bits.  An optional "0x" prefix is
// permitted, and underscores are ignored.
func parseHex(text string) (buf.Bits, error) {
	var bits = buf.NewBitsMut()
	//
	for i, c := range strings.TrimPrefix(strings.ToLower(text), "0x") {
		switch {
		case c >= '0' && c <= '9':
			bits.PutUint(uint64(c-'0'), 4)
		case c >= 'a' && c <= 'f':
			bits.PutUint(uint64(c-'a'+10), 4)
		case c == '_':
			continue
		default:
			return buf.Bits{}, fmt.Errorf("invalid hex digit '%c' at index %d", c, i)
		}
	}
	//
	return bits.Freeze(), nil
}
