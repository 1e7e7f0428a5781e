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

	"github.com/consensys/go-bitcursor/pkg/bit"
	"github.com/consensys/go-bitcursor/pkg/bitio"
	"github.com/consensys/go-bitcursor/pkg/buf"
	"github.com/consensys/go-bitcursor/pkg/mmap"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write [flags] file",
	Short: "overwrite a range of bits in a file.",
	Long: `Overwrite a range of bits in a given file, starting from an arbitrary
	bit offset.  The bits to write are given either in binary (--bits) or in
	hexadecimal (--hex).  The file is patched in place through a memory map,
	hence it never grows, and bits which do not fit are reported as an error.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			bits buf.Bits
			err  error
		)
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		offset := GetUint64(cmd, "offset")
		binary := GetString(cmd, "bits")
		hex := GetString(cmd, "hex")
		//
		switch {
		case binary != "" && hex == "":
			bits, err = parseBinary(binary)
		case hex != "" && binary == "":
			bits, err = parseHex(hex)
		default:
			fmt.Println("exactly one of --bits or --hex is required")
			os.Exit(2)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		// Patch the file in place
		file, err := mmap.Open(args[0], true)
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		if err = writeBits(bitio.NewMut(file), offset, bits); err != nil {
			fmt.Println(err)
			file.Close() //nolint:errcheck
			os.Exit(4)
		} else if err = file.Close(); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		log.Debugf("wrote %d bits at offset %d", bits.Len(), offset)
	},
}

// Overwrite bits from a given offset, failing if they do not all fit.
func writeBits[T bit.MutStorage](cursor *bitio.MutCursor[T], offset uint64, bits buf.Bits) error {
	cursor.SetPosition(offset)
	//
	n, err := cursor.WriteBits(bits.Chunk())
	if err != nil {
		return fmt.Errorf("wrote %d of %d bits at offset %d: %w", n, bits.Len(), offset, err)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().Uint64("offset", 0, "bit offset to write at")
	writeCmd.Flags().String("bits", "", "bits to write in binary (e.g. 0b1011_01)")
	writeCmd.Flags().String("hex", "", "bits to write in hexadecimal (e.g. 0xdea)")
}
