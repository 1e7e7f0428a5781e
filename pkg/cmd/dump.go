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
	"io"
	"os"

	"github.com/consensys/go-bitcursor/pkg/bit"
	"github.com/consensys/go-bitcursor/pkg/bitio"
	"github.com/consensys/go-bitcursor/pkg/mmap"
	"github.com/consensys/go-bitcursor/pkg/util/termio"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] file",
	Short: "print the bits of a file as a table.",
	Long: `Print the bits of a given file as a table, where each row shows
	the bit offset of its first bit, along with its bits in both binary
	and hexadecimal.  Rows need not be byte aligned.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			offset = GetUint64(cmd, "offset")
			nbits  = GetUint64(cmd, "bits")
			width  = GetUint(cmd, "width")
		)
		// Map the file, rather than reading it all in
		file, err := mmap.Open(args[0], false)
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		defer file.Close() //nolint:errcheck
		//
		cursor := bitio.New(file)
		// Determine row width from the terminal (if not given)
		if width == 0 {
			width = defaultRowWidth(termio.TerminalWidth())
		}
		//
		cursor.SetPosition(offset)
		//
		if nbits == 0 {
			nbits = cursor.Remaining()
		}
		//
		table := dumpBits(cursor, nbits, width)
		table.AnsiEscapes(useColour(cmd))
		//
		if err = table.Print(os.Stdout); err != nil {
			fmt.Println(err)
		}
	},
}

// Read up to nbits bits from a given cursor into a table with a given number of
// bits per row.
func dumpBits(cursor bitio.BitReader, nbits uint64, width uint) *termio.TablePrinter {
	var (
		table  = termio.NewTablePrinter(3)
		row    = bit.NewVec(width)
		escape = termio.NewAnsiEscape().FgColour(termio.TERM_BLUE)
		offset = uint64(0)
	)
	//
	if seeker, ok := cursor.(bitio.BitSeeker); ok {
		offset, _ = seeker.BitSeek(0, io.SeekCurrent)
	}
	//
	for nbits > 0 {
		dst := row.AsMutSlice()
		//
		if nbits < uint64(width) {
			dst = dst.Slice(0, uint(nbits))
		}
		//
		n, err := cursor.ReadBits(dst)
		if err != nil || n == 0 {
			break
		}
		//
		bits := dst.AsSlice().Slice(0, uint(n))
		index := table.AddRow(fmt.Sprintf("%d", offset), bits.String(), fmt.Sprintf("%x", bits))
		table.SetEscape(0, index, escape)
		//
		offset += uint64(n)
		nbits -= uint64(n)
	}
	//
	return table
}

// Choose a power-of-two number of bits per row which fits within a given
// terminal width, allowing for the offset and hex columns.
func defaultRowWidth(termWidth uint) uint {
	width := uint(8)
	// Each bit needs one column in binary, plus a quarter in hex.
	fits := func(w uint) bool { return 20+w+w/4 <= termWidth }
	//
	for fits(2 * width) {
		width *= 2
	}
	//
	return width
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Uint64("offset", 0, "bit offset to start from")
	dumpCmd.Flags().Uint64("bits", 0, "number of bits to print (0 means all)")
	dumpCmd.Flags().Uint("width", 0, "number of bits per row (0 means fit to terminal)")
}
