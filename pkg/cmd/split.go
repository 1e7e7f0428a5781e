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
	"github.com/consensys/go-bitcursor/pkg/util/termio"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split [flags] file",
	Short: "split the bits of a file at a given offset.",
	Long: `Split the bits of a given file in two at a given bit offset, and
	print both halves.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			offset = GetUint64(cmd, "offset")
			cursor = bitio.New(buf.FromBytes(readInputFile(args[0])))
		)
		//
		if offset > cursor.Len() {
			fmt.Printf("offset %d beyond end of file (%d bits)\n", offset, cursor.Len())
			os.Exit(4)
		}
		//
		cursor.SetPosition(offset)
		before, after := cursor.Split()
		//
		table := splitTable(before, after)
		table.SetMaxWidth(3, termio.TerminalWidth()/2)
		table.AnsiEscapes(useColour(cmd))
		//
		if err := table.Print(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
	},
}

// Construct a table summarising both halves of a split.
func splitTable(before, after bit.Slice) *termio.TablePrinter {
	table := termio.NewTablePrinter(4)
	//
	for i, half := range []bit.Slice{before, after} {
		var (
			name   = "before"
			colour = termio.TERM_GREEN
		)
		//
		if i == 1 {
			name, colour = "after", termio.TERM_YELLOW
		}
		//
		row := table.AddRow(name, fmt.Sprintf("%d bits", half.Len()), fmt.Sprintf("%d set", half.Count()),
			half.String())
		table.SetEscape(3, row, termio.NewAnsiEscape().FgColour(colour))
	}
	//
	return table
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().Uint64("offset", 0, "bit offset to split at")
}
