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
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/consensys/go-bitcursor/pkg/bit"
	"github.com/consensys/go-bitcursor/pkg/bitio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [flags] file",
	Short: "read a range of bits from a file.",
	Long: `Read a range of bits from a given file, starting from an arbitrary
	bit offset, and print them in binary (or hexadecimal).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			offset = GetUint64(cmd, "offset")
			nbits  = GetUint(cmd, "bits")
			hex    = GetFlag(cmd, "hex")
			cursor = bitio.New(bit.Bytes(readInputFile(args[0])))
		)
		//
		bits, err := readBits(cursor, offset, nbits)
		if err != nil {
			fmt.Println(err)
			os.Exit(4)
		} else if bits.Len() < nbits {
			log.Warnf("only %d of %d bits available", bits.Len(), nbits)
		}
		//
		if hex {
			fmt.Printf("%x\n", bits)
		} else {
			fmt.Println(bits)
		}
	},
}

// Read up to nbits bits from a given offset.  Reading beyond the end of the
// input simply returns fewer bits.
func readBits(cursor bitio.BitReadSeeker, offset uint64, nbits uint) (*bit.Vec, error) {
	if offset > math.MaxInt64 {
		return nil, fmt.Errorf("offset %d too large", offset)
	}
	//
	if _, err := cursor.BitSeek(int64(offset), io.SeekStart); err != nil {
		return nil, err
	}
	//
	bits := bit.NewVec(nbits)
	//
	n, err := cursor.ReadBits(bits.AsMutSlice())
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	//
	bits.Truncate(uint(n))
	//
	return bits, nil
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().Uint64("offset", 0, "bit offset to read from")
	readCmd.Flags().Uint("bits", 8, "number of bits to read")
	readCmd.Flags().Bool("hex", false, "print bits in hexadecimal")
}
