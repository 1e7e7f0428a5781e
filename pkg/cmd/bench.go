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
	"math/rand/v2"
	"os"
	"sync/atomic"

	"github.com/consensys/go-bitcursor/pkg/bit"
	"github.com/consensys/go-bitcursor/pkg/bitio"
	"github.com/consensys/go-bitcursor/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Length (in bits) of the pattern written during benchmarking.  This is
// deliberately not a multiple of eight, so that most writes are unaligned.
const benchPatternBits = 61

var benchCmd = &cobra.Command{
	Use:   "bench [flags]",
	Short: "benchmark unaligned bit reads and writes.",
	Long: `Benchmark unaligned bit reads and writes by repeatedly filling a
	buffer with a random bit pattern from a varying bit offset, and then
	reading it back again.  With --parallel, the buffer is first split
	into byte-aligned regions which are processed concurrently.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			size       = GetUint(cmd, "size")
			iterations = GetUint(cmd, "iterations")
			parallel   = GetUint(cmd, "parallel")
			seed       = GetUint64(cmd, "seed")
		)
		//
		if parallel == 0 {
			fmt.Println("--parallel must be at least 1")
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		//
		nbits, err := runBench(make(bit.Bytes, size), iterations, parallel, seed)
		if err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
		//
		stats.Log("Benchmark")
		fmt.Printf("processed %d bits in %s (%.1f Mbit/s)\n", nbits, stats.Elapsed(), stats.Throughput(nbits)/1e6)
	},
}

// Run a given number of round trips over some storage, split into a given
// number of regions which are processed concurrently.  This returns the total
// number of bits written and read.
func runBench(storage bit.MutStorage, iterations uint, parallel uint, seed uint64) (uint64, error) {
	var (
		group   errgroup.Group
		total   atomic.Uint64
		regions = partition(storage.BorrowBitsMut(), parallel)
		rng     = rand.New(rand.NewPCG(seed, uint64(parallel)))
		pattern = bit.NewVec(0)
	)
	//
	for pattern.Len() < benchPatternBits {
		pattern.Push(rng.IntN(2) == 1)
	}
	//
	for i, region := range regions {
		log.Debugf("region %d covers %d bits", i, region.Len())
		//
		group.Go(func() error {
			n, err := roundTrips(region, pattern.AsSlice(), iterations)
			total.Add(n)
			//
			if err != nil {
				return fmt.Errorf("region %d: %w", i, err)
			}
			//
			return nil
		})
	}
	//
	err := group.Wait()
	//
	return total.Load(), err
}

// Split a view into n regions of roughly equal size, such that no two regions
// share a byte.
func partition(bits bit.MutSlice, n uint) []bit.MutSlice {
	regions := make([]bit.MutSlice, 0, n)
	//
	for i := n; i > 1; i-- {
		cursor := bitio.NewMut(bits)
		cursor.SetPosition(uint64(bits.Len() / i))
		//
		head, tail := cursor.SplitMutAligned()
		regions = append(regions, head)
		bits = tail
	}
	//
	return append(regions, bits)
}

// Repeatedly fill a region with copies of a given pattern, and then read them
// back.  Each iteration starts from a different bit offset.
func roundTrips(region bit.MutSlice, pattern bit.Slice, iterations uint) (uint64, error) {
	var (
		cursor = bitio.NewMut(region)
		dst    = bit.NewVec(pattern.Len())
		total  uint64
	)
	//
	for i := range iterations {
		offset := uint64(i % 8)
		// Fill
		cursor.SetPosition(offset)
		//
		for {
			n, err := cursor.WriteBits(pattern)
			total += uint64(n)
			//
			if errors.Is(err, io.ErrShortWrite) {
				break
			} else if err != nil {
				return total, err
			}
		}
		// Check
		cursor.SetPosition(offset)
		//
		for {
			n, err := cursor.ReadBits(dst.AsMutSlice())
			total += uint64(n)
			//
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				return total, err
			} else if !dst.AsSlice().Slice(0, uint(n)).Equal(pattern.Slice(0, uint(n))) {
				return total, fmt.Errorf("mismatch at bit %d (iteration %d)", cursor.Position()-uint64(n), i)
			}
		}
	}
	//
	return total, nil
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Uint("size", 1<<20, "size (in bytes) of the buffer")
	benchCmd.Flags().Uint("iterations", 16, "number of round trips")
	benchCmd.Flags().Uint("parallel", 1, "number of concurrent regions")
	benchCmd.Flags().Uint64("seed", 0, "seed for the random bit pattern")
}
