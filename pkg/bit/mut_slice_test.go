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
	"testing"

	"golang.org/x/sync/errgroup"
)

func Test_MutSlice_Set(t *testing.T) {
	data := make([]byte, 2)
	bits := MutSliceOf(data)
	//
	bits.Set(0, true)
	bits.Set(9, true)
	bits.Set(15, true)
	bits.Set(0, false)
	//
	checkBytes(t, data, []byte{0b0000_0000, 0b0100_0001})
	checkPanics(t, "set past end", func() { bits.Set(16, true) })
}

func Test_MutSlice_Fill(t *testing.T) {
	data := []byte{0b1010_1010, 0b1010_1010, 0b1010_1010}
	//
	MutSliceOf(data).Slice(3, 13).Fill(true)
	checkBytes(t, data, []byte{0b1011_1111, 0b1111_1010, 0b1010_1010})
	//
	MutSliceOf(data).Slice(0, 24).Fill(false)
	checkBytes(t, data, []byte{0, 0, 0})
}

func Test_MutSlice_CopyFrom(t *testing.T) {
	data := make([]byte, 2)
	dst := MutSliceOf(data).Slice(3, 9)
	// Source longer than destination
	if n := dst.CopyFrom(SliceOf([]byte{0xff})); n != 6 {
		t.Errorf("expected 6 bits copied, received %d", n)
	}
	//
	checkBytes(t, data, []byte{0b0001_1111, 0b1000_0000})
	// Source shorter than destination
	if n := dst.CopyFrom(SliceOf([]byte{0x00}).Slice(0, 2)); n != 2 {
		t.Errorf("expected 2 bits copied, received %d", n)
	}
	//
	checkBytes(t, data, []byte{0b0000_0111, 0b1000_0000})
}

// Copying between disjoint ranges of the same array, over several words.
func Test_MutSlice_CopyFrom_SameArray(t *testing.T) {
	var (
		data  = make([]byte, 26)
		bits  = MutSliceOf(data)
		n     = uint(100)
		from  = uint(103)
		input = make([]bool, n)
	)
	//
	for i := range n {
		input[i] = i%3 == 0 || i%7 == 0
		bits.Set(i, input[i])
	}
	//
	if m := bits.Slice(from, from+n).CopyFrom(bits.Slice(0, n).AsSlice()); m != n {
		t.Fatalf("expected %d bits copied, received %d", n, m)
	}
	//
	for i := range n {
		if bits.Get(i) != input[i] || bits.Get(from+i) != input[i] {
			t.Errorf("bit %d: expected %t", i, input[i])
		}
	}
}

func Test_MutSlice_Store(t *testing.T) {
	data := make([]byte, 3)
	bits := MutSliceOf(data).Slice(4, 20)
	//
	bits.Store(2, 12, 0xabc)
	checkBytes(t, data, []byte{0b0000_0010, 0b1010_1111, 0b0000_0000})
	//
	if v := bits.Load(2, 12); v != 0xabc {
		t.Errorf("expected 0xabc, received %x", v)
	}
	//
	checkPanics(t, "store past end", func() { bits.Store(10, 8, 0) })
}

func Test_MutSlice_SplitAt_00(t *testing.T) {
	checkSplitDisjoint(t, 4, 0)
}
func Test_MutSlice_SplitAt_01(t *testing.T) {
	checkSplitDisjoint(t, 4, 3)
}
func Test_MutSlice_SplitAt_02(t *testing.T) {
	checkSplitDisjoint(t, 4, 16)
}
func Test_MutSlice_SplitAt_03(t *testing.T) {
	checkSplitDisjoint(t, 4, 21)
}
func Test_MutSlice_SplitAt_04(t *testing.T) {
	checkSplitDisjoint(t, 4, 32)
}
func Test_MutSlice_SplitAt_05(t *testing.T) {
	for i := uint(0); i <= 40; i++ {
		checkSplitDisjoint(t, 5, i)
	}
}

func Test_MutSlice_SplitAtAligned(t *testing.T) {
	data := make([]byte, 4)
	bits := MutSliceOf(data).Slice(3, 30)
	//
	before, after := bits.SplitAtAligned(6)
	// Absolute offset 9 rounds up to 16
	if before.Len() != 13 || after.Len() != 14 {
		t.Errorf("expected lengths 13 and 14, received %d and %d", before.Len(), after.Len())
	}
	// Already aligned
	before, after = bits.SplitAtAligned(5)
	if before.Len() != 5 || after.Len() != 22 {
		t.Errorf("expected lengths 5 and 22, received %d and %d", before.Len(), after.Len())
	}
	// Rounding past the end clamps to the end
	before, after = bits.SplitAtAligned(26)
	if before.Len() != 27 || after.Len() != 0 {
		t.Errorf("expected lengths 27 and 0, received %d and %d", before.Len(), after.Len())
	}
}

// Two goroutines writing the halves of an aligned split must not interfere
// (this is most useful when run with -race).
func Test_MutSlice_SplitAtAligned_Concurrent(t *testing.T) {
	for i := uint(0); i <= 64; i++ {
		var (
			data          = make([]byte, 8)
			before, after = MutSliceOf(data).SplitAtAligned(i)
			group         errgroup.Group
		)
		//
		group.Go(func() error {
			before.Fill(true)
			return nil
		})
		group.Go(func() error {
			after.Fill(false)
			return nil
		})
		//
		if err := group.Wait(); err != nil {
			t.Fatal(err)
		}
		//
		bits := SliceOf(data)
		if n := bits.Count(); n != before.Len() {
			t.Errorf("split at %d: expected %d set bits, received %d", i, before.Len(), n)
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// Split a zeroed array of n bytes at a given bit, fill each half with a
// distinct pattern and check neither write strays outside its half.
func checkSplitDisjoint(t *testing.T, n uint, index uint) {
	t.Helper()
	//
	var (
		data          = make([]byte, n)
		before, after = MutSliceOf(data).SplitAt(index)
	)
	//
	before.Fill(true)
	//
	if c := SliceOf(data).Count(); c != index {
		t.Errorf("split at %d: writing before gave %d set bits", index, c)
	}
	//
	for i := range after.Len() {
		after.Set(i, i%2 == 0)
	}
	// Before must be unchanged
	if c := before.AsSlice().Count(); c != index {
		t.Errorf("split at %d: writing after changed before", index)
	}
	// After must hold its own pattern
	for i := range after.Len() {
		if after.Get(i) != (i%2 == 0) {
			t.Errorf("split at %d: after bit %d is wrong", index, i)
		}
	}
	//
	before.Fill(false)
	//
	for i := range after.Len() {
		if after.Get(i) != (i%2 == 0) {
			t.Errorf("split at %d: writing before changed after bit %d", index, i)
		}
	}
}
