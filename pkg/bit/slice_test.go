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
	"slices"
	"testing"
)

func Test_Slice_Get(t *testing.T) {
	var (
		bits     = SliceOf([]byte{0b1111_0000, 0b0000_1111})
		expected = "1111000000001111"
	)
	//
	if bits.Len() != 16 {
		t.Fatalf("expected 16 bits, received %d", bits.Len())
	}
	//
	for i := range bits.Len() {
		if bits.Get(i) != (expected[i] == '1') {
			t.Errorf("bit %d: expected %c", i, expected[i])
		}
	}
	//
	if bits.String() != expected {
		t.Errorf("expected %s, received %s", expected, bits.String())
	}
}

func Test_Slice_Slice(t *testing.T) {
	bits := SliceOf([]byte{0b1111_0011, 0b1010_1010})
	//
	checkSliceBits(t, bits.Slice(0, 4), "1111")
	checkSliceBits(t, bits.Slice(4, 12), "00111010")
	checkSliceBits(t, bits.Slice(12, 16), "1010")
	checkSliceBits(t, bits.Slice(7, 7), "")
	// Slicing a slice is relative to that slice
	checkSliceBits(t, bits.Slice(4, 12).Slice(2, 5), "111")
}

func Test_Slice_SplitAt(t *testing.T) {
	data := []byte{0b1111_0011, 0b1010_1010, 0b0101_1100}
	bits := SliceOf(data)
	// Partition law: before ++ after == original, at every position.
	for i := uint(0); i <= bits.Len(); i++ {
		before, after := bits.SplitAt(i)
		//
		if before.Len() != i || after.Len() != bits.Len()-i {
			t.Fatalf("split at %d gave lengths %d and %d", i, before.Len(), after.Len())
		}
		//
		joined := VecFromSlice(before)
		joined.Append(after)
		//
		if !joined.Equal(bits) {
			t.Errorf("split at %d: %s ++ %s != %s", i, before, after, bits)
		}
	}
}

func Test_Slice_SplitAt_Invalid(t *testing.T) {
	checkPanics(t, "split past end", func() {
		SliceOf([]byte{0xff}).SplitAt(9)
	})
	checkPanics(t, "get past end", func() {
		SliceOf([]byte{0xff}).Get(8)
	})
	checkPanics(t, "slice past end", func() {
		SliceOf([]byte{0xff}).Slice(4, 9)
	})
	checkPanics(t, "inverted slice", func() {
		SliceOf([]byte{0xff}).Slice(5, 4)
	})
}

func Test_Slice_Bytes(t *testing.T) {
	bits := SliceOf([]byte{0b1100_1100, 0b0011_0011})
	//
	checkBytes(t, bits.Bytes(), []byte{0b1100_1100, 0b0011_0011})
	checkBytes(t, bits.Slice(2, 12).Bytes(), []byte{0b0011_0000, 0b1100_0000})
	checkBytes(t, bits.Slice(14, 16).Bytes(), []byte{0b1100_0000})
	checkBytes(t, bits.Slice(3, 3).Bytes(), []byte{})
}

func Test_Slice_Equal(t *testing.T) {
	var (
		lhs = SliceOf([]byte{0b0101_1010, 0b1111_0000})
		rhs = SliceOf([]byte{0b1011_0101, 0b1110_0000})
	)
	// Same bits, different alignment
	if !lhs.Slice(1, 12).Equal(rhs.Slice(0, 11)) {
		t.Errorf("expected %s == %s", lhs.Slice(1, 12), rhs.Slice(0, 11))
	}
	//
	if lhs.Equal(rhs) {
		t.Errorf("expected %s != %s", lhs, rhs)
	}
	//
	if lhs.Slice(0, 4).Equal(lhs.Slice(0, 5)) {
		t.Errorf("slices of different length should differ")
	}
}

func Test_Slice_Count(t *testing.T) {
	bits := SliceOf([]byte{0xff, 0x0f, 0x00, 0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0x80})
	//
	if n := bits.Count(); n != 8+4+1+40+1 {
		t.Errorf("expected 54 set bits, received %d", n)
	}
	//
	if n := bits.Slice(4, 12).Count(); n != 4 {
		t.Errorf("expected 4 set bits, received %d", n)
	}
}

func Test_Slice_Format(t *testing.T) {
	bits := SliceOf([]byte{0xde, 0xad, 0xbe})
	//
	checkString(t, fmt.Sprintf("%x", bits), "deadbe")
	checkString(t, fmt.Sprintf("%X", bits.Slice(0, 16)), "DEAD")
	checkString(t, fmt.Sprintf("%x", bits.Slice(4, 16)), "ead0")
	checkString(t, fmt.Sprintf("%s", bits.Slice(0, 6)), "110111")
	checkString(t, fmt.Sprintf("%v", bits.Slice(8, 12)), "1010")
	checkString(t, fmt.Sprintf("%x", VecOf(1, 0, 1)), "a0")
	checkString(t, fmt.Sprintf("%b", VecOf(1, 0, 1)), "101")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkSliceBits(t *testing.T, bits Slice, expected string) {
	t.Helper()
	//
	if bits.String() != expected {
		t.Errorf("expected %s, received %s", expected, bits.String())
	}
}

func checkBytes(t *testing.T, actual []byte, expected []byte) {
	t.Helper()
	//
	if !slices.Equal(expected, actual) {
		t.Errorf("expected %08b, received %08b", expected, actual)
	}
}

func checkString(t *testing.T, actual string, expected string) {
	t.Helper()
	//
	if expected != actual {
		t.Errorf("expected %q, received %q", expected, actual)
	}
}

func checkPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	//
	fn()
}
