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
package buf

import (
	"testing"

	"github.com/consensys/go-bitcursor/pkg/bit"
	"github.com/consensys/go-bitcursor/pkg/util/assert"
)

func Test_BitsMut_Put_00(t *testing.T) {
	buf := NewBitsMut()
	assert.Equal(t, 0, buf.Capacity())
	//
	buf.PutBit(true)
	buf.PutBit(false)
	buf.PutUint(0b1101, 4)
	buf.PutBytes([]byte{0xf0})
	//
	assert.Bits(t, "10110111110000", buf)
	assert.Equal(t, minCapacity, buf.Capacity())
}

func Test_BitsMut_Put_01(t *testing.T) {
	buf := WithCapacity(3)
	assert.Equal(t, 8, buf.Capacity())
	// Bits above n are ignored
	buf.PutUint(0xff05, 3)
	buf.PutSlice(bit.SliceOf([]byte{0b0110_0000}).Slice(1, 3))
	assert.Bits(t, "10111", buf)
	//
	assert.Panics(t, func() { buf.PutUint(0, 65) })
}

func Test_BitsMut_Reserve(t *testing.T) {
	buf := WithCapacity(8)
	buf.PutUint(0xab, 8)
	// Growth at least doubles capacity
	buf.Reserve(1)
	assert.Equal(t, 64, buf.Capacity())
	buf.Reserve(100)
	assert.True(t, buf.Capacity() >= 108)
	// Contents survive reallocation
	assert.Bits(t, "10101011", buf)
	// Reserve after advancing keeps the window
	buf.Advance(4)
	buf.Reserve(1000)
	assert.Bits(t, "1011", buf)
	assert.True(t, buf.Capacity() >= 1004)
}

func Test_BitsMut_Resize(t *testing.T) {
	buf := NewBitsMut()
	//
	buf.Resize(5, true)
	buf.Resize(9, false)
	assert.Bits(t, "111110000", buf)
	buf.Resize(3, true)
	assert.Bits(t, "111", buf)
	//
	buf.Clear()
	assert.True(t, buf.IsEmpty())
	assert.True(t, buf.Capacity() > 0)
}

func Test_BitsMut_Freeze(t *testing.T) {
	buf := NewBitsMut()
	buf.PutBytes([]byte{0xde, 0xad})
	buf.Truncate(12)
	//
	bits := buf.Freeze()
	assert.Bits(t, "110111101010", bits)
	assert.True(t, buf.IsEmpty())
	assert.Equal(t, 0, buf.Capacity())
	// Writing to the old buffer does not affect frozen bits
	buf.PutBytes([]byte{0x00, 0x00})
	assert.Bits(t, "110111101010", bits)
}

func Test_BitsMut_SplitTo(t *testing.T) {
	buf := NewBitsMut()
	buf.PutBytes([]byte{0b1011_0011, 0b0111_1000})
	//
	head := buf.SplitTo(5)
	assert.Bits(t, "10110", head)
	assert.Bits(t, "01101111000", buf)
	assert.Equal(t, 5, head.Capacity())
	// Halves are disjoint
	head.ChunkMut().Fill(false)
	buf.ChunkMut().Fill(true)
	assert.Bits(t, "00000", head)
	assert.Bits(t, "11111111111", buf)
	// Appending to the tail does not clobber the head
	buf.PutUint(0, 60)
	assert.Bits(t, "00000", head)
	//
	assert.Panics(t, func() { head.SplitTo(6) })
}

func Test_BitsMut_SplitOff(t *testing.T) {
	buf := NewBitsMut()
	buf.PutBytes([]byte{0b1011_0011, 0b0111_1000})
	//
	tail := buf.SplitOff(3)
	assert.Bits(t, "101", buf)
	assert.Bits(t, "1001101111000", tail)
	assert.Equal(t, 3, buf.Capacity())
	// Growing the head must reallocate, rather than overwrite the tail
	buf.PutUint(0, 8)
	assert.Bits(t, "10100000000", buf)
	assert.Bits(t, "1001101111000", tail)
	//
	assert.Panics(t, func() { tail.SplitOff(14) })
}

func Test_BitsMut_Advance(t *testing.T) {
	buf := WithCapacity(16)
	buf.PutBytes([]byte{0b1111_0000, 0b0000_1111})
	//
	buf.Advance(4)
	assert.Equal(t, 12, buf.Remaining())
	assert.Equal(t, 12, buf.Capacity())
	assert.Bits(t, "000000001111", buf.Chunk())
	//
	assert.Panics(t, func() { buf.Advance(13) })
	assert.Panics(t, func() { buf.AdvanceMut(13) })
	//
	buf.AdvanceMut(12)
	assert.True(t, buf.IsEmpty())
}

func Test_BitsMut_CopyTo(t *testing.T) {
	var (
		src = NewBitsMut()
		dst = WithCapacity(16)
	)
	//
	src.PutUint(0b1_0110_1001, 9)
	dst.Resize(4, false)
	n := CopyTo(src, dst.BorrowBitsMut())
	//
	assert.Equal(t, 4, n)
	assert.Bits(t, "1011", dst)
	assert.Bits(t, "01001", src)
}
