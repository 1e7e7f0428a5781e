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
	"fmt"

	"github.com/consensys/go-bitcursor/pkg/bit"
)

// Minimum capacity (in bits) allocated when a buffer first grows.
const minCapacity = 64

// BitsMut is a mutable and growable window onto a sequence of bits, which
// complements Bits.  Bits can be appended onto the end, and consumed from the
// front.  Once writing is complete, the buffer can be frozen into a Bits.
type BitsMut struct {
	bytes []byte
	// Offset (in bits) of the window within bytes
	start uint
	// Length (in bits) of the window
	len uint
	// Number of bits available for use from start onwards, such that
	// len <= cap and start + cap <= 8 * len(bytes).
	cap uint
}

// NewBitsMut constructs an empty buffer.
func NewBitsMut() *BitsMut {
	return &BitsMut{}
}

// WithCapacity constructs an empty buffer able to hold at least the given number
// of bits before reallocating.
func WithCapacity(nbits uint) *BitsMut {
	nbytes := bit.BytesRequiredFor(nbits)
	//
	return &BitsMut{make([]byte, nbytes), 0, 0, nbytes * 8}
}

// Len returns the number of bits in this buffer.
func (p *BitsMut) Len() uint {
	return p.len
}

// IsEmpty checks whether this buffer holds any bits.
func (p *BitsMut) IsEmpty() bool {
	return p.len == 0
}

// Capacity returns the number of bits this buffer can hold without
// reallocating.
func (p *BitsMut) Capacity() uint {
	return p.cap
}

// Reserve ensures there is space for at least the given number of additional
// bits, reallocating if necessary.
func (p *BitsMut) Reserve(additional uint) {
	var needed = p.len + additional
	//
	if needed <= p.cap {
		return
	}
	//
	bytes := make([]byte, bit.BytesRequiredFor(max(needed, 2*p.cap, minCapacity)))
	bit.Copy(p.bytes, p.start, bytes, 0, p.len)
	//
	p.bytes = bytes
	p.start = 0
	p.cap = uint(len(bytes)) * 8
}

// PutBit appends a single bit onto the end of this buffer.
func (p *BitsMut) PutBit(val bool) {
	p.Reserve(1)
	bit.Write(val, p.bytes, p.start+p.len)
	p.len++
}

// PutUint appends the n (at most 64) least significant bits of a given value
// onto the end of this buffer, most significant first.
func (p *BitsMut) PutUint(val uint64, n uint) {
	if n > 64 {
		panic("too many bits to put")
	}
	//
	p.Reserve(n)
	bit.Store(p.bytes, p.start+p.len, n, val)
	p.len += n
}

// PutSlice appends a copy of the bits of a given view onto the end of this
// buffer.
func (p *BitsMut) PutSlice(bits bit.Slice) {
	p.Reserve(bits.Len())
	p.spare(bits.Len()).CopyFrom(bits)
	p.len += bits.Len()
}

// PutBytes appends every bit of a given byte array onto the end of this buffer.
func (p *BitsMut) PutBytes(bytes []byte) {
	p.PutSlice(bit.SliceOf(bytes))
}

// Resize changes the length of this buffer.  When growing, new bits are set to
// a given value.
func (p *BitsMut) Resize(n uint, val bool) {
	if n <= p.len {
		p.Truncate(n)
		return
	}
	//
	extra := n - p.len
	p.Reserve(extra)
	p.spare(extra).Fill(val)
	p.len = n
}

// Truncate shortens this buffer to a given number of bits, having no effect when
// the buffer is already no longer than this.
func (p *BitsMut) Truncate(n uint) {
	p.len = min(p.len, n)
}

// Clear removes all bits from this buffer, retaining its capacity.
func (p *BitsMut) Clear() {
	p.len = 0
}

// Freeze converts this buffer into an immutable Bits holding the same bits.
// This buffer is left empty and no longer refers to those bits, so they cannot
// be modified afterwards.
func (p *BitsMut) Freeze() Bits {
	bits := Bits{p.bytes, p.start, p.len}
	*p = BitsMut{}
	//
	return bits
}

// SplitTo splits this buffer in two at a given index, returning the bits before
// the index and retaining those from the index onwards.  The two buffers share
// the same underlying bytes, but cover disjoint ranges of them.
func (p *BitsMut) SplitTo(at uint) *BitsMut {
	if at > p.len {
		panic("split index out of bounds")
	}
	//
	head := &BitsMut{p.bytes, p.start, at, at}
	p.AdvanceMut(at)
	//
	return head
}

// SplitOff splits this buffer in two at a given index, returning the bits from
// the index onwards and retaining those before it.  The two buffers share the
// same underlying bytes, but cover disjoint ranges of them.
func (p *BitsMut) SplitOff(at uint) *BitsMut {
	if at > p.len {
		panic("split index out of bounds")
	}
	//
	tail := &BitsMut{p.bytes, p.start + at, p.len - at, p.cap - at}
	p.len = at
	p.cap = at
	//
	return tail
}

// AdvanceMut discards the given number of bits from the front of this buffer,
// updating both the window and the capacity measured from its start.
func (p *BitsMut) AdvanceMut(count uint) {
	if count > p.len {
		panic("advance past end of BitsMut")
	}
	//
	p.start += count
	p.len -= count
	p.cap -= count
}

// Advance implementation for the BitBuf interface.
func (p *BitsMut) Advance(count uint) {
	if count > p.Remaining() {
		panic("advance past end of BitsMut")
	}
	//
	p.AdvanceMut(count)
}

// Remaining implementation for the BitBuf interface.
func (p *BitsMut) Remaining() uint {
	return p.len
}

// Chunk implementation for the BitBuf interface.
func (p *BitsMut) Chunk() bit.Slice {
	return bit.SliceOf(p.bytes).Slice(p.start, p.start+p.len)
}

// ChunkMut returns a mutable view of the bits which have not yet been consumed.
func (p *BitsMut) ChunkMut() bit.MutSlice {
	return bit.MutSliceOf(p.bytes).Slice(p.start, p.start+p.len)
}

// BorrowBits implementation for the bit.Storage interface.
func (p *BitsMut) BorrowBits() bit.Slice {
	return p.Chunk()
}

// BorrowBitsMut implementation for the bit.MutStorage interface.
func (p *BitsMut) BorrowBitsMut() bit.MutSlice {
	return p.ChunkMut()
}

// Format implementation for fmt.Formatter, which prints the bits of this buffer
// in the same manner as bit.Slice.
func (p *BitsMut) Format(f fmt.State, verb rune) {
	p.Chunk().Format(f, verb)
}

// Mutable view of the n bits immediately following the end of this buffer,
// which must already have been reserved.
func (p *BitsMut) spare(n uint) bit.MutSlice {
	end := p.start + p.len
	//
	return bit.MutSliceOf(p.bytes).Slice(end, end+n)
}
