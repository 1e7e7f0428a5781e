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

// MutSlice provides a mutable view onto a contiguous sequence of bits held in an
// underlying byte array, using the same bit numbering as Slice.  A mutable view
// only ever reads or writes bits within its own range.  Hence, two mutable
// views over disjoint ranges of the same byte array can be used independently
// of each other.
type MutSlice struct {
	bytes  []byte
	offset uint
	len    uint
}

// MutSliceOf constructs a mutable view covering every bit of a given byte
// array.
func MutSliceOf(bytes []byte) MutSlice {
	return MutSlice{bytes, 0, uint(len(bytes)) * 8}
}

// Len returns the number of bits in this view.
func (p MutSlice) Len() uint {
	return p.len
}

// IsEmpty checks whether this view contains any bits at all.
func (p MutSlice) IsEmpty() bool {
	return p.len == 0
}

// AsSlice returns a read-only view of the same bits.
func (p MutSlice) AsSlice() Slice {
	return Slice{p.bytes, p.offset, p.len}
}

// Get returns the bit at a given index in this view.
func (p MutSlice) Get(index uint) bool {
	return p.AsSlice().Get(index)
}

// Set assigns the bit at a given index in this view.
func (p MutSlice) Set(index uint, val bool) {
	if index >= p.len {
		panic("bit index out of bounds")
	}
	//
	Write(val, p.bytes, p.offset+index)
}

// Slice returns the mutable view of bits in the range [from, to) of this view.
func (p MutSlice) Slice(from, to uint) MutSlice {
	if from > to || to > p.len {
		panic("invalid bit range")
	}
	//
	return MutSlice{p.bytes, p.offset + from, to - from}
}

// SplitAt partitions this view into two disjoint mutable views: the bits before
// a given index, and those from the index onwards.  Splitting beyond the end of
// the view is a programming error.
//
// NOTE: when the index does not fall on a byte boundary, both halves share one
// byte of the underlying array.  Writing them sequentially is always safe, but
// writing them from different goroutines requires SplitAtAligned.
func (p MutSlice) SplitAt(index uint) (MutSlice, MutSlice) {
	if index > p.len {
		panic("split index out of bounds")
	}
	//
	return MutSlice{p.bytes, p.offset, index}, MutSlice{p.bytes, p.offset + index, p.len - index}
}

// SplitAtAligned partitions this view as for SplitAt, except that the split
// point is first rounded up to the next byte boundary of the underlying array
// (or to the end of this view, whichever comes first).  The two halves
// therefore never share a byte, and can be written by different goroutines.
func (p MutSlice) SplitAtAligned(index uint) (MutSlice, MutSlice) {
	if index > p.len {
		panic("split index out of bounds")
	}
	// Round absolute offset up to a byte boundary
	aligned := BytesRequiredFor(p.offset+index)*8 - p.offset
	//
	return p.SplitAt(min(aligned, p.len))
}

// Load returns n (at most 64) bits starting from a given index, such that the
// first bit read is the most significant of the n bits returned.
func (p MutSlice) Load(from uint, n uint) uint64 {
	return p.AsSlice().Load(from, n)
}

// Store writes the n (at most 64) least significant bits of val starting from a
// given index, such that the most significant of those n bits lands on the
// index itself.
func (p MutSlice) Store(from uint, n uint, val uint64) {
	if from+n > p.len || from+n < from {
		panic("bit range out of bounds")
	}
	//
	Store(p.bytes, p.offset+from, n, val)
}

// Fill assigns every bit in this view to a given value.
func (p MutSlice) Fill(val bool) {
	var word uint64
	//
	if val {
		word = ^uint64(0)
	}
	//
	for i := uint(0); i < p.len; i += 64 {
		n := min(64, p.len-i)
		Store(p.bytes, p.offset+i, n, word)
	}
}

// CopyFrom copies as many bits as fit from a given source view into the front of
// this view, returning the number of bits copied (i.e. the smaller of the two
// lengths).  The source may come from the same byte array as this view, but
// must not overlap it, since bits are copied forwards a word at a time.
func (p MutSlice) CopyFrom(src Slice) uint {
	n := min(p.len, src.len)
	Copy(src.bytes, src.offset, p.bytes, p.offset, n)
	//
	return n
}

// Bytes returns a freshly allocated byte array holding the bits of this view.
func (p MutSlice) Bytes() []byte {
	return p.AsSlice().Bytes()
}

// Equal checks whether this view holds exactly the same bit sequence as a
// given view.
func (p MutSlice) Equal(o Slice) bool {
	return p.AsSlice().Equal(o)
}

// BorrowBits implementation for the Storage interface.
func (p MutSlice) BorrowBits() Slice {
	return p.AsSlice()
}

// BorrowBitsMut implementation for the MutStorage interface.
func (p MutSlice) BorrowBitsMut() MutSlice {
	return p
}

// String returns the bits of this view as a sequence of binary digits.
func (p MutSlice) String() string {
	return p.AsSlice().String()
}
