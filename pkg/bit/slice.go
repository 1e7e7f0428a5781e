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
	"math/bits"
)

// Slice provides a read-only view onto a contiguous sequence of bits held in an
// underlying byte array.  Bits are numbered from the most significant bit of
// each byte.  For example, the array [0x9f,0x05] is viewed as the following
// bit sequence:
//
// | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || 8 | 9 | A | B | C | D | E | F |
// +===+===+===+===+===+===+===+===++===+===+===+===+===+===+===+===+
// | 1 | 0 | 0 | 1 | 1 | 1 | 1 | 1 || 0 | 0 | 0 | 0 | 0 | 1 | 0 | 1 |
//
// Slicing a view never copies the underlying bytes.
type Slice struct {
	bytes []byte
	// Offset (in bits) of the first bit of this view within bytes.
	offset uint
	// Number of bits in this view.
	len uint
}

// SliceOf constructs a view covering every bit of a given byte array.
func SliceOf(bytes []byte) Slice {
	return Slice{bytes, 0, uint(len(bytes)) * 8}
}

// Len returns the number of bits in this view.
func (p Slice) Len() uint {
	return p.len
}

// IsEmpty checks whether this view contains any bits at all.
func (p Slice) IsEmpty() bool {
	return p.len == 0
}

// Get returns the bit at a given index in this view.
func (p Slice) Get(index uint) bool {
	if index >= p.len {
		panic("bit index out of bounds")
	}
	//
	return Read(p.bytes, p.offset+index)
}

// Slice returns the view of bits in the range [from, to) of this view.
func (p Slice) Slice(from, to uint) Slice {
	if from > to || to > p.len {
		panic("invalid bit range")
	}
	//
	return Slice{p.bytes, p.offset + from, to - from}
}

// SplitAt partitions this view into the bits before a given index, and those
// from the index onwards.  Splitting beyond the end of the view is a
// programming error.
func (p Slice) SplitAt(index uint) (Slice, Slice) {
	if index > p.len {
		panic("split index out of bounds")
	}
	//
	return Slice{p.bytes, p.offset, index}, Slice{p.bytes, p.offset + index, p.len - index}
}

// Load returns n (at most 64) bits starting from a given index, such that the
// first bit read is the most significant of the n bits returned.
func (p Slice) Load(from uint, n uint) uint64 {
	if from+n > p.len || from+n < from {
		panic("bit range out of bounds")
	}
	//
	return Load(p.bytes, p.offset+from, n)
}

// Bytes returns a freshly allocated byte array holding the bits of this view,
// where any unused bits at the end of the final byte are zero.
func (p Slice) Bytes() []byte {
	bytes := make([]byte, BytesRequiredFor(p.len))
	Copy(p.bytes, p.offset, bytes, 0, p.len)
	//
	return bytes
}

// Count returns the number of bits in this view which are set to one.
func (p Slice) Count() uint {
	count := uint(0)
	//
	for i := uint(0); i < p.len; i += 64 {
		n := min(64, p.len-i)
		count += uint(bits.OnesCount64(p.Load(i, n)))
	}
	//
	return count
}

// Equal checks whether this view holds exactly the same bit sequence as a
// given view.  The underlying byte arrays and offsets play no role.
func (p Slice) Equal(o Slice) bool {
	if p.len != o.len {
		return false
	}
	//
	for i := uint(0); i < p.len; i += 64 {
		n := min(64, p.len-i)
		//
		if p.Load(i, n) != o.Load(i, n) {
			return false
		}
	}
	//
	return true
}

// BorrowBits implementation for the Storage interface, which allows a view to
// itself be used as storage.
func (p Slice) BorrowBits() Slice {
	return p
}

// String returns the bits of this view as a sequence of binary digits.
func (p Slice) String() string {
	digits := make([]byte, p.len)
	//
	for i := range p.len {
		if p.Get(i) {
			digits[i] = '1'
		} else {
			digits[i] = '0'
		}
	}
	//
	return string(digits)
}
