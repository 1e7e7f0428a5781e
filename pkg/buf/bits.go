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

// Bits is an immutable and cheaply shareable window onto a sequence of bits.
// Copying a Bits value shares the underlying bytes, which are never modified
// once constructed.  Hence, copies can be consumed independently of each other.
type Bits struct {
	bytes []byte
	// Offset (in bits) of the window within bytes
	start uint
	// Length (in bits) of the window
	len uint
}

// FromBytes constructs a buffer over the given bytes, taking ownership of them.
// The caller must not modify the bytes afterwards.
func FromBytes(bytes []byte) Bits {
	return Bits{bytes, 0, uint(len(bytes)) * 8}
}

// CopyFromSlice constructs a buffer holding a copy of the bits of a given view.
func CopyFromSlice(bits bit.Slice) Bits {
	return Bits{bits.Bytes(), 0, bits.Len()}
}

// Len returns the number of bits in this buffer.
func (p Bits) Len() uint {
	return p.len
}

// IsEmpty checks whether this buffer holds any bits.
func (p Bits) IsEmpty() bool {
	return p.len == 0
}

// Slice returns a buffer sharing the bits in the range [from, to) of this
// buffer.
func (p Bits) Slice(from, to uint) Bits {
	if from > to || to > p.len {
		panic("invalid bit range")
	}
	//
	return Bits{p.bytes, p.start + from, to - from}
}

// SplitTo splits this buffer in two at a given index, returning the bits before
// the index and retaining those from the index onwards.
func (p *Bits) SplitTo(at uint) Bits {
	if at > p.len {
		panic("split index out of bounds")
	}
	//
	head := Bits{p.bytes, p.start, at}
	p.incStart(at)
	//
	return head
}

// SplitOff splits this buffer in two at a given index, returning the bits from
// the index onwards and retaining those before it.
func (p *Bits) SplitOff(at uint) Bits {
	if at > p.len {
		panic("split index out of bounds")
	}
	//
	tail := Bits{p.bytes, p.start + at, p.len - at}
	p.len = at
	//
	return tail
}

// Truncate shortens this buffer to a given number of bits, having no effect when
// the buffer is already no longer than this.
func (p *Bits) Truncate(n uint) {
	p.len = min(p.len, n)
}

// Advance implementation for the BitBuf interface.
func (p *Bits) Advance(count uint) {
	if count > p.Remaining() {
		panic("advance past end of Bits")
	}
	//
	p.incStart(count)
}

// Remaining implementation for the BitBuf interface.
func (p Bits) Remaining() uint {
	return p.len
}

// Chunk implementation for the BitBuf interface.
func (p Bits) Chunk() bit.Slice {
	return bit.SliceOf(p.bytes).Slice(p.start, p.start+p.len)
}

// BorrowBits implementation for the bit.Storage interface.
func (p Bits) BorrowBits() bit.Slice {
	return p.Chunk()
}

// Equal checks whether this buffer holds the same bit sequence as another.
func (p Bits) Equal(o Bits) bool {
	return p.Chunk().Equal(o.Chunk())
}

// Format implementation for fmt.Formatter, which prints the bits of this buffer
// in the same manner as bit.Slice.
func (p Bits) Format(f fmt.State, verb rune) {
	p.Chunk().Format(f, verb)
}

func (p *Bits) incStart(count uint) {
	p.start += count
	p.len -= count
}
