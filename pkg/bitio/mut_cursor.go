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
package bitio

import (
	"fmt"
	"io"

	"github.com/consensys/go-bitcursor/pkg/bit"
)

// MutCursor extends a Cursor over mutable storage with writes at both bit and
// byte granularity.  Writes overwrite existing bits in place, and never grow
// the storage.
type MutCursor[T bit.MutStorage] struct {
	Cursor[T]
}

// NewMut constructs a mutable cursor over some storage, positioned at its first
// bit.
func NewMut[T bit.MutStorage](inner T) *MutCursor[T] {
	return &MutCursor[T]{Cursor[T]{inner, 0}}
}

// SplitMut partitions the underlying storage at the current position, returning
// mutable views of the bits before and from the position.  The two views cover
// disjoint bit ranges.  Splitting when the position lies beyond the end of the
// storage is a programming error.
//
// NOTE: when the position is not on a byte boundary, both views share their
// boundary byte, so they must only be written sequentially.  Use
// SplitMutAligned for views which are written from different goroutines.
func (c *MutCursor[T]) SplitMut() (bit.MutSlice, bit.MutSlice) {
	return c.boundedBits().SplitAt(uint(c.pos))
}

// SplitMutAligned partitions the underlying storage as for SplitMut, except
// that the split point is the current position rounded up to the next byte
// boundary (or the end of the storage).  The two views never share a byte, and
// can be written concurrently.
func (c *MutCursor[T]) SplitMutAligned() (bit.MutSlice, bit.MutSlice) {
	return c.boundedBits().SplitAtAligned(uint(c.pos))
}

// Write implementation for io.Writer.  Each byte occupies the next eight bits
// (most significant first), and bytes are only written whilst a full eight
// bits remain.  If not every byte fits, io.ErrShortWrite is returned alongside
// the number of bytes written.
func (c *MutCursor[T]) Write(p []byte) (int, error) {
	var (
		bits = c.unwritten()
		n    = min(uint(len(p)), bits.Len()/8)
	)
	//
	bits.CopyFrom(bit.SliceOf(p[:n]))
	c.pos += 8 * uint64(n)
	//
	if n < uint(len(p)) {
		return int(n), io.ErrShortWrite
	}
	//
	return int(n), nil
}

// WriteBits copies as many bits from a given source as fit, advancing the
// position by the number of bits written.  If not every bit fits,
// io.ErrShortWrite is returned alongside the number of bits written.  The source
// must not overlap the bits being written.
func (c *MutCursor[T]) WriteBits(src bit.Slice) (int, error) {
	n := c.unwritten().CopyFrom(src)
	c.pos += uint64(n)
	//
	if n < src.Len() {
		return int(n), io.ErrShortWrite
	}
	//
	return int(n), nil
}

// WriteBit overwrites the next bit.
func (c *MutCursor[T]) WriteBit(val bool) error {
	bits := c.unwritten()
	if bits.IsEmpty() {
		return io.ErrShortWrite
	}
	//
	bits.Set(0, val)
	c.pos++
	//
	return nil
}

// WriteByte implementation for io.ByteWriter.
func (c *MutCursor[T]) WriteByte(b byte) error {
	_, err := c.Write([]byte{b})
	return err
}

// Flush has no effect, since writes are never buffered.
func (c *MutCursor[T]) Flush() error {
	return nil
}

// All bits of the underlying storage, which must include the current position.
func (c *MutCursor[T]) boundedBits() bit.MutSlice {
	bits := c.inner.BorrowBitsMut()
	//
	if c.pos > uint64(bits.Len()) {
		panic(fmt.Sprintf("split position %d out of bounds (%d bits)", c.pos, bits.Len()))
	}
	//
	return bits
}

func (c *MutCursor[T]) unwritten() bit.MutSlice {
	bits := c.inner.BorrowBitsMut()
	//
	if c.pos >= uint64(bits.Len()) {
		return bits.Slice(bits.Len(), bits.Len())
	}
	//
	return bits.Slice(uint(c.pos), bits.Len())
}
