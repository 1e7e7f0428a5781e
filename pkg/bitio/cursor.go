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
	"math"

	"github.com/consensys/go-bitcursor/pkg/bit"
	log "github.com/sirupsen/logrus"
)

// Cursor wraps some bit storage with a position (in bits), providing reads and
// seeks at both bit and byte granularity.  The position is unbounded: reading
// from a position at or beyond the end simply makes no progress.
type Cursor[T bit.Storage] struct {
	inner T
	pos   uint64
}

// New constructs a cursor over some storage, positioned at its first bit.
func New[T bit.Storage](inner T) *Cursor[T] {
	return &Cursor[T]{inner, 0}
}

// Inner returns the storage wrapped by this cursor.
func (c *Cursor[T]) Inner() T {
	return c.inner
}

// Position returns the current position (in bits) of this cursor.
func (c *Cursor[T]) Position() uint64 {
	return c.pos
}

// SetPosition sets the position (in bits) of this cursor.  No bounds check is
// performed, hence the position may lie beyond the end of the storage (e.g.
// ahead of the storage being extended).
func (c *Cursor[T]) SetPosition(pos uint64) {
	c.pos = pos
}

// Len returns the total number of bits in the underlying storage.
func (c *Cursor[T]) Len() uint64 {
	return uint64(c.inner.BorrowBits().Len())
}

// Remaining returns the number of bits from the current position to the end,
// or zero if the position is beyond the end.
func (c *Cursor[T]) Remaining() uint64 {
	if n := c.Len(); c.pos < n {
		return n - c.pos
	}
	//
	return 0
}

// Split partitions the underlying storage at the current position, returning
// the bits before and from the position.  Splitting when the position lies
// beyond the end of the storage is a programming error.
func (c *Cursor[T]) Split() (bit.Slice, bit.Slice) {
	bits := c.inner.BorrowBits()
	//
	if c.pos > uint64(bits.Len()) {
		panic(fmt.Sprintf("split position %d out of bounds (%d bits)", c.pos, bits.Len()))
	}
	//
	return bits.SplitAt(uint(c.pos))
}

// BitSeek moves this cursor to a new position (in bits), returning that
// position.  The offset is interpreted according to whence (io.SeekStart,
// io.SeekCurrent or io.SeekEnd).  A seek which would produce a negative or
// overflowing position fails with a *SeekError, and leaves the position
// unchanged.  Seeking beyond the end is permitted.
func (c *Cursor[T]) BitSeek(offset int64, whence int) (uint64, error) {
	pos, ok := c.target(offset, whence)
	if !ok {
		return 0, c.rejectSeek(offset, whence, false)
	}
	//
	c.pos = pos
	//
	return pos, nil
}

// Seek implementation for io.Seeker.  The offset is given in bytes, and the
// position returned is the bit position divided by eight (rounding down).
func (c *Cursor[T]) Seek(offset int64, whence int) (int64, error) {
	if offset > math.MaxInt64/8 || offset < math.MinInt64/8 {
		return 0, c.rejectSeek(offset, whence, true)
	}
	//
	pos, ok := c.target(offset*8, whence)
	if !ok {
		return 0, c.rejectSeek(offset, whence, true)
	}
	//
	c.pos = pos
	//
	return int64(pos / 8), nil
}

// Read implementation for io.Reader.  Unread bits are packed into successive
// bytes (most significant bit first), where the final byte is padded with
// zeros if fewer than eight bits remain.  The position advances by eight bits
// for every byte produced.
func (c *Cursor[T]) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	//
	bits := c.unread()
	if bits.IsEmpty() {
		return 0, io.EOF
	}
	//
	n := min(uint(len(p)), bit.BytesRequiredFor(bits.Len()))
	dst := bit.MutSliceOf(p[:n])
	m := dst.CopyFrom(bits)
	dst.Slice(m, dst.Len()).Fill(false)
	c.pos += 8 * uint64(n)
	//
	return int(n), nil
}

// ReadBits copies as many unread bits as fit into a given destination,
// advancing the position by the number of bits copied.  Bits in the
// destination beyond those copied are left unchanged.
func (c *Cursor[T]) ReadBits(dst bit.MutSlice) (int, error) {
	if dst.IsEmpty() {
		return 0, nil
	}
	//
	bits := c.unread()
	if bits.IsEmpty() {
		return 0, io.EOF
	}
	//
	n := dst.CopyFrom(bits)
	c.pos += uint64(n)
	//
	return int(n), nil
}

// ReadBit reads the next bit.
func (c *Cursor[T]) ReadBit() (bool, error) {
	bits := c.unread()
	if bits.IsEmpty() {
		return false, io.EOF
	}
	//
	c.pos++
	//
	return bits.Get(0), nil
}

// ReadByte implementation for io.ByteReader, following the same convention as
// Read.
func (c *Cursor[T]) ReadByte() (byte, error) {
	var b [1]byte
	//
	if _, err := c.Read(b[:]); err != nil {
		return 0, err
	}
	//
	return b[0], nil
}

func (c *Cursor[T]) String() string {
	return fmt.Sprintf("buf: %x, pos: %d", c.inner.BorrowBits(), c.pos)
}

// View of the bits from the current position onwards, which is empty when the
// position is at or beyond the end.
func (c *Cursor[T]) unread() bit.Slice {
	bits := c.inner.BorrowBits()
	//
	if c.pos >= uint64(bits.Len()) {
		return bits.Slice(bits.Len(), bits.Len())
	}
	//
	return bits.Slice(uint(c.pos), bits.Len())
}

// Determine the position (in bits) which a seek would move to, reporting false
// if it is negative, overflows or whence is not recognised.
func (c *Cursor[T]) target(offset int64, whence int) (uint64, bool) {
	switch whence {
	case io.SeekStart:
		return addSigned(0, offset)
	case io.SeekCurrent:
		return addSigned(c.pos, offset)
	case io.SeekEnd:
		return addSigned(c.Len(), offset)
	default:
		return 0, false
	}
}

func (c *Cursor[T]) rejectSeek(offset int64, whence int, bytes bool) error {
	err := &SeekError{Whence: whence, Offset: offset, Bytes: bytes}
	log.Debugf("rejected seek (%s%+d %s) at position %d of %d bits", whenceString(whence), offset, err.unit(),
		c.pos, c.Len())
	//
	return err
}

// Add a signed offset to an unsigned base, reporting false if the result would
// be negative or overflow.
func addSigned(base uint64, offset int64) (uint64, bool) {
	if offset >= 0 {
		sum := base + uint64(offset)
		return sum, sum >= base
	}
	// Negate without overflowing on math.MinInt64
	delta := uint64(-(offset + 1)) + 1
	//
	return base - delta, delta <= base
}
