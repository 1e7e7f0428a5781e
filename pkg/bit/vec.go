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

// Vec is an owned and growable sequence of bits, packed tightly into bytes.
// Unlike Bytes, its length need not be a multiple of 8.  Any unused bits at the
// end of the final byte are always zero.
type Vec struct {
	bytes []byte
	len   uint
}

// NewVec constructs a vector of a given number of bits, all of which are zero.
func NewVec(nbits uint) *Vec {
	return &Vec{make([]byte, BytesRequiredFor(nbits)), nbits}
}

// VecFromBytes constructs a vector holding a copy of every bit in a given byte
// array.
func VecFromBytes(bytes []byte) *Vec {
	return VecFromSlice(SliceOf(bytes))
}

// VecFromSlice constructs a vector holding a copy of the bits in a given view.
func VecFromSlice(bits Slice) *Vec {
	return &Vec{bits.Bytes(), bits.Len()}
}

// VecOf constructs a vector from a list of binary digits, which is mostly useful
// for writing down short bit sequences.  For example, VecOf(1,0,1,1) gives the
// sequence 1011.
func VecOf(digits ...uint) *Vec {
	vec := NewVec(uint(len(digits)))
	//
	for i, d := range digits {
		switch d {
		case 0:
			continue
		case 1:
			vec.Set(uint(i), true)
		default:
			panic("invalid binary digit")
		}
	}
	//
	return vec
}

// Len returns the number of bits in this vector.
func (p *Vec) Len() uint {
	return p.len
}

// IsEmpty checks whether this vector contains any bits at all.
func (p *Vec) IsEmpty() bool {
	return p.len == 0
}

// Get returns the bit at a given index in this vector.
func (p *Vec) Get(index uint) bool {
	return p.AsSlice().Get(index)
}

// Set assigns the bit at a given index in this vector.
func (p *Vec) Set(index uint, val bool) {
	p.AsMutSlice().Set(index, val)
}

// Push appends a single bit onto the end of this vector.
func (p *Vec) Push(val bool) {
	p.grow(1)
	Write(val, p.bytes, p.len-1)
}

// Append appends a copy of the bits in a given view onto the end of this
// vector.
func (p *Vec) Append(bits Slice) {
	var start = p.len
	//
	p.grow(bits.Len())
	Copy(bits.bytes, bits.offset, p.bytes, start, bits.Len())
}

// AppendBytes appends every bit of a given byte array onto the end of this
// vector.
func (p *Vec) AppendBytes(bytes []byte) {
	if p.len%8 == 0 {
		// Fast path for aligned vectors
		p.bytes = append(p.bytes[:p.len/8], bytes...)
		p.len += uint(len(bytes)) * 8
	} else {
		p.Append(SliceOf(bytes))
	}
}

// Resize changes the length of this vector.  When growing, new bits are set to
// a given value.
func (p *Vec) Resize(nbits uint, val bool) {
	if nbits <= p.len {
		p.Truncate(nbits)
		return
	}
	//
	start := p.len
	p.grow(nbits - p.len)
	//
	if val {
		p.AsMutSlice().Slice(start, nbits).Fill(true)
	}
}

// Truncate shortens this vector to a given number of bits, having no effect
// when the vector is already no longer than this.
func (p *Vec) Truncate(nbits uint) {
	if nbits >= p.len {
		return
	}
	// Clear the tail of the final byte so trailing bits remain zero
	end := BytesRequiredFor(nbits)
	if nbits%8 != 0 {
		Store(p.bytes, nbits, 8-nbits%8, 0)
	}
	//
	clear(p.bytes[end:])
	p.bytes = p.bytes[:end]
	p.len = nbits
}

// Clear removes all bits from this vector.
func (p *Vec) Clear() {
	p.Truncate(0)
}

// AsSlice returns a read-only view of the bits in this vector.
func (p *Vec) AsSlice() Slice {
	return Slice{p.bytes, 0, p.len}
}

// AsMutSlice returns a mutable view of the bits in this vector.  The view is
// invalidated by any subsequent growth of the vector.
func (p *Vec) AsMutSlice() MutSlice {
	return MutSlice{p.bytes, 0, p.len}
}

// Bytes returns a freshly allocated copy of the bytes of this vector.
func (p *Vec) Bytes() []byte {
	return p.AsSlice().Bytes()
}

// Equal checks whether this vector holds exactly the same bit sequence as a
// given view.
func (p *Vec) Equal(o Slice) bool {
	return p.AsSlice().Equal(o)
}

// BorrowBits implementation for the Storage interface.
func (p *Vec) BorrowBits() Slice {
	return p.AsSlice()
}

// BorrowBitsMut implementation for the MutStorage interface.
func (p *Vec) BorrowBitsMut() MutSlice {
	return p.AsMutSlice()
}

// String returns the bits of this vector as a sequence of binary digits.
func (p *Vec) String() string {
	return p.AsSlice().String()
}

// Extend this vector by n zero bits.
func (p *Vec) grow(n uint) {
	var (
		nbits  = p.len + n
		nbytes = BytesRequiredFor(nbits)
	)
	//
	if have := uint(len(p.bytes)); have < nbytes {
		p.bytes = append(p.bytes, make([]byte, nbytes-have)...)
	}
	//
	p.len = nbits
}
