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

// Read reads the bit at a given bit offset out of an array of bytes, where bit
// offsets start from the most significant bit of the first byte.  So, for
// example, reading bit 0 from the byte 0b1000_0000 returns 1, but reading bit 7
// returns 0.
func Read(src []byte, bitoffset uint) bool {
	var (
		byte = bitoffset / 8
		bit  = bitoffset % 8
		mask = uint8(0x80) >> bit
	)
	//
	return src[byte]&mask != 0
}

// Write writes a bit to a given bit offset in an array of bytes, where bit
// offsets start from the most significant bit of the first byte.  So, for
// example, writing 1 at offset 15 into an array [0x00,0x00] yields [0x00,0x01].
func Write(val bool, dst []byte, bitoffset uint) {
	var (
		byte = bitoffset / 8
		bit  = bitoffset % 8
		mask = uint8(0x80) >> bit
	)
	//
	if val {
		// set bit
		dst[byte] = dst[byte] | mask
	} else {
		// Clear bit
		dst[byte] = dst[byte] & ^mask
	}
}

// Load reads n (at most 64) bits starting at a given bit offset, returning them
// in the least significant bits of the result.  The first bit read becomes the
// most significant of those n bits.  For example, loading 4 bits at offset 6
// from [0b0000_0010,0b1100_0000] gives 0b1011.
func Load(src []byte, offset uint, n uint) uint64 {
	var val uint64
	//
	if n > 64 {
		panic("too many bits to load")
	}
	//
	for n > 0 {
		var (
			bit  = offset % 8
			take = min(8-bit, n)
			part = uint64(src[offset/8]>>(8-bit-take)) & (0xff >> (8 - take))
		)
		//
		val = (val << take) | part
		offset += take
		n -= take
	}
	//
	return val
}

// Store writes the n (at most 64) least significant bits of val starting at a
// given bit offset, such that the most significant of those n bits lands on the
// offset itself.  Bits outside the range [offset, offset+n) are not affected.
func Store(dst []byte, offset uint, n uint, val uint64) {
	if n > 64 {
		panic("too many bits to store")
	}
	//
	for n > 0 {
		var (
			bit   = offset % 8
			take  = min(8-bit, n)
			shift = 8 - bit - take
			mask  = (uint8(0xff) >> (8 - take)) << shift
			part  = uint8(val>>(n-take)) << shift
			index = offset / 8
		)
		//
		dst[index] = (dst[index] & ^mask) | (part & mask)
		offset += take
		n -= take
	}
}

// Copy copies n bits starting a given bit offset from a given byte array source
// into a given destination (at a given offset).  Bits are numbered from the
// most significant bit of each byte, so copying 8 bits from offset 4 of
// [0b1001_1111,0b0101_0000] into an empty byte gives 0b1111_0101.  The source
// and destination ranges must not overlap.
func Copy(src []byte, srcOffset uint, dst []byte, dstOffset uint, nbits uint) {
	// Check for aligned read / write
	if srcOffset%8 == 0 && dstOffset%8 == 0 {
		var (
			srcByteOffset = srcOffset / 8
			dstByteOffset = dstOffset / 8
			nBytes        = nbits / 8
		)
		// Copy bytes
		copy(dst[dstByteOffset:dstByteOffset+nBytes], src[srcByteOffset:srcByteOffset+nBytes])
		// Calculate residue
		nbits = nbits % 8
		srcOffset += nBytes * 8
		dstOffset += nBytes * 8
	}
	// Continue with any remaining, a word at a time
	for nbits > 0 {
		n := min(nbits, 64)
		Store(dst, dstOffset, n, Load(src, srcOffset, n))
		//
		srcOffset += n
		dstOffset += n
		nbits -= n
	}
}

// BytesRequiredFor returns the minimum number of bytes required to hold the
// given bitwidth.  For example, the number of bytes to hold a u16 is 2 bytes,
// whilst the minimum required to hold a u17 is 3 bytes.
func BytesRequiredFor(bitwidth uint) uint {
	var (
		nbytes = bitwidth / 8
	)
	// round up (if necessary)
	if bitwidth%8 != 0 {
		nbytes++
	}
	//
	return nbytes
}
