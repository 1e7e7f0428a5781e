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

// Package buf provides bit buffers which are consumed from the front, in the
// manner of a streaming reader.
package buf

import (
	"github.com/consensys/go-bitcursor/pkg/bit"
)

// BitBuf is a minimal streaming-read abstraction over a sequence of bits.
type BitBuf interface {
	// Advance discards the given number of bits from the front of this buffer.
	// Advancing past the end is a programming error, and panics.
	Advance(count uint)
	// Remaining returns the number of bits which have not yet been consumed.
	Remaining() uint
	// Chunk returns a view of the bits which have not yet been consumed.  This
	// is never shorter than Remaining() reports.
	Chunk() bit.Slice
}

// CopyTo consumes bits from the front of a buffer into a given destination,
// returning the number of bits copied.  This is the smaller of the destination
// length and the number of bits remaining.
func CopyTo(src BitBuf, dst bit.MutSlice) uint {
	n := dst.CopyFrom(src.Chunk())
	src.Advance(n)
	//
	return n
}

var (
	_ BitBuf         = (*Bits)(nil)
	_ BitBuf         = (*BitsMut)(nil)
	_ bit.Storage    = Bits{}
	_ bit.MutStorage = (*BitsMut)(nil)
)
