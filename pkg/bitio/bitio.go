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

// Package bitio provides cursors for reading, writing and seeking through bit
// storage at single bit granularity.  Cursors also implement the standard byte
// oriented interfaces from package io, where a byte corresponds to eight
// consecutive bits.
package bitio

import (
	"io"

	"github.com/consensys/go-bitcursor/pkg/bit"
)

// BitReader reads bits into a destination view, returning the number of bits
// read.  At the end of input, it returns 0 and io.EOF.
type BitReader interface {
	ReadBits(dst bit.MutSlice) (int, error)
}

// BitWriter writes bits from a source view, returning the number of bits
// written.
type BitWriter interface {
	WriteBits(src bit.Slice) (int, error)
}

// BitSeeker positions at a given bit offset, with whence interpreted as for
// io.Seeker.
type BitSeeker interface {
	BitSeek(offset int64, whence int) (uint64, error)
}

// BitReadSeeker groups the bit and byte oriented read and seek methods.
type BitReadSeeker interface {
	BitReader
	BitSeeker
	io.ReadSeeker
	io.ByteReader
}

// BitReadWriteSeeker groups the bit and byte oriented read, write and seek
// methods.
type BitReadWriteSeeker interface {
	BitReadSeeker
	BitWriter
	io.Writer
	io.ByteWriter
}

var (
	_ BitReadSeeker      = (*Cursor[bit.Slice])(nil)
	_ BitReadSeeker      = (*Cursor[bit.Bytes])(nil)
	_ BitReadWriteSeeker = (*MutCursor[bit.Bytes])(nil)
	_ BitReadWriteSeeker = (*MutCursor[*bit.Vec])(nil)
	_ BitReadWriteSeeker = (*MutCursor[bit.MutSlice])(nil)
)
