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

// Storage captures anything which can present its entire contents as a
// read-only bit-level view.  Borrowing must be idempotent: repeated calls
// without intervening mutation return views over the same bits.
type Storage interface {
	BorrowBits() Slice
}

// MutStorage captures anything which can, additionally, present its contents as
// a mutable bit-level view.  A view obtained in this way is invalidated by any
// structural change (e.g. growth) of the storage made outside of the view.
type MutStorage interface {
	Storage
	BorrowBitsMut() MutSlice
}

// Bytes is a plain byte array used as bit storage, where the bits of each byte
// are ordered from most to least significant.  This covers both owned byte
// buffers and byte slices borrowed from elsewhere.
type Bytes []byte

// BorrowBits implementation for the Storage interface.
func (p Bytes) BorrowBits() Slice {
	return SliceOf(p)
}

// BorrowBitsMut implementation for the MutStorage interface.
func (p Bytes) BorrowBitsMut() MutSlice {
	return MutSliceOf(p)
}

var (
	_ Storage    = Slice{}
	_ MutStorage = MutSlice{}
	_ MutStorage = Bytes(nil)
	_ MutStorage = (*Vec)(nil)
)
