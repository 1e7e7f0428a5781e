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
	"errors"
	"fmt"
	"io"
)

// ErrInvalidSeek is reported when a seek would move a cursor to a negative or
// overflowing position, or when the whence argument is not recognised.
var ErrInvalidSeek = errors.New("invalid seek to a negative or overflowing position")

// SeekError describes a rejected seek.  The cursor position is left unchanged
// whenever one of these is returned.
type SeekError struct {
	// One of io.SeekStart, io.SeekCurrent or io.SeekEnd.
	Whence int
	// Offset which was requested, in bits or (for Seek) in bytes.
	Offset int64
	// Set when Offset is in bytes.
	Bytes bool
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("%s (%s%+d %s)", ErrInvalidSeek, whenceString(e.Whence), e.Offset, e.unit())
}

// Unwrap allows errors.Is(err, ErrInvalidSeek).
func (e *SeekError) Unwrap() error {
	return ErrInvalidSeek
}

func (e *SeekError) unit() string {
	if e.Bytes {
		return "bytes"
	}
	//
	return "bits"
}

func whenceString(whence int) string {
	switch whence {
	case io.SeekStart:
		return "start"
	case io.SeekCurrent:
		return "current"
	case io.SeekEnd:
		return "end"
	default:
		return fmt.Sprintf("whence(%d)", whence)
	}
}
