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

// Package mmap provides bit storage backed by a memory-mapped file, such that
// bits can be read and patched in place without copying the file.
package mmap

import (
	"github.com/consensys/go-bitcursor/pkg/bit"
	pkgErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// File represents a memory-mapped file.  Its size is fixed for as long as it
// remains open.
type File struct {
	fileDescriptor int
	data           []byte
	writable       bool
}

// Open maps an existing file into memory, either read-only or for reading and
// writing.  Writes made through a writable mapping are visible in the file
// itself, and are flushed to storage by Sync or Close.
func Open(path string, writable bool) (*File, error) {
	var (
		flags = unix.O_RDONLY
		prot  = unix.PROT_READ
		stat  unix.Stat_t
		data  []byte
	)
	//
	if writable {
		flags, prot = unix.O_RDWR, unix.PROT_READ|unix.PROT_WRITE
	}
	//
	fd, err := unix.Open(path, flags, 0)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to open file %#v", path)
	}
	//
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd) //nolint:errcheck
		return nil, pkgErrors.Wrapf(err, "failed to obtain size of file %#v", path)
	}
	// Empty files cannot be mapped, but there is nothing to map anyway.
	if stat.Size > 0 {
		data, err = unix.Mmap(fd, 0, int(stat.Size), prot, unix.MAP_SHARED)
		if err != nil {
			unix.Close(fd) //nolint:errcheck
			return nil, pkgErrors.Wrapf(err, "failed to memory map file %#v", path)
		}
	}
	//
	log.Debugf("mapped %d bytes of %s (writable %t)", len(data), path, writable)
	//
	return &File{fd, data, writable}, nil
}

// Len returns the size (in bytes) of this file.
func (f *File) Len() uint {
	return uint(len(f.data))
}

// BorrowBits implementation for the bit.Storage interface.
func (f *File) BorrowBits() bit.Slice {
	return bit.SliceOf(f.data)
}

// BorrowBitsMut implementation for the bit.MutStorage interface.  This is only
// permitted on a writable mapping, since writing to a read-only mapping faults.
func (f *File) BorrowBitsMut() bit.MutSlice {
	if !f.writable {
		panic("file mapped read-only")
	}
	//
	return bit.MutSliceOf(f.data)
}

// Sync flushes any modified pages of this mapping back to storage.
func (f *File) Sync() error {
	if !f.writable || len(f.data) == 0 {
		return nil
	}
	//
	return pkgErrors.Wrap(unix.Msync(f.data, unix.MS_SYNC), "failed to sync memory map")
}

// Close flushes and unmaps this file, and closes its file descriptor.  The file
// must not be used afterwards.
func (f *File) Close() error {
	if err := f.Sync(); err != nil {
		return err
	}
	//
	if f.data != nil {
		if err := unix.Munmap(f.data); err != nil {
			return pkgErrors.Wrap(err, "failed to unmap file")
		}
		//
		f.data = nil
	}
	//
	return pkgErrors.Wrap(unix.Close(f.fileDescriptor), "failed to close file")
}

var _ bit.MutStorage = (*File)(nil)
