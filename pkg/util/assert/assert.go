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

// Package assert provides small test helpers which fail the test immediately.
package assert

import (
	"math"
	"reflect"
	"testing"

	"github.com/consensys/go-bitcursor/pkg/bit"
)

// Equal errors if actual is not equal to expected.  Integers of different types
// are compared by value.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}
	//
	t.Errorf("expected: %v, actual: %v", expected, actual)
	report(t, msg...)
}

// Bits errors if the bits held in some storage differ from those given by a
// string of binary digits (e.g. "1011").
func Bits(t *testing.T, expected string, actual bit.Storage, msg ...any) {
	t.Helper()
	//
	if bits := actual.BorrowBits(); bits.String() != expected {
		t.Errorf("expected bits: %s, actual: %s", expected, bits.String())
		report(t, msg...)
	}
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		t.Errorf("condition is false")
		report(t, msg...)
	}
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		t.Errorf("condition is true")
		report(t, msg...)
	}
}

// Panics errors if the given function returns without panicking.
func Panics(t *testing.T, fn func(), msg ...any) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
			report(t, msg...)
		}
	}()
	//
	fn()
}

// Report the optional (format, args...) message and stop the test.
func report(t *testing.T, msg ...any) {
	t.Helper()
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}

// intEqual returns whether expected and actual are both integers and whether they are equal
// if that is the case.
func intEqual(expected, actual any) bool {
	a, aSigned, aOk := asInteger(expected)
	b, bSigned, bOk := asInteger(actual)
	//
	if !aOk || !bOk {
		return false
	} else if aSigned == bSigned {
		return a == b
	}
	// Mixed signedness: a negative value never equals an unsigned one.
	if aSigned && int64(a) < 0 || bSigned && int64(b) < 0 {
		return false
	}
	//
	return a == b
}

// asInteger widens an integer of any type to 64 bits, reporting whether it was
// signed and whether x was an integer at all.
func asInteger(x any) (uint64, bool, bool) {
	switch x := x.(type) {
	case int:
		return uint64(x), true, true
	case int8:
		return uint64(x), true, true
	case int16:
		return uint64(x), true, true
	case int32:
		return uint64(x), true, true
	case int64:
		return uint64(x), true, true
	case uint:
		return uint64(x), false, true
	case uint8:
		return uint64(x), false, true
	case uint16:
		return uint64(x), false, true
	case uint32:
		return uint64(x), false, true
	case uint64:
		return x, false, true
	case uintptr:
		return uint64(x), false, uint64(x) <= math.MaxUint64
	}
	//
	return 0, false, false
}
