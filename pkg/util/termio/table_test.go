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
package termio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Table_00(t *testing.T) {
	var (
		table = NewTablePrinter(2)
		out   strings.Builder
	)
	//
	table.AddRow("0", "1011")
	table.AddRow("16", "0")
	require.Equal(t, uint(2), table.Height())
	require.Equal(t, "1011", table.Get(1, 0))
	//
	require.NoError(t, table.Print(&out))
	require.Equal(t, "  0 | 1011 |\n 16 |    0 |\n", out.String())
}

func Test_Table_01(t *testing.T) {
	var (
		table = NewTablePrinter(1)
		out   strings.Builder
	)
	//
	row := table.AddRow("110011")
	table.SetMaxWidths(4)
	table.SetEscape(0, row, NewAnsiEscape().FgColour(TERM_GREEN))
	table.AnsiEscapes(false)
	//
	require.NoError(t, table.Print(&out))
	require.Equal(t, " 11.. |\n", out.String())
	//
	out.Reset()
	table.AnsiEscapes(true)
	require.NoError(t, table.Print(&out))
	require.Equal(t, "\033[32m 11..\033[0m |\n", out.String())
}

func Test_Table_02(t *testing.T) {
	table := NewTablePrinter(2)
	//
	require.Panics(t, func() { table.AddRow("only one") })
}

func Test_AnsiEscape(t *testing.T) {
	require.Equal(t, "\033[0m", ResetAnsiEscape().Build())
	require.Equal(t, "\033[1;31m", BoldAnsiEscape().FgColour(TERM_RED).Build())
	require.Equal(t, "\033[33;44m", NewAnsiEscape().FgColour(TERM_YELLOW).BgColour(TERM_BLUE).Build())
}
