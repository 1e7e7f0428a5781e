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
	"fmt"
	"io"
	"strings"
)

// TablePrinter is useful for printing tables (e.g. of bits) to the terminal.
// Rows are added incrementally, and columns are sized to fit their widest cell.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new (empty) table with a given number of
// columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil, nil, true}
}

// AddRow appends a row onto the end of this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	row := uint(len(p.rows))
	//
	p.rows = append(p.rows, make([]string, len(p.widths)))
	p.escapes = append(p.escapes, make([]string, len(p.widths)))
	p.SetRow(row, vals...)
	//
	return row
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape set the escape to use when printing the contents of a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible escape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, val := range vals {
		p.Set(uint(i), row, val)
	}
}

// SetMaxWidths puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := range uint(len(p.widths)) {
		p.SetMaxWidth(i, width)
	}
}

// SetMaxWidth puts an upper bound on the width of a given column.  Cells wider
// than this are truncated with a trailing "..".
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(width, 3))
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) error {
	var out strings.Builder
	//
	for i, row := range p.rows {
		for j, col := range row {
			width := p.widths[j]
			escape := p.escapes[i][j]
			// Print colour (if applicable)
			if p.enableEscapes && escape != "" {
				out.WriteString(escape)
			}
			// Print data
			if uint(len(col)) > width {
				fmt.Fprintf(&out, " %*s..", width-2, col[0:width-2])
			} else {
				fmt.Fprintf(&out, " %*s", width, col)
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && escape != "" {
				out.WriteString(ResetAnsiEscape().Build())
			}
			//
			out.WriteString(" |")
		}
		//
		out.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, out.String())
	//
	return err
}
