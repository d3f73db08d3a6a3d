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
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows, escapes, true}
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

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful when output is not a terminal as,
// otherwise, you get a lot of visible escape characters being printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidth(width uint) {
	for i := range p.widths {
		p.widths[i] = min(p.widths[i], width)
	}
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) error {
	for i, row := range p.rows {
		escapes := p.escapes[i]
		//
		for j, col := range row {
			if err := p.printCell(out, col, p.widths[j], escapes[j]); err != nil {
				return err
			}
		}
		//
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p *TablePrinter) printCell(out io.Writer, val string, width uint, escape string) error {
	var text string
	// Truncate (if applicable)
	if uint(len(val)) > width && width > 2 {
		text = fmt.Sprintf(" %*s..", width-2, val[0:width-2])
	} else {
		text = fmt.Sprintf(" %*s", width, val)
	}
	// Apply colour (if applicable)
	if p.enableEscapes && escape != "" {
		text = escape + text + ResetAnsiEscape().Build()
	}
	//
	_, err := fmt.Fprint(out, text, " |")
	//
	return err
}
