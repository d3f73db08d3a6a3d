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
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/consensys/go-church/pkg/calc"
	"github.com/consensys/go-church/pkg/util"
	"github.com/consensys/go-church/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] operation",
	Short: "Print the table of an operation over small operands.",
	Long: `Print the table of an operation for all operands from 0 up to a given
	maximum.  Binary operations are shown as a grid, with the first operand
	down and the second across.  Saturated subtractions are highlighted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var cfg tableConfig
		//
		op, err := calc.ParseOperation(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		cfg.max = getUint(cmd, "max")
		cfg.workers = getUint(cmd, "workers")
		cfg.maxCellWidth = getUint(cmd, "max-width")
		cfg.ansiEscapes = termio.IsTerminal(os.Stdout)
		// Explicit setting overrides terminal detection
		if cmd.Flags().Changed("ansi-escapes") {
			cfg.ansiEscapes = getFlag(cmd, "ansi-escapes")
		}
		//
		stats := util.NewPerfStats()
		//
		if err := runTable(os.Stdout, op, cfg); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log(fmt.Sprintf("Tabulating %s", op))
	},
}

type tableConfig struct {
	// Largest operand to tabulate
	max uint
	// Number of concurrent evaluations (0 for unbounded)
	workers uint
	// Upper bound on the width of any column (0 for unbounded)
	maxCellWidth uint
	// Determines whether to colour cells
	ansiEscapes bool
}

func runTable(out io.Writer, op calc.Operation, cfg tableConfig) error {
	var jobs []calc.Job
	// Division by zero has no value, and is left blank
	for _, job := range calc.Collect(calc.EnumerateJobs(op, cfg.max)) {
		if op != calc.DIVIDE || job.B != 0 {
			jobs = append(jobs, job)
		}
	}
	//
	results, err := calc.EvaluateAll(context.Background(), jobs, cfg.workers)
	if err != nil {
		return err
	}
	//
	table := buildTable(op, cfg.max, jobs, results)
	table.AnsiEscapes(cfg.ansiEscapes)
	//
	if cfg.maxCellWidth > 0 {
		table.SetMaxWidth(cfg.maxCellWidth)
	}
	//
	return table.Print(out)
}

func buildTable(op calc.Operation, n uint, jobs []calc.Job, results []calc.Result) *termio.TablePrinter {
	var (
		table     *termio.TablePrinter
		highlight = termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
		heading   = termio.BoldAnsiEscape()
	)
	// Unary operations are shown as two rows
	if op.Arity() == 1 {
		table = termio.NewTablePrinter(n+2, 2)
		table.Set(0, 0, "n")
		table.Set(0, 1, "n"+op.Symbol())
		table.SetEscape(0, 0, heading)
		table.SetEscape(0, 1, heading)
		//
		for i, job := range jobs {
			table.Set(uint(job.A)+1, 0, strconv.Itoa(job.A))
			table.Set(uint(job.A)+1, 1, strconv.Itoa(results[i].Value))
		}
		//
		return table
	}
	//
	table = termio.NewTablePrinter(n+2, n+2)
	table.Set(0, 0, op.Symbol())
	// Headings
	for i := uint(0); i <= n; i++ {
		table.Set(i+1, 0, strconv.Itoa(int(i)))
		table.Set(0, i+1, strconv.Itoa(int(i)))
		table.SetEscape(i+1, 0, heading)
		table.SetEscape(0, i+1, heading)
	}
	//
	for i, job := range jobs {
		col, row := uint(job.B)+1, uint(job.A)+1
		table.Set(col, row, strconv.Itoa(results[i].Value))
		//
		if results[i].Saturated {
			table.SetEscape(col, row, highlight)
		}
	}
	//
	return table
}

func init() {
	tableCmd.Flags().Uint("max", 6, "largest operand to tabulate")
	tableCmd.Flags().Uint("workers", 0, "number of concurrent evaluations (0 for one per cell)")
	tableCmd.Flags().Uint("max-width", 0, "maximum width of any column (0 for unbounded)")
	tableCmd.Flags().Bool("ansi-escapes", true, "colour output (defaults to on for terminals)")
	rootCmd.AddCommand(tableCmd)
}
