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
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-church/pkg/calc"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] operation operand [operand]",
	Short: "Evaluate a single operation using Church numerals.",
	Long: `Evaluate a single operation using Church numerals.
	The operation is given either by name (add, subtract, multiply, divide,
	power, factorial) or by symbol (+, -, *, /, ^, !).  Factorial takes one
	operand, all other operations take two.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEval(os.Stdout, args); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

func runEval(out io.Writer, args []string) error {
	job, err := parseJob(args)
	if err != nil {
		return err
	}
	//
	res, err := calc.Evaluate(job.Op, job.A, job.B)
	if err != nil {
		return err
	}
	// Saturation is a notice, not an error
	if res.Saturated {
		log.Warn(res.Warning())
	}
	//
	_, err = fmt.Fprintln(out, res.Value)
	//
	return err
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
