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
	"os"
	"strconv"

	"github.com/consensys/go-church/pkg/calc"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer flag, or exit if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse an operation tag followed by its operands.  The number of operands must
// match the arity of the operation.
func parseJob(args []string) (calc.Job, error) {
	var (
		job      calc.Job
		operands [2]int
		err      error
	)
	//
	if len(args) == 0 {
		return job, fmt.Errorf("missing operation")
	} else if job.Op, err = calc.ParseOperation(args[0]); err != nil {
		return job, err
	} else if uint(len(args)-1) != job.Op.Arity() {
		return job, fmt.Errorf("%s expects %d operand(s), given %d", job.Op, job.Op.Arity(), len(args)-1)
	}
	//
	for i, arg := range args[1:] {
		if operands[i], err = strconv.Atoi(arg); err != nil {
			return job, fmt.Errorf("invalid operand \"%s\"", arg)
		}
	}
	//
	job.A, job.B = operands[0], operands[1]
	//
	return job, nil
}
