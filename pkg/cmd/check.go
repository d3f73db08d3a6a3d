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
	"os"

	"github.com/consensys/go-church/pkg/calc"
	"github.com/consensys/go-church/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "Check numeral arithmetic against native arithmetic.",
	Long: `Evaluate every operation over all operands up to a given bound using
	Church numerals, and compare each result against native integer arithmetic.
	Exponentiation and factorial grow quickly, hence they have a separate bound.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		cfg.max = getUint(cmd, "max")
		cfg.maxExp = getUint(cmd, "max-exp")
		cfg.workers = getUint(cmd, "workers")
		//
		stats := util.NewPerfStats()
		//
		count, errs := runChecks(context.Background(), cfg)
		//
		stats.Log("Checking")
		//
		if len(errs) > 0 {
			// Report errors
			for _, e := range errs {
				log.Error(e)
			}
			// Error signal
			os.Exit(1)
		}
		//
		log.Infof("%d checks passed", count)
	},
}

type checkConfig struct {
	// Largest operand for add, subtract, multiply and divide
	max uint
	// Largest operand for power and factorial
	maxExp uint
	// Number of concurrent evaluations (0 for unbounded)
	workers uint
}

// Run all checks, returning the number of computations checked and any
// mismatches found.
func runChecks(ctx context.Context, cfg checkConfig) (uint, []error) {
	var (
		errors []error
		count  uint
	)
	//
	for _, op := range calc.Operations {
		bound := cfg.max
		if op == calc.POWER || op == calc.FACTORIAL {
			bound = cfg.maxExp
		}
		//
		jobs := checkableJobs(op, bound)
		results, err := calc.EvaluateAll(ctx, jobs, cfg.workers)
		//
		if err != nil {
			errors = append(errors, err)
			continue
		}
		//
		for i, job := range jobs {
			if err := checkResult(job, results[i]); err != nil {
				errors = append(errors, err)
			}
		}
		//
		log.Debugf("checked %d applications of %s", len(jobs), op)
		//
		count += uint(len(jobs))
	}
	//
	return count, errors
}

// Determine jobs to check for a given operation, excluding those which have no
// value (i.e. division by zero).
func checkableJobs(op calc.Operation, bound uint) []calc.Job {
	var jobs []calc.Job
	//
	for iter := calc.EnumerateJobs(op, bound); iter.HasNext(); {
		if job := iter.Next(); op != calc.DIVIDE || job.B != 0 {
			jobs = append(jobs, job)
		}
	}
	//
	return jobs
}

// Check a result is consistent with native arithmetic.
func checkResult(job calc.Job, res calc.Result) error {
	expected := nativeResult(job)
	//
	if res.Value != expected {
		return fmt.Errorf("%s == %d != %d", job, res.Value, expected)
	} else if job.Op == calc.SUBTRACT && res.Saturated != (job.A < job.B) {
		return fmt.Errorf("%s incorrectly reported saturation", job)
	}
	//
	return nil
}

// Compute the expected result of a job using native arithmetic.
func nativeResult(job calc.Job) int {
	a, b := job.A, job.B
	//
	switch job.Op {
	case calc.ADD:
		return a + b
	case calc.SUBTRACT:
		return max(a-b, 0)
	case calc.MULTIPLY:
		return a * b
	case calc.DIVIDE:
		return a / b
	case calc.POWER:
		acc := 1
		for i := 0; i < b; i++ {
			acc *= a
		}
		//
		return acc
	case calc.FACTORIAL:
		acc := 1
		for i := 2; i <= a; i++ {
			acc *= i
		}
		//
		return acc
	default:
		panic("unreachable")
	}
}

func init() {
	checkCmd.Flags().Uint("max", 12, "largest operand for add, subtract, multiply and divide")
	checkCmd.Flags().Uint("max-exp", 5, "largest operand for power and factorial")
	checkCmd.Flags().Uint("workers", 0, "number of concurrent evaluations (0 for one per computation)")
	rootCmd.AddCommand(checkCmd)
}
