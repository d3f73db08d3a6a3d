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
package calc

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Job is a single already parsed computation.
type Job struct {
	Op Operation
	A  int
	B  int
}

func (p Job) String() string {
	return p.Op.Format(p.A, p.B)
}

// EvaluateAll evaluates a set of independent jobs concurrently, using at most
// the given number of workers (or one per job when workers is 0).  Results are
// returned in the order of their jobs.  The first failing job cancels those
// not yet started, and its error is returned.
func EvaluateAll(ctx context.Context, jobs []Job, workers uint) ([]Result, error) {
	results := make([]Result, len(jobs))
	group, ctx := errgroup.WithContext(ctx)
	//
	if workers > 0 {
		group.SetLimit(int(workers))
	}
	//
	log.Debugf("evaluating %d jobs with %d workers", len(jobs), workers)
	//
	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			//
			res, err := Evaluate(job.Op, job.A, job.B)
			if err != nil {
				return fmt.Errorf("%s: %w", job, err)
			}
			// Each job writes only its own slot
			results[i] = res
			//
			return nil
		})
	}
	//
	if err := group.Wait(); err != nil {
		return nil, err
	}
	//
	return results, nil
}
