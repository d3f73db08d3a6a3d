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

// Enumerator abstracts the process of iterating over a sequence of elements.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advance the enumerator.
	Next() T
}

// EnumerateJobs returns an enumerator over every application of the given
// operation to operands drawn from 0..n (inclusive).  The first operand varies
// fastest.  For example, if op is binary and n==1 then this enumerates 0+0,
// 1+0, 0+1 and 1+1.
func EnumerateJobs(op Operation, n uint) Enumerator[Job] {
	counters := make([]uint, op.Arity())
	return &jobEnumerator{op, counters, n + 1}
}

// Collect drains an enumerator into an array.
func Collect[T any](enumerator Enumerator[T]) []T {
	var items []T
	//
	for enumerator.HasNext() {
		items = append(items, enumerator.Next())
	}
	//
	return items
}

type jobEnumerator struct {
	op Operation
	// counters holds the next operands, or nil once exhausted.
	counters []uint
	// number of distinct values for each operand
	width uint
}

// HasNext checks whether or not there are any jobs remaining to visit.
//
//nolint:revive
func (p *jobEnumerator) HasNext() bool {
	return p.counters != nil
}

// Next returns the next job, and advances the enumerator.
//
//nolint:revive
func (p *jobEnumerator) Next() Job {
	job := Job{Op: p.op, A: int(p.counters[0])}
	//
	if len(p.counters) > 1 {
		job.B = int(p.counters[1])
	}
	//
	carry := true
	// Increment counters, as an odometer
	for i := 0; carry && i < len(p.counters); i++ {
		p.counters[i]++
		carry = p.counters[i] == p.width
		//
		if carry {
			p.counters[i] = 0
		}
	}
	// Check whether finished
	if carry {
		p.counters = nil
	}
	//
	return job
}
