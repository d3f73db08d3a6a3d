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
package church

// predecessor realises a numeral obtained by repeatedly applying Pred to a base
// numeral.  Repeated predecessors share the same base, and only the number of
// withheld applications grows, such that applying the result replays the base
// exactly once.
type predecessor struct {
	// base numeral whose iteration is replayed.
	base Numeral
	// k is the natural number represented by base.
	k int
	// drop is the number of trailing applications withheld (at most k).
	drop int
}

// Pred returns the numeral representing k-1, given a numeral representing k,
// or zero when k is zero.  Since a numeral can only apply an operator, the
// predecessor replays n's own iteration whilst withholding the final
// application: a counter tracks the number of calls made so far, and a trailing
// register holds the last value actually produced.  Once k-1 applications have
// been made, further calls return the register unchanged.
func Pred(n Numeral) Numeral {
	// The counting trick has nothing to withhold for zero.
	if IsZero(n) {
		return Zero()
	} else if n.pred != nil {
		// Withhold one more application from the same base
		p := *n.pred
		p.drop++
		//
		return Numeral{pred: &p}
	}
	//
	return Numeral{pred: &predecessor{n, ToInt(n), 1}}
}

func (p *predecessor) apply(op operator, seed any) any {
	var (
		counter = 0
		keep    = p.k - p.drop
		result  = seed
	)
	//
	p.base.apply(func(y any) any {
		if counter < keep {
			result = op(y)
		}
		//
		counter++

		return result
	}, seed)
	//
	return result
}

// Subtract returns m-n when m >= n, and zero otherwise.  This is realised by
// applying Pred to m as many times as n represents, stopping early once zero
// is reached.
func Subtract(m, n Numeral) Numeral {
	result := m
	//
	for i, k := 0, ToInt(n); i < k && !IsZero(result); i++ {
		result = Pred(result)
	}
	//
	return result
}
