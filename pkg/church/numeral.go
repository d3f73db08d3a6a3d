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

import "strconv"

// operator is the untyped form of an operator passed to a numeral.
type operator = func(any) any

// Numeral is the Church encoding of a natural number n.  Applying a numeral to
// an operator and a seed returns the seed after n applications of the
// operator.  Numerals are immutable and may be freely shared between
// goroutines.  The zero value of Numeral represents zero.
type Numeral struct {
	// below is the numeral which this numeral succeeds, or nil if this numeral
	// was not constructed by Succ.
	below *Numeral
	// pred is non-nil when this numeral was constructed by Pred.
	pred *predecessor
	// iterate realises a numeral which is neither a successor nor a
	// predecessor.  When nil (and pred is nil), the operator is applied zero
	// times.
	iterate func(op operator, seed any) any
}

// Apply returns the seed after the operator has been applied to it n times,
// where n is the natural number represented by the given numeral.  This is the
// only way to observe a numeral, and the carrier type T is chosen freely by
// the caller.
func Apply[T any](n Numeral, op func(T) T, seed T) T {
	// NOTE: every value passed to the operator, and the result, is either the
	// seed or an output of op, hence always a T.  The only failing assertion is
	// on a nil interface, which is the zero value of an interface typed T.
	res := n.apply(func(x any) any {
		v, _ := x.(T)
		return op(v)
	}, seed)
	//
	v, _ := res.(T)
	//
	return v
}

// apply unwinds any chain of successors with a loop, such that the stack depth
// does not grow with the magnitude of the numeral.
func (n Numeral) apply(op operator, seed any) any {
	base := n
	// Find innermost non-successor
	for base.below != nil {
		base = *base.below
	}
	//
	x := seed
	//
	switch {
	case base.pred != nil:
		x = base.pred.apply(op, x)
	case base.iterate != nil:
		x = base.iterate(op, x)
	}
	// One further application for each successor
	for p := n; p.below != nil; p = *p.below {
		x = op(x)
	}
	//
	return x
}

// String returns the decimal representation of this numeral.
func (n Numeral) String() string {
	return strconv.Itoa(ToInt(n))
}

// Zero returns the numeral which applies an operator zero times.
func Zero() Numeral {
	return Numeral{}
}

// One returns the numeral which applies an operator exactly once.
func One() Numeral {
	return Numeral{iterate: func(op operator, seed any) any {
		return op(seed)
	}}
}

// Succ returns the numeral representing k+1, given a numeral representing k.
// That is, the operator is applied once more after n has applied it k times.
func Succ(n Numeral) Numeral {
	return Numeral{below: &n}
}

// IsZero determines whether a numeral represents zero, without a native integer
// decode.
func IsZero(n Numeral) bool {
	return Apply(n, func(bool) bool { return false }, true)
}
