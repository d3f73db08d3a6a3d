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

// Add returns the numeral representing m+n.  The operator is first applied n
// times to the seed, and then m times to the result.
func Add(m, n Numeral) Numeral {
	return Numeral{iterate: func(op operator, seed any) any {
		return m.apply(op, n.apply(op, seed))
	}}
}

// Multiply returns the numeral representing m*n by letting m iterate the
// operator which applies op n times.  Multiplying by zero always yields zero.
func Multiply(m, n Numeral) Numeral {
	return Numeral{iterate: func(op operator, seed any) any {
		return m.apply(fold(n, op), seed)
	}}
}

// Power returns the numeral representing m^n.  Here n iterates the
// meta-operator "apply m times" over operators, starting from the given
// operator.  When n is zero this leaves the operator untouched, hence m^0 = 1
// for every m (including 0^0).
func Power(m, n Numeral) Numeral {
	return Numeral{iterate: func(op operator, seed any) any {
		meta := func(g operator) operator { return fold(m, g) }
		//
		return Apply(n, meta, op)(seed)
	}}
}

// Factorial returns the numeral representing n!, where 0! = 1! = 1.  The
// accumulation runs as a loop, rather than recursion, such that the stack does
// not grow with n.
func Factorial(n Numeral) Numeral {
	acc := One()
	//
	for ToInt(n) > 1 {
		acc = Multiply(acc, n)
		n = Pred(n)
	}
	//
	return acc
}

// fold returns the operator which applies op as many times as n represents.
func fold(n Numeral, op operator) operator {
	return func(x any) any {
		return n.apply(op, x)
	}
}
