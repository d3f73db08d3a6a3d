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

import "testing"

const maxOperand = 12

func Test_Add_0(t *testing.T) {
	check(t, "+", Add, func(m, n int) int { return m + n }, maxOperand, maxOperand)
}

func Test_Add_Commutative(t *testing.T) {
	for m := 0; m <= maxOperand; m++ {
		for n := 0; n <= maxOperand; n++ {
			a, b := number(t, m), number(t, n)
			if !Equal(Add(a, b), Add(b, a)) {
				t.Errorf("%d+%d != %d+%d", m, n, n, m)
			}
		}
	}
}

func Test_Add_Associative(t *testing.T) {
	a, b, c := number(t, 2), number(t, 3), number(t, 4)
	//
	if !Equal(Add(Add(a, b), c), Add(a, Add(b, c))) {
		t.Errorf("addition is not associative")
	}
}

func Test_Multiply_0(t *testing.T) {
	check(t, "*", Multiply, func(m, n int) int { return m * n }, maxOperand, maxOperand)
}

func Test_Multiply_Zero(t *testing.T) {
	for m := 0; m <= maxOperand; m++ {
		if n := ToInt(Multiply(number(t, m), Zero())); n != 0 {
			t.Errorf("%d*0 == %d", m, n)
		}
		//
		if n := ToInt(Multiply(Zero(), number(t, m))); n != 0 {
			t.Errorf("0*%d == %d", m, n)
		}
	}
}

func Test_Power_0(t *testing.T) {
	check(t, "^", Power, powUint, 5, 5)
}

func Test_Power_1(t *testing.T) {
	tests := []struct{ m, n, expected int }{{2, 3, 8}, {3, 2, 9}, {5, 0, 1}, {0, 0, 1}, {0, 3, 0}, {1, 9, 1}}
	//
	for _, tc := range tests {
		if n := ToInt(Power(number(t, tc.m), number(t, tc.n))); n != tc.expected {
			t.Errorf("%d^%d == %d != %d", tc.m, tc.n, n, tc.expected)
		}
	}
}

func Test_Factorial_0(t *testing.T) {
	expected := []int{1, 1, 2, 6, 24, 120, 720, 5040}
	//
	for i, e := range expected {
		if n := ToInt(Factorial(number(t, i))); n != e {
			t.Errorf("%d! == %d != %d", i, n, e)
		}
	}
}

func Test_Factorial_1(t *testing.T) {
	if n := ToInt(Factorial(Zero())); n != 1 {
		t.Errorf("0! == %d", n)
	}
	// Operand built by other operators
	if n := ToInt(Factorial(Add(number(t, 2), number(t, 3)))); n != 120 {
		t.Errorf("(2+3)! == %d", n)
	}
}

// check compares a binary operator against its native counterpart for every
// pair of operands up to the given bounds.
func check(t *testing.T, sym string, op func(Numeral, Numeral) Numeral, native func(int, int) int,
	maxM, maxN int) {
	for m := 0; m <= maxM; m++ {
		for n := 0; n <= maxN; n++ {
			e := native(m, n)
			// Check for a match
			if x := ToInt(op(number(t, m), number(t, n))); x != e {
				t.Errorf("%d %s %d == %d != %d", m, sym, n, x, e)
			}
		}
	}
}

func powUint(base, exp int) int {
	acc := 1
	for i := 0; i < exp; i++ {
		acc *= base
	}

	return acc
}
