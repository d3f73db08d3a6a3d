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

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// ErrNegative signals an attempt to encode a negative integer, which has no
// representation as a numeral.
var ErrNegative = errors.New("church numerals encode only non-negative integers")

// InvalidNumeralError is returned when constructing a numeral from an integer
// outside its domain.
type InvalidNumeralError struct {
	// Value which could not be encoded.
	Value int
}

func (e *InvalidNumeralError) Error() string {
	return fmt.Sprintf("invalid numeral %d (%s)", e.Value, ErrNegative.Error())
}

// Unwrap allows errors.Is(err, ErrNegative) to succeed.
func (e *InvalidNumeralError) Unwrap() error {
	return ErrNegative
}

// FromInt constructs the numeral representing n by applying Succ to Zero
// exactly n times.  This fails for negative n.
func FromInt(n int) (Numeral, error) {
	if n < 0 {
		return Numeral{}, &InvalidNumeralError{n}
	}
	//
	num := Zero()
	for i := 0; i < n; i++ {
		num = Succ(num)
	}
	//
	return num, nil
}

// ToInt decodes a numeral by applying it to the increment operator, starting
// from 0.
func ToInt(n Numeral) int {
	return Apply(n, func(x int) int { return x + 1 }, 0)
}

// Equal determines whether two numerals represent the same natural number.
// Numerals have no identity beyond their behaviour, hence both are decoded.
func Equal(a, b Numeral) bool {
	return ToInt(a) == ToInt(b)
}

// ToElement decodes a numeral into the scalar field of BLS12-377 by applying
// it to the field increment, starting from 0.
func ToElement(n Numeral) fr.Element {
	var zero, one fr.Element
	//
	one.SetOne()
	//
	return Apply(n, func(x fr.Element) fr.Element {
		var r fr.Element
		r.Add(&x, &one)

		return r
	}, zero)
}
