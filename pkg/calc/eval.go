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
	"errors"
	"fmt"

	"github.com/consensys/go-church/pkg/church"
	log "github.com/sirupsen/logrus"
)

// ErrDivisionByZero is returned when dividing by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Result of evaluating an operation.
type Result struct {
	// Value of the computation, decoded from its numeral.
	Value int
	// Saturated indicates a subtraction whose subtrahend exceeded its minuend,
	// such that the result was floored at zero.
	Saturated bool
}

// Warning returns a caller-visible notice for this result, or "" if there is
// nothing to report.
func (p Result) Warning() string {
	if p.Saturated {
		return "minuend is less than subtrahend, result is 0"
	}

	return ""
}

// Evaluate applies an operation to the given operands using numerals.  The
// second operand is ignored for unary operations.  Operands are validated at
// this boundary, hence negative operands are reported as errors wrapping
// church.ErrNegative.
func Evaluate(op Operation, a, b int) (Result, error) {
	var (
		res     Result
		m, n    church.Numeral
		err     error
		numeral church.Numeral
	)
	// Division happens natively, and never constructs numerals.
	if op == DIVIDE {
		return divide(a, b)
	}
	//
	if m, err = church.FromInt(a); err != nil {
		return res, fmt.Errorf("%s: first operand: %w", op, err)
	} else if op.Arity() == 2 {
		if n, err = church.FromInt(b); err != nil {
			return res, fmt.Errorf("%s: second operand: %w", op, err)
		}
	}
	//
	switch op {
	case ADD:
		numeral = church.Add(m, n)
	case SUBTRACT:
		numeral = church.Subtract(m, n)
		res.Saturated = a < b
	case MULTIPLY:
		numeral = church.Multiply(m, n)
	case POWER:
		numeral = church.Power(m, n)
	case FACTORIAL:
		numeral = church.Factorial(m)
	default:
		return res, fmt.Errorf("unsupported operation %d", op)
	}
	//
	res.Value = church.ToInt(numeral)
	//
	if res.Saturated {
		log.Debugf("evaluated %s = %d (saturated)", op.Format(a, b), res.Value)
	} else {
		log.Debugf("evaluated %s = %d", op.Format(a, b), res.Value)
	}
	//
	return res, nil
}

func divide(a, b int) (Result, error) {
	switch {
	case a < 0 || b < 0:
		return Result{}, fmt.Errorf("divide: %w", church.ErrNegative)
	case b == 0:
		return Result{}, ErrDivisionByZero
	}
	//
	log.Debugf("evaluated %s = %d", DIVIDE.Format(a, b), a/b)
	//
	return Result{Value: a / b}, nil
}
