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
	"fmt"
	"strings"
)

const (
	// ADD indicates addition
	ADD Operation = 0
	// SUBTRACT indicates (saturating) subtraction
	SUBTRACT Operation = 1
	// MULTIPLY indicates multiplication
	MULTIPLY Operation = 2
	// DIVIDE indicates floor division.  This is not a numeral operator, and is
	// performed on native integers.
	DIVIDE Operation = 3
	// POWER indicates exponentiation
	POWER Operation = 4
	// FACTORIAL indicates the factorial, which is the only unary operation.
	FACTORIAL Operation = 5
)

// Operations lists every supported operation.
var Operations = []Operation{ADD, SUBTRACT, MULTIPLY, DIVIDE, POWER, FACTORIAL}

// Operation identifies an already parsed arithmetic operation.
type Operation uint8

// ParseOperation determines the operation for a given tag, which is either its
// name (e.g. "add") or its symbol (e.g. "+").
func ParseOperation(tag string) (Operation, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	//
	for _, op := range Operations {
		if tag == op.String() || tag == op.Symbol() {
			return op, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown operation \"%s\"", tag)
}

// Arity returns the number of operands taken by this operation.
func (p Operation) Arity() uint {
	if p == FACTORIAL {
		return 1
	}

	return 2
}

func (p Operation) String() string {
	switch p {
	case ADD:
		return "add"
	case SUBTRACT:
		return "subtract"
	case MULTIPLY:
		return "multiply"
	case DIVIDE:
		return "divide"
	case POWER:
		return "power"
	case FACTORIAL:
		return "factorial"
	default:
		return fmt.Sprintf("operation(%d)", uint8(p))
	}
}

// Symbol returns the usual infix (or postfix) symbol for this operation.
func (p Operation) Symbol() string {
	switch p {
	case ADD:
		return "+"
	case SUBTRACT:
		return "-"
	case MULTIPLY:
		return "*"
	case DIVIDE:
		return "/"
	case POWER:
		return "^"
	case FACTORIAL:
		return "!"
	default:
		return "?"
	}
}

// Format renders an application of this operation to the given operands.
func (p Operation) Format(a, b int) string {
	if p.Arity() == 1 {
		return fmt.Sprintf("%d%s", a, p.Symbol())
	}
	//
	return fmt.Sprintf("%d%s%d", a, p.Symbol(), b)
}
