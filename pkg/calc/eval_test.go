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
	"testing"

	"github.com/consensys/go-church/pkg/church"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		a, b     int
		expected int
	}{
		{"5+3", ADD, 5, 3, 8},
		{"0+4", ADD, 0, 4, 4},
		{"5-2", SUBTRACT, 5, 2, 3},
		{"3*2", MULTIPLY, 3, 2, 6},
		{"5*0", MULTIPLY, 5, 0, 0},
		{"7/2", DIVIDE, 7, 2, 3},
		{"0/3", DIVIDE, 0, 3, 0},
		{"2^3", POWER, 2, 3, 8},
		{"0^0", POWER, 0, 0, 1},
		{"5!", FACTORIAL, 5, 0, 120},
		{"0!", FACTORIAL, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Value)
			assert.False(t, res.Saturated)
			assert.Empty(t, res.Warning())
		})
	}
}

func TestEvaluate_Saturated(t *testing.T) {
	res, err := Evaluate(SUBTRACT, 2, 5)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Value)
	assert.True(t, res.Saturated)
	assert.Contains(t, res.Warning(), "result is 0")
	// Equal operands reach zero without saturating
	res, err = Evaluate(SUBTRACT, 4, 4)
	require.NoError(t, err)
	assert.False(t, res.Saturated)
}

func TestEvaluate_Negative(t *testing.T) {
	for _, op := range Operations {
		_, err := Evaluate(op, -1, 1)
		require.Error(t, err, op.String())
		assert.ErrorIs(t, err, church.ErrNegative)
	}
	// Factorial ignores its second operand
	_, err := Evaluate(FACTORIAL, 3, -1)
	assert.NoError(t, err)
	// Binary operations validate it
	_, err = Evaluate(ADD, 3, -1)
	assert.ErrorIs(t, err, church.ErrNegative)
	assert.Contains(t, err.Error(), "second operand")
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	_, err := Evaluate(DIVIDE, 4, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEvaluate_Unknown(t *testing.T) {
	_, err := Evaluate(Operation(42), 1, 1)
	assert.Error(t, err)
}
