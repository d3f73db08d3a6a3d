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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		tag      string
		expected Operation
	}{
		{"add", ADD}, {"+", ADD}, {" Add ", ADD},
		{"subtract", SUBTRACT}, {"-", SUBTRACT},
		{"multiply", MULTIPLY}, {"*", MULTIPLY},
		{"divide", DIVIDE}, {"/", DIVIDE},
		{"power", POWER}, {"^", POWER},
		{"factorial", FACTORIAL}, {"!", FACTORIAL},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			op, err := ParseOperation(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestParseOperation_Unknown(t *testing.T) {
	for _, tag := range []string{"", "mod", "%", "5+3"} {
		_, err := ParseOperation(tag)
		assert.Error(t, err, "tag %q", tag)
	}
}

func TestOperation_Arity(t *testing.T) {
	for _, op := range Operations {
		if op == FACTORIAL {
			assert.Equal(t, uint(1), op.Arity())
		} else {
			assert.Equal(t, uint(2), op.Arity(), op.String())
		}
	}
}

func TestOperation_Format(t *testing.T) {
	assert.Equal(t, "5+3", ADD.Format(5, 3))
	assert.Equal(t, "2-5", SUBTRACT.Format(2, 5))
	assert.Equal(t, "5!", FACTORIAL.Format(5, 0))
	assert.Equal(t, "operation(42)", Operation(42).String())
}
