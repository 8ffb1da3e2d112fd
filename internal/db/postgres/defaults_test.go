// Copyright Debezium Go Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaultValue(t *testing.T) {
	tests := []struct {
		name       string
		typeName   string
		expression string
		expected   any
		parseable  bool
	}{
		{
			name:       "integer literal with cast",
			typeName:   "int4",
			expression: "0",
			expected:   int64(0),
			parseable:  true,
		},
		{
			name:       "bigint literal",
			typeName:   "int8",
			expression: "'42'::bigint",
			expected:   int64(42),
			parseable:  true,
		},
		{
			name:       "boolean literal",
			typeName:   "bool",
			expression: "true",
			expected:   true,
			parseable:  true,
		},
		{
			name:       "string literal with cast",
			typeName:   "text",
			expression: "'pending'::text",
			expected:   "pending",
			parseable:  true,
		},
		{
			name:       "string literal with escaped quote",
			typeName:   "text",
			expression: "'it''s'::text",
			expected:   "it's",
			parseable:  true,
		},
		{
			name:       "numeric literal",
			typeName:   "numeric",
			expression: "0.00",
			expected:   decimal.RequireFromString("0.00"),
			parseable:  true,
		},
		{
			name:       "float literal",
			typeName:   "float8",
			expression: "'1.5'::double precision",
			expected:   1.5,
			parseable:  true,
		},
		{
			name:       "explicit null",
			typeName:   "text",
			expression: "NULL::text",
			expected:   nil,
			parseable:  true,
		},
		{
			name:       "string literal containing a cast marker",
			typeName:   "text",
			expression: "'a::b'::text",
			expected:   "a::b",
			parseable:  true,
		},
		{
			name:       "function call",
			typeName:   "timestamptz",
			expression: "now()",
			parseable:  false,
		},
		{
			name:       "current_date keyword",
			typeName:   "date",
			expression: "CURRENT_DATE",
			parseable:  false,
		},
		{
			name:       "current_timestamp keyword",
			typeName:   "timestamptz",
			expression: "CURRENT_TIMESTAMP",
			parseable:  false,
		},
		{
			name:       "current_user keyword",
			typeName:   "name",
			expression: "CURRENT_USER",
			parseable:  false,
		},
		{
			name:       "quoted keyword is a plain string",
			typeName:   "text",
			expression: "'CURRENT_DATE'::text",
			expected:   "CURRENT_DATE",
			parseable:  true,
		},
		{
			name:       "sequence call",
			typeName:   "int4",
			expression: "nextval('users_id_seq'::regclass)",
			parseable:  false,
		},
		{
			name:       "arithmetic expression",
			typeName:   "int4",
			expression: "(1 + 2)",
			parseable:  false,
		},
		{
			name:       "empty expression",
			typeName:   "text",
			expression: "",
			parseable:  false,
		},
		{
			name:       "malformed integer",
			typeName:   "int4",
			expression: "'abc'::int4",
			parseable:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := parseDefaultValue(tt.typeName, tt.expression)
			require.Equal(t, tt.parseable, ok)
			if !tt.parseable {
				return
			}
			if expected, isDecimal := tt.expected.(decimal.Decimal); isDecimal {
				actual, isDecimal := value.(decimal.Decimal)
				require.True(t, isDecimal)
				assert.True(t, expected.Equal(actual))
				return
			}
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestIsSerialDefault(t *testing.T) {
	assert.True(t, isSerialDefault("nextval('users_id_seq'::regclass)"))
	assert.False(t, isSerialDefault("'nextval'::text"))
	assert.False(t, isSerialDefault(""))
}
