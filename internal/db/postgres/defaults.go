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
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// parseDefaultValue tries to turn a pg_get_expr default expression into a
// typed value. Only plain literals are parsed; anything with runtime
// semantics (now(), nextval(), expressions) is reported as not parseable and
// stays expression-only on the column. The second result tells whether the
// first one is usable — a (nil, true) result is a literal NULL default.
func parseDefaultValue(typeName, expression string) (any, bool) {
	expr := strings.TrimSpace(stripTypeCast(expression))
	if expr == "" {
		return nil, false
	}
	if strings.EqualFold(expr, "NULL") {
		return nil, true
	}
	if isFunctionCall(expr) || isKeywordDefault(expr) {
		return nil, false
	}

	if literal, ok := unquoteLiteral(expr); ok {
		expr = literal
	} else if strings.ContainsAny(expr, " ()") {
		// Whatever remains with operators or calls inside is an expression,
		// not a literal.
		return nil, false
	}

	switch typeName {
	case "bool":
		v, err := cast.ToBoolE(expr)
		return v, logParseOutcome(typeName, expression, err)
	case "int2", "int4", "int8":
		v, err := cast.ToInt64E(expr)
		return v, logParseOutcome(typeName, expression, err)
	case "float4", "float8":
		v, err := cast.ToFloat64E(expr)
		return v, logParseOutcome(typeName, expression, err)
	case "numeric", "decimal", "money":
		v, err := decimal.NewFromString(expr)
		return v, logParseOutcome(typeName, expression, err)
	default:
		return expr, true
	}
}

func logParseOutcome(typeName, expression string, err error) bool {
	if err != nil {
		log.Debug().
			Err(err).
			Str("TypeName", typeName).
			Str("Expression", expression).
			Msg("default expression is not a plain literal")
		return false
	}
	return true
}

// Niladic keyword defaults (CURRENT_DATE, session_user, ...) evaluate per
// row just like function calls, but pg_get_expr renders them without
// parentheses.
var keywordDefaults = map[string]struct{}{
	"current_date":      {},
	"current_time":      {},
	"current_timestamp": {},
	"localtime":         {},
	"localtimestamp":    {},
	"current_user":      {},
	"current_role":      {},
	"session_user":      {},
	"user":              {},
	"current_catalog":   {},
	"current_schema":    {},
}

func isKeywordDefault(expr string) bool {
	_, ok := keywordDefaults[strings.ToLower(expr)]
	return ok
}

// stripTypeCast removes a trailing ::type cast that pg_get_expr appends to
// most literals ('foo'::text, '0'::numeric). A :: inside a leading quoted
// literal is part of the value, not a cast.
func stripTypeCast(expression string) string {
	start := 0
	if strings.HasPrefix(expression, "'") {
		end := closingQuote(expression)
		if end == -1 {
			return expression
		}
		start = end + 1
	}
	if idx := strings.Index(expression[start:], "::"); idx != -1 {
		return expression[:start+idx]
	}
	return expression
}

// closingQuote returns the index of the quote terminating a leading string
// literal, skipping doubled quotes, or -1 if the literal never closes.
func closingQuote(expression string) int {
	for i := 1; i < len(expression); i++ {
		if expression[i] != '\'' {
			continue
		}
		if i+1 < len(expression) && expression[i+1] == '\'' {
			i++
			continue
		}
		return i
	}
	return -1
}

func unquoteLiteral(expr string) (string, bool) {
	if len(expr) < 2 || expr[0] != '\'' || expr[len(expr)-1] != '\'' {
		return "", false
	}
	return strings.ReplaceAll(expr[1:len(expr)-1], "''", "'"), true
}

func isFunctionCall(expr string) bool {
	idx := strings.IndexByte(expr, '(')
	if idx <= 0 {
		return false
	}
	name := expr[:idx]
	return !strings.ContainsAny(name, " '+-*/")
}

// isSerialDefault reports whether the default expression is a sequence call,
// which is how serial/bigserial columns surface in pg_attrdef.
func isSerialDefault(expression string) bool {
	return strings.HasPrefix(strings.TrimSpace(expression), "nextval(")
}
