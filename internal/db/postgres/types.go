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

	"github.com/EugeneAbramchuk/debezium/pkg/relational"
)

// typmod carries 4 bytes of header before the payload (VARHDRSZ)
const typeModifierHeader = 4

var jdbcTypeByName = map[string]int{
	"bool":        relational.TypeBoolean,
	"int2":        relational.TypeSmallInt,
	"int4":        relational.TypeInteger,
	"int8":        relational.TypeBigInt,
	"float4":      relational.TypeReal,
	"float8":      relational.TypeDouble,
	"numeric":     relational.TypeNumeric,
	"money":       relational.TypeDouble,
	"bpchar":      relational.TypeChar,
	"varchar":     relational.TypeVarchar,
	"text":        relational.TypeLongVarchar,
	"name":        relational.TypeVarchar,
	"bytea":       relational.TypeBinary,
	"bit":         relational.TypeBit,
	"varbit":      relational.TypeBit,
	"date":        relational.TypeDate,
	"time":        relational.TypeTime,
	"timetz":      relational.TypeTimeWithTimezone,
	"timestamp":   relational.TypeTimestamp,
	"timestamptz": relational.TypeTimestampWithTimezone,
	"xml":         relational.TypeXML,
}

// JDBCTypeFor maps a pg_type name to the standardized cross-database type
// code. Array types ("_int4") map to ARRAY, enum types to OTHER like any
// other type without a standardized counterpart.
func JDBCTypeFor(typeName string) int {
	if strings.HasPrefix(typeName, "_") {
		return relational.TypeArray
	}
	if code, ok := jdbcTypeByName[typeName]; ok {
		return code
	}
	return relational.TypeOther
}

// decodeTypeModifier unpacks atttypmod into length/precision and scale. The
// encoding is type-specific; -1 means the type carries no modifier. The
// returned scale is nil when the type has no scale notion or none was
// declared.
func decodeTypeModifier(typeName string, typeModifier int) (length int, scale *int) {
	if typeModifier == -1 {
		return 0, nil
	}
	switch typeName {
	case "numeric", "decimal":
		packed := typeModifier - typeModifierHeader
		precision := (packed >> 16) & 0xFFFF
		s := packed & 0xFFFF
		return precision, &s
	case "bpchar", "varchar":
		return typeModifier - typeModifierHeader, nil
	case "bit", "varbit":
		return typeModifier, nil
	case "time", "timetz", "timestamp", "timestamptz":
		// The modifier is the fractional-seconds precision.
		return typeModifier, nil
	case "interval":
		// The high bits carry the interval range mask; only the low 16 bits
		// are the fractional-seconds precision, 0xFFFF meaning unspecified.
		if precision := typeModifier & 0xFFFF; precision != 0xFFFF {
			return precision, nil
		}
		return 0, nil
	default:
		return typeModifier, nil
	}
}
