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

package relational

import "strconv"

// Standardized cross-database type codes carried in Column.JDBCType. The
// numeric values match java.sql.Types so that metadata sourced from JDBC
// catalogs round-trips unchanged.
const (
	TypeBit                   = -7
	TypeTinyInt               = -6
	TypeSmallInt              = 5
	TypeInteger               = 4
	TypeBigInt                = -5
	TypeFloat                 = 6
	TypeReal                  = 7
	TypeDouble                = 8
	TypeNumeric               = 2
	TypeDecimal               = 3
	TypeChar                  = 1
	TypeVarchar               = 12
	TypeLongVarchar           = -1
	TypeDate                  = 91
	TypeTime                  = 92
	TypeTimestamp             = 93
	TypeBinary                = -2
	TypeVarBinary             = -3
	TypeLongVarBinary         = -4
	TypeNull                  = 0
	TypeOther                 = 1111
	TypeDistinct              = 2001
	TypeStruct                = 2002
	TypeArray                 = 2003
	TypeBlob                  = 2004
	TypeClob                  = 2005
	TypeBoolean               = 16
	TypeNChar                 = -15
	TypeNVarchar              = -9
	TypeLongNVarchar          = -16
	TypeNClob                 = 2011
	TypeXML                   = 2009
	TypeTimeWithTimezone      = 2013
	TypeTimestampWithTimezone = 2014
)

var typeNames = map[int]string{
	TypeBit:                   "BIT",
	TypeTinyInt:               "TINYINT",
	TypeSmallInt:              "SMALLINT",
	TypeInteger:               "INTEGER",
	TypeBigInt:                "BIGINT",
	TypeFloat:                 "FLOAT",
	TypeReal:                  "REAL",
	TypeDouble:                "DOUBLE",
	TypeNumeric:               "NUMERIC",
	TypeDecimal:               "DECIMAL",
	TypeChar:                  "CHAR",
	TypeVarchar:               "VARCHAR",
	TypeLongVarchar:           "LONGVARCHAR",
	TypeDate:                  "DATE",
	TypeTime:                  "TIME",
	TypeTimestamp:             "TIMESTAMP",
	TypeBinary:                "BINARY",
	TypeVarBinary:             "VARBINARY",
	TypeLongVarBinary:         "LONGVARBINARY",
	TypeNull:                  "NULL",
	TypeOther:                 "OTHER",
	TypeDistinct:              "DISTINCT",
	TypeStruct:                "STRUCT",
	TypeArray:                 "ARRAY",
	TypeBlob:                  "BLOB",
	TypeClob:                  "CLOB",
	TypeBoolean:               "BOOLEAN",
	TypeNChar:                 "NCHAR",
	TypeNVarchar:              "NVARCHAR",
	TypeLongNVarchar:          "LONGNVARCHAR",
	TypeNClob:                 "NCLOB",
	TypeXML:                   "XML",
	TypeTimeWithTimezone:      "TIME_WITH_TIMEZONE",
	TypeTimestampWithTimezone: "TIMESTAMP_WITH_TIMEZONE",
}

// TypeCodeName returns a human-readable name for a standardized type code,
// for logging and CLI output. Unknown codes are rendered numerically.
func TypeCodeName(code int) string {
	if name, ok := typeNames[code]; ok {
		return name
	}
	return strconv.Itoa(code)
}
