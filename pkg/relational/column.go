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

// Package relational models relational table metadata as it is discovered
// from a database catalog or a parsed DDL statement. The central pair is
// ColumnEditor, a mutable accumulator fed field-by-field by a catalog
// scanner, and Column, the immutable snapshot it produces. Snapshots are
// the canonical column representation consumed by schema-change event
// emission, type conversion and DDL re-synthesis.
package relational

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Column is an immutable snapshot of a single column's metadata. A Column
// shares no mutable storage with the editor that produced it and may be
// read concurrently without synchronization.
type Column struct {
	name             string
	position         int
	jdbcType         int
	nativeType       int
	typeName         string
	typeExpression   string
	charsetName      string
	tableCharsetName string
	length           int
	scale            int
	scaleSet         bool
	optional         bool
	autoIncremented  bool
	generated        bool
	defaultValueExpr string
	defaultValue     any
	hasDefaultValue  bool
	enumValues       []string
	comment          string
}

// Name returns the column name; empty if never set.
func (c *Column) Name() string { return c.name }

// Position returns the 1-based ordinal of the column within its table.
func (c *Column) Position() int { return c.position }

// JDBCType returns the standardized cross-database type code (see types.go).
func (c *Column) JDBCType() int { return c.jdbcType }

// NativeType returns the database-specific type code. For PostgreSQL this is
// the pg_type OID; other dialects store their own identifiers. It is
// independent of JDBCType.
func (c *Column) NativeType() int { return c.nativeType }

// TypeName returns the database-specific type keyword.
func (c *Column) TypeName() string { return c.typeName }

// TypeExpression returns the complete declared type text, including
// dimensions, length, precision and character set clauses.
func (c *Column) TypeExpression() string { return c.typeExpression }

// CharsetName returns the column-level character set override; empty if the
// type does not use character sets or none was declared.
func (c *Column) CharsetName() string { return c.charsetName }

// CharsetNameOfTable returns the character set inherited from the owning
// table. It never overrides an explicit CharsetName; both are retained so
// consumers can apply their own precedence.
func (c *Column) CharsetNameOfTable() string { return c.tableCharsetName }

// Length returns the maximum length of the column's values, or the precision
// for numeric types.
func (c *Column) Length() int { return c.length }

// Scale returns the numeric scale and whether one was set. A scale of 0 is a
// legitimate set value, distinct from "not set".
func (c *Column) Scale() (int, bool) {
	if !c.scaleSet {
		return 0, false
	}
	return c.scale, true
}

// IsOptional reports whether the column accepts NULL values.
func (c *Column) IsOptional() bool { return c.optional }

// IsAutoIncremented reports whether values are auto-incremented by the
// database.
func (c *Column) IsAutoIncremented() bool { return c.autoIncremented }

// IsGenerated reports whether values are generated by the database. This is
// tracked independently of IsAutoIncremented.
func (c *Column) IsGenerated() bool { return c.generated }

// DefaultValueExpression returns the raw default-value DDL text; empty if
// none was captured.
func (c *Column) DefaultValueExpression() string { return c.defaultValueExpr }

// DefaultValue returns the parsed default value. A nil result is ambiguous
// on its own: consult HasDefaultValue to distinguish "default explicitly
// NULL" from "no default".
func (c *Column) DefaultValue() any { return c.defaultValue }

// HasDefaultValue reports whether a default value was explicitly provided,
// even when that default is nil.
func (c *Column) HasDefaultValue() bool { return c.hasDefaultValue }

// EnumValues returns the enumeration domain in declaration order, or an
// empty sequence for non-enum columns. The returned slice is a copy and
// cannot be used to mutate the snapshot.
func (c *Column) EnumValues() []string { return slices.Clone(c.enumValues) }

// Comment returns the column comment; empty if none.
func (c *Column) Comment() string { return c.comment }

// Edit returns a new editor pre-loaded with this snapshot's state. The
// snapshot itself is unaffected by anything done with the editor.
func (c *Column) Edit() *ColumnEditor {
	e := NewColumnEditor()
	e.col = *c
	e.col.enumValues = slices.Clone(c.enumValues)
	return e
}

// Equal compares the full attribute set, including position: two otherwise
// identical columns at different ordinals are distinct.
func (c *Column) Equal(other *Column) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.name == other.name &&
		c.position == other.position &&
		c.jdbcType == other.jdbcType &&
		c.nativeType == other.nativeType &&
		c.typeName == other.typeName &&
		c.typeExpression == other.typeExpression &&
		c.charsetName == other.charsetName &&
		c.tableCharsetName == other.tableCharsetName &&
		c.length == other.length &&
		c.scale == other.scale &&
		c.scaleSet == other.scaleSet &&
		c.optional == other.optional &&
		c.autoIncremented == other.autoIncremented &&
		c.generated == other.generated &&
		c.defaultValueExpr == other.defaultValueExpr &&
		reflect.DeepEqual(c.defaultValue, other.defaultValue) &&
		c.hasDefaultValue == other.hasDefaultValue &&
		slices.Equal(c.enumValues, other.enumValues) &&
		c.comment == other.comment
}

// String renders the column the way it would appear in a column list of a
// CREATE TABLE statement.
func (c *Column) String() string {
	var sb strings.Builder
	sb.WriteString(c.name)
	sb.WriteByte(' ')
	if c.typeExpression != "" {
		sb.WriteString(c.typeExpression)
	} else {
		sb.WriteString(c.typeName)
	}
	if c.charsetName != "" {
		sb.WriteString(" CHARACTER SET ")
		sb.WriteString(c.charsetName)
	}
	if !c.optional {
		sb.WriteString(" NOT NULL")
	}
	if c.hasDefaultValue && c.defaultValueExpr != "" {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(c.defaultValueExpr)
	}
	if c.autoIncremented {
		sb.WriteString(" AUTO_INCREMENTED")
	}
	if c.generated {
		sb.WriteString(" GENERATED")
	}
	return sb.String()
}

type columnJSON struct {
	Name                   string   `json:"name"`
	Position               int      `json:"position"`
	JDBCType               int      `json:"jdbc_type"`
	NativeType             int      `json:"native_type"`
	TypeName               string   `json:"type_name"`
	TypeExpression         string   `json:"type_expression,omitempty"`
	CharsetName            string   `json:"charset_name,omitempty"`
	CharsetNameOfTable     string   `json:"charset_name_of_table,omitempty"`
	Length                 int      `json:"length"`
	Scale                  *int     `json:"scale,omitempty"`
	Optional               bool     `json:"optional"`
	AutoIncremented        bool     `json:"auto_incremented"`
	Generated              bool     `json:"generated"`
	DefaultValueExpression string   `json:"default_value_expression,omitempty"`
	DefaultValue           any      `json:"default_value,omitempty"`
	HasDefaultValue        bool     `json:"has_default_value"`
	EnumValues             []string `json:"enum_values,omitempty"`
	Comment                string   `json:"comment,omitempty"`
}

// MarshalJSON serializes the snapshot for schema-change event payloads and
// CLI output. The scale is omitted entirely when unset.
func (c *Column) MarshalJSON() ([]byte, error) {
	out := columnJSON{
		Name:                   c.name,
		Position:               c.position,
		JDBCType:               c.jdbcType,
		NativeType:             c.nativeType,
		TypeName:               c.typeName,
		TypeExpression:         c.typeExpression,
		CharsetName:            c.charsetName,
		CharsetNameOfTable:     c.tableCharsetName,
		Length:                 c.length,
		Optional:               c.optional,
		AutoIncremented:        c.autoIncremented,
		Generated:              c.generated,
		DefaultValueExpression: c.defaultValueExpr,
		DefaultValue:           c.defaultValue,
		HasDefaultValue:        c.hasDefaultValue,
		EnumValues:             c.enumValues,
		Comment:                c.comment,
	}
	if c.scaleSet {
		scale := c.scale
		out.Scale = &scale
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal column %q: %w", c.name, err)
	}
	return b, nil
}
