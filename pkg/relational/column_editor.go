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

import "slices"

// ColumnEditor accumulates column metadata field-by-field, in any order and
// any multiplicity (last write wins), and freezes the accumulated state into
// an immutable Column via Create. Setters are chainable and never fail; no
// cross-field validation happens here. Inconsistent input (non-positive
// position, enum values on a non-enum type) is stored as-is and left to the
// catalog scanner or the table editor, which have the context to judge it.
//
// A ColumnEditor is not safe for concurrent use. The expected pattern is one
// editor per column, confined to the goroutine scanning that column.
type ColumnEditor struct {
	col Column
}

// NewColumnEditor returns an empty editor: all scalar fields at their zero
// values, no default value, no scale, no enum values.
func NewColumnEditor() *ColumnEditor {
	return &ColumnEditor{}
}

// Name returns the currently accumulated column name.
func (e *ColumnEditor) Name() string { return e.col.name }

// Position returns the currently accumulated 1-based ordinal.
func (e *ColumnEditor) Position() int { return e.col.position }

// JDBCType returns the currently accumulated standardized type code.
func (e *ColumnEditor) JDBCType() int { return e.col.jdbcType }

// NativeType returns the currently accumulated database-specific type code.
func (e *ColumnEditor) NativeType() int { return e.col.nativeType }

// TypeName returns the currently accumulated type keyword.
func (e *ColumnEditor) TypeName() string { return e.col.typeName }

// TypeExpression returns the currently accumulated full type text.
func (e *ColumnEditor) TypeExpression() string { return e.col.typeExpression }

// CharsetName returns the currently accumulated column charset.
func (e *ColumnEditor) CharsetName() string { return e.col.charsetName }

// CharsetNameOfTable returns the currently accumulated table-level fallback
// charset.
func (e *ColumnEditor) CharsetNameOfTable() string { return e.col.tableCharsetName }

// Length returns the currently accumulated length/precision.
func (e *ColumnEditor) Length() int { return e.col.length }

// Scale returns the currently accumulated scale and whether one is set.
func (e *ColumnEditor) Scale() (int, bool) { return e.col.Scale() }

// IsOptional returns the currently accumulated nullability flag.
func (e *ColumnEditor) IsOptional() bool { return e.col.optional }

// IsAutoIncremented returns the currently accumulated auto-increment flag.
func (e *ColumnEditor) IsAutoIncremented() bool { return e.col.autoIncremented }

// IsGenerated returns the currently accumulated generated flag.
func (e *ColumnEditor) IsGenerated() bool { return e.col.generated }

// DefaultValueExpression returns the currently accumulated raw default text.
func (e *ColumnEditor) DefaultValueExpression() string { return e.col.defaultValueExpr }

// DefaultValue returns the currently accumulated parsed default value.
func (e *ColumnEditor) DefaultValue() any { return e.col.defaultValue }

// HasDefaultValue reports whether SetDefaultValue has been called since the
// editor was created or last reset via UnsetDefaultValue.
func (e *ColumnEditor) HasDefaultValue() bool { return e.col.hasDefaultValue }

// EnumValues returns a copy of the currently accumulated enumeration domain.
func (e *ColumnEditor) EnumValues() []string { return slices.Clone(e.col.enumValues) }

// Comment returns the currently accumulated column comment.
func (e *ColumnEditor) Comment() string { return e.col.comment }

// SetName sets the column name.
func (e *ColumnEditor) SetName(name string) *ColumnEditor {
	e.col.name = name
	return e
}

// SetType sets the database-specific type keyword. When the optional second
// argument is given, the full type expression is set atomically with it;
// otherwise the previously set expression is left untouched. The expression
// is never inferred from the type name.
func (e *ColumnEditor) SetType(typeName string, typeExpression ...string) *ColumnEditor {
	e.col.typeName = typeName
	if len(typeExpression) > 0 {
		e.col.typeExpression = typeExpression[0]
	}
	return e
}

// SetTypeExpression sets the full declared type text only.
func (e *ColumnEditor) SetTypeExpression(typeExpression string) *ColumnEditor {
	e.col.typeExpression = typeExpression
	return e
}

// SetJDBCType sets the standardized cross-database type code. It is not
// cross-validated against the native type.
func (e *ColumnEditor) SetJDBCType(jdbcType int) *ColumnEditor {
	e.col.jdbcType = jdbcType
	return e
}

// SetNativeType sets the database-specific type code.
func (e *ColumnEditor) SetNativeType(nativeType int) *ColumnEditor {
	e.col.nativeType = nativeType
	return e
}

// SetCharsetName sets the column-level character set.
func (e *ColumnEditor) SetCharsetName(charsetName string) *ColumnEditor {
	e.col.charsetName = charsetName
	return e
}

// SetCharsetNameOfTable sets the fallback character set inherited from the
// owning table. No precedence between the two charsets is enforced here.
func (e *ColumnEditor) SetCharsetNameOfTable(charsetName string) *ColumnEditor {
	e.col.tableCharsetName = charsetName
	return e
}

// SetLength sets the maximum length, or the precision for numeric types.
func (e *ColumnEditor) SetLength(length int) *ColumnEditor {
	e.col.length = length
	return e
}

// SetScale sets the numeric scale. A nil argument clears the scale back to
// "not set"; any concrete value, including 0 and negatives, sets it.
func (e *ColumnEditor) SetScale(scale *int) *ColumnEditor {
	if scale == nil {
		e.col.scale = 0
		e.col.scaleSet = false
		return e
	}
	e.col.scale = *scale
	e.col.scaleSet = true
	return e
}

// SetOptional sets whether the column accepts NULL values.
func (e *ColumnEditor) SetOptional(optional bool) *ColumnEditor {
	e.col.optional = optional
	return e
}

// SetAutoIncremented sets whether values are auto-incremented.
func (e *ColumnEditor) SetAutoIncremented(autoIncremented bool) *ColumnEditor {
	e.col.autoIncremented = autoIncremented
	return e
}

// SetGenerated sets whether values are generated by the database.
func (e *ColumnEditor) SetGenerated(generated bool) *ColumnEditor {
	e.col.generated = generated
	return e
}

// SetPosition sets the 1-based ordinal of the column within its table. The
// value is stored as given; ordering validity is the table editor's concern.
func (e *ColumnEditor) SetPosition(position int) *ColumnEditor {
	e.col.position = position
	return e
}

// SetComment sets the column comment.
func (e *ColumnEditor) SetComment(comment string) *ColumnEditor {
	e.col.comment = comment
	return e
}

// SetDefaultValue sets the parsed default value and marks the column as
// having one. nil is a legitimate explicit default, distinct from never
// having called this method. This is the only way HasDefaultValue becomes
// true.
func (e *ColumnEditor) SetDefaultValue(defaultValue any) *ColumnEditor {
	e.col.defaultValue = defaultValue
	e.col.hasDefaultValue = true
	return e
}

// SetDefaultValueExpression sets the raw default-value DDL text. It does not
// touch the parsed default value or HasDefaultValue; the two are tracked
// separately because catalogs report them through different channels.
func (e *ColumnEditor) SetDefaultValueExpression(expression string) *ColumnEditor {
	e.col.defaultValueExpr = expression
	return e
}

// UnsetDefaultValue reverts the editor to the state where SetDefaultValue
// was never called. Idempotent; the default-value expression is untouched.
func (e *ColumnEditor) UnsetDefaultValue() *ColumnEditor {
	e.col.defaultValue = nil
	e.col.hasDefaultValue = false
	return e
}

// UnsetDefaultValueExpression clears the raw default-value text without
// touching the parsed default value or HasDefaultValue.
func (e *ColumnEditor) UnsetDefaultValueExpression() *ColumnEditor {
	e.col.defaultValueExpr = ""
	return e
}

// SetEnumValues replaces the enumeration domain wholesale. An empty or nil
// sequence means "not an enum". The input is copied, so later mutation of
// the caller's slice does not leak into the editor.
func (e *ColumnEditor) SetEnumValues(enumValues []string) *ColumnEditor {
	e.col.enumValues = slices.Clone(enumValues)
	return e
}

// Create freezes the current state into a new Column. The editor keeps its
// state and stays mutable; each call yields an independent snapshot that
// never observes later mutation.
func (e *ColumnEditor) Create() *Column {
	snapshot := e.col
	snapshot.enumValues = slices.Clone(e.col.enumValues)
	return &snapshot
}
