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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumn(name, typeName string) *Column {
	return NewColumnEditor().SetName(name).SetType(typeName).Create()
}

func TestTableEditor_Create(t *testing.T) {
	table, err := NewTableEditor(NewTableID("public", "users")).
		AddColumns(
			testColumn("id", "int8"),
			testColumn("email", "text"),
			testColumn("created_at", "timestamptz"),
		).
		SetPrimaryKeyNames("id").
		SetComment("application users").
		Create()
	require.NoError(t, err)

	assert.Equal(t, NewTableID("public", "users"), table.ID())
	assert.Equal(t, []string{"id", "email", "created_at"}, table.ColumnNames())
	assert.Equal(t, []string{"id"}, table.PrimaryKeyColumnNames())
	assert.True(t, table.IsPrimaryKeyColumn("ID"))
	assert.False(t, table.IsPrimaryKeyColumn("email"))
	assert.Equal(t, "application users", table.Comment())

	// Positions are renumbered in insertion order.
	for i, col := range table.Columns() {
		assert.Equal(t, i+1, col.Position())
	}

	require.NotNil(t, table.ColumnWithName("EMAIL"))
	assert.Nil(t, table.ColumnWithName("missing"))
}

func TestTableEditor_DuplicateColumnName(t *testing.T) {
	_, err := NewTableEditor(NewTableID("public", "users")).
		SetColumns(testColumn("id", "int8"), testColumn("ID", "int4")).
		Create()
	require.ErrorContains(t, err, `duplicate column name "ID"`)
}

func TestTableEditor_UnknownPrimaryKeyColumn(t *testing.T) {
	_, err := NewTableEditor(NewTableID("public", "users")).
		AddColumns(testColumn("id", "int8")).
		SetPrimaryKeyNames("uid").
		Create()
	require.ErrorContains(t, err, `primary key references unknown column "uid"`)
}

func TestTableEditor_EmptyTableName(t *testing.T) {
	_, err := NewTableEditor(TableID{Schema: "public"}).Create()
	require.ErrorContains(t, err, "empty table name")
}

func TestTableEditor_AddColumnsReplacesByName(t *testing.T) {
	e := NewTableEditor(NewTableID("public", "users")).
		AddColumns(testColumn("id", "int4"), testColumn("email", "text"))

	// Re-discovering a column overwrites the previous definition in place.
	e.AddColumns(testColumn("ID", "int8"))

	table, err := e.Create()
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "email"}, table.ColumnNames())
	assert.Equal(t, "int8", table.ColumnWithName("id").TypeName())
}

func TestTableEditor_RemoveColumn(t *testing.T) {
	table, err := NewTableEditor(NewTableID("public", "users")).
		AddColumns(testColumn("id", "int8"), testColumn("email", "text")).
		SetPrimaryKeyNames("id").
		RemoveColumn("id").
		Create()
	require.NoError(t, err)

	assert.Equal(t, []string{"email"}, table.ColumnNames())
	assert.Empty(t, table.PrimaryKeyColumnNames())
	assert.Equal(t, 1, table.ColumnWithName("email").Position())
}

func TestTable_EditIsolatedFromSnapshot(t *testing.T) {
	original, err := NewTableEditor(NewTableID("public", "users")).
		AddColumns(testColumn("id", "int8")).
		Create()
	require.NoError(t, err)

	renamed, err := original.Edit().
		SetID(NewTableID("public", "accounts")).
		AddColumns(testColumn("name", "text")).
		Create()
	require.NoError(t, err)

	assert.Equal(t, "users", original.ID().Table)
	assert.Len(t, original.Columns(), 1)
	assert.Equal(t, "accounts", renamed.ID().Table)
	assert.Len(t, renamed.Columns(), 2)
}
