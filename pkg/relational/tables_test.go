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

func testTable(t *testing.T, schema, name string) *Table {
	t.Helper()
	table, err := NewTableEditor(NewTableID(schema, name)).
		AddColumns(testColumn("id", "int8")).
		Create()
	require.NoError(t, err)
	return table
}

func TestTables_OverwriteAndLookup(t *testing.T) {
	tables := NewTables()
	users := testTable(t, "public", "users")

	assert.Nil(t, tables.Overwrite(users))
	assert.Same(t, users, tables.TableForID(NewTableID("public", "users")))
	assert.Equal(t, 1, tables.Len())

	replacement := testTable(t, "public", "users")
	assert.Same(t, users, tables.Overwrite(replacement))
	assert.Same(t, replacement, tables.TableForID(NewTableID("public", "users")))
	assert.Equal(t, 1, tables.Len())
}

func TestTables_RemoveTable(t *testing.T) {
	tables := NewTables()
	users := testTable(t, "public", "users")
	tables.Overwrite(users)

	assert.Same(t, users, tables.RemoveTable(users.ID()))
	assert.Nil(t, tables.TableForID(users.ID()))
	assert.Nil(t, tables.RemoveTable(users.ID()))
}

func TestTables_RenameTable(t *testing.T) {
	tables := NewTables()
	tables.Overwrite(testTable(t, "public", "users"))

	renamed, err := tables.RenameTable(
		NewTableID("public", "users"), NewTableID("public", "accounts"),
	)
	require.NoError(t, err)
	require.NotNil(t, renamed)

	assert.Nil(t, tables.TableForID(NewTableID("public", "users")))
	assert.Equal(t, "accounts", tables.TableForID(NewTableID("public", "accounts")).ID().Table)

	missing, err := tables.RenameTable(
		NewTableID("public", "ghost"), NewTableID("public", "spirit"),
	)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTables_IDsSorted(t *testing.T) {
	tables := NewTables()
	tables.Overwrite(testTable(t, "public", "zebra"))
	tables.Overwrite(testTable(t, "audit", "log"))
	tables.Overwrite(testTable(t, "public", "apple"))

	assert.Equal(t, []TableID{
		NewTableID("audit", "log"),
		NewTableID("public", "apple"),
		NewTableID("public", "zebra"),
	}, tables.IDs())

	var seen []string
	tables.ForEach(func(table *Table) {
		seen = append(seen, table.ID().String())
	})
	assert.Equal(t, []string{"audit.log", "public.apple", "public.zebra"}, seen)
}

func TestTableID_Render(t *testing.T) {
	assert.Equal(t, "public.users", NewTableID("public", "users").String())
	assert.Equal(t, `"public"."users"`, NewTableID("public", "users").Quoted())
	assert.Equal(t, "users", NewTableID("", "users").String())
	assert.Equal(t, `"we""ird"`, NewTableID("", `we"ird`).Quoted())
	assert.Equal(t, "db.dbo.users", TableID{Catalog: "db", Schema: "dbo", Table: "users"}.String())
}
