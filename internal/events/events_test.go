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

package events

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/EugeneAbramchuk/debezium/pkg/relational"
)

func usersTable(t *testing.T) *relational.Table {
	t.Helper()
	id := relational.NewColumnEditor().
		SetName("id").
		SetType("int8", "bigint").
		SetJDBCType(relational.TypeBigInt).
		SetOptional(false).
		Create()
	email := relational.NewColumnEditor().
		SetName("email").
		SetType("text").
		SetJDBCType(relational.TypeVarchar).
		SetOptional(true).
		Create()

	table, err := relational.NewTableEditor(relational.NewTableID("public", "users")).
		AddColumns(id, email).
		SetPrimaryKeyNames("id").
		Create()
	require.NoError(t, err)
	return table
}

func TestEmitter_Emit(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	emitter := NewEmitter(buf)

	table := usersTable(t)
	require.NoError(t, emitter.Emit(NewSchemaChangeEvent(KindCreate, "appdb", table)))
	require.NoError(t, emitter.Emit(NewSchemaChangeEvent(KindDrop, "appdb", table)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	first := lines[0]
	assert.Equal(t, "CREATE", gjson.Get(first, "kind").String())
	assert.Equal(t, "appdb", gjson.Get(first, "database").String())
	assert.Equal(t, "users", gjson.Get(first, "table.name").String())
	assert.Equal(t, "public", gjson.Get(first, "table.schema").String())
	assert.Equal(t, "id", gjson.Get(first, "table.columns.0.name").String())
	assert.Equal(t, int64(1), gjson.Get(first, "table.columns.0.position").Int())
	assert.Equal(t, "id", gjson.Get(first, "table.primary_key.0").String())

	_, err := uuid.Parse(gjson.Get(first, "id").String())
	require.NoError(t, err)

	second := lines[1]
	assert.Equal(t, "DROP", gjson.Get(second, "kind").String())
	assert.NotEqual(t, gjson.Get(first, "id").String(), gjson.Get(second, "id").String())
}
