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

package ddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EugeneAbramchuk/debezium/pkg/relational"
)

func ordersTable(t *testing.T) *relational.Table {
	t.Helper()
	id := relational.NewColumnEditor().
		SetName("id").
		SetType("int8", "bigint").
		SetOptional(false).
		SetAutoIncremented(true).
		SetDefaultValueExpression("nextval('orders_id_seq'::regclass)").
		Create()
	total := relational.NewColumnEditor().
		SetName("total").
		SetType("numeric", "numeric(10,2)").
		SetOptional(false).
		SetDefaultValue("0.00").
		SetDefaultValueExpression("0.00").
		Create()
	note := relational.NewColumnEditor().
		SetName("note").
		SetType("text").
		SetOptional(true).
		SetComment("free-form note").
		Create()
	totalCents := relational.NewColumnEditor().
		SetName("total_cents").
		SetType("int8", "bigint").
		SetOptional(true).
		SetGenerated(true).
		SetDefaultValueExpression("(total * 100)::bigint").
		Create()

	table, err := relational.NewTableEditor(relational.NewTableID("public", "orders")).
		AddColumns(id, total, note, totalCents).
		SetPrimaryKeyNames("id").
		SetComment("customer orders").
		Create()
	require.NoError(t, err)
	return table
}

func TestRenderCreateTable(t *testing.T) {
	sql, err := RenderCreateTable(ordersTable(t))
	require.NoError(t, err)

	expected := `CREATE TABLE "public"."orders" (
    "id" bigint DEFAULT nextval('orders_id_seq'::regclass) NOT NULL,
    "total" numeric(10,2) DEFAULT 0.00 NOT NULL,
    "note" text,
    "total_cents" bigint GENERATED ALWAYS AS ((total * 100)::bigint) STORED,
    PRIMARY KEY ("id")
);`
	assert.Equal(t, expected, sql)
}

func TestRenderCreateTable_NoColumns(t *testing.T) {
	table, err := relational.NewTableEditor(relational.NewTableID("public", "empty")).Create()
	require.NoError(t, err)

	_, err = RenderCreateTable(table)
	require.ErrorContains(t, err, "has no columns")
}

func TestRenderCreateTable_ColumnWithoutType(t *testing.T) {
	table, err := relational.NewTableEditor(relational.NewTableID("public", "broken")).
		AddColumns(relational.NewColumnEditor().SetName("mystery").Create()).
		Create()
	require.NoError(t, err)

	_, err = RenderCreateTable(table)
	require.ErrorContains(t, err, `column "mystery" has no type`)
}

func TestRenderComments(t *testing.T) {
	stmts := RenderComments(ordersTable(t))
	assert.Equal(t, []string{
		`COMMENT ON TABLE "public"."orders" IS 'customer orders';`,
		`COMMENT ON COLUMN "public"."orders"."note" IS 'free-form note';`,
	}, stmts)
}

func TestRenderComments_QuotesEscaped(t *testing.T) {
	table, err := relational.NewTableEditor(relational.NewTableID("public", "t")).
		AddColumns(relational.NewColumnEditor().SetName("c").SetType("text").Create()).
		SetComment("it's quoted").
		Create()
	require.NoError(t, err)

	stmts := RenderComments(table)
	require.Len(t, stmts, 1)
	assert.Equal(t, `COMMENT ON TABLE "public"."t" IS 'it''s quoted';`, stmts[0])
}
