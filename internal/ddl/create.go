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

// Package ddl re-synthesizes CREATE TABLE statements from relational
// snapshots. The output is a deterministic baseline, not a byte-exact
// reproduction of the original DDL: identity clauses degrade to their
// sequence defaults and dialect-specific storage options are not emitted.
package ddl

import (
	"fmt"
	"strings"

	"github.com/EugeneAbramchuk/debezium/pkg/relational"
)

// RenderCreateTable renders one CREATE TABLE statement from a table
// snapshot. Column type text comes from the snapshot's type expression,
// falling back to the bare type name when no expression was captured.
func RenderCreateTable(table *relational.Table) (string, error) {
	columns := table.Columns()
	if len(columns) == 0 {
		return "", fmt.Errorf("table %s has no columns", table.ID())
	}

	defs := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		def, err := renderColumn(table, col)
		if err != nil {
			return "", err
		}
		defs = append(defs, def)
	}

	if pk := table.PrimaryKeyColumnNames(); len(pk) > 0 {
		quoted := make([]string, len(pk))
		for i, name := range pk {
			quoted[i] = quoteIdent(name)
		}
		defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(quoted, ", ")))
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(table.ID().Quoted())
	sb.WriteString(" (\n    ")
	sb.WriteString(strings.Join(defs, ",\n    "))
	sb.WriteString("\n);")
	return sb.String(), nil
}

// RenderComments renders COMMENT ON statements for the table and any
// commented columns, in position order.
func RenderComments(table *relational.Table) []string {
	var stmts []string
	if table.Comment() != "" {
		stmts = append(stmts, fmt.Sprintf(
			"COMMENT ON TABLE %s IS %s;", table.ID().Quoted(), quoteLiteral(table.Comment()),
		))
	}
	for _, col := range table.Columns() {
		if col.Comment() == "" {
			continue
		}
		stmts = append(stmts, fmt.Sprintf(
			"COMMENT ON COLUMN %s.%s IS %s;",
			table.ID().Quoted(), quoteIdent(col.Name()), quoteLiteral(col.Comment()),
		))
	}
	return stmts
}

func renderColumn(table *relational.Table, col *relational.Column) (string, error) {
	if col.Name() == "" {
		return "", fmt.Errorf("table %s: column %d has no name", table.ID(), col.Position())
	}
	typeText := col.TypeExpression()
	if typeText == "" {
		typeText = col.TypeName()
	}
	if typeText == "" {
		return "", fmt.Errorf("table %s: column %q has no type", table.ID(), col.Name())
	}

	var sb strings.Builder
	sb.WriteString(quoteIdent(col.Name()))
	sb.WriteByte(' ')
	sb.WriteString(typeText)

	switch {
	case col.IsGenerated() && col.DefaultValueExpression() != "":
		sb.WriteString(" GENERATED ALWAYS AS (")
		sb.WriteString(col.DefaultValueExpression())
		sb.WriteString(") STORED")
	case col.DefaultValueExpression() != "":
		sb.WriteString(" DEFAULT ")
		sb.WriteString(col.DefaultValueExpression())
	}

	if !col.IsOptional() {
		sb.WriteString(" NOT NULL")
	}
	return sb.String(), nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
