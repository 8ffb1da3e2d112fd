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
	"encoding/json"
	"slices"
	"strings"
)

// Table is an immutable snapshot of one table's definition: its identity, an
// ordered list of column snapshots and the primary-key column names. Like
// Column it may be shared and read concurrently.
type Table struct {
	id             TableID
	columns        []*Column
	columnsByName  map[string]*Column
	pkColumnNames  []string
	defaultCharset string
	comment        string
}

// ID returns the table identity.
func (t *Table) ID() TableID { return t.id }

// Columns returns the column snapshots ordered by position. The slice is a
// copy; the snapshots themselves are immutable and shared.
func (t *Table) Columns() []*Column { return slices.Clone(t.columns) }

// ColumnWithName looks a column up by name, case-insensitively. Returns nil
// if the table has no such column.
func (t *Table) ColumnWithName(name string) *Column {
	return t.columnsByName[strings.ToLower(name)]
}

// ColumnNames returns the column names ordered by position.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name()
	}
	return names
}

// PrimaryKeyColumnNames returns a copy of the primary-key column names in
// key order.
func (t *Table) PrimaryKeyColumnNames() []string { return slices.Clone(t.pkColumnNames) }

// IsPrimaryKeyColumn reports whether the named column is part of the
// primary key.
func (t *Table) IsPrimaryKeyColumn(name string) bool {
	return slices.ContainsFunc(t.pkColumnNames, func(n string) bool {
		return strings.EqualFold(n, name)
	})
}

// DefaultCharsetName returns the table-level default character set that
// columns without an explicit charset inherit.
func (t *Table) DefaultCharsetName() string { return t.defaultCharset }

// Comment returns the table comment.
func (t *Table) Comment() string { return t.comment }

// Edit returns a new editor pre-loaded with this snapshot's state.
func (t *Table) Edit() *TableEditor {
	return &TableEditor{
		id:             t.id,
		columns:        slices.Clone(t.columns),
		pkNames:        slices.Clone(t.pkColumnNames),
		defaultCharset: t.defaultCharset,
		comment:        t.comment,
	}
}

type tableJSON struct {
	Catalog        string    `json:"catalog,omitempty"`
	Schema         string    `json:"schema,omitempty"`
	Name           string    `json:"name"`
	Columns        []*Column `json:"columns"`
	PrimaryKey     []string  `json:"primary_key,omitempty"`
	DefaultCharset string    `json:"default_charset,omitempty"`
	Comment        string    `json:"comment,omitempty"`
}

// MarshalJSON serializes the snapshot for event payloads and CLI output.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableJSON{
		Catalog:        t.id.Catalog,
		Schema:         t.id.Schema,
		Name:           t.id.Table,
		Columns:        t.columns,
		PrimaryKey:     t.pkColumnNames,
		DefaultCharset: t.defaultCharset,
		Comment:        t.comment,
	})
}
