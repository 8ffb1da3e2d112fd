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
	"fmt"
	"slices"
	"strings"
)

// TableEditor aggregates column snapshots into a table definition. Unlike
// ColumnEditor it does validate on Create: column names must be unique
// (case-insensitively) and every primary-key name must resolve to a column.
// Column positions are renumbered 1..n in insertion order at Create time, so
// whatever positions the individual columns carried before are normalized
// within the table.
//
// Not safe for concurrent use.
type TableEditor struct {
	id             TableID
	columns        []*Column
	pkNames        []string
	defaultCharset string
	comment        string
}

// NewTableEditor returns an empty editor for the given table identity.
func NewTableEditor(id TableID) *TableEditor {
	return &TableEditor{id: id}
}

// ID returns the table identity being edited.
func (e *TableEditor) ID() TableID { return e.id }

// SetID changes the table identity, e.g. when processing a RENAME.
func (e *TableEditor) SetID(id TableID) *TableEditor {
	e.id = id
	return e
}

// Columns returns the accumulated columns in insertion order.
func (e *TableEditor) Columns() []*Column { return slices.Clone(e.columns) }

// ColumnWithName looks an accumulated column up by name, case-insensitively.
func (e *TableEditor) ColumnWithName(name string) *Column {
	idx := e.indexOf(name)
	if idx == -1 {
		return nil
	}
	return e.columns[idx]
}

// AddColumns appends column snapshots. A column whose name matches an
// already accumulated one (case-insensitively) replaces it in place instead
// of being appended, so re-scanning a column is an overwrite, not a
// duplicate.
func (e *TableEditor) AddColumns(columns ...*Column) *TableEditor {
	for _, col := range columns {
		if idx := e.indexOf(col.Name()); idx != -1 {
			e.columns[idx] = col
			continue
		}
		e.columns = append(e.columns, col)
	}
	return e
}

// SetColumns replaces the accumulated columns wholesale.
func (e *TableEditor) SetColumns(columns ...*Column) *TableEditor {
	e.columns = slices.Clone(columns)
	return e
}

// RemoveColumn drops the named column if present, along with any reference
// to it in the primary key.
func (e *TableEditor) RemoveColumn(name string) *TableEditor {
	if idx := e.indexOf(name); idx != -1 {
		e.columns = slices.Delete(e.columns, idx, idx+1)
	}
	e.pkNames = slices.DeleteFunc(e.pkNames, func(n string) bool {
		return strings.EqualFold(n, name)
	})
	return e
}

// SetPrimaryKeyNames sets the primary-key column names in key order.
func (e *TableEditor) SetPrimaryKeyNames(names ...string) *TableEditor {
	e.pkNames = slices.Clone(names)
	return e
}

// SetDefaultCharsetName sets the table-level default character set.
func (e *TableEditor) SetDefaultCharsetName(charsetName string) *TableEditor {
	e.defaultCharset = charsetName
	return e
}

// SetComment sets the table comment.
func (e *TableEditor) SetComment(comment string) *TableEditor {
	e.comment = comment
	return e
}

// Create validates the accumulated state and freezes it into a Table. The
// editor stays usable afterwards and the snapshot never observes later
// mutation.
func (e *TableEditor) Create() (*Table, error) {
	if e.id.Table == "" {
		return nil, fmt.Errorf("table %s: empty table name", e.id)
	}

	columns := make([]*Column, len(e.columns))
	byName := make(map[string]*Column, len(e.columns))
	for i, col := range e.columns {
		key := strings.ToLower(col.Name())
		if key == "" {
			return nil, fmt.Errorf("table %s: column at index %d has no name", e.id, i)
		}
		if _, ok := byName[key]; ok {
			return nil, fmt.Errorf("table %s: duplicate column name %q", e.id, col.Name())
		}
		if col.Position() != i+1 {
			col = col.Edit().SetPosition(i + 1).Create()
		}
		columns[i] = col
		byName[key] = col
	}

	for _, pk := range e.pkNames {
		if _, ok := byName[strings.ToLower(pk)]; !ok {
			return nil, fmt.Errorf("table %s: primary key references unknown column %q", e.id, pk)
		}
	}

	return &Table{
		id:             e.id,
		columns:        columns,
		columnsByName:  byName,
		pkColumnNames:  slices.Clone(e.pkNames),
		defaultCharset: e.defaultCharset,
		comment:        e.comment,
	}, nil
}

func (e *TableEditor) indexOf(name string) int {
	return slices.IndexFunc(e.columns, func(c *Column) bool {
		return strings.EqualFold(c.Name(), name)
	})
}
