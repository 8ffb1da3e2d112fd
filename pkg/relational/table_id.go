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

import "strings"

// TableID identifies a table by catalog, schema and name. Dialects that have
// no catalog (PostgreSQL) or no schema (MySQL) leave the respective part
// empty. TableID is a comparable value and is used as a map key in Tables.
type TableID struct {
	Catalog string
	Schema  string
	Table   string
}

// NewTableID returns an id with an empty catalog part.
func NewTableID(schema, table string) TableID {
	return TableID{Schema: schema, Table: table}
}

// String renders the id in dotted form, skipping empty parts.
func (id TableID) String() string {
	return id.join(func(s string) string { return s })
}

// Quoted renders the id in dotted form with each part double-quoted, for
// embedding into SQL text.
func (id TableID) Quoted() string {
	return id.join(func(s string) string {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	})
}

func (id TableID) join(quote func(string) string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{id.Catalog, id.Schema, id.Table} {
		if p != "" {
			parts = append(parts, quote(p))
		}
	}
	return strings.Join(parts, ".")
}
