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

package postgres

import "text/template"

var (
	// ServerVersionQuery - numeric server version (e.g. 150004)
	ServerVersionQuery = `SELECT current_setting('server_version_num')::INT`

	// DatabaseInfoQuery - current database name and its server encoding
	DatabaseInfoQuery = `
		SELECT current_database(),
		       pg_catalog.pg_encoding_to_char(d.encoding)
		FROM pg_catalog.pg_database d
		WHERE d.datname = current_database()
	`

	// TableSearchQuery - ordinary and partitioned tables of the requested schemas
	TableSearchQuery = `
		SELECT c.oid::TEXT::INT                        AS oid,
		       n.nspname                              AS schema_name,
		       c.relname                              AS table_name,
		       COALESCE(obj_description(c.oid), '')   AS table_comment
		FROM pg_catalog.pg_class c
		    JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relkind IN ('r', 'p')
		  AND n.nspname = ANY($1)
		  AND n.nspname NOT IN ('pg_catalog', 'information_schema')
		ORDER BY n.nspname, c.relname
	`

	// TableColumnsQuery - all live columns of one table, in attnum order.
	// attgenerated appeared in version 12, hence the template.
	TableColumnsQuery = template.Must(template.New("TableColumnsQuery").Parse(`
		SELECT a.attname                                           AS name,
		       a.atttypid::TEXT::INT                               AS type_oid,
		       t.typname                                           AS type_name,
		       pg_catalog.format_type(a.atttypid, a.atttypmod)     AS type_expression,
		       a.attnotnull                                        AS not_null,
		       a.atttypmod                                         AS type_modifier,
		       a.atthasdef                                         AS has_default,
		       COALESCE(pg_catalog.pg_get_expr(d.adbin, d.adrelid), '') AS default_expression,
		       a.attidentity != ''                                 AS is_identity,
		       {{ if ge .Version 120000 }}a.attgenerated != ''{{ else }}FALSE{{ end }} AS is_generated,
		       t.typtype = 'e'                                     AS is_enum,
		       COALESCE(col_description(a.attrelid, a.attnum), '') AS column_comment
		FROM pg_catalog.pg_attribute a
		    JOIN pg_catalog.pg_type t ON a.atttypid = t.oid
		    LEFT JOIN pg_catalog.pg_attrdef d
		        ON d.adrelid = a.attrelid AND d.adnum = a.attnum
		WHERE a.attrelid = $1::OID
		  AND a.attnum > 0
		  AND NOT a.attisdropped
		ORDER BY a.attnum
	`))

	// EnumValuesQuery - labels of an enum type in declaration order
	EnumValuesQuery = `
		SELECT e.enumlabel
		FROM pg_catalog.pg_enum e
		WHERE e.enumtypid = $1::OID
		ORDER BY e.enumsortorder
	`

	// PrimaryKeyQuery - primary key column names in key order
	PrimaryKeyQuery = `
		SELECT a.attname
		FROM pg_catalog.pg_index i
		    JOIN unnest(i.indkey) WITH ORDINALITY AS k(attnum, ord) ON TRUE
		    JOIN pg_catalog.pg_attribute a
		        ON a.attrelid = i.indrelid AND a.attnum = k.attnum
		WHERE i.indrelid = $1::OID
		  AND i.indisprimary
		ORDER BY k.ord
	`
)
