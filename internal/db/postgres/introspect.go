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

// Package postgres scans the PostgreSQL catalog and produces relational
// snapshots. It is the producer side of the column editor: every discovered
// catalog field is pushed through a fresh ColumnEditor, and the precedence
// decisions the core refuses to make (serial defaults vs. literal defaults,
// identity vs. generated) are made here.
package postgres

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/EugeneAbramchuk/debezium/pkg/relational"
)

const introspectConcurrency = 4

// Options controls which part of the database is scanned.
type Options struct {
	// Schemas - schema names to introspect; defaults to just "public"
	Schemas []string
}

// DatabaseInfo - properties of the scanned database that columns inherit
type DatabaseInfo struct {
	Name     string
	Encoding string
	Version  int
}

// Introspector reads table definitions from a database. The pool is owned by
// the caller.
type Introspector struct {
	pool *pgxpool.Pool
}

func NewIntrospector(pool *pgxpool.Pool) *Introspector {
	return &Introspector{pool: pool}
}

// DatabaseInfo fetches the database name, server encoding and numeric
// server version.
func (i *Introspector) DatabaseInfo(ctx context.Context) (DatabaseInfo, error) {
	var info DatabaseInfo
	if err := i.pool.QueryRow(ctx, ServerVersionQuery).Scan(&info.Version); err != nil {
		return info, fmt.Errorf("cannot determine server version: %w", err)
	}
	if err := i.pool.QueryRow(ctx, DatabaseInfoQuery).Scan(&info.Name, &info.Encoding); err != nil {
		return info, fmt.Errorf("cannot determine database info: %w", err)
	}
	return info, nil
}

type tableRef struct {
	oid     int
	schema  string
	name    string
	comment string
}

// ReadSchema introspects all tables of the requested schemas and returns
// them as a registry of immutable snapshots. Tables are read concurrently;
// each table's columns are accumulated by a single goroutine, one editor per
// column.
func (i *Introspector) ReadSchema(ctx context.Context, opts Options) (*relational.Tables, error) {
	schemas := opts.Schemas
	if len(schemas) == 0 {
		schemas = []string{"public"}
	}

	info, err := i.DatabaseInfo(ctx)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(nil)
	if err = TableColumnsQuery.Execute(buf, struct{ Version int }{Version: info.Version}); err != nil {
		return nil, errors.Wrap(err, "error templating TableColumnsQuery")
	}
	columnsQuery := buf.String()

	refs, err := i.listTables(ctx, schemas)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("Database", info.Name).
		Int("Version", info.Version).
		Int("TableCount", len(refs)).
		Msg("discovered tables")

	tables := relational.NewTables()
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(introspectConcurrency)
	for _, ref := range refs {
		eg.Go(func() error {
			table, err := i.readTable(gctx, columnsQuery, ref, info.Encoding)
			if err != nil {
				return err
			}
			tables.Overwrite(table)
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

func (i *Introspector) listTables(ctx context.Context, schemas []string) ([]tableRef, error) {
	rows, err := i.pool.Query(ctx, TableSearchQuery, schemas)
	if err != nil {
		return nil, fmt.Errorf("cannot execute TableSearchQuery: %w", err)
	}
	defer rows.Close()

	var refs []tableRef
	for rows.Next() {
		var ref tableRef
		if err = rows.Scan(&ref.oid, &ref.schema, &ref.name, &ref.comment); err != nil {
			return nil, fmt.Errorf("cannot scan TableSearchQuery: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (i *Introspector) readTable(
	ctx context.Context, columnsQuery string, ref tableRef, encoding string,
) (*relational.Table, error) {
	editor := relational.NewTableEditor(relational.NewTableID(ref.schema, ref.name)).
		SetComment(ref.comment).
		SetDefaultCharsetName(encoding)

	rows, err := i.pool.Query(ctx, columnsQuery, ref.oid)
	if err != nil {
		return nil, fmt.Errorf("cannot execute TableColumnsQuery for %s: %w", ref.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name, typeName, typeExpression, defaultExpression, comment string
			typeOID, typeModifier                                      int
			notNull, hasDefault, isIdentity, isGenerated, isEnum       bool
		)
		err = rows.Scan(&name, &typeOID, &typeName, &typeExpression, &notNull,
			&typeModifier, &hasDefault, &defaultExpression, &isIdentity,
			&isGenerated, &isEnum, &comment,
		)
		if err != nil {
			return nil, fmt.Errorf("cannot scan TableColumnsQuery: %w", err)
		}

		ce := relational.NewColumnEditor().
			SetName(name).
			SetType(typeName, typeExpression).
			SetNativeType(typeOID).
			SetJDBCType(JDBCTypeFor(typeName)).
			SetOptional(!notNull).
			SetCharsetNameOfTable(encoding).
			SetComment(comment).
			SetGenerated(isGenerated)

		length, scale := decodeTypeModifier(typeName, typeModifier)
		ce.SetLength(length).SetScale(scale)

		autoIncremented := isIdentity || isSerialDefault(defaultExpression)
		ce.SetAutoIncremented(autoIncremented)

		if hasDefault && defaultExpression != "" {
			ce.SetDefaultValueExpression(defaultExpression)
			// Sequence and generation expressions are machinery, not
			// defaults a consumer could apply to a row.
			if !autoIncremented && !isGenerated {
				if value, ok := parseDefaultValue(typeName, defaultExpression); ok {
					ce.SetDefaultValue(value)
				}
			}
		}

		if isEnum {
			labels, err := i.readEnumValues(ctx, typeOID)
			if err != nil {
				return nil, err
			}
			ce.SetEnumValues(labels)
		}

		editor.AddColumns(ce.Create())
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading columns of %s: %w", ref.name, err)
	}

	pkNames, err := i.readPrimaryKey(ctx, ref.oid)
	if err != nil {
		return nil, err
	}
	editor.SetPrimaryKeyNames(pkNames...)

	table, err := editor.Create()
	if err != nil {
		return nil, errors.Wrapf(err, "inconsistent catalog data for %q.%q", ref.schema, ref.name)
	}
	log.Debug().
		Str("TableSchema", ref.schema).
		Str("TableName", ref.name).
		Int("ColumnCount", len(table.Columns())).
		Msg("table introspected")
	return table, nil
}

func (i *Introspector) readEnumValues(ctx context.Context, typeOID int) ([]string, error) {
	rows, err := i.pool.Query(ctx, EnumValuesQuery, typeOID)
	if err != nil {
		return nil, fmt.Errorf("cannot execute EnumValuesQuery: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err = rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("cannot scan EnumValuesQuery: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

func (i *Introspector) readPrimaryKey(ctx context.Context, tableOID int) ([]string, error) {
	rows, err := i.pool.Query(ctx, PrimaryKeyQuery, tableOID)
	if err != nil {
		return nil, fmt.Errorf("cannot execute PrimaryKeyQuery: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("cannot scan PrimaryKeyQuery: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
