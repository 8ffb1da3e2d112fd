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

package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/EugeneAbramchuk/debezium/internal/db/postgres"
	"github.com/EugeneAbramchuk/debezium/internal/domains"
	"github.com/EugeneAbramchuk/debezium/internal/events"
	"github.com/EugeneAbramchuk/debezium/internal/utils/logger"
	"github.com/EugeneAbramchuk/debezium/pkg/relational"
)

var (
	Cmd = &cobra.Command{
		Use:   "inspect",
		Short: "introspect the database and print its schema",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			if err := run(cmd.Context()); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
)

func init() {
	Cmd.Flags().StringSliceP("schema", "n", []string{"public"}, "introspect the specified schema(s) only")
	Cmd.Flags().StringP("format", "f", "json", "output format [json|yaml|table]")
	Cmd.Flags().BoolP("emit-events", "", false, "emit CREATE schema-change events instead of a schema document")

	for flag, key := range map[string]string{
		"schema":      "inspect.schemas",
		"format":      "inspect.format",
		"emit-events": "inspect.emit_events",
	} {
		if err := viper.BindPFlag(key, Cmd.Flags().Lookup(flag)); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}
}

func run(ctx context.Context) error {
	if Config.Database.URI == "" {
		return errors.New("database uri is required: set --uri or database.uri in the config file")
	}

	pool, err := pgxpool.New(ctx, Config.Database.URI)
	if err != nil {
		return errors.Wrap(err, "cannot create connection pool")
	}
	defer pool.Close()

	introspector := postgres.NewIntrospector(pool)
	info, err := introspector.DatabaseInfo(ctx)
	if err != nil {
		return err
	}
	tables, err := introspector.ReadSchema(ctx, postgres.Options{Schemas: Config.Inspect.Schemas})
	if err != nil {
		return err
	}
	log.Info().
		Str("Database", info.Name).
		Int("TableCount", tables.Len()).
		Msg("schema introspected")

	if Config.Inspect.EmitEvents {
		return emitEvents(info.Name, tables)
	}

	switch Config.Inspect.Format {
	case "json":
		return printJSON(tables)
	case "yaml":
		return printYAML(tables)
	case "table":
		return printTable(tables)
	default:
		return fmt.Errorf("unknown output format %q", Config.Inspect.Format)
	}
}

func emitEvents(database string, tables *relational.Tables) error {
	emitter := events.NewEmitter(os.Stdout)
	var err error
	tables.ForEach(func(table *relational.Table) {
		if err != nil {
			return
		}
		err = emitter.Emit(events.NewSchemaChangeEvent(events.KindCreate, database, table))
	})
	return err
}

func snapshotList(tables *relational.Tables) []*relational.Table {
	list := make([]*relational.Table, 0, tables.Len())
	tables.ForEach(func(table *relational.Table) {
		list = append(list, table)
	})
	return list
}

func printJSON(tables *relational.Tables) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshotList(tables))
}

func printYAML(tables *relational.Tables) error {
	// The relational types serialize through MarshalJSON; round-trip through
	// JSON so the yaml encoder sees plain maps.
	raw, err := json.Marshal(snapshotList(tables))
	if err != nil {
		return err
	}
	var doc any
	if err = json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	return yaml.NewEncoder(os.Stdout).Encode(doc)
}

func printTable(tables *relational.Tables) error {
	t := tablewriter.NewWriter(os.Stdout)
	t.SetHeader([]string{"schema", "table", "#", "column", "type", "nullable", "default", "comment"})

	tables.ForEach(func(table *relational.Table) {
		for _, col := range table.Columns() {
			typeText := col.TypeExpression()
			if typeText == "" {
				typeText = col.TypeName()
			}
			t.Append([]string{
				table.ID().Schema,
				table.ID().Table,
				strconv.Itoa(col.Position()),
				col.Name(),
				typeText,
				strconv.FormatBool(col.IsOptional()),
				col.DefaultValueExpression(),
				col.Comment(),
			})
		}
	})

	t.Render()
	return nil
}
