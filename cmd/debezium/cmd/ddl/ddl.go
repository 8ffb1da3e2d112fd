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
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/EugeneAbramchuk/debezium/internal/db/postgres"
	"github.com/EugeneAbramchuk/debezium/internal/ddl"
	"github.com/EugeneAbramchuk/debezium/internal/domains"
	"github.com/EugeneAbramchuk/debezium/internal/utils/logger"
	"github.com/EugeneAbramchuk/debezium/pkg/relational"
)

var (
	Cmd = &cobra.Command{
		Use:   "ddl",
		Short: "introspect the database and print re-synthesized CREATE TABLE statements",
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

	if err := viper.BindPFlag("inspect.schemas", Cmd.Flags().Lookup("schema")); err != nil {
		log.Fatal().Err(err).Msg("")
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

	tables, err := postgres.NewIntrospector(pool).
		ReadSchema(ctx, postgres.Options{Schemas: Config.Inspect.Schemas})
	if err != nil {
		return err
	}

	var renderErr error
	tables.ForEach(func(table *relational.Table) {
		if renderErr != nil {
			return
		}
		stmt, err := ddl.RenderCreateTable(table)
		if err != nil {
			renderErr = err
			return
		}
		fmt.Println(stmt)
		for _, comment := range ddl.RenderComments(table) {
			fmt.Println(comment)
		}
		fmt.Println()
	})
	return renderErr
}
