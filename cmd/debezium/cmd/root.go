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

package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/EugeneAbramchuk/debezium/cmd/debezium/cmd/ddl"
	"github.com/EugeneAbramchuk/debezium/cmd/debezium/cmd/inspect"
	"github.com/EugeneAbramchuk/debezium/internal/domains"
)

var (
	Version string

	RootCmd = &cobra.Command{
		Use: "debezium",
		Short: "debezium is a relational schema capture toolkit for " +
			"PostgreSQL databases",
		Long: "A schema-capture toolkit that introspects a PostgreSQL " +
			"database catalog into immutable relational snapshots and turns " +
			"them into schema documents, schema-change events and " +
			"re-synthesized DDL",
	}
	cfgFile string
	Config  = domains.NewConfig()
)

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	if Version != "" {
		RootCmd.Version = Version
	}

	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	RootCmd.PersistentFlags().StringP("log-format", "", "text", "logging format [text|json]")
	RootCmd.PersistentFlags().StringP("log-level", "", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)
	RootCmd.PersistentFlags().StringP("uri", "", "", "PostgreSQL connection string")

	RootCmd.AddCommand(inspect.Cmd)
	RootCmd.AddCommand(ddl.Cmd)

	if err := viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("database.uri", RootCmd.PersistentFlags().Lookup("uri")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}

	viper.SetEnvPrefix("DEBEZIUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(Config); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
