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

package domains

import (
	"sync"

	"github.com/EugeneAbramchuk/debezium/internal/utils/logger"
)

var (
	Cfg  *Config
	once sync.Once
)

// Config is the root configuration, populated from the config file and
// bound CLI flags via viper.
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log" json:"log"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" json:"database"`
	Inspect  InspectConfig  `mapstructure:"inspect" yaml:"inspect" json:"inspect"`
}

type LogConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
}

type DatabaseConfig struct {
	// URI - PostgreSQL connection string
	URI string `mapstructure:"uri" yaml:"uri" json:"uri"`
}

type InspectConfig struct {
	// Schemas - schema names to introspect
	Schemas []string `mapstructure:"schemas" yaml:"schemas" json:"schemas"`
	// Format - output format: json, yaml or table
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	// EmitEvents - additionally emit CREATE schema-change events, one JSON
	// line per table
	EmitEvents bool `mapstructure:"emit_events" yaml:"emit_events" json:"emit_events"`
}

// NewConfig returns the process-wide config instance. The root command and
// every subcommand share it, so flag bindings and viper unmarshalling all
// land in the same place.
func NewConfig() *Config {
	once.Do(func() {
		Cfg = &Config{
			Log: LogConfig{
				Format: logger.LogFormatTextValue,
				Level:  "info",
			},
			Inspect: InspectConfig{
				Schemas: []string{"public"},
				Format:  "json",
			},
		}
	})
	return Cfg
}
