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

// Package events turns relational snapshots into schema-change events, the
// downstream representation consumed by change-capture pipelines.
package events

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/EugeneAbramchuk/debezium/pkg/relational"
)

// Kind classifies a schema change.
type Kind string

const (
	KindCreate Kind = "CREATE"
	KindAlter  Kind = "ALTER"
	KindDrop   Kind = "DROP"
)

// SchemaChangeEvent describes one change of a table's definition. The table
// payload is the immutable snapshot itself; for KindDrop it carries the last
// known definition.
type SchemaChangeEvent struct {
	ID        uuid.UUID         `json:"id"`
	Kind      Kind              `json:"kind"`
	Timestamp time.Time         `json:"ts"`
	Database  string            `json:"database,omitempty"`
	Table     *relational.Table `json:"table"`
}

// NewSchemaChangeEvent stamps a new event with a random id and the current
// time.
func NewSchemaChangeEvent(kind Kind, database string, table *relational.Table) *SchemaChangeEvent {
	return &SchemaChangeEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Timestamp: time.Now().UTC(),
		Database:  database,
		Table:     table,
	}
}

// Emitter writes schema-change events as JSON lines. Safe for concurrent
// use; events from different goroutines are written whole, never interleaved.
type Emitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewEmitter returns an emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit serializes the event and appends it as one line.
func (e *Emitter) Emit(event *SchemaChangeEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("cannot marshal schema change event: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err = e.w.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("cannot write schema change event: %w", err)
	}
	log.Debug().
		Str("EventID", event.ID.String()).
		Str("Kind", string(event.Kind)).
		Str("Table", event.Table.ID().String()).
		Msg("emitted schema change event")
	return nil
}
