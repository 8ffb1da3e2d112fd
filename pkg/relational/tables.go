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
	"slices"
	"strings"
	"sync"
)

// Tables is a registry of table snapshots keyed by TableID. The snapshots
// are immutable, so the registry only has to guard its own map; it is safe
// for concurrent use.
type Tables struct {
	mu   sync.RWMutex
	byID map[TableID]*Table
}

// NewTables returns an empty registry.
func NewTables() *Tables {
	return &Tables{byID: make(map[TableID]*Table)}
}

// Overwrite stores the table, replacing any previous snapshot under the
// same id, and returns the replaced snapshot (nil if none).
func (t *Tables) Overwrite(table *Table) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.byID[table.ID()]
	t.byID[table.ID()] = table
	return prev
}

// TableForID returns the snapshot registered under the id, or nil.
func (t *Tables) TableForID(id TableID) *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.byID[id]
}

// RemoveTable drops the table from the registry and returns the removed
// snapshot (nil if none).
func (t *Tables) RemoveTable(id TableID) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.byID[id]
	delete(t.byID, id)
	return prev
}

// RenameTable re-registers the table found under from with identity to. The
// new snapshot is returned; nil if from is unknown.
func (t *Tables) RenameTable(from, to TableID) (*Table, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	existing := t.byID[from]
	if existing == nil {
		return nil, nil
	}
	renamed, err := existing.Edit().SetID(to).Create()
	if err != nil {
		return nil, err
	}
	delete(t.byID, from)
	t.byID[to] = renamed
	return renamed, nil
}

// IDs returns all registered table ids, sorted by their string form for
// deterministic iteration.
func (t *Tables) IDs() []TableID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]TableID, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b TableID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

// ForEach calls fn for every registered table, in sorted id order.
func (t *Tables) ForEach(fn func(table *Table)) {
	for _, id := range t.IDs() {
		if table := t.TableForID(id); table != nil {
			fn(table)
		}
	}
}

// Len returns the number of registered tables.
func (t *Tables) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}
