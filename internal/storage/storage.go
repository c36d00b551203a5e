// Package storage provides the durable key-value surface the stores persist
// to. Each logical collection lives in one slot holding a serialized
// snapshot; a mutation rewrites the whole slot. Backends are interchangeable
// and deliberately dumb: no locking is added across processes, so two
// processes sharing one backend race on a last-write-wins basis.
package storage

import (
	"context"
	"fmt"
	"sort"

	"github.com/hiresphere/hiresphere/internal/dbx"
)

// Slot names for the four persisted collections.
const (
	SlotAccounts     = "accounts"
	SlotSession      = "session"
	SlotJobs         = "jobs"
	SlotApplications = "applications"
)

// SlotStore reads and writes whole slots. Get returns (nil, nil) when the
// slot has never been written. A Set, SetMany or Delete that returns nil is
// durable. SetMany writes all of its slots or none of them, so a mutation
// touching several collections cannot leave a partial durable state behind.
type SlotStore interface {
	Get(ctx context.Context, slot string) ([]byte, error)
	Set(ctx context.Context, slot string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, slot string) error
	Close() error
}

func upsertSlot(ctx context.Context, db dbx.DBTX, query, slot string, value []byte) error {
	if _, err := db.ExecContext(ctx, query, slot, value); err != nil {
		return fmt.Errorf("failed to set slot[%s]: %w", slot, err)
	}
	return nil
}

// sortedSlots fixes the write order so two SetMany transactions cannot
// upsert the same slots in opposite order and deadlock.
func sortedSlots(values map[string][]byte) []string {
	slots := make([]string, 0, len(values))
	for slot := range values {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}
