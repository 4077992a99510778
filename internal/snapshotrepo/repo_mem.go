// Package snapshotrepo manages repository layer of ledger snapshots.
//
// Every backend stores the same three collections as JSON documents
// under the keys "accounts", "transfers" and "loans".
package snapshotrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Snapshot storage keys.
const (
	KeyAccounts  = "accounts"
	KeyTransfers = "transfers"
	KeyLoans     = "loans"
)

// RepoMem keeps the last saved snapshot in process memory.
type RepoMem struct {
	mu    sync.Mutex
	docs  map[string][]byte
	saves int
}

// NewRepoMem returns an empty RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{docs: map[string][]byte{}}
}

// Load returns the last saved snapshot. The bool is false if nothing was saved yet.
func (r *RepoMem) Load(ctx context.Context) (domain.Snapshot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return decode(r.docs)
}

// Save stores a deep copy of the snapshot.
func (r *RepoMem) Save(ctx context.Context, s domain.Snapshot) error {
	docs, err := encode(s)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs = docs
	r.saves++

	return nil
}

// Saves returns how many times the snapshot was saved.
func (r *RepoMem) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saves
}

func encode(s domain.Snapshot) (map[string][]byte, error) {
	docs := make(map[string][]byte, 3)

	items := map[string]any{
		KeyAccounts:  nonNil(s.Accounts),
		KeyTransfers: nonNil(s.Transfers),
		KeyLoans:     nonNil(s.Loans),
	}

	for key, v := range items {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}

		docs[key] = b
	}

	return docs, nil
}

// decode reports found == false when no key is present at all.
func decode(docs map[string][]byte) (domain.Snapshot, bool, error) {
	var s domain.Snapshot

	if len(docs) == 0 {
		return s, false, nil
	}

	targets := map[string]any{
		KeyAccounts:  &s.Accounts,
		KeyTransfers: &s.Transfers,
		KeyLoans:     &s.Loans,
	}

	for key, dst := range targets {
		b, ok := docs[key]
		if !ok {
			continue
		}

		if err := json.Unmarshal(b, dst); err != nil {
			return domain.Snapshot{}, false, fmt.Errorf("decode %s: %w", key, err)
		}
	}

	return s, true, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
