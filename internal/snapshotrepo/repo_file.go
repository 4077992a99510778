package snapshotrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/rs/zerolog"
)

// fileDoc is the on-disk layout of the JSON snapshot file.
type fileDoc map[string]json.RawMessage

// RepoFile stores the snapshot as a single JSON file.
type RepoFile struct {
	path string
}

// NewRepoFile returns RepoFile writing to path. Parent directories are created on save.
func NewRepoFile(path string) *RepoFile {
	return &RepoFile{path: path}
}

// Load reads the snapshot file. A missing file means no prior data.
func (r *RepoFile) Load(ctx context.Context) (domain.Snapshot, bool, error) {
	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Snapshot{}, false, nil
	}

	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("read snapshot file: %w", err)
	}

	var doc fileDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("decode snapshot file: %w", err)
	}

	docs := make(map[string][]byte, len(doc))
	for k, v := range doc {
		docs[k] = v
	}

	return decode(docs)
}

// Save writes the snapshot to a temporary file and renames it over the old one.
func (r *RepoFile) Save(ctx context.Context, s domain.Snapshot) error {
	l := zerolog.Ctx(ctx)

	docs, err := encode(s)
	if err != nil {
		return err
	}

	doc := make(fileDoc, len(docs))
	for k, v := range docs {
		doc[k] = v
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}

	l.Trace().Str("path", r.path).Int("bytes", len(b)).Msg("snapshot written")

	return nil
}
