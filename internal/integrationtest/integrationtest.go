// Package integrationtest provides helpers to run the whole HTTP stack in tests.
package integrationtest

import (
	"context"
	"io"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/cmd/httpserver"
	"github.com/go-petr/pet-ledger/internal/eventpub"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/internal/snapshotrepo"
	"github.com/go-petr/pet-ledger/internal/transferservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/shopspring/decimal"
)

// Env is a running test server together with its storage and event sink.
type Env struct {
	Server    *httpserver.Server
	Snapshots *snapshotrepo.RepoMem
	Events    *eventpub.Recorder
}

// Options returns ledger options matching the default configuration.
func Options() ledger.Options {
	return ledger.Options{
		Defaults: transferservice.Defaults{
			Term:         12,
			InterestRate: decimal.NewFromInt(5),
		},
	}
}

// SetupServer returns test server backed by an in-memory snapshot store.
func SetupServer(t *testing.T, opts ledger.Options) Env {
	t.Helper()

	snapshots := snapshotrepo.NewRepoMem()
	events := &eventpub.Recorder{}

	lg := ledger.New(snapshots, events, opts)
	if err := lg.Load(context.Background()); err != nil {
		t.Fatalf("lg.Load() returned error: %v", err)
	}

	gin.SetMode(gin.TestMode)

	server, err := httpserver.New(lg, zerolog.New(io.Discard), configpkg.Config{})
	if err != nil {
		t.Fatalf(`httpserver.New(lg, logger, config) returned error: %v`, err)
	}

	return Env{Server: server, Snapshots: snapshots, Events: events}
}
