package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/eventpub"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/snapshotrepo"
	"github.com/go-petr/pet-ledger/internal/transferservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

type publisher interface {
	ledger.Publisher
	Close() error
}

// app is a loaded ledger with its backend and event publisher.
type app struct {
	config configpkg.Config
	logger zerolog.Logger
	ledger *ledger.Ledger

	closers []func() error
}

// newApp loads configuration, opens the data backend and restores the ledger.
// The returned context carries the logger.
func newApp(ctx context.Context, configPath string) (*app, context.Context, error) {
	config, err := configpkg.Load(configPath)
	if err != nil {
		return nil, ctx, fmt.Errorf("cannot load config: %w", err)
	}

	logger := middleware.CreateLogger(config)
	ctx = logger.WithContext(ctx)

	opts, err := ledgerOptions(config)
	if err != nil {
		return nil, ctx, err
	}

	repo, closeRepo, err := snapshotrepo.Open(config)
	if err != nil {
		return nil, ctx, fmt.Errorf("cannot open %s backend: %w", config.DataBackend, err)
	}

	a := &app{
		config:  config,
		logger:  logger,
		closers: []func() error{closeRepo},
	}

	pub, err := newPublisher(config)
	if err != nil {
		a.close()
		return nil, ctx, err
	}

	a.closers = append(a.closers, pub.Close)
	a.ledger = ledger.New(repo, pub, opts)

	err = a.ledger.Load(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotPersisted) {
		a.close()
		return nil, ctx, err
	}

	logger.Info().
		Str("backend", config.DataBackend).
		Bool("dirty", a.ledger.Dirty()).
		Msg("ledger loaded")

	return a, ctx, nil
}

func newPublisher(config configpkg.Config) (publisher, error) {
	if config.AMQPURL == "" {
		return eventpub.Noop{}, nil
	}

	p, err := eventpub.NewAMQP(config.AMQPURL, config.AMQPExchange)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to event broker: %w", err)
	}

	return p, nil
}

func ledgerOptions(config configpkg.Config) (ledger.Options, error) {
	rate, err := config.InterestRate()
	if err != nil {
		return ledger.Options{}, err
	}

	return ledger.Options{
		Defaults: transferservice.Defaults{
			Term:         config.DefaultTransferTerm,
			InterestRate: rate,
		},
		RepayMode:      domain.LoanRepayMode(config.LoanRepayMode),
		CascadeLoans:   config.CascadeLoans,
		SeedSampleData: config.SeedSampleData,
	}, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn().Err(err).Msg("cannot release resource")
		}
	}
}
