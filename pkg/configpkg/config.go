// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Supported DATA_BACKEND values.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	Environement        string        `mapstructure:"GO_ENV"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	DataBackend         string        `mapstructure:"DATA_BACKEND"`
	SnapshotFile        string        `mapstructure:"SNAPSHOT_FILE"`
	SQLitePath          string        `mapstructure:"SQLITE_PATH"`
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	AMQPURL             string        `mapstructure:"AMQP_URL"`
	AMQPExchange        string        `mapstructure:"AMQP_EXCHANGE"`
	SeedSampleData      bool          `mapstructure:"SEED_SAMPLE_DATA"`
	DefaultTransferTerm int           `mapstructure:"DEFAULT_TRANSFER_TERM"`
	DefaultInterestRate string        `mapstructure:"DEFAULT_INTEREST_RATE"`
	LoanRepayMode       string        `mapstructure:"LOAN_REPAY_MODE"`
	CascadeLoans        bool          `mapstructure:"CASCADE_LOANS"`
	SnapshotRetrySpec   string        `mapstructure:"SNAPSHOT_RETRY_SPEC"`
	ShutdownTimeout     time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"GO_ENV":                "production",
	"SERVER_ADDRESS":        "0.0.0.0:8080",
	"DATA_BACKEND":          BackendMemory,
	"SNAPSHOT_FILE":         "./data/ledger.json",
	"SQLITE_PATH":           "./data/ledger.db",
	"DB_DRIVER":             "postgres",
	"DB_SOURCE":             "",
	"AMQP_URL":              "",
	"AMQP_EXCHANGE":         "pet-ledger.events",
	"SEED_SAMPLE_DATA":      true,
	"DEFAULT_TRANSFER_TERM": 12,
	"DEFAULT_INTEREST_RATE": "5",
	"LOAN_REPAY_MODE":       string(domain.RepayCreditsRecipient),
	"CASCADE_LOANS":         false,
	"SNAPSHOT_RETRY_SPEC":   "@every 30s",
	"SHUTDOWN_TIMEOUT":      "10s",
}

// Load read configuration from file or environment variables.
//
// A missing app.env is not an error; defaults and the environment are used instead.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, c.Validate()
}

// Validate checks enumerated and numeric settings.
func (c Config) Validate() error {
	switch c.DataBackend {
	case BackendMemory, BackendFile, BackendSQLite:
	case BackendPostgres:
		if c.DBSource == "" {
			return errors.New("DB_SOURCE is required for postgres backend")
		}

		if c.DBDriver != "postgres" && c.DBDriver != "pgx" {
			return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DATA_BACKEND %q", c.DataBackend)
	}

	switch domain.LoanRepayMode(c.LoanRepayMode) {
	case domain.RepayCreditsRecipient, domain.RepayCreditsLender:
	default:
		return fmt.Errorf("unsupported LOAN_REPAY_MODE %q", c.LoanRepayMode)
	}

	if c.DefaultTransferTerm <= 0 {
		return fmt.Errorf("DEFAULT_TRANSFER_TERM must be positive, got %d", c.DefaultTransferTerm)
	}

	if _, err := c.InterestRate(); err != nil {
		return err
	}

	return nil
}

// InterestRate returns DEFAULT_INTEREST_RATE as a decimal percent.
func (c Config) InterestRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.DefaultInterestRate)
	if err != nil {
		return rate, fmt.Errorf("invalid DEFAULT_INTEREST_RATE %q: %w", c.DefaultInterestRate, err)
	}

	return rate, nil
}

// IsDevelopment reports whether GO_ENV is development.
func (c Config) IsDevelopment() bool {
	return c.Environement == "development"
}
