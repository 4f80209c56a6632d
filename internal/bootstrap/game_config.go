package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/samigvnc/csgo-frontend/internal/concurrency"
	"github.com/samigvnc/csgo-frontend/internal/config"
	"github.com/samigvnc/csgo-frontend/internal/contract"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
	"github.com/samigvnc/csgo-frontend/internal/session"
	"github.com/samigvnc/csgo-frontend/internal/validation"
)

// GameConfig is everything the reveal and contract flows read from JSON config.
type GameConfig struct {
	Engine *reveal.Engine
	Rules  contract.Rules
	RNG    reveal.RandomSource
}

// LoadGameConfig loads and schema-validates the band table and contract rules,
// then builds the shared reveal engine. Missing files fall back to built-in tables.
func LoadGameConfig(cfg *config.Config, v validation.SchemaValidator) (*GameConfig, error) {
	slog.Info(LogMsgLoadingRevealBands, "path", cfg.BandsFile)
	bands, err := reveal.LoadBands(cfg.BandsFile, config.SchemaPathRevealBands, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRevealBands, err)
	}

	slog.Info(LogMsgLoadingContracts, "path", cfg.ContractsFile)
	rules, err := contract.LoadRules(cfg.ContractsFile, config.SchemaPathContractRules, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadContracts, err)
	}

	rng := reveal.DefaultSource()
	engine, err := reveal.NewEngine(reveal.Config{
		Bands:        bands,
		Strip:        reveal.StripConfig{Length: cfg.StripLength, WinIndex: cfg.WinIndex},
		SpinDuration: cfg.SpinDuration,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildEngine, err)
	}

	return &GameConfig{Engine: engine, Rules: rules, RNG: rng}, nil
}

// Stores holds the local state shared by the services.
type Stores struct {
	Session *session.Store
	Locks   *concurrency.LockManager
}

// InitializeStores opens the session mirror and the per-user lock table.
func InitializeStores(cfg *config.Config) (*Stores, error) {
	store, err := session.Open(cfg.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	if store.LoggedIn() {
		slog.Info(LogMsgSessionRestored, "email", store.Email())
	} else {
		slog.Info(LogMsgSessionEmpty, "path", store.Path())
	}

	return &Stores{Session: store, Locks: concurrency.NewLockManager()}, nil
}
