// Package app provides the application context and dependency wiring for
// the venuemap CLI: configuration, logging, and lazily constructed pipeline
// components shared across commands.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/venuehq/venuemap/pkg/catalog"
	"github.com/venuehq/venuemap/pkg/classify"
	"github.com/venuehq/venuemap/pkg/dedupe"
	"github.com/venuehq/venuemap/pkg/errors"
	"github.com/venuehq/venuemap/pkg/normalize"
	"github.com/venuehq/venuemap/pkg/pipeline"
)

// App represents the venuemap application with its dependencies.
type App struct {
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger

	mu       sync.Mutex
	pipeline *pipeline.Pipeline
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Store creates a catalog store from the current configuration.
func (a *App) Store() *catalog.Store {
	var opts []catalog.Option
	if a.config.BackupDir != "" {
		opts = append(opts, catalog.WithBackupDir(a.config.BackupDir))
	}
	return catalog.New(a.config.CatalogPath, opts...)
}

// Pipeline returns the pipeline instance, creating it lazily from the
// configuration. Thread-safe singleton.
func (a *App) Pipeline() (*pipeline.Pipeline, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pipeline != nil {
		return a.pipeline, nil
	}

	classifierOpts := []classify.Option{}
	if a.config.RulesFile != "" {
		rules, err := classify.LoadRules(a.config.RulesFile)
		if err != nil {
			return nil, err
		}
		classifierOpts = append(classifierOpts, classify.WithRules(rules))
	}

	a.pipeline = pipeline.New(
		pipeline.WithNormalizer(normalize.New(normalize.WithGuestsPerTable(a.config.GuestsPerTable))),
		pipeline.WithClassifier(classify.New(classifierOpts...)),
		pipeline.WithResolver(dedupe.New(
			dedupe.WithThreshold(a.config.Threshold),
			dedupe.WithWorkers(a.config.Workers),
		)),
		pipeline.WithStore(a.Store()),
		pipeline.WithWorkers(a.config.Workers),
	)
	return a.pipeline, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
