package cli

import (
	"fmt"
	"log/slog"

	"taskboard/internal/category"
	"taskboard/internal/config"
	"taskboard/internal/repository"
	"taskboard/internal/repository/memory"
	"taskboard/internal/repository/sqlite"
	"taskboard/internal/theme"
)

// session bundles what a category command needs for one run.
type session struct {
	service *category.Service
	styles  *theme.Styles
	close   func() error
}

func openSession(opts *rootOptions) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPath := cfg.DBPath
	if opts.dbPath != "" {
		dbPath = opts.dbPath
	}

	var (
		store   repository.KVStore
		closeFn = func() error { return nil }
	)

	if opts.ephemeral {
		store = memory.NewKVStore()
	} else {
		db, err := sqlite.NewDB(sqlite.Config{Path: dbPath})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		store = sqlite.NewKVStore(db)
		closeFn = db.Close
	}

	svc := category.NewService(store,
		category.WithKey(cfg.StorageKey),
		category.WithLogger(sessionLogger(opts, dbPath)),
	)

	return &session{
		service: svc,
		styles:  theme.NewStyles(theme.ResolveTheme(cfg.ThemeName)),
		close:   closeFn,
	}, nil
}

// tags the logger with the backing store; nil stays nil
func sessionLogger(opts *rootOptions, dbPath string) *slog.Logger {
	if opts.logger == nil {
		return nil
	}
	if opts.ephemeral {
		return opts.logger.With("store", "memory")
	}
	return opts.logger.With("store", "sqlite", "db", dbPath)
}
