package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alexanderramin/tally/internal/cli"
	"github.com/alexanderramin/tally/internal/config"
	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/alexanderramin/tally/internal/store"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory may set TALLY_* variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.LogCalls {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Wire storage
	var (
		repo     repository.BlobRepo
		watchDir string
		prefix   string
	)
	switch cfg.Backend {
	case config.BackendDiskv:
		repo = repository.NewDiskvBlobRepo(cfg.BlobDir)
		watchDir = cfg.BlobDir
	case config.BackendMemory:
		database, err := db.OpenDB(db.MemoryPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		repo = repository.NewSQLiteBlobRepo(database, db.NewSQLiteUnitOfWork(database))
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		repo = repository.NewSQLiteBlobRepo(database, db.NewSQLiteUnitOfWork(database))
		watchDir, prefix = filepath.Split(cfg.DBPath)
	}
	logger.Debug("storage ready", "backend", cfg.Backend, "config", cfg.File)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st := store.New(repo, store.WithLogger(logger))
	if err := st.Load(ctx); err != nil {
		return err
	}

	// Wire services
	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	app := &cli.App{
		Projects:  service.NewProjectService(st, observers...),
		Nodes:     service.NewNodeService(st, observers...),
		Items:     service.NewItemService(st, observers...),
		Materials: service.NewMaterialsService(st, observers...),
		Calendar:  service.NewCalendarService(st),
		Status:    service.NewStatusService(st),
		Views:     service.NewViewService(st),
		Settings:  service.NewSettingsService(st),
		Backup:    service.NewBackupService(st, observers...),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The in-memory backend has nothing on disk to watch.
	if cfg.Backend != config.BackendMemory {
		app.Watch = func(ctx context.Context) (<-chan struct{}, error) {
			return repository.WatchDir(ctx, watchDir, prefix)
		}
		app.Reload = st.Load
	}

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
