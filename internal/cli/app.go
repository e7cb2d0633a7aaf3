// Package cli is the interactive front-end of the letters app: a plain
// stdin/stdout REPL over the letter repository. It stands in for the mobile
// UI, which is a separate consumer of the same core surface.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dearfuture/letters/internal/config"
	"github.com/dearfuture/letters/internal/filex"
	"github.com/dearfuture/letters/internal/letters"
	"github.com/dearfuture/letters/internal/logging"
	"github.com/dearfuture/letters/internal/storage"

	_ "modernc.org/sqlite"
)

// isTerminal is a test seam for the TTY check.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

type App struct {
	config *config.Config
	logger logging.Logger
	repo   *letters.Repository
	reader *bufio.Reader
	userID string

	closeFn func() error
}

// NewApp wires the configured storage backend into a repository and
// hydrates it.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	st, closeFn, err := buildStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage (%s): %w", cfg.StorageBackend, err)
	}

	repo := letters.NewRepository(st, logger)
	if err := repo.Hydrate(ctx); err != nil {
		if closeFn != nil {
			_ = closeFn()
		}
		return nil, fmt.Errorf("hydrate: %w", err)
	}

	return &App{
		config:  cfg,
		logger:  logger,
		repo:    repo,
		reader:  bufio.NewReader(os.Stdin),
		userID:  cfg.UserID,
		closeFn: closeFn,
	}, nil
}

// buildStorage constructs the backend named in cfg. The returned close
// function is nil for backends with nothing to release.
func buildStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func() error, error) {
	switch cfg.StorageBackend {

	case config.BackendMemory:
		return storage.NewMemory(), nil, nil

	case config.BackendFile:
		dir, err := filex.EnsureDir(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewFile(dir + "/letters.json"), nil, nil

	case config.BackendSQLite:
		dir, err := filex.EnsureDir(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		db, err := storage.OpenSQLite(ctx, dir+"/letters.db")
		if err != nil {
			return nil, nil, err
		}
		return storage.NewSQLite(db), db.Close, nil

	case config.BackendPostgres:
		db, err := storage.OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewPostgres(db), db.Close, nil

	case config.BackendS3:
		client, err := storage.NewS3Client(ctx, storage.S3Config{
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			ObjectKey:    cfg.S3ObjectKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return storage.NewS3(client, cfg.S3Bucket, cfg.S3ObjectKey), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// Run starts the REPL and blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if !isTerminal() {
		return errors.New("letters needs an interactive terminal")
	}

	a.logger.Info(ctx, "repl started", "user", a.userID, "backend", a.config.StorageBackend)

	fmt.Printf("Letters to your future self. Acting as %q, %s backend.\n",
		a.userID, a.config.StorageBackend)
	fmt.Println(`Type "help" for commands.`)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

// Close releases the storage backend, if it holds resources.
func (a *App) Close() {
	if a.closeFn != nil {
		_ = a.closeFn()
	}
}

func (a *App) status() string {
	s := a.repo.Stats(a.userID)
	return fmt.Sprintf("%s | %d letters, %d sealed", a.userID, s.Total, s.Upcoming)
}
