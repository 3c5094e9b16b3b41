package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/voxlab/blockforge/pkg/repository"
	"github.com/voxlab/blockforge/pkg/utils/logging"
)

// config holds configuration values shared across commands
type config struct {
	project  string
	database string
	logLevel string
}

// globalFlags returns common flags with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Google Cloud project ID",
			Sources:     cli.EnvVars("GOOGLE_CLOUD_PROJECT"),
			Destination: &cfg.project,
		},
		&cli.StringFlag{
			Name:        "database",
			Aliases:     []string{"d"},
			Usage:       "Firestore database ID",
			Value:       "(default)",
			Sources:     cli.EnvVars("FIRESTORE_DATABASE_ID"),
			Destination: &cfg.database,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("BLOCKFORGE_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

// withLogger attaches a logger at the configured level to the context
func (cfg *config) withLogger(ctx context.Context) context.Context {
	return logging.With(ctx, logging.New(cfg.logLevel, os.Stderr))
}

// newRepository creates a Firestore-backed repository
func (cfg *config) newRepository(ctx context.Context) (repository.Repository, error) {
	if cfg.project == "" {
		return nil, goerr.New("project is required")
	}
	if cfg.database == "" {
		return nil, goerr.New("database is required")
	}

	repo, err := repository.New(ctx, cfg.project, cfg.database)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository")
	}
	return repo, nil
}
