package store

import (
	"context"

	"github.com/advmanik/casefolio/internal/config"
)

// Open selects the store implementation from the configuration: a configured
// DSN means Postgres, otherwise the embedded file store. Outside production
// the Postgres connection relaxes certificate verification, matching the
// original deployment's development toggle.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	if cfg.DatabaseDSN != "" {
		return OpenPostgres(ctx, cfg.DatabaseDSN, cfg.DatabaseName, !cfg.Production())
	}
	return OpenFileStore(cfg.DataDir, cfg.DatabaseName)
}
