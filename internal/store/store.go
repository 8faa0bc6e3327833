// Package store persists completed assessments. The engine never
// depends on it; persistence is a collaborator of the surrounding
// application and its failures never alter a computed result.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/fundlens/readiness-cli/internal/config"
	"github.com/fundlens/readiness-cli/internal/model"
)

// Filter specifies criteria for listing assessments.
type Filter struct {
	OwnerID   string          `json:"owner_id,omitempty"`
	RiskLevel model.RiskLevel `json:"risk_level,omitempty"`
	MinScore  float64         `json:"min_score,omitempty"`
	Limit     int             `json:"limit,omitempty"`
	Offset    int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for assessment history.
type Store interface {
	SaveAssessment(ctx context.Context, a *model.Assessment) error
	SaveAssessments(ctx context.Context, as []model.Assessment) error
	GetAssessment(ctx context.Context, id string) (*model.Assessment, error)
	ListAssessments(ctx context.Context, filter Filter) ([]model.Assessment, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// New selects a Store implementation from configuration.
func New(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return NewSQLite(cfg.DatabaseURL)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL, &PoolConfig{
			MaxConns: cfg.Pool.MaxConns,
			MinConns: cfg.Pool.MinConns,
		})
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
