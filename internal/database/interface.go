package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/lapwatch/internal/models"
)

// RunRepository defines saved-run operations.
type RunRepository interface {
	SaveRun(ctx context.Context, label string, elapsed time.Duration, laps []models.RunLap) (int64, error)
	GetRuns(ctx context.Context) ([]models.Run, error)
	GetRun(ctx context.Context, id int64) (models.Run, error)
	DeleteRun(ctx context.Context, id int64) error
}

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	RunRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
