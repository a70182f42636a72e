package mode

import (
	"context"
	"sync"

	"noir-be/internal/logger"

	"go.uber.org/zap"
)

// Service wraps the repository with fail-soft reads: homepage
// availability must not depend on this subsystem's health, so a read
// failure falls back to the last known settings (or NORMAL).
type Service interface {
	GetSettings(ctx context.Context) Settings
	GetMode(ctx context.Context) Mode
	SetMode(ctx context.Context, m Mode) (Settings, error)
	Toggle(ctx context.Context) (Settings, error)
}

type service struct {
	repo Repository

	mu        sync.RWMutex
	lastKnown Settings
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetSettings(ctx context.Context) Settings {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.mu.RLock()
		fallback := s.lastKnown
		s.mu.RUnlock()

		logger.FromCtx(ctx).Warn("homepage settings read failed, serving last known value",
			zap.Bool("is_drop_active", fallback.IsDropActive),
			zap.Error(err),
		)
		return fallback
	}

	s.mu.Lock()
	s.lastKnown = settings
	s.mu.Unlock()

	return settings
}

func (s *service) GetMode(ctx context.Context) Mode {
	return FromBool(s.GetSettings(ctx).IsDropActive)
}

// SetMode persists the new value immediately; it is visible to any
// client's next read.
func (s *service) SetMode(ctx context.Context, m Mode) (Settings, error) {
	settings, err := s.repo.Set(ctx, m.IsDrop())
	if err != nil {
		return Settings{}, err
	}

	s.mu.Lock()
	s.lastKnown = settings
	s.mu.Unlock()

	logger.FromCtx(ctx).Info("homepage mode changed",
		zap.String("mode", string(m)),
		zap.Int64("revision", settings.Revision),
	)
	return settings, nil
}

func (s *service) Toggle(ctx context.Context) (Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	return s.SetMode(ctx, FromBool(!current.IsDropActive))
}
