package signup

import (
	"context"
	"net/mail"
	"strings"

	"noir-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email string) error
	List(ctx context.Context) ([]Signup, error)
}

type service struct {
	repo   Repository
	mailer Mailer
}

func NewService(repo Repository, mailer Mailer) Service {
	return &service{repo: repo, mailer: mailer}
}

// Register validates and stores the email, then sends the welcome mail
// best-effort: a send failure is logged but never fails the signup.
func (s *service) Register(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	if err := s.repo.Create(ctx, email); err != nil {
		return err
	}

	log := logger.FromCtx(ctx).With(zap.String("email", email))
	log.Info("signup registered")

	if s.mailer != nil {
		if err := s.mailer.SendWelcome(email); err != nil {
			log.Warn("welcome email failed", zap.Error(err))
		}
	}

	return nil
}

func (s *service) List(ctx context.Context) ([]Signup, error) {
	return s.repo.List(ctx)
}
