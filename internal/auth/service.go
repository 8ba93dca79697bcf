package auth

import (
	"context"

	"github.com/printfood/storefront/internal/session"
)

// Service exchanges credentials for an upstream token and wraps it in a
// storefront session.
type Service struct {
	repo     Repository
	sessions *session.Manager
	store    session.Store
}

func NewService(repo Repository, sessions *session.Manager, store session.Store) *Service {
	return &Service{repo: repo, sessions: sessions, store: store}
}

// Login authenticates upstream and returns the signed session JWT.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	accessToken, err := s.repo.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	return s.adopt(ctx, accessToken)
}

// Register forwards account creation upstream. It does not log the user in;
// the client follows up with a login call.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	return s.repo.Register(ctx, reg)
}

// Adopt wraps an externally obtained upstream token (the Google OAuth
// callback) in a storefront session.
func (s *Service) Adopt(ctx context.Context, accessToken string) (string, error) {
	return s.adopt(ctx, accessToken)
}

func (s *Service) Logout(ctx context.Context, sid string) error {
	return s.store.Delete(ctx, sid)
}

func (s *Service) adopt(ctx context.Context, accessToken string) (string, error) {
	sid, signed, err := s.sessions.Issue()
	if err != nil {
		return "", err
	}
	if err := s.store.Put(ctx, sid, accessToken); err != nil {
		return "", err
	}
	return signed, nil
}
