package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
	"github.com/andrenobre07/zentorno-sub000/internal/identity"
	"github.com/andrenobre07/zentorno-sub000/internal/repository"
)

type SessionInfo struct {
	Profile *domain.Profile `json:"profile"`
	IsAdmin bool            `json:"is_admin"`
}

type SessionService struct {
	profiles repository.ProfileRepository
	log      *slog.Logger
}

func NewSessionService(profiles repository.ProfileRepository, log *slog.Logger) *SessionService {
	return &SessionService{profiles: profiles, log: log}
}

// Hydrate mirrors the identity's profile fields locally and derives admin
// status from the membership side table. The two documents are unrelated, so
// they are fetched concurrently.
func (s *SessionService) Hydrate(ctx context.Context, caller *identity.Identity) (*SessionInfo, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	var (
		profile *domain.Profile
		isAdmin bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p := &domain.Profile{
			UserID:   caller.UserID,
			Name:     caller.Name,
			Email:    caller.Email,
			PhotoURL: caller.PhotoURL,
		}
		if err := s.profiles.UpsertProfile(gctx, p); err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		admin, err := s.profiles.IsAdmin(gctx, caller.UserID)
		if err != nil {
			return err
		}
		isAdmin = admin
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SessionInfo{Profile: profile, IsAdmin: isAdmin}, nil
}
