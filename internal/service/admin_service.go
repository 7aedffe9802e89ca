package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
	"github.com/andrenobre07/zentorno-sub000/internal/identity"
	"github.com/andrenobre07/zentorno-sub000/internal/repository"
)

// AdminService carries the administrative mutators. Authorization is uniform:
// the HTTP layer admits only verified administrators to any of these, so the
// caller id arriving here has already passed the membership check.
type AdminService struct {
	accounts  identity.Accounts
	profiles  repository.ProfileRepository
	purchases repository.PurchaseRepository
	log       *slog.Logger
}

func NewAdminService(
	accounts identity.Accounts,
	profiles repository.ProfileRepository,
	purchases repository.PurchaseRepository,
	log *slog.Logger,
) *AdminService {
	return &AdminService{
		accounts:  accounts,
		profiles:  profiles,
		purchases: purchases,
		log:       log,
	}
}

func (s *AdminService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	return s.purchases.ListPurchases(ctx)
}

func (s *AdminService) DeletePurchase(ctx context.Context, callerID, purchaseID string) error {
	if err := s.purchases.DeletePurchase(ctx, purchaseID); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "purchase deleted", "purchase_id", purchaseID, "deleted_by", callerID)
	return nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.ListProfiles(ctx)
}

// DeleteUser removes the provider account, the local profile mirror and any
// admin membership. An account the provider no longer knows counts as already
// deleted; the local cleanup still runs. Membership cleanup failure is
// suppressed so a half-deleted user does not keep their account.
func (s *AdminService) DeleteUser(ctx context.Context, callerID, userID string) error {
	err := s.accounts.DeleteAccount(ctx, userID)
	if err != nil && !errors.Is(err, identity.ErrAccountNotFound) {
		return fmt.Errorf("failed to delete identity account: %w", err)
	}
	if errors.Is(err, identity.ErrAccountNotFound) {
		s.log.WarnContext(ctx, "identity account already absent", "user_id", userID)
	}

	if err := s.profiles.DeleteProfile(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if err := s.profiles.RevokeAdmin(ctx, userID); err != nil {
		s.log.ErrorContext(ctx, "failed to clean up admin membership", "user_id", userID, "error", err)
	}

	s.log.InfoContext(ctx, "user deleted", "user_id", userID, "deleted_by", callerID)
	return nil
}

// ToggleAdmin grants membership when absent and revokes it when present.
func (s *AdminService) ToggleAdmin(ctx context.Context, callerID, userID string) (bool, error) {
	isAdmin, err := s.profiles.IsAdmin(ctx, userID)
	if err != nil {
		return false, err
	}

	if isAdmin {
		if err := s.profiles.RevokeAdmin(ctx, userID); err != nil {
			return true, err
		}
		s.log.InfoContext(ctx, "admin revoked", "user_id", userID, "by", callerID)
		return false, nil
	}

	if err := s.profiles.GrantAdmin(ctx, userID, callerID); err != nil {
		return false, err
	}
	s.log.InfoContext(ctx, "admin granted", "user_id", userID, "by", callerID)
	return true, nil
}

func (s *AdminService) RenameUser(ctx context.Context, callerID, userID, name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}

	if err := s.accounts.UpdateName(ctx, userID, name); err != nil {
		return fmt.Errorf("failed to update identity name: %w", err)
	}
	if err := s.profiles.UpdateProfileName(ctx, userID, name); err != nil {
		return fmt.Errorf("failed to update profile name: %w", err)
	}
	return nil
}

func (s *AdminService) UpdateUserPhoto(ctx context.Context, callerID, userID, photoURL string) error {
	if photoURL == "" {
		return fmt.Errorf("%w: photo_url is required", ErrInvalidRequest)
	}

	if err := s.accounts.UpdatePhoto(ctx, userID, photoURL); err != nil {
		return fmt.Errorf("failed to update identity photo: %w", err)
	}
	if err := s.profiles.UpdateProfilePhoto(ctx, userID, photoURL); err != nil {
		return fmt.Errorf("failed to update profile photo: %w", err)
	}
	return nil
}
