package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/franthony00/VoiceLink/internal/core/domain"
	"github.com/franthony00/VoiceLink/internal/core/ports"
)

// ProfileService implements typed profile CRUD over the repositories.
// Saves replace the stored record in full; there is no partial merge, so
// a save that omits demos clears them.
type ProfileService struct {
	users   ports.UserRepository
	vaRepo  ports.VoiceActorProfileRepository
	cliRepo ports.ClientProfileRepository
	log     zerolog.Logger
}

func NewProfileService(
	users ports.UserRepository,
	vaRepo ports.VoiceActorProfileRepository,
	cliRepo ports.ClientProfileRepository,
	log zerolog.Logger,
) *ProfileService {
	return &ProfileService{users: users, vaRepo: vaRepo, cliRepo: cliRepo, log: log}
}

func (s *ProfileService) GetVoiceActorProfile(ctx context.Context, userID string) (*domain.VoiceActorProfile, error) {
	profile, err := s.vaRepo.FindByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) SaveVoiceActorProfile(ctx context.Context, profile domain.VoiceActorProfile) (*domain.VoiceActorProfile, error) {
	if err := s.checkOwner(ctx, profile.UserID, domain.UserTypeVoiceActor); err != nil {
		return nil, err
	}
	if profile.Rate < 0 {
		return nil, fmt.Errorf("%w: rate must be non-negative", domain.ErrValidation)
	}
	for i, demo := range profile.Demos {
		if demo.ID == "" || demo.Title == "" {
			return nil, fmt.Errorf("%w: demo %d is missing id or title", domain.ErrValidation, i)
		}
		if !domain.ValidDemoCategory(demo.Category) {
			return nil, fmt.Errorf("%w: unknown demo category %q", domain.ErrValidation, demo.Category)
		}
	}

	if err := s.vaRepo.Upsert(ctx, &profile); err != nil {
		return nil, fmt.Errorf("save voice actor profile: %w", err)
	}

	s.log.Info().Str("user_id", profile.UserID).Int("demos", len(profile.Demos)).Msg("voice actor profile saved")
	return &profile, nil
}

func (s *ProfileService) GetClientProfile(ctx context.Context, userID string) (*domain.ClientProfile, error) {
	profile, err := s.cliRepo.FindByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) SaveClientProfile(ctx context.Context, profile domain.ClientProfile) (*domain.ClientProfile, error) {
	if err := s.checkOwner(ctx, profile.UserID, domain.UserTypeClient); err != nil {
		return nil, err
	}

	if err := s.cliRepo.Upsert(ctx, &profile); err != nil {
		return nil, fmt.Errorf("save client profile: %w", err)
	}

	s.log.Info().Str("user_id", profile.UserID).Msg("client profile saved")
	return &profile, nil
}

// checkOwner rejects profiles whose key is empty, points at an unknown
// user, or points at a user on the wrong side of the marketplace.
func (s *ProfileService) checkOwner(ctx context.Context, userID, wantType string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	owner, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("%w: user %s does not exist", domain.ErrValidation, userID)
	}
	if err != nil {
		return err
	}
	if owner.UserType != wantType {
		return fmt.Errorf("%w: user %s is not a %s", domain.ErrValidation, userID, wantType)
	}
	return nil
}
