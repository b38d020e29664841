package ports

import (
	"context"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

// ProfileService owns typed profile CRUD. Saves are full-record upserts:
// omitting a field on save clears it, there is no partial merge.
type ProfileService interface {
	// GetVoiceActorProfile returns (nil, nil) when no profile is saved.
	GetVoiceActorProfile(ctx context.Context, userID string) (*domain.VoiceActorProfile, error)
	// SaveVoiceActorProfile validates the owner and replaces the record.
	// domain.ErrValidation when UserID is empty, unknown, or not a voice actor,
	// when Rate is negative, or when a demo is malformed.
	SaveVoiceActorProfile(ctx context.Context, profile domain.VoiceActorProfile) (*domain.VoiceActorProfile, error)
	// GetClientProfile returns (nil, nil) when no profile is saved.
	GetClientProfile(ctx context.Context, userID string) (*domain.ClientProfile, error)
	// SaveClientProfile validates the owner and replaces the record.
	SaveClientProfile(ctx context.Context, profile domain.ClientProfile) (*domain.ClientProfile, error)
}
