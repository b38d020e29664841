package ports

import (
	"context"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

// VoiceActorProfileRepository defines persistence for voice actor profiles.
type VoiceActorProfileRepository interface {
	// Upsert writes the profile keyed by UserID, replacing any prior
	// record in full (last write wins, no merge).
	Upsert(ctx context.Context, profile *domain.VoiceActorProfile) error
	// FindByUserID returns domain.ErrProfileNotFound when no profile is saved.
	FindByUserID(ctx context.Context, userID string) (*domain.VoiceActorProfile, error)
	// ListAll returns every saved voice actor profile.
	ListAll(ctx context.Context) ([]domain.VoiceActorProfile, error)
}

// ClientProfileRepository defines persistence for client profiles.
type ClientProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.ClientProfile) error
	// FindByUserID returns domain.ErrProfileNotFound when no profile is saved.
	FindByUserID(ctx context.Context, userID string) (*domain.ClientProfile, error)
}
