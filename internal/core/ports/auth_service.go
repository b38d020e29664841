package ports

import (
	"context"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	UserType string
}

// VoiceActorListing joins a voice actor account with its saved profile.
// Accounts that never saved a profile do not appear in listings.
type VoiceActorListing struct {
	User    domain.User
	Profile domain.VoiceActorProfile
}

// AuthService owns identity: registration, login/logout, the current
// session pointer, and account lookups.
type AuthService interface {
	// Register creates the account, establishes it as the current session
	// identity, and returns the stored user. domain.ErrEmailTaken on collision.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login authenticates and returns a signed token plus the user.
	// domain.ErrInvalidCredentials covers both unknown email and bad password.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser reads the session identity without side effects.
	// Returns (nil, nil) when no session exists.
	CurrentUser(ctx context.Context) (*domain.User, error)
	// GetUserByID is a point lookup independent of the session.
	// Returns (nil, nil) when the id is unknown.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	// ListVoiceActors returns every voice actor that has a saved profile,
	// joined with that profile, in stable CreatedAt-then-ID order.
	ListVoiceActors(ctx context.Context) ([]VoiceActorListing, error)
	// Logout clears the session identity. Idempotent.
	Logout(ctx context.Context) error
}
