package ports

import (
	"context"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when another
	// user already holds the same email (exact, case-sensitive match).
	Create(ctx context.Context, user *domain.User) error
	// FindByEmail retrieves a user by exact email match.
	// Returns domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID retrieves a user by id. Returns domain.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListByType returns every user of the given type, ordered by
	// CreatedAt then ID for determinism across backends.
	ListByType(ctx context.Context, userType string) ([]domain.User, error)
}

// SessionStore holds the single current-session pointer: the id of the
// user recognized as logged in for the active browsing context. It is
// injected rather than global so multiple sessions can run in isolation.
type SessionStore interface {
	// Set records userID as the current session identity.
	Set(ctx context.Context, userID string) error
	// Get returns the current session's user id, or "" when no session exists.
	Get(ctx context.Context) (string, error)
	// Clear drops the session identity. Idempotent.
	Clear(ctx context.Context) error
}
