package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/franthony00/VoiceLink/internal/core/domain"
	"github.com/franthony00/VoiceLink/internal/core/ports"
)

// dummyHash is compared against when the email is unknown, so login cost
// stays flat whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration, login, and session identity.
type AuthService struct {
	users     ports.UserRepository
	vaRepo    ports.VoiceActorProfileRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	vaRepo ports.VoiceActorProfileRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		vaRepo:    vaRepo,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", domain.ErrValidation)
	}
	if !domain.ValidUserType(input.UserType) {
		return nil, fmt.Errorf("%w: unknown user type %q", domain.ErrValidation, input.UserType)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		UserType:     input.UserType,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Registration doubles as login: the new account becomes the session identity.
	if err := s.sessions.Set(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to persist session marker")
	}

	s.log.Info().Str("user_id", user.ID).Str("user_type", user.UserType).Msg("user registered")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))

	hash := dummyHash
	if err == nil {
		hash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if err != nil || compareErr != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	if err := s.sessions.Set(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to persist session marker")
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// CurrentUser resolves the session pointer to a user. A missing session or
// a stale pointer both read as "not logged in".
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if userID == "" {
		return nil, nil
	}
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListVoiceActors joins voice actor accounts with their saved profiles.
// Accounts without a profile are excluded from the directory.
func (s *AuthService) ListVoiceActors(ctx context.Context) ([]ports.VoiceActorListing, error) {
	users, err := s.users.ListByType(ctx, domain.UserTypeVoiceActor)
	if err != nil {
		return nil, fmt.Errorf("list voice actors: %w", err)
	}

	profiles, err := s.vaRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list voice actor profiles: %w", err)
	}
	byOwner := make(map[string]domain.VoiceActorProfile, len(profiles))
	for _, p := range profiles {
		byOwner[p.UserID] = p
	}

	listings := make([]ports.VoiceActorListing, 0, len(users))
	for _, u := range users {
		profile, ok := byOwner[u.ID]
		if !ok {
			continue
		}
		listings = append(listings, ports.VoiceActorListing{User: u, Profile: profile})
	}
	return listings, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"name":      user.Name,
		"user_type": user.UserType,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// normalizeEmail exists to make the matching policy explicit: emails are
// compared exactly as stored, case-sensitively. Whether registration should
// fold case instead is a product decision; changing it here would be the
// single place to do so.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
