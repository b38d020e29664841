package domain

import (
	"errors"
	"time"
)

const (
	UserTypeVoiceActor = "voice_actor"
	UserTypeClient     = "client"
)

var ErrValidation = errors.New("validation failed")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")

// ValidUserType reports whether t is one of the two marketplace sides.
func ValidUserType(t string) bool {
	return t == UserTypeVoiceActor || t == UserTypeClient
}

// User models a registered account on either side of the marketplace.
// UserType is fixed at registration and never changes.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	UserType     string    `json:"user_type" bson:"user_type"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
