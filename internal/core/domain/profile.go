package domain

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

// DemoCategories is the fixed tag set a demo may be filed under.
var DemoCategories = []string{
	"Commercial",
	"Narration",
	"Character",
	"Audiobook",
	"Documentary",
	"E-Learning",
	"IVR",
	"Video Game",
	"Animation",
	"Podcast",
}

// ValidDemoCategory reports whether c belongs to DemoCategories.
func ValidDemoCategory(c string) bool {
	for _, cat := range DemoCategories {
		if cat == c {
			return true
		}
	}
	return false
}

// Demo is a single audio sample owned by a voice actor profile.
// Demos keep their addition order inside the profile.
type Demo struct {
	ID              string `json:"id" bson:"id"`
	Title           string `json:"title" bson:"title"`
	URL             string `json:"url" bson:"url"`
	DurationSeconds int    `json:"duration_seconds" bson:"duration_seconds"`
	Category        string `json:"category" bson:"category"`
}

// VoiceActorProfile is the public listing a voice actor maintains,
// keyed 1:1 by the owning user. Saves replace the whole record.
type VoiceActorProfile struct {
	UserID      string   `json:"user_id" bson:"_id"`
	Bio         string   `json:"bio" bson:"bio"`
	Specialties []string `json:"specialties" bson:"specialties"`
	Languages   []string `json:"languages" bson:"languages"`
	Experience  string   `json:"experience" bson:"experience"`
	Rate        float64  `json:"rate" bson:"rate"`
	Demos       []Demo   `json:"demos" bson:"demos"`
}

// ClientProfile is the hiring side's profile, keyed 1:1 by the owning user.
type ClientProfile struct {
	UserID  string `json:"user_id" bson:"_id"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`
	Bio     string `json:"bio" bson:"bio"`
}
