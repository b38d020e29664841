package handler

import "github.com/franthony00/VoiceLink/internal/core/domain"

type demoRequest struct {
	ID              string `json:"id"               validate:"required"`
	Title           string `json:"title"            validate:"required"`
	URL             string `json:"url"              validate:"omitempty,url"`
	DurationSeconds int    `json:"duration_seconds" validate:"gte=0"`
	Category        string `json:"category"         validate:"required"`
}

type voiceActorProfileRequest struct {
	Bio         string        `json:"bio"`
	Specialties []string      `json:"specialties"`
	Languages   []string      `json:"languages"`
	Experience  string        `json:"experience"`
	Rate        float64       `json:"rate" validate:"gte=0"`
	Demos       []demoRequest `json:"demos" validate:"dive"`
}

type clientProfileRequest struct {
	Company string `json:"company"`
	Bio     string `json:"bio"`
}

// voiceActorListingResponse joins the public account fields with the saved
// profile for directory listings. Email stays private to the owner.
type voiceActorListingResponse struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	CreatedAt string                    `json:"created_at"`
	Profile   *domain.VoiceActorProfile `json:"profile"`
}
