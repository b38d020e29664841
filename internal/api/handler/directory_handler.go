package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/franthony00/VoiceLink/internal/core/domain"
	"github.com/franthony00/VoiceLink/internal/core/ports"
)

// DirectoryHandler serves the browsable voice actor directory: the join of
// accounts and saved profiles that clients hire from.
type DirectoryHandler struct {
	authService    ports.AuthService
	profileService ports.ProfileService
}

func NewDirectoryHandler(authService ports.AuthService, profileService ports.ProfileService) *DirectoryHandler {
	return &DirectoryHandler{authService: authService, profileService: profileService}
}

// List returns every voice actor with a saved profile.
//
// @Summary      List voice actors
// @Tags         directory
// @Produce      json
// @Success      200  {array}  voiceActorListingResponse
// @Router       /v1/voice-actors [get]
func (h *DirectoryHandler) List(c echo.Context) error {
	listings, err := h.authService.ListVoiceActors(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]voiceActorListingResponse, 0, len(listings))
	for i := range listings {
		resp = append(resp, toListingResponse(&listings[i].User, &listings[i].Profile))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one voice actor by id, with their profile when saved.
//
// @Summary      Get a voice actor
// @Tags         directory
// @Produce      json
// @Param        id   path      string  true  "Voice actor user id"
// @Success      200  {object}  voiceActorListingResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/voice-actors/{id} [get]
func (h *DirectoryHandler) Get(c echo.Context) error {
	userID := c.Param("id")

	user, err := h.authService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if user == nil || user.UserType != domain.UserTypeVoiceActor {
		return echo.NewHTTPError(http.StatusNotFound, "voice actor not found")
	}

	profile, err := h.profileService.GetVoiceActorProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListingResponse(user, profile))
}

func toListingResponse(user *domain.User, profile *domain.VoiceActorProfile) voiceActorListingResponse {
	return voiceActorListingResponse{
		ID:        user.ID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		Profile:   profile,
	}
}
