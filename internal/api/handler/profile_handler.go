package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/franthony00/VoiceLink/internal/api/metrics"
	"github.com/franthony00/VoiceLink/internal/core/domain"
	"github.com/franthony00/VoiceLink/internal/core/ports"
)

// ProfileHandler handles the authenticated owner's profile reads and saves.
type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetVoiceActorProfile returns the caller's voice actor profile.
//
// @Summary      Get my voice actor profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.VoiceActorProfile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profile/voice-actor [get]
func (h *ProfileHandler) GetVoiceActorProfile(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetVoiceActorProfile(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	if profile == nil {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	return c.JSON(http.StatusOK, profile)
}

// PutVoiceActorProfile replaces the caller's voice actor profile in full.
//
// @Summary      Save my voice actor profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      voiceActorProfileRequest  true  "Profile contents"
// @Success      200   {object}  domain.VoiceActorProfile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/profile/voice-actor [put]
func (h *ProfileHandler) PutVoiceActorProfile(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req voiceActorProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	demos := make([]domain.Demo, 0, len(req.Demos))
	for _, d := range req.Demos {
		demos = append(demos, domain.Demo{
			ID:              d.ID,
			Title:           d.Title,
			URL:             d.URL,
			DurationSeconds: d.DurationSeconds,
			Category:        d.Category,
		})
	}

	profile, err := h.profileService.SaveVoiceActorProfile(c.Request().Context(), domain.VoiceActorProfile{
		UserID:      id.UserID,
		Bio:         req.Bio,
		Specialties: req.Specialties,
		Languages:   req.Languages,
		Experience:  req.Experience,
		Rate:        req.Rate,
		Demos:       demos,
	})
	if err != nil {
		return err
	}

	metrics.ProfileSavesTotal.WithLabelValues(domain.UserTypeVoiceActor).Inc()
	return c.JSON(http.StatusOK, profile)
}

// GetClientProfile returns the caller's client profile.
//
// @Summary      Get my client profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ClientProfile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profile/client [get]
func (h *ProfileHandler) GetClientProfile(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetClientProfile(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	if profile == nil {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	return c.JSON(http.StatusOK, profile)
}

// PutClientProfile replaces the caller's client profile in full.
//
// @Summary      Save my client profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientProfileRequest  true  "Profile contents"
// @Success      200   {object}  domain.ClientProfile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/profile/client [put]
func (h *ProfileHandler) PutClientProfile(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req clientProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.profileService.SaveClientProfile(c.Request().Context(), domain.ClientProfile{
		UserID:  id.UserID,
		Company: req.Company,
		Bio:     req.Bio,
	})
	if err != nil {
		return err
	}

	metrics.ProfileSavesTotal.WithLabelValues(domain.UserTypeClient).Inc()
	return c.JSON(http.StatusOK, profile)
}
