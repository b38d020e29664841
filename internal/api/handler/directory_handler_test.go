package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/franthony00/VoiceLink/internal/core/domain"
	"github.com/franthony00/VoiceLink/internal/core/ports"
)

func TestDirectoryHandler_List(t *testing.T) {
	e := newEcho()
	auth := &stubAuthService{
		listActorsFn: func(ctx context.Context) ([]ports.VoiceActorListing, error) {
			return []ports.VoiceActorListing{
				{
					User:    domain.User{ID: "va1", Name: "Maria", Email: "maria@example.com"},
					Profile: domain.VoiceActorProfile{UserID: "va1", Bio: "Warm"},
				},
			}, nil
		},
	}
	handler := NewDirectoryHandler(auth, &stubProfileService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/voice-actors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "Maria" {
		t.Fatalf("unexpected listing: %+v", resp)
	}
	// The directory never exposes account emails.
	if _, ok := resp[0]["email"]; ok {
		t.Fatalf("email leaked into the public directory: %+v", resp[0])
	}
}

func TestDirectoryHandler_Get(t *testing.T) {
	e := newEcho()
	auth := &stubAuthService{
		getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: "va1", Name: "Maria", UserType: domain.UserTypeVoiceActor}, nil
		},
	}
	profiles := &stubProfileService{
		getVAFn: func(ctx context.Context, userID string) (*domain.VoiceActorProfile, error) {
			return &domain.VoiceActorProfile{UserID: "va1", Bio: "Warm"}, nil
		},
	}
	handler := NewDirectoryHandler(auth, profiles)

	req := httptest.NewRequest(http.MethodGet, "/v1/voice-actors/va1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("va1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDirectoryHandler_Get_NotAVoiceActor(t *testing.T) {
	e := newEcho()
	auth := &stubAuthService{
		getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: "cli1", Name: "Acme", UserType: domain.UserTypeClient}, nil
		},
	}
	handler := NewDirectoryHandler(auth, &stubProfileService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/voice-actors/cli1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("cli1")

	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestDirectoryHandler_Get_Unknown(t *testing.T) {
	e := newEcho()
	auth := &stubAuthService{
		getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, nil
		},
	}
	handler := NewDirectoryHandler(auth, &stubProfileService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/voice-actors/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 error, got %v", err)
	}
}
