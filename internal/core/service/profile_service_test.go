package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

type stubClientProfileRepo struct {
	byOwner map[string]*domain.ClientProfile
}

func newStubClientProfileRepo() *stubClientProfileRepo {
	return &stubClientProfileRepo{byOwner: make(map[string]*domain.ClientProfile)}
}

func (r *stubClientProfileRepo) Upsert(_ context.Context, p *domain.ClientProfile) error {
	clone := *p
	r.byOwner[p.UserID] = &clone
	return nil
}

func (r *stubClientProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.ClientProfile, error) {
	p, ok := r.byOwner[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func seedUser(t *testing.T, users *stubUserRepo, id, userType string) {
	t.Helper()
	err := users.Create(context.Background(), &domain.User{
		ID:        id,
		Name:      "User " + id,
		Email:     id + "@example.com",
		UserType:  userType,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func newProfileSvc(users *stubUserRepo) (*ProfileService, *stubVoiceActorProfileRepo, *stubClientProfileRepo) {
	vaRepo := newStubVoiceActorProfileRepo()
	cliRepo := newStubClientProfileRepo()
	return NewProfileService(users, vaRepo, cliRepo, zerolog.Nop()), vaRepo, cliRepo
}

func TestProfileService_SaveAndGetVoiceActorProfile(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "va1", domain.UserTypeVoiceActor)
	svc, _, _ := newProfileSvc(users)

	profile := domain.VoiceActorProfile{
		UserID:      "va1",
		Bio:         "Warm and versatile",
		Specialties: []string{"Commercial", "Narration"},
		Languages:   []string{"English"},
		Experience:  "10 years",
		Rate:        150,
		Demos: []domain.Demo{
			{ID: "d1", Title: "Radio spot", URL: "https://example.com/d1.mp3", DurationSeconds: 45, Category: "Commercial"},
		},
	}

	saved, err := svc.SaveVoiceActorProfile(context.Background(), profile)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := svc.GetVoiceActorProfile(context.Background(), "va1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(got, saved) {
		t.Fatalf("roundtrip mismatch:\nsaved %+v\ngot   %+v", saved, got)
	}
}

func TestProfileService_SaveVoiceActorProfile_ReplacesInFull(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "va1", domain.UserTypeVoiceActor)
	svc, _, _ := newProfileSvc(users)

	first := domain.VoiceActorProfile{
		UserID:      "va1",
		Bio:         "First bio",
		Specialties: []string{"Commercial"},
		Rate:        100,
		Demos: []domain.Demo{
			{ID: "d1", Title: "Spot", Category: "Commercial", DurationSeconds: 30},
		},
	}
	if _, err := svc.SaveVoiceActorProfile(context.Background(), first); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	// Saving the identical record again must not change anything.
	if _, err := svc.SaveVoiceActorProfile(context.Background(), first); err != nil {
		t.Fatalf("idempotent save failed: %v", err)
	}
	got, _ := svc.GetVoiceActorProfile(context.Background(), "va1")
	if got.Bio != "First bio" || len(got.Demos) != 1 {
		t.Fatalf("idempotent save changed the record: %+v", got)
	}

	// A save that omits demos clears them: last write wins, no merge.
	second := domain.VoiceActorProfile{UserID: "va1", Bio: "Second bio", Rate: 200}
	if _, err := svc.SaveVoiceActorProfile(context.Background(), second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	got, _ = svc.GetVoiceActorProfile(context.Background(), "va1")
	if got.Bio != "Second bio" || got.Rate != 200 {
		t.Fatalf("expected replacement, got %+v", got)
	}
	if len(got.Demos) != 0 || len(got.Specialties) != 0 {
		t.Fatalf("expected omitted fields cleared, got %+v", got)
	}
}

func TestProfileService_SaveVoiceActorProfile_Validation(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "va1", domain.UserTypeVoiceActor)
	seedUser(t, users, "cli1", domain.UserTypeClient)
	svc, _, _ := newProfileSvc(users)

	cases := []struct {
		name    string
		profile domain.VoiceActorProfile
	}{
		{"empty user id", domain.VoiceActorProfile{}},
		{"unknown user", domain.VoiceActorProfile{UserID: "missing"}},
		{"wrong user type", domain.VoiceActorProfile{UserID: "cli1"}},
		{"negative rate", domain.VoiceActorProfile{UserID: "va1", Rate: -5}},
		{"demo without title", domain.VoiceActorProfile{UserID: "va1", Demos: []domain.Demo{{ID: "d1", Category: "Commercial"}}}},
		{"demo bad category", domain.VoiceActorProfile{UserID: "va1", Demos: []domain.Demo{{ID: "d1", Title: "X", Category: "Jingle"}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SaveVoiceActorProfile(context.Background(), tc.profile); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestProfileService_GetVoiceActorProfile_Absent(t *testing.T) {
	svc, _, _ := newProfileSvc(newStubUserRepo())

	got, err := svc.GetVoiceActorProfile(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("expected nil error for absent profile, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil profile, got %+v", got)
	}
}

func TestProfileService_SaveAndGetClientProfile(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "cli1", domain.UserTypeClient)
	svc, _, _ := newProfileSvc(users)

	saved, err := svc.SaveClientProfile(context.Background(), domain.ClientProfile{
		UserID:  "cli1",
		Company: "Acme Studios",
		Bio:     "We make ads",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := svc.GetClientProfile(context.Background(), "cli1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(got, saved) {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", got, saved)
	}

	// Company is optional.
	if _, err := svc.SaveClientProfile(context.Background(), domain.ClientProfile{UserID: "cli1", Bio: "updated"}); err != nil {
		t.Fatalf("save without company failed: %v", err)
	}
	got, _ = svc.GetClientProfile(context.Background(), "cli1")
	if got.Company != "" || got.Bio != "updated" {
		t.Fatalf("expected replacement, got %+v", got)
	}
}

func TestProfileService_SaveClientProfile_WrongType(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "va1", domain.UserTypeVoiceActor)
	svc, _, _ := newProfileSvc(users)

	if _, err := svc.SaveClientProfile(context.Background(), domain.ClientProfile{UserID: "va1"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
