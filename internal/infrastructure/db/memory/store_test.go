package memory

import (
	"context"
	"testing"
	"time"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	store := NewStore()
	users := store.Users()
	ctx := context.Background()

	u := &domain.User{
		ID:        "u1",
		Name:      "Maria",
		Email:     "maria@example.com",
		UserType:  domain.UserTypeVoiceActor,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := users.Create(ctx, &domain.User{ID: "u2", Email: "maria@example.com"}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	byEmail, err := users.FindByEmail(ctx, "maria@example.com")
	if err != nil || byEmail.ID != "u1" {
		t.Fatalf("find by email: got %+v, %v", byEmail, err)
	}
	byID, err := users.FindByID(ctx, "u1")
	if err != nil || byID.Email != "maria@example.com" {
		t.Fatalf("find by id: got %+v, %v", byID, err)
	}

	if _, err := users.FindByEmail(ctx, "nobody@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := users.FindByID(ctx, "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_ListByTypeOrdered(t *testing.T) {
	store := NewStore()
	users := store.Users()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seed := []domain.User{
		{ID: "c", Email: "c@x.com", UserType: domain.UserTypeVoiceActor, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "b", Email: "b@x.com", UserType: domain.UserTypeVoiceActor, CreatedAt: base},
		{ID: "a", Email: "a@x.com", UserType: domain.UserTypeVoiceActor, CreatedAt: base},
		{ID: "z", Email: "z@x.com", UserType: domain.UserTypeClient, CreatedAt: base},
	}
	for i := range seed {
		if err := users.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed %s: %v", seed[i].ID, err)
		}
	}

	actors, err := users.ListByType(ctx, domain.UserTypeVoiceActor)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	wantOrder := []string{"a", "b", "c"}
	if len(actors) != len(wantOrder) {
		t.Fatalf("expected %d actors, got %d", len(wantOrder), len(actors))
	}
	for i, want := range wantOrder {
		if actors[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, actors[i].ID)
		}
	}
}

func TestVoiceActorProfileRepository_UpsertIsolation(t *testing.T) {
	store := NewStore()
	repo := store.VoiceActorProfiles()
	ctx := context.Background()

	original := &domain.VoiceActorProfile{
		UserID:      "va1",
		Bio:         "bio",
		Specialties: []string{"Commercial"},
		Demos:       []domain.Demo{{ID: "d1", Title: "Spot", Category: "Commercial"}},
	}
	if err := repo.Upsert(ctx, original); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// Mutating the caller's slices must not leak into stored state.
	original.Specialties[0] = "Narration"
	original.Demos[0].Title = "changed"

	stored, err := repo.FindByUserID(ctx, "va1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Specialties[0] != "Commercial" || stored.Demos[0].Title != "Spot" {
		t.Fatalf("stored profile aliases caller memory: %+v", stored)
	}

	// Replace in full.
	if err := repo.Upsert(ctx, &domain.VoiceActorProfile{UserID: "va1", Bio: "new"}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	stored, _ = repo.FindByUserID(ctx, "va1")
	if stored.Bio != "new" || len(stored.Demos) != 0 {
		t.Fatalf("expected full replacement, got %+v", stored)
	}

	all, err := repo.ListAll(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("list all: got %d profiles, %v", len(all), err)
	}

	if _, err := repo.FindByUserID(ctx, "missing"); err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestClientProfileRepository_Upsert(t *testing.T) {
	store := NewStore()
	repo := store.ClientProfiles()
	ctx := context.Background()

	if err := repo.Upsert(ctx, &domain.ClientProfile{UserID: "cli1", Company: "Acme"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	got, err := repo.FindByUserID(ctx, "cli1")
	if err != nil || got.Company != "Acme" {
		t.Fatalf("find: got %+v, %v", got, err)
	}
	if _, err := repo.FindByUserID(ctx, "missing"); err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func seedConversation(t *testing.T, store *Store, id, userA, userB string) *domain.Conversation {
	t.Helper()
	now := time.Now().UTC()
	conv := &domain.Conversation{
		ID:               id,
		Participants:     [2]string{userA, userB},
		ParticipantNames: map[string]string{userA: "A", userB: "B"},
		LastMessageTime:  now,
		UnreadCount:      map[string]int{userA: 0, userB: 0},
		PairKey:          domain.PairKey(userA, userB),
		CreatedAt:        now,
	}
	if err := store.Conversations().Create(context.Background(), conv); err != nil {
		t.Fatalf("seed conversation %s: %v", id, err)
	}
	return conv
}

func TestConversationRepository_Lookups(t *testing.T) {
	store := NewStore()
	repo := store.Conversations()
	ctx := context.Background()

	seedConversation(t, store, "c1", "u1", "u2")
	seedConversation(t, store, "c2", "u1", "u3")

	byID, err := repo.FindByID(ctx, "c1")
	if err != nil || byID.ID != "c1" {
		t.Fatalf("find by id: got %+v, %v", byID, err)
	}
	byPair, err := repo.FindByPairKey(ctx, domain.PairKey("u2", "u1"))
	if err != nil || byPair.ID != "c1" {
		t.Fatalf("find by pair key: got %+v, %v", byPair, err)
	}

	if _, err := repo.FindByID(ctx, "missing"); err != domain.ErrConversationNotFound {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
	if _, err := repo.FindByPairKey(ctx, domain.PairKey("u8", "u9")); err != domain.ErrConversationNotFound {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}

	mine, err := repo.ListByParticipant(ctx, "u1")
	if err != nil || len(mine) != 2 {
		t.Fatalf("expected 2 conversations for u1, got %d, %v", len(mine), err)
	}
	theirs, _ := repo.ListByParticipant(ctx, "u3")
	if len(theirs) != 1 || theirs[0].ID != "c2" {
		t.Fatalf("expected only c2 for u3, got %+v", theirs)
	}
}

func TestConversationRepository_RecordMessageAndResetUnread(t *testing.T) {
	store := NewStore()
	repo := store.Conversations()
	ctx := context.Background()

	seedConversation(t, store, "c1", "u1", "u2")

	ts := time.Now().UTC().Add(time.Second)
	if err := repo.RecordMessage(ctx, "c1", "hello", ts, "u2"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := repo.RecordMessage(ctx, "c1", "again", ts.Add(time.Second), "u2"); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	conv, _ := repo.FindByID(ctx, "c1")
	if conv.LastMessage != "again" || conv.UnreadCount["u2"] != 2 || conv.UnreadCount["u1"] != 0 {
		t.Fatalf("tail state wrong: %+v", conv)
	}
	if !conv.LastMessageTime.Equal(ts.Add(time.Second)) {
		t.Fatalf("last message time not advanced: %v", conv.LastMessageTime)
	}

	if err := repo.ResetUnread(ctx, "c1", "u2"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	conv, _ = repo.FindByID(ctx, "c1")
	if conv.UnreadCount["u2"] != 0 {
		t.Fatalf("expected counter zeroed, got %d", conv.UnreadCount["u2"])
	}

	if err := repo.RecordMessage(ctx, "missing", "x", ts, "u2"); err != domain.ErrConversationNotFound {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
	if err := repo.ResetUnread(ctx, "missing", "u2"); err != domain.ErrConversationNotFound {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestMessageRepository_AppendListMarkRead(t *testing.T) {
	store := NewStore()
	repo := store.Messages()
	ctx := context.Background()

	base := time.Now().UTC()
	for i, content := range []string{"one", "two", "three"} {
		msg := &domain.Message{
			ID:             content,
			ConversationID: "c1",
			SenderID:       "u1",
			ReceiverID:     "u2",
			Content:        content,
			Timestamp:      base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Append(ctx, msg); err != nil {
			t.Fatalf("append %s: %v", content, err)
		}
	}

	msgs, err := repo.ListByConversation(ctx, "c1")
	if err != nil || len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d, %v", len(msgs), err)
	}
	for i, want := range []string{"one", "two", "three"} {
		if msgs[i].Content != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, msgs[i].Content)
		}
		if msgs[i].Read {
			t.Fatalf("message %s read before mark", want)
		}
	}

	empty, err := repo.ListByConversation(ctx, "missing")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty slice for unknown conversation, got %v, %v", empty, err)
	}

	if err := repo.MarkReadForUser(ctx, "c1", "u2"); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	msgs, _ = repo.ListByConversation(ctx, "c1")
	for _, m := range msgs {
		if !m.Read {
			t.Fatalf("message %s still unread", m.ID)
		}
	}

	// Marking for the sender leaves their received set untouched (none).
	if err := repo.MarkReadForUser(ctx, "c1", "u1"); err != nil {
		t.Fatalf("mark read for sender failed: %v", err)
	}
}

func TestSessionStore_Lifecycle(t *testing.T) {
	store := NewStore()
	sessions := store.Sessions()
	ctx := context.Background()

	got, err := sessions.Get(ctx)
	if err != nil || got != "" {
		t.Fatalf("expected empty session, got %q, %v", got, err)
	}

	if err := sessions.Set(ctx, "u1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, _ = sessions.Get(ctx)
	if got != "u1" {
		t.Fatalf("expected u1, got %q", got)
	}

	if err := sessions.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := sessions.Clear(ctx); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
	got, _ = sessions.Get(ctx)
	if got != "" {
		t.Fatalf("expected cleared session, got %q", got)
	}
}
