package memory

import (
	"context"
	"time"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

// UserRepository implements ports.UserRepository over the shared store.
type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) ListByType(_ context.Context, userType string) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]domain.User, 0)
	for _, u := range r.s.users {
		if u.UserType == userType {
			users = append(users, *cloneUser(u))
		}
	}
	sortUsers(users)
	return users, nil
}

// VoiceActorProfileRepository implements ports.VoiceActorProfileRepository.
type VoiceActorProfileRepository struct {
	s *Store
}

func (r *VoiceActorProfileRepository) Upsert(_ context.Context, profile *domain.VoiceActorProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.vaProfiles[profile.UserID] = cloneVoiceActorProfile(profile)
	return nil
}

func (r *VoiceActorProfileRepository) FindByUserID(_ context.Context, userID string) (*domain.VoiceActorProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.vaProfiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneVoiceActorProfile(p), nil
}

func (r *VoiceActorProfileRepository) ListAll(_ context.Context) ([]domain.VoiceActorProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	profiles := make([]domain.VoiceActorProfile, 0, len(r.s.vaProfiles))
	for _, p := range r.s.vaProfiles {
		profiles = append(profiles, *cloneVoiceActorProfile(p))
	}
	return profiles, nil
}

// ClientProfileRepository implements ports.ClientProfileRepository.
type ClientProfileRepository struct {
	s *Store
}

func (r *ClientProfileRepository) Upsert(_ context.Context, profile *domain.ClientProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.clientProfiles[profile.UserID] = cloneClientProfile(profile)
	return nil
}

func (r *ClientProfileRepository) FindByUserID(_ context.Context, userID string) (*domain.ClientProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.clientProfiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneClientProfile(p), nil
}

// ConversationRepository implements ports.ConversationRepository. Threads
// are indexed by id and by pair key so both lookups stay O(1).
type ConversationRepository struct {
	s *Store
}

func (r *ConversationRepository) Create(_ context.Context, conv *domain.Conversation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.convs[conv.ID] = cloneConversation(conv)
	r.s.convsByPair[conv.PairKey] = conv.ID
	return nil
}

func (r *ConversationRepository) FindByID(_ context.Context, id string) (*domain.Conversation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	conv, ok := r.s.convs[id]
	if !ok {
		return nil, domain.ErrConversationNotFound
	}
	return cloneConversation(conv), nil
}

func (r *ConversationRepository) FindByPairKey(_ context.Context, pairKey string) (*domain.Conversation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.convsByPair[pairKey]
	if !ok {
		return nil, domain.ErrConversationNotFound
	}
	return cloneConversation(r.s.convs[id]), nil
}

func (r *ConversationRepository) ListByParticipant(_ context.Context, userID string) ([]domain.Conversation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	convs := make([]domain.Conversation, 0)
	for _, conv := range r.s.convs {
		if conv.HasParticipant(userID) {
			convs = append(convs, *cloneConversation(conv))
		}
	}
	return convs, nil
}

func (r *ConversationRepository) RecordMessage(_ context.Context, convID, content string, ts time.Time, receiverID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	conv, ok := r.s.convs[convID]
	if !ok {
		return domain.ErrConversationNotFound
	}
	conv.LastMessage = content
	conv.LastMessageTime = ts
	conv.UnreadCount[receiverID]++
	return nil
}

func (r *ConversationRepository) ResetUnread(_ context.Context, convID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	conv, ok := r.s.convs[convID]
	if !ok {
		return domain.ErrConversationNotFound
	}
	conv.UnreadCount[userID] = 0
	return nil
}

// MessageRepository implements ports.MessageRepository. Messages live in a
// per-conversation slice in append order, which the service guarantees is
// also chronological order.
type MessageRepository struct {
	s *Store
}

func (r *MessageRepository) Append(_ context.Context, msg *domain.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.messages[msg.ConversationID] = append(r.s.messages[msg.ConversationID], *msg)
	return nil
}

func (r *MessageRepository) ListByConversation(_ context.Context, convID string) ([]domain.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]domain.Message(nil), r.s.messages[convID]...), nil
}

func (r *MessageRepository) MarkReadForUser(_ context.Context, convID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	msgs := r.s.messages[convID]
	for i := range msgs {
		if msgs[i].ReceiverID == userID {
			msgs[i].Read = true
		}
	}
	return nil
}

// SessionStore implements ports.SessionStore with a single in-process
// current-user pointer.
type SessionStore struct {
	s *Store
}

func (r *SessionStore) Set(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessionUserID = userID
	return nil
}

func (r *SessionStore) Get(_ context.Context) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.sessionUserID, nil
}

func (r *SessionStore) Clear(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessionUserID = ""
	return nil
}
