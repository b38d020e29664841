// Package memory is the embedded storage backend: every repository port
// served from process-local maps guarded by a single RWMutex. A put is
// visible to any read issued after it returns, and nothing blocks on I/O,
// which is exactly the contract the core's synchronous call model assumes.
package memory

import (
	"sort"
	"sync"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

// Store owns all collections. Repositories handed out by its accessors
// share the same lock, so cross-collection updates stay consistent.
type Store struct {
	mu sync.RWMutex

	users          map[string]*domain.User
	vaProfiles     map[string]*domain.VoiceActorProfile
	clientProfiles map[string]*domain.ClientProfile
	convs          map[string]*domain.Conversation
	convsByPair    map[string]string
	messages       map[string][]domain.Message

	sessionUserID string
}

func NewStore() *Store {
	return &Store{
		users:          make(map[string]*domain.User),
		vaProfiles:     make(map[string]*domain.VoiceActorProfile),
		clientProfiles: make(map[string]*domain.ClientProfile),
		convs:          make(map[string]*domain.Conversation),
		convsByPair:    make(map[string]string),
		messages:       make(map[string][]domain.Message),
	}
}

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

func (s *Store) VoiceActorProfiles() *VoiceActorProfileRepository {
	return &VoiceActorProfileRepository{s: s}
}

func (s *Store) ClientProfiles() *ClientProfileRepository {
	return &ClientProfileRepository{s: s}
}

func (s *Store) Conversations() *ConversationRepository { return &ConversationRepository{s: s} }

func (s *Store) Messages() *MessageRepository { return &MessageRepository{s: s} }

func (s *Store) Sessions() *SessionStore { return &SessionStore{s: s} }

// Records are cloned on the way in and out so callers can never alias the
// stored state; the store stays the single owner of every record.

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func cloneVoiceActorProfile(p *domain.VoiceActorProfile) *domain.VoiceActorProfile {
	clone := *p
	clone.Specialties = append([]string(nil), p.Specialties...)
	clone.Languages = append([]string(nil), p.Languages...)
	clone.Demos = append([]domain.Demo(nil), p.Demos...)
	return &clone
}

func cloneClientProfile(p *domain.ClientProfile) *domain.ClientProfile {
	clone := *p
	return &clone
}

func cloneConversation(c *domain.Conversation) *domain.Conversation {
	clone := *c
	clone.ParticipantNames = make(map[string]string, len(c.ParticipantNames))
	for k, v := range c.ParticipantNames {
		clone.ParticipantNames[k] = v
	}
	clone.UnreadCount = make(map[string]int, len(c.UnreadCount))
	for k, v := range c.UnreadCount {
		clone.UnreadCount[k] = v
	}
	return &clone
}

func sortUsers(users []domain.User) {
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].ID < users[j].ID
	})
}
