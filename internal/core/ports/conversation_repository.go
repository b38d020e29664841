package ports

import (
	"context"
	"time"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

// ConversationRepository defines persistence for conversation threads.
type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) error
	// FindByID returns domain.ErrConversationNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Conversation, error)
	// FindByPairKey locates the unique conversation for an unordered
	// participant pair (see domain.PairKey). Returns
	// domain.ErrConversationNotFound when the pair has never talked.
	FindByPairKey(ctx context.Context, pairKey string) (*domain.Conversation, error)
	// ListByParticipant returns every conversation userID takes part in.
	// No ordering is guaranteed; callers sort.
	ListByParticipant(ctx context.Context, userID string) ([]domain.Conversation, error)
	// RecordMessage updates the thread's denormalized tail state after an
	// append: last message preview, last message time, and the receiver's
	// unread counter incremented by one.
	RecordMessage(ctx context.Context, convID, content string, ts time.Time, receiverID string) error
	// ResetUnread zeroes userID's unread counter on the conversation.
	ResetUnread(ctx context.Context, convID, userID string) error
}

// MessageRepository defines persistence for individual messages.
type MessageRepository interface {
	Append(ctx context.Context, msg *domain.Message) error
	// ListByConversation returns the conversation's messages in
	// chronological (insertion) order. Unknown ids yield an empty slice.
	ListByConversation(ctx context.Context, convID string) ([]domain.Message, error)
	// MarkReadForUser flips every unread message addressed to userID in
	// the conversation to read.
	MarkReadForUser(ctx context.Context, convID, userID string) error
}

// PairLocker serializes conversation creation per participant pair across
// processes. The in-process mutex already seals the find-then-create race
// for a single instance; a distributed implementation (Redis SET NX)
// extends the guarantee to multi-replica deployments.
type PairLocker interface {
	// Claim attempts to take the pair key. False means another writer
	// holds it right now.
	Claim(ctx context.Context, pairKey string) (bool, error)
	Release(ctx context.Context, pairKey string) error
}
