package ports

import (
	"context"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

// StartConversationInput identifies both participants of a thread.
// Names are display-name snapshots taken at first contact.
type StartConversationInput struct {
	UserAID   string
	UserAName string
	UserBID   string
	UserBName string
}

// ConversationResult is returned by StartConversation.
type ConversationResult struct {
	Conversation *domain.Conversation
	// AlreadyExisted is true when the pair had talked before and the
	// existing thread was returned untouched.
	AlreadyExisted bool
}

// SendMessageInput carries one outgoing message.
type SendMessageInput struct {
	ConversationID string
	SenderID       string
	SenderName     string
	ReceiverID     string
	Content        string
}

// MessagingService owns conversation discovery, message append, and
// unread-count bookkeeping.
type MessagingService interface {
	// StartConversation is idempotent per unordered participant pair:
	// the first call creates the thread, every later call (either
	// ordering) returns the same thread without refreshing names or
	// timestamps. domain.ErrSelfConversation when both ids are equal.
	StartConversation(ctx context.Context, input StartConversationInput) (*ConversationResult, error)
	// ListConversations returns every thread the user takes part in,
	// in no guaranteed order.
	ListConversations(ctx context.Context, userID string) ([]domain.Conversation, error)
	// ListMessages returns the thread's messages in chronological order;
	// an unknown id yields an empty slice, never an error.
	ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error)
	// SendMessage appends to the thread and bumps the receiver's unread
	// counter. domain.ErrEmptyMessage when the content trims to nothing,
	// domain.ErrConversationNotFound for an unknown thread.
	SendMessage(ctx context.Context, input SendMessageInput) (*domain.Message, error)
	// MarkRead zeroes the user's unread counter and flips their received
	// unread messages to read. Tolerates unknown conversation ids.
	MarkRead(ctx context.Context, conversationID, userID string) error
}
