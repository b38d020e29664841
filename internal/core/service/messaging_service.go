package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/franthony00/VoiceLink/internal/core/domain"
	"github.com/franthony00/VoiceLink/internal/core/ports"
)

// MessagingService implements conversation discovery, message append, and
// unread bookkeeping. The find-then-create in StartConversation is a
// check-then-act sequence, so it runs under mu; the optional PairLocker
// extends the same exclusion across replicas sharing one store.
type MessagingService struct {
	convs    ports.ConversationRepository
	messages ports.MessageRepository
	locker   ports.PairLocker // nil when running single-instance
	log      zerolog.Logger

	mu sync.Mutex
}

func NewMessagingService(
	convs ports.ConversationRepository,
	messages ports.MessageRepository,
	locker ports.PairLocker,
	log zerolog.Logger,
) *MessagingService {
	return &MessagingService{convs: convs, messages: messages, locker: locker, log: log}
}

func (s *MessagingService) StartConversation(ctx context.Context, input ports.StartConversationInput) (*ports.ConversationResult, error) {
	if input.UserAID == "" || input.UserBID == "" {
		return nil, fmt.Errorf("%w: participant ids are required", domain.ErrValidation)
	}
	if input.UserAID == input.UserBID {
		return nil, domain.ErrSelfConversation
	}

	pairKey := domain.PairKey(input.UserAID, input.UserBID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locker != nil {
		claimed, err := s.locker.Claim(ctx, pairKey)
		if err != nil {
			s.log.Warn().Err(err).Str("pair", pairKey).Msg("pair lock unavailable, relying on local mutex")
		} else if claimed {
			defer func() {
				if err := s.locker.Release(ctx, pairKey); err != nil {
					s.log.Warn().Err(err).Str("pair", pairKey).Msg("failed to release pair lock")
				}
			}()
		}
	}

	existing, err := s.convs.FindByPairKey(ctx, pairKey)
	if err == nil {
		// Replay: the existing thread is returned untouched — names and
		// timestamps keep their first-contact snapshot.
		return &ports.ConversationResult{Conversation: existing, AlreadyExisted: true}, nil
	}
	if !errors.Is(err, domain.ErrConversationNotFound) {
		return nil, fmt.Errorf("find conversation: %w", err)
	}

	now := time.Now().UTC()
	conv := &domain.Conversation{
		ID:           uuid.NewString(),
		Participants: [2]string{input.UserAID, input.UserBID},
		ParticipantNames: map[string]string{
			input.UserAID: input.UserAName,
			input.UserBID: input.UserBName,
		},
		LastMessageTime: now,
		UnreadCount: map[string]int{
			input.UserAID: 0,
			input.UserBID: 0,
		},
		PairKey:   pairKey,
		CreatedAt: now,
	}

	if err := s.convs.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	s.log.Info().Str("conversation_id", conv.ID).Str("pair", pairKey).Msg("conversation created")
	return &ports.ConversationResult{Conversation: conv}, nil
}

func (s *MessagingService) ListConversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	return s.convs.ListByParticipant(ctx, userID)
}

func (s *MessagingService) ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	return s.messages.ListByConversation(ctx, conversationID)
}

func (s *MessagingService) SendMessage(ctx context.Context, input ports.SendMessageInput) (*domain.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	conv, err := s.convs.FindByID(ctx, input.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(input.SenderID) || conv.OtherParticipant(input.SenderID) != input.ReceiverID {
		return nil, fmt.Errorf("%w: sender and receiver must be the conversation's participants", domain.ErrValidation)
	}

	// Timestamps within a thread are strictly increasing so chronological
	// order and insertion order never diverge, even inside one clock tick.
	ts := time.Now().UTC()
	if !ts.After(conv.LastMessageTime) {
		ts = conv.LastMessageTime.Add(time.Millisecond)
	}

	msg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderID:       input.SenderID,
		SenderName:     input.SenderName,
		ReceiverID:     input.ReceiverID,
		Content:        content,
		Timestamp:      ts,
	}

	if err := s.messages.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	if err := s.convs.RecordMessage(ctx, conv.ID, content, ts, input.ReceiverID); err != nil {
		return nil, fmt.Errorf("update conversation tail: %w", err)
	}

	s.log.Debug().Str("conversation_id", conv.ID).Str("sender_id", input.SenderID).Msg("message sent")
	return msg, nil
}

// MarkRead zeroes the user's unread counter and reconciles the per-message
// read flags with it. Unknown conversations are a no-op: the UI calls this
// optimistically whenever a thread is opened.
func (s *MessagingService) MarkRead(ctx context.Context, conversationID, userID string) error {
	if err := s.convs.ResetUnread(ctx, conversationID, userID); err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			return nil
		}
		return fmt.Errorf("reset unread: %w", err)
	}
	if err := s.messages.MarkReadForUser(ctx, conversationID, userID); err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	return nil
}
