package handler

import "github.com/franthony00/VoiceLink/internal/core/domain"

type startConversationRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content"     validate:"required"`
}

type conversationResponse struct {
	Conversation *domain.Conversation `json:"conversation"`
	// Existing is true when the pair had talked before and the stored
	// thread was returned instead of a new one.
	Existing bool `json:"existing"`
}
