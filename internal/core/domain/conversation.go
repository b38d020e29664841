package domain

import (
	"errors"
	"sort"
	"time"
)

var ErrConversationNotFound = errors.New("conversation not found")
var ErrSelfConversation = errors.New("conversation requires two distinct participants")
var ErrEmptyMessage = errors.New("message content is empty")

// PairKey returns the canonical key for an unordered participant pair.
// Both orderings of the same two user ids map to the same key, which is
// what the at-most-one-conversation-per-pair invariant hangs on.
func PairKey(userA, userB string) string {
	ids := []string{userA, userB}
	sort.Strings(ids)
	return ids[0] + ":" + ids[1]
}

// Conversation is a durable, deduplicated thread between exactly two users.
// ParticipantNames and the per-user unread counters are snapshots owned by
// the conversation; message rows remain the source of the full history.
type Conversation struct {
	ID               string            `json:"id" bson:"_id,omitempty"`
	Participants     [2]string         `json:"participants" bson:"participants"`
	ParticipantNames map[string]string `json:"participant_names" bson:"participant_names"`
	LastMessage      string            `json:"last_message,omitempty" bson:"last_message,omitempty"`
	LastMessageTime  time.Time         `json:"last_message_time" bson:"last_message_time"`
	UnreadCount      map[string]int    `json:"unread_count" bson:"unread_count"`
	PairKey          string            `json:"-" bson:"pair_key"`
	CreatedAt        time.Time         `json:"created_at" bson:"created_at"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.Participants[0] == userID || c.Participants[1] == userID
}

// OtherParticipant returns the participant that is not userID.
func (c *Conversation) OtherParticipant(userID string) string {
	if c.Participants[0] == userID {
		return c.Participants[1]
	}
	return c.Participants[0]
}

// Message is a single chat entry. Immutable once appended except for Read.
// Within a conversation, timestamps are strictly increasing in insertion
// order, so chronological order and insertion order coincide.
type Message struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	ConversationID string    `json:"conversation_id" bson:"conversation_id"`
	SenderID       string    `json:"sender_id" bson:"sender_id"`
	SenderName     string    `json:"sender_name" bson:"sender_name"`
	ReceiverID     string    `json:"receiver_id" bson:"receiver_id"`
	Content        string    `json:"content" bson:"content"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp"`
	Read           bool      `json:"read" bson:"read"`
}
