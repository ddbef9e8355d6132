package entity

import "time"

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Conversation is a persisted assistant chat thread owned by one user.
type Conversation struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Title     string    `json:"title,omitempty" firestore:"title,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type ConversationMessage struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversationId"`
	UserID         string    `json:"user_id,omitempty" firestore:"userId,omitempty"`
	SenderType     string    `json:"sender_type" firestore:"senderType"`
	Message        string    `json:"message" firestore:"message"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}
