package repository

import (
	"context"

	"findhere/internal/domain/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error)
	// AddMessage stores the message and bumps the conversation's updatedAt.
	AddMessage(ctx context.Context, message *entity.ConversationMessage) error
	// ListMessages returns messages oldest first.
	ListMessages(ctx context.Context, conversationID string) ([]*entity.ConversationMessage, error)
}
