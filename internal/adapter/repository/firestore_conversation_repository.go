package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/pkg/errors"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

func (r *firestoreConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}

	now := time.Now()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	_, err := r.client.Collection(conversationsCollection).Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return errors.Internal("Failed to create conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.client.Collection(conversationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conversation, nil
}

func (r *firestoreConversationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	q := r.client.Collection(conversationsCollection).
		Where("userId", "==", userID).
		OrderBy("updatedAt", firestore.Desc)

	return collect[entity.Conversation](ctx, q, "conversations")
}

func (r *firestoreConversationRepository) AddMessage(ctx context.Context, message *entity.ConversationMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	conversation := r.client.Collection(conversationsCollection).Doc(message.ConversationID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(conversation.Collection(messagesCollection).Doc(message.ID), message); err != nil {
			return err
		}
		return tx.Update(conversation, []firestore.Update{
			{Path: "updatedAt", Value: message.CreatedAt},
		})
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to add conversation message", err)
	}

	return nil
}

func (r *firestoreConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.ConversationMessage, error) {
	q := r.client.Collection(conversationsCollection).Doc(conversationID).
		Collection(messagesCollection).
		OrderBy("createdAt", firestore.Asc)

	return collect[entity.ConversationMessage](ctx, q, "conversation messages")
}
