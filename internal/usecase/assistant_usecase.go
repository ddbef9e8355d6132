package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"
	"unicode/utf8"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/internal/domain/service"
	"findhere/internal/infrastructure/ratelimit"
	"findhere/pkg/errors"
	"findhere/pkg/logger"
)

const AssistantSystemPrompt = "You are FindHere AI Assistant, a helpful AI that specializes in sustainable marketplace recommendations. " +
	"Help users find eco-friendly products, provide shopping advice, and suggest sustainable alternatives. " +
	"Keep responses friendly, concise, and focused on environmental benefits."

const (
	CodeAssistantNotConfigured = "ASSISTANT_NOT_CONFIGURED"

	maxAssistantMessage = 2000
	maxHistoryMessages  = 20
	maxTitleLength      = 60
)

// RateLimiter is satisfied by ratelimit.RateLimiter.
type RateLimiter interface {
	Allow(subject, action string) (bool, time.Duration)
}

type AssistantUseCase struct {
	completer     service.ChatCompleter
	kb            *service.KnowledgeBase
	conversations repository.ConversationRepository
	limiter       RateLimiter
	configured    bool
}

// NewAssistantUseCase wires the assistant. configured is false when no
// provider key is set; every chat then fails with ASSISTANT_NOT_CONFIGURED.
func NewAssistantUseCase(
	completer service.ChatCompleter,
	kb *service.KnowledgeBase,
	conversations repository.ConversationRepository,
	limiter RateLimiter,
	configured bool,
) *AssistantUseCase {
	if kb == nil {
		kb = service.DefaultKnowledgeBase()
	}
	return &AssistantUseCase{
		completer:     completer,
		kb:            kb,
		conversations: conversations,
		limiter:       limiter,
		configured:    configured,
	}
}

type ChatInput struct {
	Message             string                `json:"message" validate:"required"`
	ConversationHistory []service.ChatMessage `json:"conversation_history"`
	ConversationID      string                `json:"conversation_id"`
}

type ChatResult struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id,omitempty"`
	// Fallback is set when the reply came from the built-in knowledge base.
	Fallback bool `json:"fallback"`
}

type ConversationWithMessages struct {
	*entity.Conversation
	Messages []*entity.ConversationMessage `json:"messages"`
}

// Chat answers message. userID is empty for anonymous callers, who are rate
// limited by clientIP instead and never get a stored conversation.
func (uc *AssistantUseCase) Chat(ctx context.Context, userID, clientIP string, input ChatInput) (*ChatResult, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, errors.BadRequest("Message is required", nil)
	}
	if utf8.RuneCountInString(message) > maxAssistantMessage {
		return nil, errors.BadRequest("Message is too long", nil)
	}

	if !uc.configured {
		return nil, errors.NotConfigured(CodeAssistantNotConfigured, "Assistant API key not configured", nil)
	}

	if uc.limiter != nil {
		subject := userID
		if subject == "" {
			subject = "ip:" + clientIP
		}
		if ok, wait := uc.limiter.Allow(subject, ratelimit.ActionAssistantChat); !ok {
			return nil, errors.TooManyRequests("Too many assistant requests", int(wait.Seconds()+0.5))
		}
	}

	history, conversation, err := uc.history(ctx, userID, message, input)
	if err != nil {
		return nil, err
	}

	messages := make([]service.ChatMessage, 0, len(history)+2)
	messages = append(messages, service.ChatMessage{Role: service.RoleSystem, Content: AssistantSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, service.ChatMessage{Role: service.RoleUser, Content: message})

	result := &ChatResult{}
	reply, err := uc.completer.Complete(ctx, messages)
	switch {
	case stderrors.Is(err, service.ErrAssistantNotConfigured):
		return nil, errors.NotConfigured(CodeAssistantNotConfigured, "Assistant API key not configured", err)
	case err != nil:
		logger.Warn("assistant provider failed, answering from knowledge base: %v", err)
		reply = uc.kb.Answer(message)
		result.Fallback = true
	}
	result.Response = reply

	if conversation != nil {
		result.ConversationID = conversation.ID
		uc.store(ctx, conversation.ID, userID, entity.SenderUser, message)
		uc.store(ctx, conversation.ID, "", entity.SenderAssistant, reply)
	}

	return result, nil
}

// history returns the prior turns to send along with message, and the stored
// conversation the new turns belong to (nil for anonymous callers).
func (uc *AssistantUseCase) history(ctx context.Context, userID, message string, input ChatInput) ([]service.ChatMessage, *entity.Conversation, error) {
	if input.ConversationID != "" {
		if userID == "" {
			return nil, nil, errors.Unauthorized("Sign in to continue a saved conversation", nil)
		}
		conversation, err := uc.ownedConversation(ctx, userID, input.ConversationID)
		if err != nil {
			return nil, nil, err
		}
		stored, err := uc.conversations.ListMessages(ctx, conversation.ID)
		if err != nil {
			return nil, nil, err
		}
		return trimHistory(fromStored(stored)), conversation, nil
	}

	history := trimHistory(sanitizeHistory(input.ConversationHistory))
	if userID == "" || uc.conversations == nil {
		return history, nil, nil
	}

	conversation := &entity.Conversation{UserID: userID, Title: titleFrom(message)}
	if err := uc.conversations.Create(ctx, conversation); err != nil {
		logger.Warn("failed to create conversation for %s: %v", userID, err)
		return history, nil, nil
	}
	return history, conversation, nil
}

func (uc *AssistantUseCase) store(ctx context.Context, conversationID, userID, sender, text string) {
	err := uc.conversations.AddMessage(ctx, &entity.ConversationMessage{
		ConversationID: conversationID,
		UserID:         userID,
		SenderType:     sender,
		Message:        text,
	})
	if err != nil {
		logger.Warn("failed to store %s message in conversation %s: %v", sender, conversationID, err)
	}
}

// sanitizeHistory keeps only user and assistant turns so callers cannot
// inject their own system prompt.
func sanitizeHistory(in []service.ChatMessage) []service.ChatMessage {
	out := make([]service.ChatMessage, 0, len(in))
	for _, m := range in {
		if m.Role != service.RoleUser && m.Role != service.RoleAssistant {
			continue
		}
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

func fromStored(stored []*entity.ConversationMessage) []service.ChatMessage {
	out := make([]service.ChatMessage, 0, len(stored))
	for _, m := range stored {
		role := service.RoleUser
		if m.SenderType == entity.SenderAssistant {
			role = service.RoleAssistant
		}
		out = append(out, service.ChatMessage{Role: role, Content: m.Message})
	}
	return out
}

func trimHistory(history []service.ChatMessage) []service.ChatMessage {
	if len(history) > maxHistoryMessages {
		return history[len(history)-maxHistoryMessages:]
	}
	return history
}

func titleFrom(message string) string {
	if utf8.RuneCountInString(message) <= maxTitleLength {
		return message
	}
	return string([]rune(message)[:maxTitleLength]) + "..."
}

func (uc *AssistantUseCase) ownedConversation(ctx context.Context, userID, id string) (*entity.Conversation, error) {
	if uc.conversations == nil {
		return nil, errors.NotFound("Conversation", nil)
	}
	conversation, err := uc.conversations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Someone else's conversation is reported as missing.
	if conversation.UserID != userID {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (uc *AssistantUseCase) ListConversations(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	if uc.conversations == nil {
		return []*entity.Conversation{}, nil
	}
	return uc.conversations.ListByUser(ctx, userID)
}

func (uc *AssistantUseCase) GetConversation(ctx context.Context, userID, id string) (*ConversationWithMessages, error) {
	conversation, err := uc.ownedConversation(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	messages, err := uc.conversations.ListMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ConversationWithMessages{Conversation: conversation, Messages: messages}, nil
}
