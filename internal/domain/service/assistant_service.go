package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	DefaultChatModel       = "deepseek-chat"
	DefaultChatMaxTokens   = 500
	DefaultChatTemperature = 0.7
)

// EmptyCompletionReply is returned when the provider answers without a choice.
const EmptyCompletionReply = "I'm sorry, I couldn't generate a response."

// ErrAssistantNotConfigured means no provider credentials were supplied.
var ErrAssistantNotConfigured = errors.New("assistant provider API key not configured")

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter turns a message list into the assistant's next reply.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// DeepSeekService talks to an OpenAI-compatible /chat/completions endpoint.
type DeepSeekService struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

func NewDeepSeekService(apiKey, baseURL, model string) *DeepSeekService {
	if baseURL == "" {
		baseURL = "https://api.deepseek.com"
	}
	if model == "" {
		model = DefaultChatModel
	}

	return &DeepSeekService{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		maxTokens:   DefaultChatMaxTokens,
		temperature: DefaultChatTemperature,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

func (s *DeepSeekService) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	if s.apiKey == "" {
		return "", ErrAssistantNotConfigured
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion API error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return EmptyCompletionReply, nil
	}
	return parsed.Choices[0].Message.Content, nil
}
