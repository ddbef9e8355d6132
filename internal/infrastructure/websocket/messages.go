package websocket

import (
	"encoding/json"
	"time"

	"findhere/pkg/logger"
)

const (
	MessageTypePing          = "ping"
	MessageTypePong          = "pong"
	MessageTypeInquiry       = "inquiry"
	MessageTypeInquiryStatus = "inquiry_status"
	MessageTypeReview        = "review"
)

type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func encode(msgType string, data interface{}) ([]byte, error) {
	return json.Marshal(WSMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Notify sends a typed event to userID if they are connected.
func (m *Manager) Notify(userID, msgType string, data interface{}) bool {
	raw, err := encode(msgType, data)
	if err != nil {
		logger.Error("websocket encode %s failed: %v", msgType, err)
		return false
	}
	return m.SendToUser(userID, raw)
}

// handleInbound answers application-level pings. Anything else is dropped.
func handleInbound(raw []byte) ([]byte, bool) {
	var msg WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, false
	}
	if msg.Type != MessageTypePing {
		return nil, false
	}

	reply, err := encode(MessageTypePong, nil)
	if err != nil {
		return nil, false
	}
	return reply, true
}
