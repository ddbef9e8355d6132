package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"findhere/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 16
)

// Client is one live connection. A user has at most one; a newer connection
// replaces the older one.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	// Send is never closed; done signals the pumps to stop.
	Send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
}

// Done is closed once the client has been replaced, removed or shut down.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Manager owns the user -> client map. Registrations are processed by the
// loop started with Start.
type Manager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.register:
				m.mutex.Lock()
				if old, ok := m.clients[client.UserID]; ok && old != client {
					old.close()
				}
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Debug("websocket client registered: %s", client.UserID)

			case client := <-m.unregister:
				m.mutex.Lock()
				// Only the current connection may remove the entry.
				if current, ok := m.clients[client.UserID]; ok && current == client {
					delete(m.clients, client.UserID)
				}
				m.mutex.Unlock()
				client.close()
				logger.Debug("websocket client unregistered: %s", client.UserID)

			case <-ctx.Done():
				m.mutex.Lock()
				close(m.done)
				for id, client := range m.clients {
					client.close()
					delete(m.clients, id)
				}
				m.mutex.Unlock()
				return
			}
		}
	}()
}

// Connect hands client to the hub. It returns false once the hub has shut
// down; the caller then owns closing the connection.
func (m *Manager) Connect(client *Client) bool {
	select {
	case m.register <- client:
		return true
	case <-m.done:
		client.close()
		return false
	}
}

// Disconnect removes client if it is still the user's current connection.
func (m *Manager) Disconnect(client *Client) {
	select {
	case m.unregister <- client:
	case <-m.done:
		client.close()
	}
}

func (m *Manager) IsOnline(userID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// SendToUser queues message for userID. It never blocks: it reports false
// when the user is offline or their buffer is full.
func (m *Manager) SendToUser(userID string, message []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	client, ok := m.clients[userID]
	if !ok {
		return false
	}

	select {
	case client.Send <- message:
		return true
	default:
		logger.Warn("websocket send buffer full for user %s, dropping message", userID)
		return false
	}
}

// ReadPump drains the connection so control frames are processed. Inbound
// frames other than pings are ignored; the channel is server-to-client.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Disconnect(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket read error for %s: %v", c.UserID, err)
			}
			return
		}

		reply, ok := handleInbound(raw)
		if !ok {
			continue
		}
		select {
		case <-c.done:
			return
		case c.Send <- reply:
		default:
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("websocket write error for %s: %v", c.UserID, err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
