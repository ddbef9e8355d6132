package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startManager(t *testing.T) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := NewManager()
	m.Start(ctx)
	return m
}

func newTestClient(userID string, buffer int) *Client {
	return &Client{UserID: userID, Send: make(chan []byte, buffer), done: make(chan struct{})}
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestManagerNotifyRegisteredUser(t *testing.T) {
	m := startManager(t)
	client := newTestClient("seller-1", 1)

	require.True(t, m.Connect(client))
	require.Eventually(t, func() bool { return m.IsOnline("seller-1") }, time.Second, 5*time.Millisecond)

	assert.True(t, m.Notify("seller-1", MessageTypeInquiry, map[string]string{"inquiry_id": "i1"}))

	var msg WSMessage
	require.NoError(t, json.Unmarshal(<-client.Send, &msg))
	assert.Equal(t, MessageTypeInquiry, msg.Type)
	assert.NotEmpty(t, msg.Timestamp)
}

func TestManagerSendToOfflineOrFullUser(t *testing.T) {
	m := startManager(t)
	assert.False(t, m.SendToUser("nobody", []byte("x")))

	client := newTestClient("u", 1)
	require.True(t, m.Connect(client))
	require.Eventually(t, func() bool { return m.IsOnline("u") }, time.Second, 5*time.Millisecond)

	assert.True(t, m.SendToUser("u", []byte("first")))
	assert.False(t, m.SendToUser("u", []byte("second")))
}

func TestManagerStaleUnregisterKeepsNewConnection(t *testing.T) {
	m := startManager(t)
	old := newTestClient("u", 1)
	fresh := newTestClient("u", 1)

	require.True(t, m.Connect(old))
	require.True(t, m.Connect(fresh))
	m.Disconnect(old)

	// The manager loop handles one message at a time, so a follow-up
	// registration proves the unregister above was processed.
	marker := newTestClient("marker", 1)
	require.True(t, m.Connect(marker))
	require.Eventually(t, func() bool { return m.IsOnline("marker") }, time.Second, 5*time.Millisecond)

	assert.True(t, m.IsOnline("u"))
	assert.True(t, m.SendToUser("u", []byte("hello")))
	assert.Equal(t, "hello", string(<-fresh.Send))

	assert.True(t, isClosed(old.Done()))
	assert.False(t, isClosed(fresh.Done()))
}

func dialAs(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func newHubServer(t *testing.T, m *Manager) *httptest.Server {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(r.URL.Query().Get("user"), conn)
		if !m.Connect(client) {
			conn.Close()
			return
		}
		go client.ReadPump(m)
		go client.WritePump()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestReconnectWhilePinging(t *testing.T) {
	m := startManager(t)
	srv := newHubServer(t, m)
	ping := []byte(`{"type":"ping"}`)

	first := dialAs(t, srv, "u")
	require.Eventually(t, func() bool { return m.IsOnline("u") }, time.Second, 5*time.Millisecond)

	firstClosed := make(chan struct{})
	go func() {
		defer close(firstClosed)
		for {
			if _, _, err := first.ReadMessage(); err != nil {
				return
			}
		}
	}()

	stop := make(chan struct{})
	pinging := make(chan struct{})
	go func() {
		defer close(pinging)
		for {
			select {
			case <-stop:
				return
			default:
			}
			if err := first.WriteMessage(websocket.TextMessage, ping); err != nil {
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()

	time.Sleep(20 * time.Millisecond)
	second := dialAs(t, srv, "u")

	select {
	case <-firstClosed:
	case <-time.After(2 * time.Second):
		t.Fatal("replaced connection was not closed")
	}
	close(stop)
	<-pinging

	require.NoError(t, second.WriteMessage(websocket.TextMessage, ping))
	require.NoError(t, second.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := second.ReadMessage()
	require.NoError(t, err)

	var msg WSMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, MessageTypePong, msg.Type)
	assert.True(t, m.IsOnline("u"))
}

func TestConnectAfterShutdownDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager()
	m.Start(ctx)

	live := newTestClient("live", 1)
	require.True(t, m.Connect(live))
	cancel()

	require.Eventually(t, func() bool {
		return !m.Connect(newTestClient("late", 1))
	}, time.Second, 5*time.Millisecond)
	assert.True(t, isClosed(live.Done()))

	returned := make(chan struct{})
	go func() {
		m.Disconnect(live)
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Disconnect blocked after shutdown")
	}
}

func TestHandleInboundPing(t *testing.T) {
	reply, ok := handleInbound([]byte(`{"type":"ping"}`))
	require.True(t, ok)

	var msg WSMessage
	require.NoError(t, json.Unmarshal(reply, &msg))
	assert.Equal(t, MessageTypePong, msg.Type)

	_, ok = handleInbound([]byte(`{"type":"something"}`))
	assert.False(t, ok)
	_, ok = handleInbound([]byte(`garbage`))
	assert.False(t, ok)
}
