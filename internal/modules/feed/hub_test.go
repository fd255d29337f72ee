package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialTestConn upgrades a real connection into the hub and returns the
// client side. The server side just drains inbound frames.
func dialTestConn(t *testing.T, hub *Hub, userID int64) *websocket.Conn {
	t.Helper()

	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.Register(userID, conn)
		close(registered)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = clientConn.Close() })

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("connection never registered")
	}
	return clientConn
}

// Snapshot broadcasts and keepalive pings target the same connection
// from different goroutines; both must serialize on the hub's
// per-connection lock.
func TestHub_ConcurrentSnapshotAndPing(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	const userID = int64(7)
	const writes = 200

	clientConn := dialTestConn(t, hub, userID)

	serverConn := func() *websocket.Conn {
		hub.mutex.RLock()
		defer hub.mutex.RUnlock()
		return hub.clients[userID].conn
	}()

	received := make(chan struct{})
	go func() {
		defer close(received)
		for i := 0; i < writes; i++ {
			if _, _, err := clientConn.ReadMessage(); err != nil {
				t.Errorf("client read failed after %d messages: %v", i, err)
				return
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			if !hub.SendToUser(userID, map[string]int{"seq": i}) {
				t.Errorf("send %d dropped the connection", i)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			if !hub.Ping(userID, serverConn) {
				t.Errorf("ping %d dropped the connection", i)
				return
			}
		}
	}()
	wg.Wait()

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("client never received all snapshots")
	}
}

// A reconnect replaces the registered connection; pings bound to the
// stale connection must report false so the old loop exits.
func TestHub_PingStopsAfterReconnect(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	const userID = int64(9)

	dialTestConn(t, hub, userID)
	firstConn := func() *websocket.Conn {
		hub.mutex.RLock()
		defer hub.mutex.RUnlock()
		return hub.clients[userID].conn
	}()

	dialTestConn(t, hub, userID)
	secondConn := func() *websocket.Conn {
		hub.mutex.RLock()
		defer hub.mutex.RUnlock()
		return hub.clients[userID].conn
	}()

	if hub.Ping(userID, firstConn) {
		t.Fatal("ping on a replaced connection should report false")
	}
	if !hub.Ping(userID, secondConn) {
		t.Fatal("ping on the live connection should succeed")
	}
}

func TestHub_SendToUnknownUser(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	if hub.SendToUser(42, map[string]string{"type": "trip_snapshot"}) {
		t.Fatal("send to an unconnected user should report false")
	}
}
