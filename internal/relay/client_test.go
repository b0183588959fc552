// README: Connection pump tests over real websocket connections.
package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type recordingSink struct {
	mu     sync.Mutex
	events []string
}

func (s *recordingSink) RideEvent(_ context.Context, event string, _, _ types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

// newLiveServer runs Serve behind an httptest server and returns the ws URL.
func newLiveServer(t *testing.T, hub *Hub, sink EventSink) string {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		Serve(r.Context(), hub, sink, conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialAndGreet(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	var greeting Message
	if err := conn.ReadJSON(&greeting); err != nil {
		t.Fatalf("reading greeting: %v", err)
	}
	if greeting.Text != "Connected to WebSocket Server" {
		t.Fatalf("greeting = %+v", greeting)
	}
	return conn
}

func pumpGoroutines() int {
	buf := make([]byte, 1<<20)
	n := runtime.Stack(buf, true)
	return strings.Count(string(buf[:n]), ").writePump(")
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %s", what)
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func TestServeReleasesPumpOnDisconnect(t *testing.T) {
	hub := NewHub()
	url := newLiveServer(t, hub, &recordingSink{})
	baseline := pumpGoroutines()

	conns := make([]*websocket.Conn, 0, 5)
	for i := 0; i < 5; i++ {
		conns = append(conns, dialAndGreet(t, url))
	}
	waitFor(t, "all connections registered", func() bool { return hub.ClientCount() == 5 })

	for _, conn := range conns {
		_ = conn.Close()
	}
	waitFor(t, "all connections deregistered", func() bool { return hub.ClientCount() == 0 })
	waitFor(t, "write pumps to exit", func() bool { return pumpGoroutines() == baseline })
}

func TestUnrecognizedKindsDropped(t *testing.T) {
	hub := NewHub()
	sink := &recordingSink{}
	url := newLiveServer(t, hub, sink)
	conn := dialAndGreet(t, url)
	defer conn.Close()

	if err := conn.WriteJSON(Message{Type: "chat", Text: "hello"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(Message{Type: TypeRideStarted, UserID: "U1"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Messages are processed in order, so once ride_started lands the chat
	// message has already been handled.
	waitFor(t, "ride event to reach the sink", func() bool { return len(sink.snapshot()) > 0 })
	if got := sink.snapshot(); len(got) != 1 || got[0] != TypeRideStarted {
		t.Fatalf("sink events = %v, want only %q", got, TypeRideStarted)
	}
}
