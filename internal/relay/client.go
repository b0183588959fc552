// README: WebSocket connection pumps bridging gorilla conns to the hub.
package relay

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

// EventSink receives ride lifecycle events read off a live connection.
// Implemented by the notification service.
type EventSink interface {
	RideEvent(ctx context.Context, event string, userID, scheduleID types.ID) error
}

const (
	sendBuffer   = 16
	writeTimeout = 10 * time.Second
)

// WSClient adapts one gorilla connection to the hub. Outbound messages go
// through a buffered channel drained by a write pump; when the buffer is full
// the message is dropped rather than blocking the publisher.
type WSClient struct {
	hub    *Hub
	sink   EventSink
	conn   *websocket.Conn
	send   chan Message
	done   chan struct{}
	closed atomic.Bool
}

// Serve registers the connection, greets it, and pumps messages until the
// peer disconnects. It blocks until the connection is closed.
func Serve(ctx context.Context, hub *Hub, sink EventSink, conn *websocket.Conn) {
	c := &WSClient{
		hub:  hub,
		sink: sink,
		conn: conn,
		send: make(chan Message, sendBuffer),
		done: make(chan struct{}),
	}
	hub.Register(c)
	defer func() {
		hub.Unregister(c)
		c.closed.Store(true)
		close(c.done)
		_ = conn.Close()
	}()

	go c.writePump()
	c.Send(Message{Text: "Connected to WebSocket Server"})
	c.readPump(ctx)
}

// Send queues a message for delivery. It reports false when the connection is
// closed or its buffer is full; either way the caller moves on.
func (c *WSClient) Send(msg Message) bool {
	if c.closed.Load() {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *WSClient) writePump() {
	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.closed.Store(true)
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *WSClient) readPump(ctx context.Context) {
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		switch msg.Type {
		case TypeDriverLocation:
			c.hub.Publish(DriverLocation{
				Lat:    msg.Lat,
				Lng:    msg.Lng,
				UserID: types.ID(msg.UserID),
				Date:   msg.Date,
				Time:   msg.Time,
			})
		case TypeRideStarted, TypeRideEnded, TypeRideDelayed:
			if err := c.sink.RideEvent(ctx, msg.Type, types.ID(msg.UserID), types.ID(msg.ScheduleID)); err != nil {
				log.Printf("live channel: %s event: %v", msg.Type, err)
			}
		default:
			// unrecognized kinds are dropped
		}
	}
}
