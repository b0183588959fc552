// README: Live-channel message envelope and the transient driver location.
package relay

import "github.com/GroupB-499/RidePSUBackend/internal/types"

// TypeDriverLocation is relayed to every open connection; the ride_* kinds
// instead trigger the notification fan-out and are never re-broadcast.
// Anything else arriving on the channel is dropped.
const (
	TypeDriverLocation = "driver_location"
	TypeRideStarted    = "ride_started"
	TypeRideEnded      = "ride_ended"
	TypeRideDelayed    = "ride_delayed"
)

// Message is the envelope exchanged over a live connection.
type Message struct {
	Type       string  `json:"type,omitempty"`
	Lat        float64 `json:"lat,omitempty"`
	Lng        float64 `json:"lng,omitempty"`
	UserID     string  `json:"userId,omitempty"`
	ScheduleID string  `json:"scheduleId,omitempty"`
	Date       string  `json:"date,omitempty"`
	Time       string  `json:"time,omitempty"`
	Text       string  `json:"message,omitempty"`
}

// DriverLocation is the relay's only state: the most recent position update.
// It is overwritten by each new update and never persisted.
type DriverLocation struct {
	Lat    float64  `json:"lat"`
	Lng    float64  `json:"lng"`
	UserID types.ID `json:"userId"`
	Date   string   `json:"date"`
	Time   string   `json:"time"`
}

func (l DriverLocation) message() Message {
	return Message{
		Type:   TypeDriverLocation,
		Lat:    l.Lat,
		Lng:    l.Lng,
		UserID: string(l.UserID),
		Date:   l.Date,
		Time:   l.Time,
	}
}
