// README: Notification record and device-token registration.
package notify

import (
	"time"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

// Notification is one delivered-notification record per user. Timestamp is
// server-assigned on write.
type Notification struct {
	ID        types.ID  `firestore:"-" json:"id"`
	UserID    types.ID  `firestore:"userId" json:"userId"`
	Title     string    `firestore:"title" json:"title"`
	Body      string    `firestore:"body" json:"body"`
	Timestamp time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}

// Registration holds a user's push tokens. Tokens accumulate by set-union as
// the user registers more devices; expired tokens are never evicted here.
type Registration struct {
	UserID types.ID `firestore:"userId" json:"userId"`
	Role   string   `firestore:"role" json:"role"`
	Tokens []string `firestore:"tokens" json:"tokens"`
}
