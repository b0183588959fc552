// README: Service rating submitted by a passenger.
package rating

import (
	"time"

	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type Rating struct {
	ID        types.ID  `firestore:"-" json:"id"`
	UserID    types.ID  `firestore:"userId" json:"userId"`
	Username  string    `firestore:"username" json:"username"`
	Rating    int       `firestore:"rating" json:"rating"`
	Feedback  string    `firestore:"feedback" json:"feedback"`
	Reply     bool      `firestore:"reply" json:"reply"`
	Timestamp time.Time `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}
