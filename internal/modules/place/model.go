// README: Named campus place used as pickup/dropoff point.
package place

import "github.com/GroupB-499/RidePSUBackend/internal/types"

type Place struct {
	ID        types.ID `firestore:"-" json:"id"`
	PlaceName string   `firestore:"placeName" json:"placeName"`
	Latitude  float64  `firestore:"latitude" json:"latitude"`
	Longitude float64  `firestore:"longitude" json:"longitude"`
}
