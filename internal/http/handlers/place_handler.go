// README: Place registry handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/place"
)

type PlaceHandler struct {
	places *place.Service
}

func NewPlaceHandler(svc *place.Service) *PlaceHandler {
	return &PlaceHandler{places: svc}
}

type addPlaceReq struct {
	PlaceName string  `json:"placeName"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *PlaceHandler) Add(c *gin.Context) {
	var req addPlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.places.Add(c.Request.Context(), req.PlaceName, req.Latitude, req.Longitude)
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Location created successfully", "locationId": p.ID})
}

func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.places.List(c.Request.Context())
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": places})
}
