// README: Current/next ride handlers for passengers and drivers.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/ride"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type RideHandler struct {
	resolver *ride.Resolver
	now      func() time.Time
}

func NewRideHandler(resolver *ride.Resolver) *RideHandler {
	return &RideHandler{resolver: resolver, now: time.Now}
}

func (h *RideHandler) CurrentForPassenger(c *gin.Context) {
	r, err := h.resolver.NextForPassenger(c.Request.Context(), types.ID(c.Param("userId")), h.now())
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RideHandler) CurrentForDriver(c *gin.Context) {
	r, err := h.resolver.NextForDriver(c.Request.Context(), types.ID(c.Param("driverId")), h.now())
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
