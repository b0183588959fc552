// README: Booking handlers (create, count, list, delete, delay).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/booking"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

type createBookingReq struct {
	Departure     string `json:"departure"`
	Destination   string `json:"destination"`
	TransportType string `json:"transportType"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	UserID        string `json:"userId"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.bookings.Create(c.Request.Context(), booking.CreateCommand{
		Pickup:        req.Departure,
		Dropoff:       req.Destination,
		TransportType: req.TransportType,
		Date:          req.Date,
		Time:          req.Time,
		UserID:        types.ID(req.UserID),
	})
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Booking created successfully",
		"bookingId":  b.BookingID,
		"scheduleId": b.ScheduleID,
	})
}

func (h *BookingHandler) Count(c *gin.Context) {
	n, err := h.bookings.Count(
		c.Request.Context(),
		c.Query("departure"),
		c.Query("time"),
		c.Query("transportType"),
		c.Query("date"),
	)
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *BookingHandler) ListForUser(c *gin.Context) {
	views, err := h.bookings.ListForUser(c.Request.Context(), types.ID(c.Param("userId")))
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookings.Delete(c.Request.Context(), types.ID(c.Param("bookingId"))); err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully."})
}

type delayReq struct {
	ScheduleID string `json:"scheduleId"`
	DelayTime  int    `json:"delayTime"`
}

func (h *BookingHandler) Delay(c *gin.Context) {
	var req delayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	n, err := h.bookings.Delay(c.Request.Context(), types.ID(req.ScheduleID), req.DelayTime)
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delay applied", "updated": n})
}
