// README: Schedule handlers (CRUD + driver assignment).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/schedule"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type ScheduleHandler struct {
	schedules *schedule.Service
}

func NewScheduleHandler(svc *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{schedules: svc}
}

type addScheduleReq struct {
	Time             string   `json:"time"`
	PickupLocations  []string `json:"pickupLocations"`
	DropoffLocations []string `json:"dropoffLocations"`
	TransportType    string   `json:"transportType"`
}

func (h *ScheduleHandler) Add(c *gin.Context) {
	var req addScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	sch, err := h.schedules.Add(c.Request.Context(), schedule.AddCommand{
		Time:             req.Time,
		PickupLocations:  req.PickupLocations,
		DropoffLocations: req.DropoffLocations,
		TransportType:    req.TransportType,
	})
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Schedule added successfully!", "id": sch.ID, "schedule": sch})
}

func (h *ScheduleHandler) List(c *gin.Context) {
	if driverID := c.Query("driverId"); driverID != "" {
		schedules, err := h.schedules.ListByDriver(c.Request.Context(), types.ID(driverID))
		if err != nil {
			writeModuleError(c, err)
			return
		}
		c.JSON(http.StatusOK, schedules)
		return
	}
	schedules, err := h.schedules.List(c.Request.Context())
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	sch, err := h.schedules.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, sch)
}

type updateScheduleReq struct {
	Time             *string  `json:"time"`
	EndTime          *string  `json:"endTime"`
	PickupLocations  []string `json:"pickupLocations"`
	DropoffLocations []string `json:"dropoffLocations"`
	TransportType    *string  `json:"transportType"`
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	var req updateScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id := types.ID(c.Param("id"))
	err := h.schedules.Update(c.Request.Context(), id, schedule.UpdateCommand{
		Time:             req.Time,
		EndTime:          req.EndTime,
		PickupLocations:  req.PickupLocations,
		DropoffLocations: req.DropoffLocations,
		TransportType:    req.TransportType,
	})
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated successfully!", "id": id})
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.schedules.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully!"})
}

type assignDriverReq struct {
	DriverID      string `json:"driverId"`
	StartTimeFrom string `json:"startTimeFrom"`
	StartTimeTo   string `json:"startTimeTo"`
	TransportType string `json:"transportType"`
}

func (h *ScheduleHandler) AssignDriver(c *gin.Context) {
	var req assignDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	assigned, err := h.schedules.AssignDriver(c.Request.Context(), schedule.AssignCommand{
		DriverID:      types.ID(req.DriverID),
		StartTimeFrom: req.StartTimeFrom,
		StartTimeTo:   req.StartTimeTo,
		TransportType: req.TransportType,
	})
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver assigned successfully", "scheduleIds": assigned})
}
