// README: Push-token registration and notification history handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/notify"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type NotifyHandler struct {
	notify *notify.Service
}

func NewNotifyHandler(svc *notify.Service) *NotifyHandler {
	return &NotifyHandler{notify: svc}
}

type registerTokenReq struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

func (h *NotifyHandler) RegisterToken(c *gin.Context) {
	var req registerTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.notify.RegisterToken(c.Request.Context(), types.ID(req.UserID), req.Role, req.Token); err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token registered successfully"})
}

func (h *NotifyHandler) ListForUser(c *gin.Context) {
	notifications, err := h.notify.ListForUser(c.Request.Context(), types.ID(c.Param("userId")))
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
