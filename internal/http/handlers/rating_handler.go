// README: Rating handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GroupB-499/RidePSUBackend/internal/modules/rating"
	"github.com/GroupB-499/RidePSUBackend/internal/types"
)

type RatingHandler struct {
	ratings *rating.Service
}

func NewRatingHandler(svc *rating.Service) *RatingHandler {
	return &RatingHandler{ratings: svc}
}

type submitRatingReq struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

func (h *RatingHandler) Submit(c *gin.Context) {
	var req submitRatingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.ratings.Submit(c.Request.Context(), rating.SubmitCommand{
		UserID:   types.ID(req.UserID),
		Username: req.Username,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted successfully!"})
}

func (h *RatingHandler) List(c *gin.Context) {
	ratings, err := h.ratings.List(c.Request.Context())
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

func (h *RatingHandler) ListByUser(c *gin.Context) {
	ratings, err := h.ratings.ListByUser(c.Request.Context(), types.ID(c.Param("userId")))
	if err != nil {
		writeModuleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}
