package admin

import (
	"errors"
	"net/http"
	"strconv"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already guarded by the admin role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/submissions/pending", h.PendingSubmissions)
	rg.PATCH("/submissions/:id/approval", h.SetApproval)
	rg.GET("/stats", h.Statistics)
}

func (h *Handler) PendingSubmissions(c *gin.Context) {
	subs, err := h.service.ListPendingSubmissions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load pending submissions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submissions": subs})
}

func (h *Handler) SetApproval(c *gin.Context) {
	submissionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid submission ID")
		return
	}

	var req SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Field approved is required")
		return
	}

	sub, err := h.service.SetApproval(c.Request.Context(), submissionID, *req.Approved)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update approval")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": sub})
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
