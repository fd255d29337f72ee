package hotel

import (
	"errors"
	"net/http"

	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group guarded by the hotel owner role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.SubmitHotel)
	rg.GET("/hotels/my", h.MyListings)
}

func (h *Handler) SubmitHotel(c *gin.Context) {
	var req SubmitHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid hotel submission", errs)
		return
	}

	sub, err := h.service.SubmitHotel(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Between 1 and 15 images are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit hotel")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": sub})
}

func (h *Handler) MyListings(c *gin.Context) {
	listings, err := h.service.MyListings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotels")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": listings})
}
