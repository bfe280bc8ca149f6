package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/:hotelId", h.GetHotel)
}

func (h *Handler) ListHotels(c *gin.Context) {
	userID := c.GetInt64("user_id")

	hotels, err := h.service.ListHotels(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No hotel access for this user")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}

	c.JSON(http.StatusOK, hotels)
}

func (h *Handler) GetHotel(c *gin.Context) {
	userID := c.GetInt64("user_id")

	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), hotelID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotel")
		return
	}

	c.JSON(http.StatusOK, hotel)
}
