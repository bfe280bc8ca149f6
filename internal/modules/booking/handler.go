package booking

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
	rg.GET("/booking", h.GetBooking)
	rg.POST("/booking", h.PostBooking)
	rg.PUT("/booking/:bookingId", h.PutBooking)
}

func (h *Handler) GetBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	b, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No booking for this user")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}

	resp := BookingResponse{ID: b.ID}
	if b.Room != nil {
		resp.Room = *b.Room
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PostBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a missing or malformed body falls into the roomId-required path
		req.RoomID = 0
	}

	bookingID, err := h.service.Create(c.Request.Context(), req.RoomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Ticket or room not eligible for booking")
		case errors.Is(err, ErrNoVacancy):
			response.Error(c, http.StatusForbidden, "NO_VACANCY", "Room has no vacancies")
		case errors.Is(err, ErrRoomIDRequired):
			response.Error(c, http.StatusForbidden, "VALIDATION_ERROR", "Room ID required")
		case errors.Is(err, ErrAlreadyBooked):
			response.Error(c, http.StatusForbidden, "ALREADY_BOOKED", "User already has a booking")
		default:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusOK, BookingIDResponse{BookingID: bookingID})
}

func (h *Handler) PutBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	// A non-numeric path param fails the ownership check downstream and
	// comes back as 401, matching the original API.
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		bookingID = 0
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.RoomID = 0
	}

	updatedID, err := h.service.ChangeRoom(c.Request.Context(), req.RoomID, bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room does not exist")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Booking belongs to another user")
		case errors.Is(err, ErrNoVacancy):
			response.Error(c, http.StatusForbidden, "NO_VACANCY", "Room has no vacancies")
		case errors.Is(err, ErrNoActiveBooking):
			response.Error(c, http.StatusForbidden, "NO_ACTIVE_BOOKING", "User has no booking to update")
		case errors.Is(err, ErrRoomIDRequired):
			response.Error(c, http.StatusForbidden, "VALIDATION_ERROR", "Room ID required")
		default:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Failed to update booking")
		}
		return
	}

	c.JSON(http.StatusOK, BookingIDResponse{BookingID: updatedID})
}
