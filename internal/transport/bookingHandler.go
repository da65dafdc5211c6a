package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"excursion-booking/internal/service"
	"excursion-booking/internal/transport/middleware"
)

type BookingHandler struct {
	bookingService service.BookingService
	authService    service.AuthService
}

func NewBookingHandler(bookingService service.BookingService, authService service.AuthService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		authService:    authService,
	}
}

func (h *BookingHandler) Book(c *gin.Context) {
	excursionID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}
	req.ExcursionID = excursionID

	principal := middleware.PrincipalFromContext(c)
	booking, err := h.bookingService.CreateBooking(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "booking created, awaiting confirmation",
		Data:    booking,
	})
}

// Cabinet lists the caller's bookings together with their profile.
func (h *BookingHandler) Cabinet(c *gin.Context) {
	principal := middleware.PrincipalFromContext(c)

	bookings, err := h.bookingService.UserBookings(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data: gin.H{
			"user": gin.H{
				"id":         user.ID,
				"name":       user.Name,
				"email":      user.Email,
				"phone":      user.Phone,
				"created_at": user.CreatedAt,
			},
			"bookings": bookings,
		},
	})
}

// Cancel is idempotent: cancelling a missing or already-cancelled booking
// is reported, not rejected.
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	principal := middleware.PrincipalFromContext(c)
	cancelled, err := h.bookingService.CancelBooking(c.Request.Context(), principal, bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "booking cancelled"
	if !cancelled {
		message = "nothing to cancel"
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message})
}
