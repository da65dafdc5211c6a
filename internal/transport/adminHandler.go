package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"excursion-booking/internal/service"
)

type AdminHandler struct {
	excursionService service.ExcursionService
	bookingService   service.BookingService
	statsService     service.StatsService
}

func NewAdminHandler(
	excursionService service.ExcursionService,
	bookingService service.BookingService,
	statsService service.StatsService,
) *AdminHandler {
	return &AdminHandler{
		excursionService: excursionService,
		bookingService:   bookingService,
		statsService:     statsService,
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: stats})
}

func (h *AdminHandler) AllBookings(c *gin.Context) {
	bookings, err := h.bookingService.AllBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: bookings})
}

func (h *AdminHandler) ConfirmBooking(c *gin.Context) {
	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.ConfirmBooking(c.Request.Context(), bookingID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "booking confirmed"})
}

func (h *AdminHandler) RejectBooking(c *gin.Context) {
	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.RejectBooking(c.Request.Context(), bookingID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "booking rejected"})
}

func (h *AdminHandler) CreateExcursion(c *gin.Context) {
	var req service.SaveExcursionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	excursion, err := h.excursionService.CreateExcursion(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: "excursion added", Data: excursion})
}

func (h *AdminHandler) UpdateExcursion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.SaveExcursionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	excursion, err := h.excursionService.UpdateExcursion(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "excursion updated", Data: excursion})
}

func (h *AdminHandler) DeleteExcursion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.excursionService.DeleteExcursion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "excursion deleted"})
}
