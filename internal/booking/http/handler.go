package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookingms/booking-management-backend/internal/auth"
	"github.com/bookingms/booking-management-backend/internal/booking"
	"github.com/bookingms/booking-management-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
	logger  *zap.Logger
}

func NewHandler(service booking.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) List(c *gin.Context) {
	loginID := auth.GetLoginID(c)

	bookings, err := h.service.List(c.Request.Context(), loginID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	if len(bookings) == 0 {
		response.Message(c, http.StatusNotFound, "bookings not found")
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	loginID := auth.GetLoginID(c)

	b, err := h.service.GetByID(c.Request.Context(), loginID, c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	loginID := auth.GetLoginID(c)
	req := booking.CreateRequest{
		Date:   body.Date,
		Status: body.Status,
	}

	b, err := h.service.Create(c.Request.Context(), loginID, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	var body UpdateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	loginID := auth.GetLoginID(c)
	req := booking.UpdateRequest{
		Date:   body.Date,
		Status: body.Status,
		Active: body.Active,
	}

	changed, err := h.service.Update(c.Request.Context(), loginID, c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	if !changed {
		response.Message(c, http.StatusOK, "nothing to update")
		return
	}
	response.Message(c, http.StatusOK, "booking updated successfully")
}

func (h *Handler) Patch(c *gin.Context) {
	var body UpdateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	loginID := auth.GetLoginID(c)
	req := booking.UpdateRequest{
		Date:   body.Date,
		Status: body.Status,
		Active: body.Active,
	}

	changed, err := h.service.Patch(c.Request.Context(), loginID, c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	if !changed {
		response.Message(c, http.StatusNotFound, "nothing to update")
		return
	}
	response.Message(c, http.StatusOK, "booking patched successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	loginID := auth.GetLoginID(c)

	if err := h.service.Delete(c.Request.Context(), loginID, c.Param("id")); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Message(c, http.StatusOK, "booking deleted successfully")
}
