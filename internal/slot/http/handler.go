package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookingms/booking-management-backend/internal/pkg/response"
	"github.com/bookingms/booking-management-backend/internal/slot"
)

type Handler struct {
	service slot.Service
	logger  *zap.Logger
}

func NewHandler(service slot.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) List(c *gin.Context) {
	slots, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	if len(slots) == 0 {
		response.Message(c, http.StatusNotFound, "slots not found")
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, NewSlotResponse(s))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateSlotRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req := slot.CreateRequest{
		Date:   body.Date,
		Count:  *body.Count,
		Status: body.Status,
	}

	s, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, NewSlotResponse(s))
}

func (h *Handler) Update(c *gin.Context) {
	var body UpdateSlotRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req := slot.UpdateRequest{
		Date:   body.Date,
		Count:  body.Count,
		Status: body.Status,
		Active: body.Active,
	}

	changed, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	if !changed {
		response.Message(c, http.StatusOK, "nothing to update")
		return
	}
	response.Message(c, http.StatusOK, "slot updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Message(c, http.StatusOK, "slot deleted successfully")
}
