package http

import (
	"github.com/bookingms/booking-management-backend/internal/slot"
)

type CreateSlotRequest struct {
	Date   string  `json:"slotdate" binding:"required"`
	Count  *int    `json:"slotcount" binding:"required"`
	Status *string `json:"slotstatus" binding:"omitempty,oneof=available booked cancelled"`
}

type UpdateSlotRequest struct {
	Date   *string `json:"slotdate"`
	Count  *int    `json:"slotcount"`
	Status *string `json:"slotstatus" binding:"omitempty,oneof=available booked cancelled"`
	Active *bool   `json:"active"`
}

// SlotResponse is the public projection of a slot.
type SlotResponse struct {
	SlotID string `json:"slotid"`
	Date   string `json:"slotdate"`
	Count  int    `json:"slotcount"`
	Status string `json:"slotstatus"`
}

func NewSlotResponse(s *slot.Slot) SlotResponse {
	return SlotResponse{
		SlotID: s.SlotID,
		Date:   s.Date,
		Count:  s.Count,
		Status: string(s.Status),
	}
}
