package model

type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DeliveryZone is informational; the cart charges a flat delivery fee.
type DeliveryZone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ScheduleRequest struct {
	Date       string `json:"date" validate:"required"`
	TimeSlotID string `json:"time_slot_id" validate:"required"`
	ZoneID     string `json:"zone_id" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Notes      string `json:"notes"`
}

type ScheduleOptionsResponse struct {
	Dates     []string       `json:"dates"`
	TimeSlots []TimeSlot     `json:"time_slots"`
	Zones     []DeliveryZone `json:"zones"`
}
