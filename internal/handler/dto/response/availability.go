package response

import (
	"time"

	"consult-booking/internal/usecase/queries"
)

type SlotResponse struct {
	Time      string    `json:"time"`
	Datetime  time.Time `json:"datetime"`
	Available bool      `json:"available"`
	Capacity  int       `json:"capacity"`
	Booked    int       `json:"booked"`
}

type AvailabilityResponse struct {
	Slots []SlotResponse `json:"slots"`
	Error string         `json:"error,omitempty"`
}

func FromDaySchedule(view *queries.DayScheduleView) *AvailabilityResponse {
	slots := make([]SlotResponse, len(view.Slots))
	for i, s := range view.Slots {
		slots[i] = SlotResponse{
			Time:      s.Time,
			Datetime:  s.Datetime,
			Available: s.Available,
			Capacity:  s.Capacity,
			Booked:    s.Booked,
		}
	}
	return &AvailabilityResponse{
		Slots: slots,
		Error: view.Reason,
	}
}
