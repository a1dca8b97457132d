package services

import (
	"github.com/doctorsportal/doctors-portal-api/internal/models"
)

// AvailableTreatments returns a derived copy of treatments with the
// slots already booked that day removed. Bookings are matched to a
// treatment by name; slot order is preserved. The result is never
// persisted.
func AvailableTreatments(treatments []models.Treatment, bookings []models.Booking) []models.Treatment {
	booked := make(map[string]map[string]struct{}, len(treatments))
	for _, b := range bookings {
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	available := make([]models.Treatment, 0, len(treatments))
	for _, t := range treatments {
		taken := booked[t.Name]
		remaining := make([]string, 0, len(t.Slots))
		for _, slot := range t.Slots {
			if _, isTaken := taken[slot]; !isTaken {
				remaining = append(remaining, slot)
			}
		}
		t.Slots = remaining
		available = append(available, t)
	}
	return available
}
