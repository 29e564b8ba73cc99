package queries

import (
	"context"
	"log/slog"

	"consult-booking/internal/domain/schedule"
)

// CapacityProvider decouples slot capacity from how it is sourced. The
// current implementation derives it from the staff roster; a future one could
// read a config table without touching availability or reservation logic.
type CapacityProvider interface {
	CurrentCapacity(ctx context.Context) int
}

type rosterCapacityProvider struct {
	staff StaffReadStore
}

func NewRosterCapacityProvider(staff StaffReadStore) CapacityProvider {
	return &rosterCapacityProvider{staff: staff}
}

// CurrentCapacity never fails: a roster read error degrades to
// schedule.DefaultSlotCapacity so the booking flow stays up. An explicit
// zero-staff roster is respected as capacity 0 (calendar closed).
func (p *rosterCapacityProvider) CurrentCapacity(ctx context.Context) int {
	n, err := p.staff.CountActiveBookable(ctx)
	if err != nil {
		slog.Warn("staff roster read failed, using fallback capacity",
			"fallback", schedule.DefaultSlotCapacity,
			"error", err.Error())
		return schedule.DefaultSlotCapacity
	}
	return n
}
