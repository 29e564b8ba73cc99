package readstore

import (
	"context"
	"time"

	"consult-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HolidayReadStore struct {
	db *pgxpool.Pool
}

func NewHolidayReadStore(db *pgxpool.Pool) *HolidayReadStore {
	return &HolidayReadStore{db: db}
}

// IsHoliday expects day to be midnight in the business timezone.
func (r *HolidayReadStore) IsHoliday(ctx context.Context, day time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM holidays WHERE holiday_date = $1::date
		)`, day).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check holiday date", err)
	}
	return exists, nil
}
