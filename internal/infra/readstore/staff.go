package readstore

import (
	"context"

	"consult-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Roles whose holders take consultation calls; other CRM roles don't add capacity.
var bookableRoles = []string{"consultant", "brand_strategist"}

type StaffReadStore struct {
	db *pgxpool.Pool
}

func NewStaffReadStore(db *pgxpool.Pool) *StaffReadStore {
	return &StaffReadStore{db: db}
}

// CountActiveBookable returns the roster-derived slot capacity. A result of 0
// is authoritative (calendar closed); only an error should trigger the
// caller's fallback constant.
func (r *StaffReadStore) CountActiveBookable(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM staff_members
		WHERE is_active = TRUE
		  AND role = ANY($1)`, bookableRoles).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active staff", err)
	}
	return n, nil
}
