package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"talent-hub/internal/domain"
)

type WeightOverrideRepository interface {
	Create(ctx context.Context, o domain.WeightOverride) error
	ListByRole(ctx context.Context, roleID string) ([]domain.WeightOverride, error)
	LatestForRole(ctx context.Context, roleID string) (domain.WeightOverride, error)
}

type PgWeightOverrideRepository struct {
	pool *pgxpool.Pool
}

func NewPgWeightOverrideRepository(pool *pgxpool.Pool) *PgWeightOverrideRepository {
	return &PgWeightOverrideRepository{pool: pool}
}

func (r *PgWeightOverrideRepository) Create(ctx context.Context, o domain.WeightOverride) error {
	const query = `
		INSERT INTO weight_overrides (id, manager_id, role_id, weights, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query, o.ID, o.ManagerID, o.RoleID, o.Weights, o.Reason, o.CreatedAt)
	return err
}

const weightOverrideColumns = `id, manager_id, role_id, weights, reason, created_at`

func (r *PgWeightOverrideRepository) ListByRole(ctx context.Context, roleID string) ([]domain.WeightOverride, error) {
	query := `SELECT ` + weightOverrideColumns + ` FROM weight_overrides WHERE role_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WeightOverride
	for rows.Next() {
		var o domain.WeightOverride
		if err := rows.Scan(&o.ID, &o.ManagerID, &o.RoleID, &o.Weights, &o.Reason, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PgWeightOverrideRepository) LatestForRole(ctx context.Context, roleID string) (domain.WeightOverride, error) {
	query := `SELECT ` + weightOverrideColumns + ` FROM weight_overrides WHERE role_id = $1 ORDER BY created_at DESC LIMIT 1`
	var o domain.WeightOverride
	err := r.pool.QueryRow(ctx, query, roleID).Scan(&o.ID, &o.ManagerID, &o.RoleID, &o.Weights, &o.Reason, &o.CreatedAt)
	return o, err
}
