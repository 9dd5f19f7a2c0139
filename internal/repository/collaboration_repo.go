package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"talent-hub/internal/domain"
)

type CollaborationRepository interface {
	ListForEmployee(ctx context.Context, employeeID string) ([]domain.Collaboration, error)
}

type PgCollaborationRepository struct {
	pool *pgxpool.Pool
}

func NewPgCollaborationRepository(pool *pgxpool.Pool) *PgCollaborationRepository {
	return &PgCollaborationRepository{pool: pool}
}

func (r *PgCollaborationRepository) ListForEmployee(ctx context.Context, employeeID string) ([]domain.Collaboration, error) {
	const query = `
		SELECT employee_id, collaborator_id, interaction_frequency, time_allocation_percent, relationship_score
		FROM collaborations
		WHERE employee_id = $1
		ORDER BY time_allocation_percent DESC, relationship_score DESC
	`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Collaboration
	for rows.Next() {
		var c domain.Collaboration
		if err := rows.Scan(
			&c.EmployeeID,
			&c.CollaboratorID,
			&c.InteractionFrequency,
			&c.TimeAllocation,
			&c.RelationshipScore,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
