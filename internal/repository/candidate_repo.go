package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"talent-hub/internal/domain"
)

type CandidateRepository interface {
	GetByID(ctx context.Context, id string) (domain.Candidate, error)
	ListByRole(ctx context.Context, roleID string) ([]domain.Candidate, error)
}

type PgCandidateRepository struct {
	pool *pgxpool.Pool
}

func NewPgCandidateRepository(pool *pgxpool.Pool) *PgCandidateRepository {
	return &PgCandidateRepository{pool: pool}
}

const candidateColumns = `id, name, email, role_id, current_stage,
	screening_score, phone_interview_score, technical_score, onsite_score, final_round_score,
	expected_salary, currency, source, applied_at`

func (r *PgCandidateRepository) GetByID(ctx context.Context, id string) (domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	var c domain.Candidate
	err := scanCandidate(r.pool.QueryRow(ctx, query, id), &c)
	return c, err
}

func (r *PgCandidateRepository) ListByRole(ctx context.Context, roleID string) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE role_id = $1 ORDER BY applied_at DESC`
	rows, err := r.pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := scanCandidate(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCandidate(row pgx.Row, c *domain.Candidate) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.RoleID,
		&c.CurrentStage,
		&c.Stages.Screening,
		&c.Stages.Phone,
		&c.Stages.Technical,
		&c.Stages.Onsite,
		&c.Stages.Final,
		&c.ExpectedSalary,
		&c.Currency,
		&c.Source,
		&c.AppliedAt,
	)
}
