package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"talent-hub/internal/domain"
)

type PerformanceRepository interface {
	Upsert(ctx context.Context, m domain.PerformanceMetric) error
	LatestForEmployee(ctx context.Context, employeeID string) (domain.PerformanceMetric, error)
	LatestForEmployees(ctx context.Context, employeeIDs []string) (map[string]domain.PerformanceMetric, error)
}

type PgPerformanceRepository struct {
	pool *pgxpool.Pool
}

func NewPgPerformanceRepository(pool *pgxpool.Pool) *PgPerformanceRepository {
	return &PgPerformanceRepository{pool: pool}
}

func (r *PgPerformanceRepository) Upsert(ctx context.Context, m domain.PerformanceMetric) error {
	const query = `
		INSERT INTO performance_metrics (
			employee_id, quarter, performance_score, goal_completion_rate, velocity, morale_score, sentiment, manager_rating
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, quarter) DO UPDATE SET
			performance_score = EXCLUDED.performance_score,
			goal_completion_rate = EXCLUDED.goal_completion_rate,
			velocity = EXCLUDED.velocity,
			morale_score = EXCLUDED.morale_score,
			sentiment = EXCLUDED.sentiment,
			manager_rating = EXCLUDED.manager_rating
	`
	_, err := r.pool.Exec(ctx, query,
		m.EmployeeID,
		m.Quarter,
		m.PerformanceScore,
		m.GoalCompletionRate,
		m.Velocity,
		m.Morale,
		m.Sentiment,
		m.ManagerRating,
	)
	return err
}

const performanceColumns = `employee_id, quarter, performance_score, goal_completion_rate, velocity, morale_score, sentiment, manager_rating`

func (r *PgPerformanceRepository) LatestForEmployee(ctx context.Context, employeeID string) (domain.PerformanceMetric, error) {
	query := `SELECT ` + performanceColumns + ` FROM performance_metrics WHERE employee_id = $1 ORDER BY quarter DESC LIMIT 1`
	var m domain.PerformanceMetric
	err := r.pool.QueryRow(ctx, query, employeeID).Scan(
		&m.EmployeeID,
		&m.Quarter,
		&m.PerformanceScore,
		&m.GoalCompletionRate,
		&m.Velocity,
		&m.Morale,
		&m.Sentiment,
		&m.ManagerRating,
	)
	return m, err
}

func (r *PgPerformanceRepository) LatestForEmployees(ctx context.Context, employeeIDs []string) (map[string]domain.PerformanceMetric, error) {
	out := make(map[string]domain.PerformanceMetric, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}
	query := `SELECT DISTINCT ON (employee_id) ` + performanceColumns + `
		FROM performance_metrics
		WHERE employee_id = ANY($1)
		ORDER BY employee_id, quarter DESC`
	rows, err := r.pool.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.PerformanceMetric
		if err := rows.Scan(
			&m.EmployeeID,
			&m.Quarter,
			&m.PerformanceScore,
			&m.GoalCompletionRate,
			&m.Velocity,
			&m.Morale,
			&m.Sentiment,
			&m.ManagerRating,
		); err != nil {
			return nil, err
		}
		out[m.EmployeeID] = m
	}
	return out, rows.Err()
}
