package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"talent-hub/internal/domain"
)

type RoleRepository interface {
	GetByID(ctx context.Context, id string) (domain.Role, error)
	ListPlannedCollaborations(ctx context.Context, roleID string) ([]domain.PlannedCollaboration, error)
	// IdealProfile promedia el cuartil superior de rendimiento del departamento en el ultimo trimestre cargado.
	IdealProfile(ctx context.Context, department string) (domain.IdealProfile, error)
}

type PgRoleRepository struct {
	pool *pgxpool.Pool
}

func NewPgRoleRepository(pool *pgxpool.Pool) *PgRoleRepository {
	return &PgRoleRepository{pool: pool}
}

func (r *PgRoleRepository) GetByID(ctx context.Context, id string) (domain.Role, error) {
	const query = `
		SELECT id, title, role_type, department, level, hiring_manager_id, status, location, min_salary, max_salary, target_hire_date
		FROM roles
		WHERE id = $1
	`
	var role domain.Role
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&role.ID,
		&role.Title,
		&role.RoleType,
		&role.Department,
		&role.Level,
		&role.HiringManagerID,
		&role.Status,
		&role.Location,
		&role.MinSalary,
		&role.MaxSalary,
		&role.TargetHireDate,
	)
	return role, err
}

func (r *PgRoleRepository) ListPlannedCollaborations(ctx context.Context, roleID string) ([]domain.PlannedCollaboration, error) {
	const query = `
		SELECT role_id, employee_id, relationship_role, time_allocation_percent
		FROM role_collaborators
		WHERE role_id = $1
		ORDER BY time_allocation_percent DESC, employee_id
	`
	rows, err := r.pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlannedCollaboration
	for rows.Next() {
		var p domain.PlannedCollaboration
		if err := rows.Scan(&p.RoleID, &p.EmployeeID, &p.RelationshipRole, &p.TimeAllocation); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PgRoleRepository) IdealProfile(ctx context.Context, department string) (domain.IdealProfile, error) {
	const query = `
		WITH dept AS (
			SELECT a.*, p.performance_score
			FROM employees e
			JOIN LATERAL (
				SELECT * FROM assessments WHERE subject_id = e.id ORDER BY assessed_at DESC LIMIT 1
			) a ON TRUE
			JOIN performance_metrics p ON p.employee_id = e.id
				AND p.quarter = (SELECT MAX(quarter) FROM performance_metrics)
			WHERE e.department = $1
			  AND a.ppa_assertiveness IS NOT NULL
			  AND a.hpti_conscientiousness IS NOT NULL
			  AND a.gia_overall IS NOT NULL
		), cut AS (
			SELECT percentile_cont(0.75) WITHIN GROUP (ORDER BY performance_score) AS threshold FROM dept
		)
		SELECT
			FLOOR(AVG(ppa_assertiveness))::int, FLOOR(AVG(ppa_sociability))::int, FLOOR(AVG(ppa_pace))::int, FLOOR(AVG(ppa_rule_orientation))::int,
			FLOOR(AVG(gia_overall))::int,
			FLOOR(AVG(hpti_conscientiousness))::int, FLOOR(AVG(hpti_adjustment))::int, FLOOR(AVG(hpti_curiosity))::int,
			COUNT(*), MAX(cut.threshold)
		FROM dept, cut
		WHERE dept.performance_score >= cut.threshold
		HAVING COUNT(*) > 0
	`
	p := domain.IdealProfile{Department: department}
	err := r.pool.QueryRow(ctx, query, department).Scan(
		&p.Assertiveness,
		&p.Sociability,
		&p.Pace,
		&p.RuleOrientation,
		&p.GIA,
		&p.Conscientiousness,
		&p.Adjustment,
		&p.Curiosity,
		&p.SampleSize,
		&p.Threshold,
	)
	return p, err
}
