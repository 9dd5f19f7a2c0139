package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"talent-hub/internal/domain"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (domain.Employee, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]domain.Employee, error)
}

type PgEmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewPgEmployeeRepository(pool *pgxpool.Pool) *PgEmployeeRepository {
	return &PgEmployeeRepository{pool: pool}
}

const employeeColumns = `id, name, email, title, department, level, manager_id, hire_date, tenure_months, location, salary, currency, is_manager`

func (r *PgEmployeeRepository) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return domain.Employee{}, err
	}
	defer rows.Close()

	list, err := scanEmployees(rows)
	if err != nil {
		return domain.Employee{}, err
	}
	if len(list) == 0 {
		return domain.Employee{}, pgx.ErrNoRows
	}
	return list[0], nil
}

func (r *PgEmployeeRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ANY($1) ORDER BY id`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *PgEmployeeRepository) ListByManager(ctx context.Context, managerID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE manager_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func scanEmployees(rows pgxRows) ([]domain.Employee, error) {
	var out []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Email,
			&e.Title,
			&e.Department,
			&e.Level,
			&e.ManagerID,
			&e.HireDate,
			&e.TenureMonths,
			&e.Location,
			&e.Salary,
			&e.Currency,
			&e.IsManager,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
