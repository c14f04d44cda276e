package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swiftcargo/logistics_app/internal/apperrors"
	"github.com/swiftcargo/logistics_app/internal/core/domain"
	portsrepo "github.com/swiftcargo/logistics_app/internal/core/ports/repositories"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, user_id, company_id, office_id, first_name, last_name,
		phone, hire_date, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.UserID,
		&e.CompanyID,
		&e.OfficeID,
		&e.FirstName,
		&e.LastName,
		&e.Phone,
		&e.HireDate,
		&e.IsActive,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}
	return &e, nil
}

// insertEmployee writes an employee row through any executor so registration
// can reuse it inside the user transaction.
func insertEmployee(ctx context.Context, db execer, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, user_id, company_id, office_id, first_name, last_name,
			phone, hire_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := db.Exec(ctx, query,
		employee.EmployeeID,
		employee.UserID,
		employee.CompanyID,
		employee.OfficeID,
		employee.FirstName,
		employee.LastName,
		employee.Phone,
		employee.HireDate,
		employee.IsActive,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	return err
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	if err := insertEmployee(ctx, r.Pool, employee); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	return scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
}

func (r *PgxEmployeeRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1;`
	return scanEmployee(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, companyID *string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []any{}
	if companyID != nil {
		query += ` WHERE company_id = $1`
		args = append(args, *companyID)
	}
	query += ` ORDER BY last_name, first_name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// FindFirstActiveEmployee returns the active employee with the earliest hire
// date, used to assign a registrant to client-created shipments.
func (r *PgxEmployeeRepository) FindFirstActiveEmployee(ctx context.Context) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active ORDER BY hire_date, employee_id LIMIT 1;`
	return scanEmployee(r.Pool.QueryRow(ctx, query))
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET company_id = $2, office_id = $3, first_name = $4, last_name = $5,
			phone = $6, hire_date = $7, is_active = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.CompanyID,
		employee.OfficeID,
		employee.FirstName,
		employee.LastName,
		employee.Phone,
		employee.HireDate,
		employee.IsActive,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
