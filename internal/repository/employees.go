package repository

import (
	"github.com/emsys-dev/employee-manager/backend/internal/domain"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	query := `
		INSERT INTO employees (name, email, position, department, salary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{employee.Name, employee.Email, employee.Position, employee.Department, employee.Salary}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, name, email, position, department, salary, created_at
		FROM employees ORDER BY created_at DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.Name, &employee.Email, &employee.Position, &employee.Department, &employee.Salary, &employee.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT name, email, position, department, salary, created_at
		FROM employees WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	dst := []any{&employee.Name, &employee.Email, &employee.Position, &employee.Department, &employee.Salary, &employee.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET
			name = $1,
			email = $2,
			position = $3,
			department = $4,
			salary = $5
		WHERE id = $6
		RETURNING created_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{employee.Name, employee.Email, employee.Position, employee.Department, employee.Salary, employee.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEmployee(id int64) error {
	query := `
		DELETE FROM employees WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckEmployeeEmailIfExists(email string) (bool, error) {
	isExists := false

	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}

// CheckOtherEmployeeEmailIfExists reports whether an employee other than id
// already holds email. Updating an employee to its own email is not a
// conflict.
func (r *Repository) CheckOtherEmployeeEmailIfExists(email string, id int64) (bool, error) {
	isExists := false

	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1 AND id <> $2)
	`
	if err := r.dbpool.QueryRowContext(ctx, query, email, id).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
