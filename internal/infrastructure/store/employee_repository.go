package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository.
type EmployeeRepo struct {
	c Conn
}

// NewEmployeeRepository construye el adaptador de persistencia para funcionarios.
func NewEmployeeRepository(c Conn) *EmployeeRepo {
	return &EmployeeRepo{c: c}
}

const employeeColumns = `e.id, e.user_id, e.full_name, e.cep, e.street, e.number, e.city, e.state, e.country,
	e.contract_start, e.contract_end, e.role, e.role_description, e.notes, e.is_manager`

func scanEmployee(s rowScanner, extra ...any) (*entity.Employee, error) {
	var (
		e          entity.Employee
		end, notes sql.NullString
	)
	dest := []any{
		&e.ID, &e.UserID, &e.FullName, &e.CEP, &e.Street, &e.Number, &e.City, &e.State, &e.Country,
		&e.ContractStart, &end, &e.Role, &e.RoleDescription, &notes, &e.IsManager,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	e.ContractEnd = stringPtr(end)
	e.Notes = stringPtr(notes)
	return &e, nil
}

// Create persiste un nuevo funcionario.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (user_id, full_name, cep, street, number, city, state, country,
		                       contract_start, contract_end, role, role_description, notes, is_manager)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	err := r.c.queryRow(ctx, query,
		e.UserID, e.FullName, e.CEP, e.Street, e.Number, e.City, e.State, e.Country,
		e.ContractStart, nullableString(e.ContractEnd), e.Role, e.RoleDescription, nullableString(e.Notes), e.IsManager,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un funcionario del dueño.
func (r *EmployeeRepo) GetByID(ctx context.Context, userID, id int64) (*entity.Employee, error) {
	e, err := scanEmployee(r.c.queryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees e WHERE e.id = ? AND e.user_id = ?`, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// GetByFullName obtiene un funcionario del dueño por nombre completo.
func (r *EmployeeRepo) GetByFullName(ctx context.Context, userID int64, fullName string) (*entity.Employee, error) {
	e, err := scanEmployee(r.c.queryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees e WHERE e.full_name = ? AND e.user_id = ? ORDER BY e.id LIMIT 1`,
		fullName, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by name: %w", err)
	}
	return e, nil
}

// Update sobrescribe los datos del funcionario.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees
		SET full_name = ?, cep = ?, street = ?, number = ?, city = ?, state = ?, country = ?,
		    contract_start = ?, contract_end = ?, role = ?, role_description = ?, notes = ?, is_manager = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.c.exec(ctx, query,
		e.FullName, e.CEP, e.Street, e.Number, e.City, e.State, e.Country,
		e.ContractStart, nullableString(e.ContractEnd), e.Role, e.RoleDescription, nullableString(e.Notes), e.IsManager,
		e.ID, e.UserID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithMonthSales lista funcionarios con el total y la cantidad de ventas del mes indicado.
func (r *EmployeeRepo) ListWithMonthSales(
	ctx context.Context,
	userID int64,
	month, sortBy string,
	desc bool,
) ([]repository.EmployeeMonthSummary, error) {
	column, ok := repository.EmployeeSortColumns[sortBy]
	if !ok {
		column = "e.full_name"
	}
	query := `
	SELECT ` + employeeColumns + `,
	       ROUND(COALESCE(SUM(s.total), 0), 2) AS month_total,
	       COUNT(s.id)               AS month_count
	FROM employees e
	LEFT JOIN sales s ON s.employee_id = e.id AND s.user_id = e.user_id AND substr(s.sale_date, 1, 7) = ?
	WHERE e.user_id = ?
	GROUP BY ` + employeeColumns + `
	ORDER BY ` + column + ` ` + orderDirection(desc) + `, e.id ASC`

	rows, err := r.c.query(ctx, query, month, userID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	list := make([]repository.EmployeeMonthSummary, 0)
	for rows.Next() {
		var sum repository.EmployeeMonthSummary
		e, err := scanEmployee(rows, &sum.MonthTotal, &sum.MonthCount)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		sum.Employee = *e
		list = append(list, sum)
	}
	return list, rows.Err()
}

// SearchActive busca funcionarios con contrato vigente (contract_end NULL o vacío).
func (r *EmployeeRepo) SearchActive(ctx context.Context, userID int64, term string, limit int) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.user_id = ? AND LOWER(e.full_name) LIKE ? AND (e.contract_end IS NULL OR e.contract_end = '')
		ORDER BY e.full_name
		LIMIT ?`
	rows, err := r.c.query(ctx, query, userID, likePattern(term), limit)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
