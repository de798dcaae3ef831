package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo consultas de solo lectura para el dashboard.
type MetricsRepo struct {
	c Conn
}

// NewMetricsRepository construye el adaptador de métricas.
func NewMetricsRepository(c Conn) *MetricsRepo {
	return &MetricsRepo{c: c}
}

// MonthlyTotals suma las ventas agrupadas por mes "YYYY-MM".
func (r *MetricsRepo) MonthlyTotals(ctx context.Context, userID int64, since string) ([]repository.MonthTotal, error) {
	const query = `
	SELECT substr(s.sale_date, 1, 7) AS month,
	       ROUND(SUM(s.total), 2)    AS total
	FROM sales s
	WHERE s.user_id = ?
	  AND s.sale_date >= ?
	GROUP BY substr(s.sale_date, 1, 7)
	ORDER BY month`

	rows, err := r.c.query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("metrics.MonthlyTotals: %w", err)
	}
	defer rows.Close()

	results := make([]repository.MonthTotal, 0, 12)
	for rows.Next() {
		var row repository.MonthTotal
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("metrics.MonthlyTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopCategories devuelve las categorías (tipo de roupa) con mayor ingreso.
func (r *MetricsRepo) TopCategories(ctx context.Context, userID int64, since string, limit int) ([]repository.RankedValue, error) {
	const query = `
	SELECT i.category    AS label,
	       ROUND(SUM(s.total), 2) AS total
	FROM sales s
	JOIN inventory_items i ON i.id = s.item_id
	WHERE s.user_id = ?
	  AND s.sale_date >= ?
	GROUP BY i.category
	ORDER BY total DESC
	LIMIT ?`
	return r.ranked(ctx, "metrics.TopCategories", query, userID, since, limit)
}

// TopEmployees devuelve los funcionarios con mayor ingreso. Ventas sin vendedor no cuentan.
func (r *MetricsRepo) TopEmployees(ctx context.Context, userID int64, since string, limit int) ([]repository.RankedValue, error) {
	const query = `
	SELECT e.full_name   AS label,
	       ROUND(SUM(s.total), 2) AS total
	FROM sales s
	JOIN employees e ON e.id = s.employee_id
	WHERE s.user_id = ?
	  AND s.sale_date >= ?
	GROUP BY e.full_name
	ORDER BY total DESC
	LIMIT ?`
	return r.ranked(ctx, "metrics.TopEmployees", query, userID, since, limit)
}

// EmployeeMonthlyTotals suma las ventas por funcionario y mes.
func (r *MetricsRepo) EmployeeMonthlyTotals(ctx context.Context, userID int64, since string) ([]repository.EmployeeMonthTotal, error) {
	const query = `
	SELECT e.full_name                AS employee,
	       substr(s.sale_date, 1, 7)  AS month,
	       ROUND(SUM(s.total), 2)     AS total
	FROM sales s
	JOIN employees e ON e.id = s.employee_id
	WHERE s.user_id = ?
	  AND s.sale_date >= ?
	GROUP BY e.full_name, substr(s.sale_date, 1, 7)
	ORDER BY employee, month`

	rows, err := r.c.query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("metrics.EmployeeMonthlyTotals: %w", err)
	}
	defer rows.Close()

	results := make([]repository.EmployeeMonthTotal, 0)
	for rows.Next() {
		var row repository.EmployeeMonthTotal
		if err := rows.Scan(&row.Employee, &row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("metrics.EmployeeMonthlyTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountClients cuenta los clientes del dueño.
func (r *MetricsRepo) CountClients(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := r.c.queryRow(ctx, `SELECT COUNT(*) FROM clients WHERE user_id = ?`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("metrics.CountClients: %w", err)
	}
	return n, nil
}

// CountClientsSince cuenta los clientes registrados desde since.
func (r *MetricsRepo) CountClientsSince(ctx context.Context, userID int64, since string) (int, error) {
	var n int
	err := r.c.queryRow(ctx,
		`SELECT COUNT(*) FROM clients WHERE user_id = ? AND registered_at >= ?`, userID, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("metrics.CountClientsSince: %w", err)
	}
	return n, nil
}

// TopClients devuelve los clientes con mayor gasto.
func (r *MetricsRepo) TopClients(ctx context.Context, userID int64, since string, limit int) ([]repository.RankedValue, error) {
	const query = `
	SELECT c.name        AS label,
	       ROUND(SUM(s.total), 2) AS total
	FROM sales s
	JOIN clients c ON c.id = s.client_id
	WHERE s.user_id = ?
	  AND s.sale_date >= ?
	GROUP BY c.id, c.name
	ORDER BY total DESC
	LIMIT ?`
	return r.ranked(ctx, "metrics.TopClients", query, userID, since, limit)
}

func (r *MetricsRepo) ranked(ctx context.Context, op, query string, args ...any) ([]repository.RankedValue, error) {
	rows, err := r.c.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	results := make([]repository.RankedValue, 0)
	for rows.Next() {
		var row repository.RankedValue
		if err := rows.Scan(&row.Label, &row.Value); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
