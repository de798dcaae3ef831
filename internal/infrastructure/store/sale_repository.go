package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository.
type SaleRepo struct {
	c Conn
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(c Conn) *SaleRepo {
	return &SaleRepo{c: c}
}

// Create persiste una venta. Debe llamarse dentro de la misma tx que baja el stock.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (user_id, client_id, item_id, employee_id, quantity, total, sale_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	err := r.c.queryRow(ctx, query,
		s.UserID, s.ClientID, s.ItemID, nullableInt64(s.EmployeeID), s.Quantity, s.Total, s.SaleDate,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListRecent lista las ventas desde since con el nombre del cliente.
func (r *SaleRepo) ListRecent(ctx context.Context, userID int64, since string) ([]repository.RecentSale, error) {
	const query = `
	SELECT s.id, s.sale_date, c.name, s.total
	FROM sales s
	JOIN clients c ON c.id = s.client_id
	WHERE s.user_id = ? AND s.sale_date >= ?
	ORDER BY s.sale_date DESC, s.id DESC`

	rows, err := r.c.query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list recent sales: %w", err)
	}
	defer rows.Close()

	list := make([]repository.RecentSale, 0)
	for rows.Next() {
		var rs repository.RecentSale
		if err := rows.Scan(&rs.ID, &rs.SaleDate, &rs.ClientName, &rs.Total); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		list = append(list, rs)
	}
	return list, rows.Err()
}

// ExportRows une venta, cliente y producto para las ventas seleccionadas del dueño.
func (r *SaleRepo) ExportRows(ctx context.Context, userID int64, saleIDs []int64) ([]repository.ExportRow, error) {
	if len(saleIDs) == 0 {
		return []repository.ExportRow{}, nil
	}
	query := `
	SELECT s.id, s.sale_date, c.name, c.phone, i.code,
	       i.category || ' ' || i.color || ' ' || COALESCE(i.sizes, ''),
	       s.quantity, i.unit_price, s.total
	FROM sales s
	JOIN clients         c ON c.id = s.client_id
	JOIN inventory_items i ON i.id = s.item_id
	WHERE s.user_id = ? AND s.id IN (` + placeholders(len(saleIDs)) + `)
	ORDER BY s.id`

	args := make([]any, 0, len(saleIDs)+1)
	args = append(args, userID)
	for _, id := range saleIDs {
		args = append(args, id)
	}

	rows, err := r.c.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("export sales: %w", err)
	}
	defer rows.Close()

	list := make([]repository.ExportRow, 0, len(saleIDs))
	for rows.Next() {
		var (
			row   repository.ExportRow
			phone sql.NullString
		)
		if err := rows.Scan(
			&row.SaleID, &row.SaleDate, &row.ClientName, &phone, &row.ProductCode,
			&row.Description, &row.Quantity, &row.UnitPrice, &row.Total,
		); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		row.ClientPhone = stringPtr(phone)
		list = append(list, row)
	}
	return list, rows.Err()
}
