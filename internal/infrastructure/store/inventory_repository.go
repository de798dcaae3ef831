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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository (usable con pool o tx).
type InventoryRepo struct {
	c Conn
}

// NewInventoryRepository construye el adaptador de persistencia para el inventario.
func NewInventoryRepository(c Conn) *InventoryRepo {
	return &InventoryRepo{c: c}
}

const itemColumns = `id, user_id, code, entry_date, category, fabric, quantity, color, sizes, details, unit_price, sold`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	if err := s.Scan(
		&it.ID, &it.UserID, &it.Code, &it.EntryDate, &it.Category, &it.Fabric, &it.Quantity,
		&it.Color, &it.Sizes, &it.Details, &it.UnitPrice, &it.Sold,
	); err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un nuevo ítem. Sold inicia en 0.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (user_id, code, entry_date, category, fabric, quantity, color, sizes, details, unit_price, sold)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	err := r.c.queryRow(ctx, query,
		item.UserID, item.Code, item.EntryDate, item.Category, item.Fabric, item.Quantity,
		item.Color, item.Sizes, item.Details, item.UnitPrice, item.Sold,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem del dueño por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, userID, id int64) (*entity.InventoryItem, error) {
	it, err := scanItem(r.c.queryRow(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE id = ? AND user_id = ?`, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return it, nil
}

// GetByCode obtiene un ítem del dueño por código de producto.
func (r *InventoryRepo) GetByCode(ctx context.Context, userID int64, code string) (*entity.InventoryItem, error) {
	it, err := scanItem(r.c.queryRow(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE code = ? AND user_id = ?`, code, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item by code: %w", err)
	}
	return it, nil
}

// Update sobrescribe los campos editables del ítem.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET code = ?, category = ?, fabric = ?, quantity = ?, sold = ?, color = ?, sizes = ?, details = ?, unit_price = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.c.exec(ctx, query,
		item.Code, item.Category, item.Fabric, item.Quantity, item.Sold, item.Color, item.Sizes,
		item.Details, item.UnitPrice, item.ID, item.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update inventory item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el inventario del dueño. sortBy es una clave de repository.InventorySortColumns;
// cualquier otro valor ordena por id.
func (r *InventoryRepo) List(ctx context.Context, userID int64, sortBy string, desc bool) ([]*entity.InventoryItem, error) {
	column, ok := repository.InventorySortColumns[sortBy]
	if !ok {
		column = "id"
	}
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE user_id = ? ORDER BY ` +
		column + ` ` + orderDirection(desc) + `, id ASC`
	return r.list(ctx, "list inventory", query, userID)
}

// SearchInStock busca ítems con stock por código.
func (r *InventoryRepo) SearchInStock(ctx context.Context, userID int64, term string, limit int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE user_id = ? AND LOWER(code) LIKE ? AND quantity > 0
		ORDER BY code
		LIMIT ?`
	return r.list(ctx, "search inventory", query, userID, likePattern(term), limit)
}

func (r *InventoryRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.c.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// DecrementStock baja el stock y acumula vendidos en una sola sentencia condicional,
// de modo que dos checkouts concurrentes no pueden dejar quantity negativa.
func (r *InventoryRepo) DecrementStock(ctx context.Context, userID, id int64, qty int) error {
	query := `
		UPDATE inventory_items
		SET quantity = quantity - ?, sold = COALESCE(sold, 0) + ?
		WHERE id = ? AND user_id = ? AND quantity >= ?`
	res, err := r.c.exec(ctx, query, qty, qty, id, userID, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if n == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
