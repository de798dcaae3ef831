package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository.
type ClientRepo struct {
	c Conn
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(c Conn) *ClientRepo {
	return &ClientRepo{c: c}
}

const clientColumns = `c.id, c.user_id, c.name, c.phone, c.registered_at`

func scanClient(s rowScanner, extra ...any) (*entity.Client, error) {
	var (
		cl         entity.Client
		registered string
	)
	if err := s.Scan(append([]any{&cl.ID, &cl.UserID, &cl.Name, &cl.Phone, &registered}, extra...)...); err != nil {
		return nil, err
	}
	t, err := parseTimestamp(registered)
	if err != nil {
		return nil, err
	}
	cl.RegisteredAt = t
	return &cl, nil
}

// Create persiste un nuevo cliente con fecha de registro actual si no viene informada.
func (r *ClientRepo) Create(ctx context.Context, cl *entity.Client) error {
	if cl.RegisteredAt.IsZero() {
		cl.RegisteredAt = time.Now()
	}
	err := r.c.queryRow(ctx,
		`INSERT INTO clients (user_id, name, phone, registered_at) VALUES (?, ?, ?, ?) RETURNING id`,
		cl.UserID, cl.Name, cl.Phone, cl.RegisteredAt.Format(timestampLayout),
	).Scan(&cl.ID)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente del dueño.
func (r *ClientRepo) GetByID(ctx context.Context, userID, id int64) (*entity.Client, error) {
	cl, err := scanClient(r.c.queryRow(ctx,
		`SELECT `+clientColumns+` FROM clients c WHERE c.id = ? AND c.user_id = ?`, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return cl, nil
}

// GetByName obtiene un cliente del dueño por nombre exacto.
func (r *ClientRepo) GetByName(ctx context.Context, userID int64, name string) (*entity.Client, error) {
	cl, err := scanClient(r.c.queryRow(ctx,
		`SELECT `+clientColumns+` FROM clients c WHERE c.name = ? AND c.user_id = ? ORDER BY c.id LIMIT 1`,
		name, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by name: %w", err)
	}
	return cl, nil
}

// Update actualiza nombre y teléfono.
func (r *ClientRepo) Update(ctx context.Context, cl *entity.Client) error {
	res, err := r.c.exec(ctx,
		`UPDATE clients SET name = ?, phone = ? WHERE id = ? AND user_id = ?`,
		cl.Name, cl.Phone, cl.ID, cl.UserID,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListPanel lista clientes con días de compra distintos y gasto desde since.
func (r *ClientRepo) ListPanel(ctx context.Context, userID int64, since string) ([]repository.ClientPanelRow, error) {
	const query = `
	SELECT c.id, c.user_id, c.name, c.phone, c.registered_at,
	       COUNT(DISTINCT s.sale_date)                                        AS purchase_days,
	       ROUND(COALESCE(SUM(CASE WHEN s.sale_date >= ? THEN s.total ELSE 0 END), 0), 2) AS spent_3m
	FROM clients c
	LEFT JOIN sales s ON s.client_id = c.id AND s.user_id = c.user_id
	WHERE c.user_id = ?
	GROUP BY c.id, c.user_id, c.name, c.phone, c.registered_at
	ORDER BY c.name, c.id`

	rows, err := r.c.query(ctx, query, since, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	list := make([]repository.ClientPanelRow, 0)
	for rows.Next() {
		var row repository.ClientPanelRow
		cl, err := scanClient(rows, &row.PurchaseDays, &row.Spent3Months)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		row.Client = *cl
		list = append(list, row)
	}
	return list, rows.Err()
}

// Search busca clientes por nombre (substring, sin distinguir mayúsculas).
func (r *ClientRepo) Search(ctx context.Context, userID int64, term string, limit int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients c
		WHERE c.user_id = ? AND LOWER(c.name) LIKE ?
		ORDER BY c.name
		LIMIT ?`
	rows, err := r.c.query(ctx, query, userID, likePattern(term), limit)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Client, 0)
	for rows.Next() {
		cl, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, cl)
	}
	return list, rows.Err()
}
