package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem.
// Todas las operaciones filtran por dueño.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, userID, id int64) (*entity.InventoryItem, error)
	GetByCode(ctx context.Context, userID int64, code string) (*entity.InventoryItem, error)
	// Update sobrescribe todos los campos editables, incluido Sold.
	Update(ctx context.Context, item *entity.InventoryItem) error
	// List ordena por una columna de la lista blanca InventorySortColumns.
	List(ctx context.Context, userID int64, sortBy string, desc bool) ([]*entity.InventoryItem, error)
	// SearchInStock busca por código (substring, sin distinguir mayúsculas) con quantity > 0.
	SearchInStock(ctx context.Context, userID int64, term string, limit int) ([]*entity.InventoryItem, error)
	// DecrementStock resta qty del stock y suma qty a Sold solo si hay stock suficiente.
	// Devuelve domain.ErrInsufficientStock si la fila no cumple la condición.
	DecrementStock(ctx context.Context, userID, id int64, qty int) error
}

// InventorySortColumns columnas aceptadas en ordenar_por para el listado de inventario.
var InventorySortColumns = map[string]string{
	"id":              "id",
	"codigo_produto":  "code",
	"tipo_roupa":      "category",
	"tecido":          "fabric",
	"quantidade":      "quantity",
	"cor":             "color",
	"tamanhos":        "sizes",
	"detalhes":        "details",
	"preco_unitario":  "unit_price",
	"quantida_vendas": "sold",
}
