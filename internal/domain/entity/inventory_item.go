package entity

import "github.com/shopspring/decimal"

// InventoryItem representa una prenda en stock ("roupa").
// Quantity nunca es negativa; Sold acumula unidades vendidas y no depende del stock actual.
type InventoryItem struct {
	ID        int64
	UserID    int64
	Code      string // código do produto, único por dueño
	EntryDate string // YYYY-MM-DD
	Category  string // tipo de roupa
	Fabric    string
	Quantity  int
	Color     string
	Sizes     string
	Details   string
	UnitPrice decimal.Decimal
	Sold      int
}

// Description descripción usada en la exportación: "tipo cor tamanhos".
func (i *InventoryItem) Description() string {
	return i.Category + " " + i.Color + " " + i.Sizes
}
