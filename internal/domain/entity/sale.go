package entity

import "github.com/shopspring/decimal"

// Sale una línea vendida. Solo la crea el checkout, junto con la baja de stock; nunca se edita.
type Sale struct {
	ID         int64
	UserID     int64
	ClientID   int64
	ItemID     int64
	EmployeeID *int64 // nil cuando no hubo vendedor
	Quantity   int
	Total      decimal.Decimal // valor total de la línea
	SaleDate   string          // YYYY-MM-DD
}
