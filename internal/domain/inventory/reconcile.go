package inventory

import "github.com/jhoicas/estoque-api/internal/domain"

// ReconcileQuantity aplica una edición manual de stock (servicio de dominio).
// Si la nueva cantidad es menor, la diferencia se cuenta como vendida:
//
//	NuevoVendidos = Vendidos + (Actual - Nueva)   si Nueva < Actual
//
// Aumentar el stock nunca cambia Vendidos. Cantidades negativas -> domain.ErrInvalidInput.
func ReconcileQuantity(current, sold, newQty int) (quantity, newSold int, err error) {
	if newQty < 0 {
		return current, sold, domain.ErrInvalidInput
	}
	if newQty < current {
		sold += current - newQty
	}
	return newQty, sold, nil
}
