package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
)

func TestReconcileQuantity(t *testing.T) {
	tests := []struct {
		name             string
		current, sold    int
		newQty           int
		wantQty, wantSld int
	}{
		{"baja suma vendidos", 10, 2, 7, 7, 5},
		{"sube no cambia vendidos", 10, 2, 15, 15, 2},
		{"igual", 10, 2, 10, 10, 2},
		{"a cero", 4, 0, 0, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qty, sold, err := inventory.ReconcileQuantity(tt.current, tt.sold, tt.newQty)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQty, qty)
			assert.Equal(t, tt.wantSld, sold)
		})
	}
}

func TestReconcileQuantity_Negativa(t *testing.T) {
	qty, sold, err := inventory.ReconcileQuantity(10, 2, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, qty)
	assert.Equal(t, 2, sold)
}
