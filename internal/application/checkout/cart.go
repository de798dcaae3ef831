package checkout

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// NoSeller valor que el painel de compras envía cuando la venta no tiene vendedor.
const NoSeller = "Nenhum"

// ParseCart decodifica el campo dados_carrinho.
func ParseCart(raw string) (*dto.CartDTO, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: nenhum dado de compra recebido", domain.ErrInvalidInput)
	}
	var cart dto.CartDTO
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("%w: carrinho malformado", domain.ErrInvalidInput)
	}
	return &cart, nil
}

// Validate revisa el carrito antes de abrir la transacción.
func Validate(cart *dto.CartDTO) error {
	if strings.TrimSpace(cart.Client) == "" {
		return fmt.Errorf("%w: cliente não informado", domain.ErrInvalidInput)
	}
	if len(cart.Items) == 0 {
		return fmt.Errorf("%w: carrinho vazio", domain.ErrInvalidInput)
	}
	for _, it := range cart.Items {
		if strings.TrimSpace(it.Code) == "" {
			return fmt.Errorf("%w: item sem código", domain.ErrInvalidInput)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: quantidade inválida para %s", domain.ErrInvalidInput, it.Code)
		}
		if !it.Price.GreaterThan(decimal.Zero) {
			return fmt.Errorf("%w: preço inválido para %s", domain.ErrInvalidInput, it.Code)
		}
	}
	return nil
}

// Total suma el preco de cada línea.
func Total(cart *dto.CartDTO) decimal.Decimal {
	total := decimal.Zero
	for _, it := range cart.Items {
		total = total.Add(it.Price)
	}
	return total
}

// Review devuelve el carrito y su total sin tocar la base (pantalla revisar_compra).
func Review(raw string) (*dto.CartReviewResponse, error) {
	cart, err := ParseCart(raw)
	if err != nil {
		return nil, err
	}
	return &dto.CartReviewResponse{Cart: *cart, Total: Total(cart)}, nil
}

// sellerIsNone indica que la venta no se atribuye a ningún funcionario:
// vacío, "Nenhum" o el propio dueño.
func sellerIsNone(seller, ownerName string) bool {
	s := strings.TrimSpace(seller)
	if s == "" || strings.EqualFold(s, NoSeller) || strings.EqualFold(s, "none") {
		return true
	}
	return ownerName != "" && s == ownerName
}
