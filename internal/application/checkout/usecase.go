// Package checkout registra las ventas del painel de compras: una venta por línea
// del carrito y la baja de stock correspondiente, todo en una sola transacción.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

const saleDateLayout = "2006-01-02"

// Owner dueño autenticado que realiza la venta.
type Owner struct {
	ID   int64
	Name string
}

// UseCase confirma carritos.
type UseCase struct {
	txRunner TxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, log: log, now: time.Now}
}

// Checkout valida el carrito y, dentro de una transacción:
//  1. resuelve el cliente por nombre (si no existe: ErrClientNotFound y nada se escribe);
//  2. resuelve el vendedor (opcional, un nombre desconocido equivale a sin vendedor);
//  3. por cada línea con código conocido inserta la venta y baja el stock de forma condicional.
//
// Los códigos desconocidos se saltan y se informan en SkippedCodes.
// Stock insuficiente en cualquier línea revierte todo el carrito.
func (uc *UseCase) Checkout(ctx context.Context, owner Owner, cart dto.CartDTO) (*dto.CheckoutResponse, error) {
	if err := Validate(&cart); err != nil {
		return nil, err
	}
	saleDate := uc.now().Format(saleDateLayout)
	res := &dto.CheckoutResponse{SaleIDs: []int64{}, SkippedCodes: []string{}, Total: decimal.Zero}

	err := uc.txRunner.RunCheckout(ctx, func(
		userRepo repository.UserRepository,
		clientRepo repository.ClientRepository,
		employeeRepo repository.EmployeeRepository,
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error {
		client, err := clientRepo.GetByName(ctx, owner.ID, strings.TrimSpace(cart.Client))
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("%w: '%s'", domain.ErrClientNotFound, cart.Client)
		}

		employeeID, err := uc.resolveSeller(ctx, userRepo, employeeRepo, owner, cart.Seller)
		if err != nil {
			return err
		}

		for _, line := range cart.Items {
			item, err := inventoryRepo.GetByCode(ctx, owner.ID, line.Code)
			if err != nil {
				return err
			}
			if item == nil {
				uc.logger(ctx).Warn().Int64("user_id", owner.ID).Str("codigo", line.Code).Msg("código desconhecido ignorado no checkout")
				res.SkippedCodes = append(res.SkippedCodes, line.Code)
				continue
			}

			sale := &entity.Sale{
				UserID:     owner.ID,
				ClientID:   client.ID,
				ItemID:     item.ID,
				EmployeeID: employeeID,
				Quantity:   line.Quantity,
				Total:      line.Price,
				SaleDate:   saleDate,
			}
			if err := saleRepo.Create(ctx, sale); err != nil {
				return err
			}
			if err := inventoryRepo.DecrementStock(ctx, owner.ID, item.ID, line.Quantity); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return fmt.Errorf("%w: %s (disponível %d, pedido %d)", err, item.Code, item.Quantity, line.Quantity)
				}
				return err
			}
			res.SaleIDs = append(res.SaleIDs, sale.ID)
			res.Total = res.Total.Add(line.Price)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Applied = len(res.SaleIDs)

	uc.logger(ctx).Info().
		Int64("user_id", owner.ID).
		Int("itens", res.Applied).
		Int("ignorados", len(res.SkippedCodes)).
		Str("total", res.Total.StringFixed(2)).
		Msg("compra finalizada")
	return res, nil
}

// logger usa el logger de la petición (con request_id) cuando el contexto lo trae.
func (uc *UseCase) logger(ctx context.Context) *logger.Logger {
	return logger.FromContext(ctx, uc.log).Named("checkout")
}

// resolveSeller devuelve el ID del funcionario vendedor o nil cuando no hay vendedor.
// El nombre del dueño se relee de users: el del token puede ser anterior a un cambio de perfil.
func (uc *UseCase) resolveSeller(
	ctx context.Context,
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	owner Owner,
	seller string,
) (*int64, error) {
	if sellerIsNone(seller, "") {
		return nil, nil
	}
	user, err := userRepo.GetByID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	ownerName := owner.Name
	if user != nil {
		ownerName = user.Name
	}
	if sellerIsNone(seller, ownerName) {
		return nil, nil
	}
	emp, err := employeeRepo.GetByFullName(ctx, owner.ID, strings.TrimSpace(seller))
	if err != nil {
		return nil, err
	}
	if emp == nil {
		uc.logger(ctx).Debug().Int64("user_id", owner.ID).Str("vendedor", seller).Msg("vendedor não encontrado, venda sem funcionário")
		return nil, nil
	}
	return &emp.ID, nil
}
