package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// spendWindow ventana del gasto reciente del painel de clientes.
const spendWindow = 90 * 24 * time.Hour

// ClientUseCase cadastro y painel de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
	now  func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: time.Now}
}

// Create cadastra un cliente con fecha de registro actual.
func (uc *ClientUseCase) Create(ctx context.Context, userID int64, in dto.ClientRequest) (*dto.ClientResponse, error) {
	c := &entity.Client{
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Phone:        in.Phone,
		RegisteredAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// Get obtiene un cliente del dueño. No existe -> domain.ErrNotFound.
func (uc *ClientUseCase) Get(ctx context.Context, userID, id int64) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// Update cambia nombre y teléfono.
func (uc *ClientUseCase) Update(ctx context.Context, userID, id int64, in dto.ClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = in.Phone
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClientResponse(c), nil
}

// Panel lista los clientes por nombre con días de compra y gasto de los últimos 90 días.
func (uc *ClientUseCase) Panel(ctx context.Context, userID int64) ([]dto.ClientPanelItemDTO, error) {
	since := uc.now().Add(-spendWindow).Format("2006-01-02")
	rows, err := uc.repo.ListPanel(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientPanelItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ClientPanelItemDTO{
			ClientResponse: *toClientResponse(&rows[i].Client),
			PurchaseDays:   rows[i].PurchaseDays,
			Spent3Months:   rows[i].Spent3Months,
		})
	}
	return out, nil
}

// Search sugiere clientes cuyo nombre contiene term.
func (uc *ClientUseCase) Search(ctx context.Context, userID int64, term string) ([]dto.ClientSuggestionDTO, error) {
	list, err := uc.repo.Search(ctx, userID, term, SearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientSuggestionDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ClientSuggestionDTO{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		RegisteredAt: c.RegisteredAt,
	}
}
