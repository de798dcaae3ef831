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

// SearchLimit máximo de sugerencias de los buscadores de funcionarios y clientes.
const SearchLimit = 10

// EmployeeUseCase cadastro y listado de funcionarios.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	now  func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: time.Now}
}

// Create cadastra un funcionario.
func (uc *EmployeeUseCase) Create(ctx context.Context, userID int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &entity.Employee{UserID: userID}
	applyEmployeeRequest(e, in)
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Get obtiene un funcionario del dueño. No existe -> domain.ErrNotFound.
func (uc *EmployeeUseCase) Get(ctx context.Context, userID, id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(e), nil
}

// Update sobrescribe los datos del funcionario.
func (uc *EmployeeUseCase) Update(ctx context.Context, userID, id int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &entity.Employee{ID: id, UserID: userID}
	applyEmployeeRequest(e, in)
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// List lista los funcionarios con el total vendido y el número de ventas del mes en curso.
func (uc *EmployeeUseCase) List(ctx context.Context, userID int64, in dto.ListRequest) ([]dto.EmployeeListItemDTO, error) {
	rows, err := uc.repo.ListWithMonthSales(ctx, userID, uc.now().Format("2006-01"), in.OrderBy, in.Desc())
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeListItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.EmployeeListItemDTO{
			EmployeeResponse: *toEmployeeResponse(&rows[i].Employee),
			MonthTotal:       rows[i].MonthTotal,
			MonthCount:       rows[i].MonthCount,
		})
	}
	return out, nil
}

// SearchActive sugiere funcionarios con contrato vigente para el campo vendedor.
func (uc *EmployeeUseCase) SearchActive(ctx context.Context, userID int64, term string) ([]dto.EmployeeSuggestionDTO, error) {
	list, err := uc.repo.SearchActive(ctx, userID, term, SearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeSuggestionDTO, 0, len(list))
	for _, e := range list {
		out = append(out, dto.EmployeeSuggestionDTO{ID: e.ID, FullName: e.FullName})
	}
	return out, nil
}

func applyEmployeeRequest(e *entity.Employee, in dto.EmployeeRequest) {
	e.FullName = strings.TrimSpace(in.FullName)
	e.CEP = in.CEP
	e.Street = in.Street
	e.Number = in.Number
	e.City = in.City
	e.State = in.State
	e.Country = in.Country
	e.ContractStart = in.ContractStart
	e.ContractEnd = optional(in.ContractEnd)
	e.Role = in.Role
	e.RoleDescription = in.RoleDescription
	e.Notes = optional(in.Notes)
	e.IsManager = in.IsManager
}

// optional convierte "" en nil (NULL en la base).
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:              e.ID,
		FullName:        e.FullName,
		CEP:             e.CEP,
		Street:          e.Street,
		Number:          e.Number,
		City:            e.City,
		State:           e.State,
		Country:         e.Country,
		ContractStart:   e.ContractStart,
		ContractEnd:     e.ContractEnd,
		Role:            e.Role,
		RoleDescription: e.RoleDescription,
		Notes:           e.Notes,
		IsManager:       e.IsManager,
		Active:          e.Active(),
	}
}
