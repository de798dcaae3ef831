package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	GetByUser(ctx context.Context, userID int64) (*entity.Company, error)
	// Upsert inserta o actualiza la empresa del usuario (una por usuario).
	Upsert(ctx context.Context, company *entity.Company) error
}
