package usecase

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProfileTxRunner ejecuta la actualización del dueño y de su empresa en una sola transacción.
type ProfileTxRunner interface {
	RunProfile(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}
