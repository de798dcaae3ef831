package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/cnpj"
)

// CNPJYes valor de cnpj_sim que habilita los campos fiscales.
const CNPJYes = "sim"

// CompanyUseCase datos del dueño y de su empresa (emitente de la exportación).
type CompanyUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	txRunner    ProfileTxRunner
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	txRunner ProfileTxRunner,
) *CompanyUseCase {
	return &CompanyUseCase{userRepo: userRepo, companyRepo: companyRepo, txRunner: txRunner}
}

// Get devuelve el perfil del dueño con su empresa (Company nil si aún no la registró).
func (uc *CompanyUseCase) Get(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	company, err := uc.companyRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(user, company), nil
}

// Upsert actualiza nombre, apellido y fecha de nacimiento del dueño y crea o actualiza su empresa.
// Con cnpj_sim distinto de "sim" los campos fiscales quedan en NULL; con "sim" el CNPJ
// se valida por dígito verificador y se guarda con máscara.
func (uc *CompanyUseCase) Upsert(ctx context.Context, userID int64, in dto.UpsertCompanyRequest) (*dto.ProfileResponse, error) {
	birth, ok := entity.NormalizeBirthDate(in.BirthDate)
	if !ok {
		return nil, fmt.Errorf("%w: data de nascimento inválida", domain.ErrInvalidInput)
	}

	company := &entity.Company{
		UserID:    userID,
		TradeName: in.TradeName,
		CEP:       in.CEP,
		Street:    in.Street,
		District:  in.District,
		City:      in.City,
		State:     in.State,
		Country:   in.Country,
	}
	if strings.EqualFold(strings.TrimSpace(in.HasCNPJ), CNPJYes) {
		if err := cnpj.Validate(in.CNPJ); err != nil {
			return nil, fmt.Errorf("%w: CNPJ inválido", domain.ErrInvalidInput)
		}
		formatted := cnpj.Format(in.CNPJ)
		company.CNPJ = &formatted
		company.LegalName = &in.LegalName
		company.CNAE = &in.CNAE
		company.StateRegistration = &in.StateRegistration
		company.MunicipalRegistration = &in.MunicipalRegistration
		company.TaxRegime = &in.TaxRegime
	}

	var user *entity.User
	err := uc.txRunner.RunProfile(ctx, func(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) error {
		u, err := userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUserNotFound
		}
		u.Name = in.Name
		u.LastName = in.LastName
		u.BirthDate = birth
		if err := userRepo.UpdateProfile(ctx, u); err != nil {
			return err
		}
		user = u
		return companyRepo.Upsert(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	return toProfileResponse(user, company), nil
}

func toProfileResponse(u *entity.User, c *entity.Company) *dto.ProfileResponse {
	out := &dto.ProfileResponse{
		Name:      u.Name,
		LastName:  u.LastName,
		BirthDate: u.BirthDateInput(),
		Email:     u.Email,
	}
	if c != nil {
		out.Company = &dto.CompanyResponse{
			ID:                    c.ID,
			TradeName:             c.TradeName,
			CNPJ:                  c.CNPJ,
			LegalName:             c.LegalName,
			CNAE:                  c.CNAE,
			StateRegistration:     c.StateRegistration,
			MunicipalRegistration: c.MunicipalRegistration,
			TaxRegime:             c.TaxRegime,
			CEP:                   c.CEP,
			Street:                c.Street,
			District:              c.District,
			City:                  c.City,
			State:                 c.State,
			Country:               c.Country,
		}
	}
	return out
}
