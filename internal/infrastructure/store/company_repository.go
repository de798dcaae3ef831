package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository.
type CompanyRepo struct {
	c Conn
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(c Conn) *CompanyRepo {
	return &CompanyRepo{c: c}
}

// GetByUser obtiene la empresa del usuario. nil, nil si todavía no la registró.
func (r *CompanyRepo) GetByUser(ctx context.Context, userID int64) (*entity.Company, error) {
	query := `
		SELECT id, user_id, trade_name, cnpj, legal_name, cnae, state_registration, municipal_registration,
		       tax_regime, cep, street, district, city, state, country
		FROM companies WHERE user_id = ?`
	var (
		co                                   entity.Company
		cnpj, legal, cnae, ie, im, taxRegime sql.NullString
	)
	err := r.c.queryRow(ctx, query, userID).Scan(
		&co.ID, &co.UserID, &co.TradeName, &cnpj, &legal, &cnae, &ie, &im, &taxRegime,
		&co.CEP, &co.Street, &co.District, &co.City, &co.State, &co.Country,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	co.CNPJ = stringPtr(cnpj)
	co.LegalName = stringPtr(legal)
	co.CNAE = stringPtr(cnae)
	co.StateRegistration = stringPtr(ie)
	co.MunicipalRegistration = stringPtr(im)
	co.TaxRegime = stringPtr(taxRegime)
	return &co, nil
}

// Upsert inserta la empresa o actualiza la existente del mismo usuario.
func (r *CompanyRepo) Upsert(ctx context.Context, co *entity.Company) error {
	query := `
		INSERT INTO companies (user_id, trade_name, cnpj, legal_name, cnae, state_registration,
		                       municipal_registration, tax_regime, cep, street, district, city, state, country)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
		    trade_name = excluded.trade_name,
		    cnpj = excluded.cnpj,
		    legal_name = excluded.legal_name,
		    cnae = excluded.cnae,
		    state_registration = excluded.state_registration,
		    municipal_registration = excluded.municipal_registration,
		    tax_regime = excluded.tax_regime,
		    cep = excluded.cep,
		    street = excluded.street,
		    district = excluded.district,
		    city = excluded.city,
		    state = excluded.state,
		    country = excluded.country
		RETURNING id`
	err := r.c.queryRow(ctx, query,
		co.UserID, co.TradeName, nullableString(co.CNPJ), nullableString(co.LegalName),
		nullableString(co.CNAE), nullableString(co.StateRegistration), nullableString(co.MunicipalRegistration),
		nullableString(co.TaxRegime), co.CEP, co.Street, co.District, co.City, co.State, co.Country,
	).Scan(&co.ID)
	if err != nil {
		return fmt.Errorf("upsert company: %w", err)
	}
	return nil
}
