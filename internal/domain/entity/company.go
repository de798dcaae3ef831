package entity

// Company datos fiscales de la tienda (1:1 con User).
// Los campos fiscales son nil cuando la tienda no tiene CNPJ.
type Company struct {
	ID                    int64
	UserID                int64
	TradeName             string  // nome fantasia
	CNPJ                  *string
	LegalName             *string // razão social
	CNAE                  *string
	StateRegistration     *string // inscrição estadual (IE)
	MunicipalRegistration *string // inscrição municipal (IM)
	TaxRegime             *string // regime tributário
	CEP                   string
	Street                string
	District              string // bairro
	City                  string
	State                 string
	Country               string
}
