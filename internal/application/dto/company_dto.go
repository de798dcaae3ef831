package dto

// UpsertCompanyRequest datos del dueño + empresa. Con cnpj_sim distinto de "sim" los campos fiscales se ignoran.
type UpsertCompanyRequest struct {
	Name      string `json:"nome" form:"nome" validate:"required,max=100"`
	LastName  string `json:"sobrenome" form:"sobrenome" validate:"required,max=100"`
	BirthDate string `json:"data_nascimento" form:"data_nascimento" validate:"required"`

	TradeName             string `json:"nome_fantasia" form:"nome_fantasia" validate:"required,max=200"`
	HasCNPJ               string `json:"cnpj_sim" form:"cnpj_sim"`
	CNPJ                  string `json:"cnpj" form:"cnpj"`
	LegalName             string `json:"razao_social" form:"razao_social"`
	CNAE                  string `json:"cnae" form:"cnae"`
	StateRegistration     string `json:"inscricao_estadual" form:"inscricao_estadual"`
	MunicipalRegistration string `json:"inscricao_municipal" form:"inscricao_municipal"`
	TaxRegime             string `json:"regime_tributario" form:"regime_tributario"`

	CEP      string `json:"cep" form:"cep"`
	Street   string `json:"rua" form:"rua"`
	District string `json:"bairro" form:"bairro"`
	City     string `json:"cidade" form:"cidade"`
	State    string `json:"estado" form:"estado"`
	Country  string `json:"pais" form:"pais"`
}

// CompanyResponse salida de la empresa.
type CompanyResponse struct {
	ID                    int64   `json:"id"`
	TradeName             string  `json:"nome_fantasia"`
	CNPJ                  *string `json:"cnpj"`
	LegalName             *string `json:"razao_social"`
	CNAE                  *string `json:"cnae"`
	StateRegistration     *string `json:"inscricao_estadual"`
	MunicipalRegistration *string `json:"inscricao_municipal"`
	TaxRegime             *string `json:"regime_tributario"`
	CEP                   string  `json:"cep"`
	Street                string  `json:"rua"`
	District              string  `json:"bairro"`
	City                  string  `json:"cidade"`
	State                 string  `json:"estado"`
	Country               string  `json:"pais"`
}

// ProfileResponse página "dados da empresa": dueño + empresa (nil si aún no existe).
// BirthDate va en YYYY-MM-DD para rellenar el input de fecha.
type ProfileResponse struct {
	Name      string           `json:"nome"`
	LastName  string           `json:"sobrenome"`
	BirthDate *string          `json:"data_nascimento"`
	Email     string           `json:"email"`
	Company   *CompanyResponse `json:"empresa"`
}

// CompanyPageResponse /dados_empresa: el perfil más el mensaje de la redirección.
type CompanyPageResponse struct {
	*ProfileResponse
	Flash
}
