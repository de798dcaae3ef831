package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest alta y edición de funcionario. data_fim_contrato vacío = contrato vigente.
type EmployeeRequest struct {
	FullName        string `json:"nome_completo" validate:"required,max=200"`
	CEP             string `json:"cep"`
	Street          string `json:"rua"`
	Number          string `json:"numero"`
	City            string `json:"cidade"`
	State           string `json:"estado"`
	Country         string `json:"pais"`
	ContractStart   string `json:"data_inicio_contrato" validate:"required,datetime=2006-01-02"`
	ContractEnd     string `json:"data_fim_contrato" validate:"omitempty,datetime=2006-01-02"`
	Role            string `json:"cargo" validate:"required,max=100"`
	RoleDescription string `json:"definicao_cargo"`
	Notes           string `json:"observacoes"`
	IsManager       bool   `json:"is_gerente"`
}

// EmployeeResponse salida de un funcionario.
type EmployeeResponse struct {
	ID              int64   `json:"id"`
	FullName        string  `json:"nome_completo"`
	CEP             string  `json:"cep"`
	Street          string  `json:"rua"`
	Number          string  `json:"numero"`
	City            string  `json:"cidade"`
	State           string  `json:"estado"`
	Country         string  `json:"pais"`
	ContractStart   string  `json:"data_inicio_contrato"`
	ContractEnd     *string `json:"data_fim_contrato"`
	Role            string  `json:"cargo"`
	RoleDescription string  `json:"definicao_cargo"`
	Notes           *string `json:"observacoes"`
	IsManager       bool    `json:"is_gerente"`
	Active          bool    `json:"ativo"`
}

// EmployeeListItemDTO fila del listado con las ventas del mes en curso.
type EmployeeListItemDTO struct {
	EmployeeResponse
	MonthTotal decimal.Decimal `json:"total_valor_mes"`
	MonthCount int             `json:"numero_vendas_mes"`
}

// EmployeeSuggestionDTO resultado de /buscar_funcionarios.
type EmployeeSuggestionDTO struct {
	ID       int64  `json:"id"`
	FullName string `json:"nome_completo"`
}

// ClientRequest alta y edición de cliente.
type ClientRequest struct {
	Name  string `json:"nome" validate:"required,max=200"`
	Phone string `json:"telefone" validate:"max=40"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nome"`
	Phone        string    `json:"telefone"`
	RegisteredAt time.Time `json:"data_cadastro"`
}

// ClientPanelItemDTO fila del painel de clientes.
type ClientPanelItemDTO struct {
	ClientResponse
	PurchaseDays int             `json:"total_compras"`
	Spent3Months decimal.Decimal `json:"total_gasto_3m"`
}

// ClientSuggestionDTO resultado de /buscar_clientes.
type ClientSuggestionDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}
