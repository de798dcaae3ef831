package dto

import "github.com/shopspring/decimal"

// CreateItemRequest entrada para cadastrar una prenda. Vendidos inicia en 0.
type CreateItemRequest struct {
	Code      string          `json:"codigo_produto" validate:"required,max=60"`
	EntryDate string          `json:"data_entrada" validate:"required,datetime=2006-01-02"`
	Category  string          `json:"tipo_roupa" validate:"required,max=100"`
	Fabric    string          `json:"tecido"`
	Quantity  int             `json:"quantidade" validate:"gte=0"`
	Color     string          `json:"cor"`
	Sizes     string          `json:"tamanhos"`
	Details   string          `json:"detalhes"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
}

// UpdateItemRequest entrada de edición. La fecha de entrada no se edita.
// Quantity negativa se rechaza en el use case.
type UpdateItemRequest struct {
	Code      string          `json:"codigo_produto" validate:"required,max=60"`
	Category  string          `json:"tipo_roupa" validate:"required,max=100"`
	Fabric    string          `json:"tecido"`
	Quantity  int             `json:"quantidade"`
	Color     string          `json:"cor"`
	Sizes     string          `json:"tamanhos"`
	Details   string          `json:"detalhes"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
}

// ItemResponse salida de una prenda.
type ItemResponse struct {
	ID        int64           `json:"id"`
	Code      string          `json:"codigo_produto"`
	EntryDate string          `json:"data_entrada"`
	Category  string          `json:"tipo_roupa"`
	Fabric    string          `json:"tecido"`
	Quantity  int             `json:"quantidade"`
	Color     string          `json:"cor"`
	Sizes     string          `json:"tamanhos"`
	Details   string          `json:"detalhes"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
	Sold      int             `json:"quantida_vendas"`
}

// ProductSuggestionDTO resultado de /buscar_produtos.
type ProductSuggestionDTO struct {
	ID   int64  `json:"id"`
	Code string `json:"codigo_produto"`
}

// ProductDetailsDTO resultado de /buscar_detalhes_produto.
type ProductDetailsDTO struct {
	Code     string `json:"codigo_produto"`
	Category string `json:"tipo_roupa"`
	Color    string `json:"cor"`
	Details  string `json:"detalhes"`
}
