package dto

import "github.com/shopspring/decimal"

// CartItemDTO línea del carrito: precio es el valor total de la línea, no el unitario.
type CartItemDTO struct {
	Code     string          `json:"codigo"`
	Quantity int             `json:"quantidade"`
	Price    decimal.Decimal `json:"preco"`
}

// CartDTO contenido de dados_carrinho enviado por el painel de compras.
type CartDTO struct {
	Client string        `json:"cliente"`
	Seller string        `json:"vendedor"`
	Items  []CartItemDTO `json:"itens"`
}

// CartReviewResponse respuesta de /revisar_compra.
type CartReviewResponse struct {
	Cart  CartDTO         `json:"compra"`
	Total decimal.Decimal `json:"total"`
}

// PurchasePanelResponse página del painel de compras: el dueño es el vendedor por defecto.
type PurchasePanelResponse struct {
	DefaultSeller string `json:"vendedor_padrao"`
	Flash
}

// CheckoutResponse resultado de un checkout confirmado.
type CheckoutResponse struct {
	SaleIDs      []int64         `json:"venda_ids"`
	Applied      int             `json:"itens_aplicados"`
	SkippedCodes []string        `json:"codigos_ignorados"`
	Total        decimal.Decimal `json:"total"`
}

// RecentSaleDTO fila de la página de selección de exportación.
type RecentSaleDTO struct {
	ID         int64           `json:"venda_id"`
	SaleDate   string          `json:"data_venda"`
	ClientName string          `json:"nome_cliente"`
	Total      decimal.Decimal `json:"valor_total_venda"`
}

// ExportRequest formulario de /gerar_arquivo_nfe.
type ExportRequest struct {
	SaleIDs []int64 `form:"venda_ids"`
	Format  string  `form:"formato_exportacao"`
}
