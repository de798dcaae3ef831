package dto

// ChartSeriesDTO serie etiqueta/valor que consume Chart.js en el frontend.
type ChartSeriesDTO struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// ProjectionDTO proyección del próximo mes: variación formateada y color del indicador.
type ProjectionDTO struct {
	Value string `json:"value"` // ej: "+25.0%"
	Color string `json:"color"` // blue | green | red | grey
}

// SalesKPIsDTO indicadores de los últimos 12 meses, ya formateados en pt-BR.
type SalesKPIsDTO struct {
	Total          string        `json:"total"`
	Average        string        `json:"average"`
	BestMonthLabel string        `json:"best_month_label"`
	BestMonthValue string        `json:"best_month_value"`
	Projection     ProjectionDTO `json:"projection"`
}

// SalesMetricsDTO respuesta de GET /dados_dashboard_metricas.
type SalesMetricsDTO struct {
	MonthlySales ChartSeriesDTO `json:"monthly_sales"`
	KPIs         SalesKPIsDTO   `json:"kpis"`
	TopProducts  ChartSeriesDTO `json:"top_products"`
}

// QuarterDatasetDTO serie de un funcionario en el gráfico trimestral agrupado.
type QuarterDatasetDTO struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
}

// QuarterlySalesDTO ventas por trimestre y funcionario.
type QuarterlySalesDTO struct {
	Labels   []string            `json:"labels"`
	Datasets []QuarterDatasetDTO `json:"datasets"`
}

// EmployeeMetricsDTO respuesta de GET /dados_metricas_funcionarios.
type EmployeeMetricsDTO struct {
	TopSellers     ChartSeriesDTO    `json:"top_sellers"`
	QuarterlySales QuarterlySalesDTO `json:"quarterly_sales"`
}

// ClientKPIsDTO indicadores de clientes.
type ClientKPIsDTO struct {
	TotalClients    int    `json:"total_clientes"`
	NewClients30d   int    `json:"novos_clientes_30d"`
	TopSpenderName  string `json:"maior_gastador_nome"`
	TopSpenderValue string `json:"maior_gastador_valor"`
}

// ClientMetricsDTO respuesta de GET /dados_metricas_clientes.
type ClientMetricsDTO struct {
	KPIs               ClientKPIsDTO  `json:"kpis"`
	TopClientsSpending ChartSeriesDTO `json:"top_clients_spending"`
}
