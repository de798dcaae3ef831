package dto

// ListRequest ordenación de listados (ordenar_por / ordem).
type ListRequest struct {
	OrderBy string `query:"ordenar_por"`
	Order   string `query:"ordem" validate:"omitempty,oneof=asc desc ASC DESC"`
}

// Desc indica orden descendente.
func (r ListRequest) Desc() bool {
	return r.Order == "desc" || r.Order == "DESC"
}

// SearchRequest término de los buscadores (typeahead).
type SearchRequest struct {
	Term string `query:"query"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de éxito.
type MessageResponse struct {
	Message string `json:"message"`
}

// Flash mensaje que trae la redirección de un formulario (?sucesso= / ?erro=).
type Flash struct {
	Success string `json:"sucesso,omitempty"`
	Error   string `json:"erro,omitempty"`
}
