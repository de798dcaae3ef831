package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes se muestran al usuario final, por eso van en portugués.
var (
	// NotFound
	ErrNotFound        = errors.New("registro não encontrado")
	ErrUserNotFound    = errors.New("usuário não encontrado")
	ErrClientNotFound  = errors.New("cliente não encontrado")
	ErrCompanyNotFound = errors.New("dados da empresa não encontrados, cadastre-os antes de exportar")

	// ValidationError
	ErrInvalidInput      = errors.New("dados inválidos")
	ErrPasswordMismatch  = errors.New("as senhas não coincidem")
	ErrInsufficientStock = errors.New("estoque insuficiente")

	// IntegrityError
	ErrEmailAlreadyExists = errors.New("este e-mail já está cadastrado")
	ErrDuplicate          = errors.New("registro duplicado")

	ErrUnauthorized = errors.New("e-mail ou senha inválidos")
)
