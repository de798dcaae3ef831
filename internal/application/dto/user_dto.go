package dto

import "time"

// RegisterRequest entrada de registro. La contraseña llega en texto y se hashea en el use case.
type RegisterRequest struct {
	Name            string `json:"nome" form:"nome" validate:"required,max=100"`
	LastName        string `json:"sobrenome" form:"sobrenome" validate:"required,max=100"`
	BirthDate       string `json:"data_nascimento" form:"data_nascimento" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"senha" form:"senha" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmar_senha" form:"confirmar_senha" validate:"required"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	LastName  string    `json:"sobrenome"`
	BirthDate string    `json:"data_nascimento"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"senha" form:"senha" validate:"required"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RecoverRequest verificación de identidad para recuperar la contraseña.
type RecoverRequest struct {
	Email     string `json:"email" form:"email" validate:"required,email"`
	BirthDate string `json:"data_nascimento" form:"data_nascimento" validate:"required"`
}

// UpdatePasswordRequest nueva contraseña con confirmación.
type UpdatePasswordRequest struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	BirthDate       string `json:"data_nascimento" form:"data_nascimento" validate:"required"`
	NewPassword     string `json:"nova_senha" form:"nova_senha" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmar_senha" form:"confirmar_senha" validate:"required"`
}
