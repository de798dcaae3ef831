package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, cost: bcrypt.DefaultCost}
}

// RegisterUser crea un usuario: confirma la contraseña, la hashea con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	birth, ok := entity.NormalizeBirthDate(in.BirthDate)
	if !ok {
		return nil, fmt.Errorf("%w: data de nascimento inválida", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		LastName:     strings.TrimSpace(in.LastName),
		BirthDate:    birth,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.DisplayName(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Recover comprueba email + fecha de nacimiento antes de permitir el cambio de contraseña.
func (uc *AuthUseCase) Recover(ctx context.Context, in dto.RecoverRequest) error {
	_, err := uc.verifyIdentity(ctx, in.Email, in.BirthDate)
	return err
}

// UpdatePassword vuelve a verificar la identidad y reemplaza la contraseña.
func (uc *AuthUseCase) UpdatePassword(ctx context.Context, in dto.UpdatePasswordRequest) error {
	if in.NewPassword != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	user, err := uc.verifyIdentity(ctx, in.Email, in.BirthDate)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), uc.cost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, user.Email, string(hash))
}

func (uc *AuthUseCase) verifyIdentity(ctx context.Context, email, birthDate string) (*entity.User, error) {
	birth, ok := entity.NormalizeBirthDate(birthDate)
	if !ok {
		return nil, fmt.Errorf("%w: data de nascimento inválida", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByEmailAndBirthDate(ctx, strings.TrimSpace(email), birth)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: e-mail ou data de nascimento incorretos", domain.ErrUserNotFound)
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		BirthDate: u.BirthDate,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
