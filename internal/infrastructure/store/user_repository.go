package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre database/sql.
type UserRepo struct {
	c Conn
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(c Conn) *UserRepo {
	return &UserRepo{c: c}
}

const userColumns = `id, name, last_name, birth_date, email, password_hash, created_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO users (name, last_name, birth_date, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`
	err := r.c.queryRow(ctx, query,
		user.Name, user.LastName, user.BirthDate, user.Email, user.PasswordHash,
		user.CreatedAt.Format(timestampLayout),
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, "get user", `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "get user by email", `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

// GetByEmailAndBirthDate obtiene un usuario por email y fecha de nacimiento.
func (r *UserRepo) GetByEmailAndBirthDate(ctx context.Context, email, birthDate string) (*entity.User, error) {
	return r.getOne(ctx, "get user by email and birth date",
		`SELECT `+userColumns+` FROM users WHERE email = ? AND birth_date = ?`, email, birthDate)
}

func (r *UserRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.User, error) {
	var (
		u         entity.User
		createdAt string
	)
	err := r.c.queryRow(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.LastName, &u.BirthDate, &u.Email, &u.PasswordHash, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if u.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// UpdatePassword reemplaza el hash de la contraseña del usuario con ese email.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res, err := r.c.exec(ctx, `UPDATE users SET password_hash = ? WHERE email = ?`, passwordHash, email)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateProfile actualiza nombre, apellido y fecha de nacimiento.
func (r *UserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	res, err := r.c.exec(ctx,
		`UPDATE users SET name = ?, last_name = ?, birth_date = ? WHERE id = ?`,
		user.Name, user.LastName, user.BirthDate, user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
