package entity

import (
	"strings"
	"time"
)

// Formatos de la fecha de nacimiento: guardada dd/mm/yyyy, el input HTML envía YYYY-MM-DD.
const (
	BirthDateLayout      = "02/01/2006"
	BirthDateInputLayout = "2006-01-02"
)

// User representa al dueño de la tienda. Todo registro del sistema pertenece a un User (tenant).
type User struct {
	ID           int64
	Name         string
	LastName     string
	BirthDate    string // dd/mm/yyyy
	Email        string // único
	PasswordHash string // bcrypt, nunca plano después de persistir
	CreatedAt    time.Time
}

// DisplayName nombre que se usa como vendedor por defecto en el checkout.
func (u *User) DisplayName() string {
	return u.Name
}

// BirthDateInput devuelve la fecha de nacimiento en YYYY-MM-DD, o nil si no está en dd/mm/yyyy.
func (u *User) BirthDateInput() *string {
	t, err := time.Parse(BirthDateLayout, u.BirthDate)
	if err != nil {
		return nil
	}
	s := t.Format(BirthDateInputLayout)
	return &s
}

// NormalizeBirthDate acepta YYYY-MM-DD o dd/mm/yyyy y devuelve dd/mm/yyyy.
func NormalizeBirthDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{BirthDateInputLayout, BirthDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(BirthDateLayout), true
		}
	}
	return "", false
}
