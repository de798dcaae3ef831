package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBirthDate(t *testing.T) {
	got, ok := NormalizeBirthDate("1990-03-15")
	require.True(t, ok)
	assert.Equal(t, "15/03/1990", got)

	got, ok = NormalizeBirthDate(" 15/03/1990 ")
	require.True(t, ok)
	assert.Equal(t, "15/03/1990", got)

	_, ok = NormalizeBirthDate("31/02/1990")
	assert.False(t, ok)
}

func TestUser_BirthDateInput(t *testing.T) {
	u := User{BirthDate: "15/03/1990"}
	require.NotNil(t, u.BirthDateInput())
	assert.Equal(t, "1990-03-15", *u.BirthDateInput())

	u.BirthDate = "sem data"
	assert.Nil(t, u.BirthDateInput())
}

func TestEmployee_Active(t *testing.T) {
	empty, end := "", "2025-01-31"
	assert.True(t, (&Employee{}).Active())
	assert.True(t, (&Employee{ContractEnd: &empty}).Active())
	assert.False(t, (&Employee{ContractEnd: &end}).Active())
}
