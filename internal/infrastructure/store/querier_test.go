package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	q := `SELECT * FROM sales WHERE user_id = ? AND id IN (?, ?)`

	assert.Equal(t, q, DialectSQLite.rebind(q))
	assert.Equal(t, `SELECT * FROM sales WHERE user_id = $1 AND id IN ($2, $3)`, DialectPostgres.rebind(q))
	assert.Equal(t, `SELECT 1`, DialectPostgres.rebind(`SELECT 1`))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", placeholders(0))
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%ana%", likePattern("  Ana "))
	assert.Equal(t, "%%", likePattern(""))
}

func TestParseTimestamp(t *testing.T) {
	ts, err := parseTimestamp("2025-10-19 14:30:00")
	assert.NoError(t, err)
	assert.Equal(t, 14, ts.Hour())

	ts, err = parseTimestamp("")
	assert.NoError(t, err)
	assert.True(t, ts.IsZero())

	_, err = parseTimestamp("19/10/2025")
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, isUniqueViolation(errors.New("ERROR: duplicate key (SQLSTATE 23505)")))
	assert.False(t, isUniqueViolation(errors.New("no such table: users")))
}
