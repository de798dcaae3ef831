package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreaLaBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estoque.db")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"init-db", "--db-driver", "sqlite3", "--db-path", path, "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(path)
	assert.NoError(t, err)

	// Segunda vez no falla: el schema es idempotente.
	cmd = newRootCommand()
	cmd.SetArgs([]string{"init-db", "--db-driver", "sqlite3", "--db-path", path, "--log-level", "error"})
	assert.NoError(t, cmd.Execute())
}

func TestInitDB_DriverInvalido(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"init-db", "--db-driver", "mysql"})
	assert.Error(t, cmd.Execute())
}
