package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "controle_estoque.db", cfg.DB.ConnectionString())
	assert.Equal(t, "127.0.0.1:5000", cfg.HTTP.Addr())
	assert.Equal(t, 480, cfg.JWT.Expiration)
}

func TestFromViper_PostgresDSN(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "POSTGRES")
	v.Set("DB_HOST", "db")
	v.Set("DB_PORT", "5433")
	v.Set("DB_USER", "loja")
	v.Set("DB_PASSWORD", "s3nh@#")
	v.Set("DB_NAME", "estoque")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "postgres://loja:s3nh%40%23@db:5433/estoque?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_DatabaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "postgres")
	v.Set("DATABASE_URL", "postgres://u:p@h:5432/x")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h:5432/x", cfg.DB.ConnectionString())
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mysql")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ProductionExigeSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := fromViper(v)
	assert.Error(t, err)

	v.Set("JWT_SECRET", "x")
	_, err = fromViper(v)
	assert.NoError(t, err)
}

func TestGetInt_ValorNoNumericoUsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "abc")
	assert.Equal(t, 8080, getInt(v, "HTTP_PORT", 8080))
}
