package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/estoque-api/pkg/config"
)

//go:embed schema_sqlite.sql
var schemaSQLite string

//go:embed schema_postgres.sql
var schemaPostgres string

// DB agrupa el pool database/sql y el dialecto de placeholders.
type DB struct {
	sql     *sql.DB
	dialect Dialect
}

// Open abre la base configurada y aplica el schema (idempotente).
// SQLite: un solo escritor, WAL, busy_timeout y foreign keys.
// PostgreSQL: driver pgx/stdlib con codec NUMERIC -> decimal en cada conexión.
func Open(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = openPostgres(ctx, cfg.ConnectionString())
	default:
		db, err = openSQLite(ctx, cfg.ConnectionString())
	}
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Wrap envuelve un *sql.DB ya abierto (tests con sqlmock, conexiones externas).
func Wrap(sqlDB *sql.DB, dialect Dialect) *DB {
	return &DB{sql: sqlDB, dialect: dialect}
}

func openSQLite(ctx context.Context, path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite admite un escritor a la vez
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, p); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("aplicar %q: %w", p, err)
		}
	}
	return &DB{sql: sqlDB, dialect: DialectSQLite}, nil
}

func openPostgres(ctx context.Context, dsn string) (*DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal en cada conexión.
	sqlDB := stdlib.OpenDB(*connCfg, stdlib.OptionAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}))
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return &DB{sql: sqlDB, dialect: DialectPostgres}, nil
}

// Migrate crea las tablas que falten (idempotente). Open la llama siempre; init-db solo hace eso.
func (db *DB) Migrate(ctx context.Context) error {
	schema := schemaSQLite
	if db.dialect == DialectPostgres {
		schema = schemaPostgres
	}
	if _, err := db.sql.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}

// Conn devuelve un Conn sobre el pool (fuera de transacción).
func (db *DB) Conn() Conn {
	return Conn{q: db.sql, dialect: db.dialect}
}

// Dialect devuelve el dialecto de la conexión.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Ping verifica la conexión (healthcheck).
func (db *DB) Ping(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// Close cierra el pool.
func (db *DB) Close() error {
	if db == nil || db.sql == nil {
		return nil
	}
	return db.sql.Close()
}
