// Package db provides a lightweight GORM wrapper for the intent mirror's
// relational store. PostgreSQL backs production deployments; SQLite backs
// tests and small local runs. The schema is auto-migrated once at startup,
// which makes first boot against an empty database idempotent.
package db

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arcana-labs/intentsync/store"
)

// InMemorySQLiteDSN is a special DSN to create an ephemeral in-memory SQLite database.
const InMemorySQLiteDSN = ":memory:"

var (
	// gormConfig disables gorm's own logging; zerolog owns process output.
	gormConfig = &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	// schemaModels lists the structs auto-migrated into the database.
	schemaModels = []any{
		&store.Intent{},
		&store.IntentSource{},
		&store.IntentDestination{},
		&store.IntentSignature{},
		&store.FillTransaction{},
		&store.DepositTransaction{},
		&store.EvmFillEvent{},
		&store.EvmDepositEvent{},
		&store.EvmSyncState{},
	}
)

// DB wraps a GORM client and provides simplified DB lifecycle management.
type DB struct {
	client *gorm.DB
}

// Open connects to the store described by dsn and migrates the schema if
// requested. postgres:// (or postgresql://) DSNs use the postgres driver;
// everything else is treated as a SQLite path.
func Open(dsn string, migrateSchema bool) (*DB, error) {
	if dsn == "" {
		return nil, errors.New("empty store DSN")
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		if dsn != InMemorySQLiteDSN && !strings.Contains(dsn, "?") {
			// WAL mode and a busy timeout for concurrent readers.
			dsn += "?_journal_mode=WAL&_busy_timeout=5000&cache=shared&mode=rwc"
		}
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if migrateSchema {
		if err := db.AutoMigrate(schemaModels...); err != nil {
			return nil, errors.Wrap(err, "failed to auto-migrate database schema")
		}
	}

	return &DB{client: db}, nil
}

// OpenInMemory opens a non-persistent SQLite database in memory.
// This is useful for testing or ephemeral state.
func OpenInMemory(migrateSchema bool) (*DB, error) {
	return Open(InMemorySQLiteDSN, migrateSchema)
}

// Client returns the internal *gorm.DB instance for direct usage in queries.
func (d *DB) Client() *gorm.DB {
	return d.client
}

// Close safely closes the underlying database connection.
func (d *DB) Close() error {
	sqlDB, err := d.client.DB()
	if err != nil {
		return errors.Wrap(err, "failed to retrieve native sql.DB")
	}

	if err := sqlDB.Close(); err != nil {
		return errors.Wrap(err, "failed to close database connection")
	}

	return nil
}
