package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-labs/intentsync/store"
)

func TestOpenInMemoryMigratesSchema(t *testing.T) {
	database, err := OpenInMemory(true)
	require.NoError(t, err)
	defer database.Close()

	client := database.Client()
	require.NotNil(t, client)

	for _, model := range schemaModels {
		assert.True(t, client.Migrator().HasTable(model), "missing table for %T", model)
	}

	// Migrated schema accepts a write.
	intent := &store.Intent{ID: 1, Nonce: 1, DestinationUniverse: "evm"}
	require.NoError(t, client.Create(intent).Error)
}

func TestOpenEmptyDSN(t *testing.T) {
	_, err := Open("", true)
	assert.Error(t, err)
}

func TestOpenWithoutMigration(t *testing.T) {
	database, err := OpenInMemory(false)
	require.NoError(t, err)
	defer database.Close()

	assert.False(t, database.Client().Migrator().HasTable(&store.Intent{}))
}
