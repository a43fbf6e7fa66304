package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubMigration is a minimal migration for registry tests
type stubMigration struct {
	version float64
}

func (s *stubMigration) GetMajorVersion() float64                      { return s.version }
func (s *stubMigration) Up(ctx context.Context, db DBExecutor) error   { return nil }
func (s *stubMigration) Down(ctx context.Context, db DBExecutor) error { return nil }

func TestMigrationRegistry_RegisterAndGet(t *testing.T) {
	registry := &MigrationRegistryImpl{
		migrations: make(map[float64]MajorMigrationInterface),
	}

	migration := &stubMigration{version: 42.0}
	registry.Register(migration)

	got, exists := registry.GetMigration(42.0)
	assert.True(t, exists)
	assert.Equal(t, migration, got)

	_, exists = registry.GetMigration(43.0)
	assert.False(t, exists)
}

func TestMigrationRegistry_GetMigrationsSorted(t *testing.T) {
	registry := &MigrationRegistryImpl{
		migrations: make(map[float64]MajorMigrationInterface),
	}

	registry.Register(&stubMigration{version: 3.0})
	registry.Register(&stubMigration{version: 1.0})
	registry.Register(&stubMigration{version: 2.0})

	migrations := registry.GetMigrations()
	assert.Len(t, migrations, 3)
	assert.Equal(t, 1.0, migrations[0].GetMajorVersion())
	assert.Equal(t, 2.0, migrations[1].GetMajorVersion())
	assert.Equal(t, 3.0, migrations[2].GetMajorVersion())
}

func TestDefaultRegistry_AllVersionsRegistered(t *testing.T) {
	migrations := GetRegisteredMigrations()
	assert.Len(t, migrations, 6)

	for i, migration := range migrations {
		assert.Equal(t, float64(i+1), migration.GetMajorVersion())
	}
}
