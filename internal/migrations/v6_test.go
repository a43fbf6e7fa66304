package migrations

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleansweep/cleansweep/internal/database/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV6Migration_GetMajorVersion(t *testing.T) {
	migration := &V6Migration{}
	assert.Equal(t, 6.0, migration.GetMajorVersion())
}

func TestV6Migration_Registration(t *testing.T) {
	migration, exists := GetRegisteredMigration(6.0)
	assert.True(t, exists)
	assert.IsType(t, &V6Migration{}, migration)
}

func TestV6Migration_Up_Success(t *testing.T) {
	migration := &V6Migration{}
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	for _, stmt := range schema.LookupTableDefinitionsFor(v6LookupTables...) {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, stmt := range schema.TableDefinitionsFor(v6Tables...) {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, fk := range schema.ForeignKeysFor(v6Tables...) {
		mock.ExpectExec(regexp.QuoteMeta(fk.AddStatement())).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, stmt := range schema.IndexesFor(v6Tables...) {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, stmt := range schema.SeedStatementsFor(v6LookupTables...) {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = migration.Up(ctx, db)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestV6Migration_Up_SeedFails(t *testing.T) {
	migration := &V6Migration{}
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	for _, stmt := range schema.LookupTableDefinitionsFor(v6LookupTables...) {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, stmt := range schema.TableDefinitionsFor(v6Tables...) {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, fk := range schema.ForeignKeysFor(v6Tables...) {
		mock.ExpectExec(regexp.QuoteMeta(fk.AddStatement())).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for _, stmt := range schema.IndexesFor(v6Tables...) {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("INSERT INTO achievement_types").WillReturnError(sql.ErrConnDone)

	err = migration.Up(ctx, db)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed v6 lookup tables")
	assert.NoError(t, mock.ExpectationsWereMet())
}
