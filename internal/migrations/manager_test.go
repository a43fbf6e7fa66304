package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleansweep/cleansweep/config"
	"github.com/cleansweep/cleansweep/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct{}

func (m *mockLogger) WithField(key string, value interface{}) logger.Logger  { return m }
func (m *mockLogger) WithFields(fields map[string]interface{}) logger.Logger { return m }
func (m *mockLogger) Debug(msg string)                                       {}
func (m *mockLogger) Info(msg string)                                        {}
func (m *mockLogger) Warn(msg string)                                        {}
func (m *mockLogger) Error(msg string)                                       {}
func (m *mockLogger) Fatal(msg string)                                       {}

func TestNewManager(t *testing.T) {
	logger := &mockLogger{}
	manager := NewManager(logger)

	assert.NotNil(t, manager)
	assert.Equal(t, logger, manager.logger)
}

func TestManager_GetCurrentDBVersion_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	manager := NewManager(&mockLogger{})
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("4")
	mock.ExpectQuery("SELECT value FROM settings WHERE key = 'db_version'").WillReturnRows(rows)

	version, err, exists := manager.GetCurrentDBVersion(ctx, db)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 4.0, version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_GetCurrentDBVersion_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	manager := NewManager(&mockLogger{})
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM settings WHERE key = 'db_version'").WillReturnError(sql.ErrNoRows)

	version, err, exists := manager.GetCurrentDBVersion(ctx, db)

	assert.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, 0.0, version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_GetCurrentDBVersion_InvalidFormat(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	manager := NewManager(&mockLogger{})
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("not-a-number")
	mock.ExpectQuery("SELECT value FROM settings WHERE key = 'db_version'").WillReturnRows(rows)

	_, err, _ = manager.GetCurrentDBVersion(ctx, db)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database version format")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_SetCurrentDBVersion_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	manager := NewManager(&mockLogger{})
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("6").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = manager.SetCurrentDBVersion(ctx, db, 6.0)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_UpToDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	manager := NewManager(&mockLogger{})
	ctx := context.Background()
	cfg := &config.Config{}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS settings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	rows := sqlmock.NewRows([]string{"value"}).AddRow("6")
	mock.ExpectQuery("SELECT value FROM settings WHERE key = 'db_version'").WillReturnRows(rows)

	err = manager.RunMigrations(ctx, cfg, db)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_RunMigrations_VersionQueryFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	manager := NewManager(&mockLogger{})
	ctx := context.Background()
	cfg := &config.Config{}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS settings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT value FROM settings WHERE key = 'db_version'").
		WillReturnError(sql.ErrConnDone)

	err = manager.RunMigrations(ctx, cfg, db)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get current database version")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_MigrateDownTo_TargetNotBelowCurrent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	manager := NewManager(&mockLogger{})
	ctx := context.Background()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS settings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	rows := sqlmock.NewRows([]string{"value"}).AddRow("6")
	mock.ExpectQuery("SELECT value FROM settings WHERE key = 'db_version'").WillReturnRows(rows)

	err = manager.MigrateDownTo(ctx, db, 6.0)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_MigrateDownTo_NoVersionRecorded(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	manager := NewManager(&mockLogger{})
	ctx := context.Background()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS settings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT value FROM settings WHERE key = 'db_version'").
		WillReturnError(sql.ErrNoRows)

	err = manager.MigrateDownTo(ctx, db, 0)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no database version recorded")
	assert.NoError(t, mock.ExpectationsWereMet())
}
