package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	domainErr "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/csmqbusy/personal-finances/internal/domain/port/persistence"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/database/migration"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUnitOfWork(t *testing.T) {
	tdb := NewTestDBManager(t, nil)
	uow := tdb.Manager.CreateUnitOfWork()
	ctx := context.Background()

	newUser := func(name string) *entity.User {
		return &entity.User{Username: name, Email: name + "@example.com", PasswordHash: "hash", Active: true}
	}

	t.Run("Commit makes writes visible", func(t *testing.T) {
		user := newUser("committed")
		err := persistence.RunInTransaction(ctx, uow, func(txCtx context.Context) error {
			if err := uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
				return err
			}
			return uow.GetCategoryRepository(txCtx, entity.KindIncome).
				Create(txCtx, entity.NewDefaultCategory(user.ID, entity.KindIncome, "Other"))
		})
		require.NoError(t, err)

		def, err := uow.GetCategoryRepository(ctx, entity.KindIncome).GetDefault(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Other", def.Name)
	})

	t.Run("Failure rolls every write back", func(t *testing.T) {
		boom := errors.New("boom")
		err := persistence.RunInTransaction(ctx, uow, func(txCtx context.Context) error {
			if err := uow.GetUserRepository(txCtx).Create(txCtx, newUser("rolledback")); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = uow.GetUserRepository(ctx).GetByUsername(ctx, "rolledback")
		assert.ErrorIs(t, err, domainErr.ErrUserNotFound)
	})

	t.Run("Commit without a transaction", func(t *testing.T) {
		assert.Error(t, uow.Commit(ctx))
		assert.Error(t, uow.Rollback(ctx))
	})
}

func TestMigrateIsIdempotent(t *testing.T) {
	tdb := NewTestDBManager(t, nil)

	require.NoError(t, tdb.Manager.Migrate(context.Background()))

	version, err := tdb.Manager.MigrationManager().GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)
}

func TestConfig(t *testing.T) {
	t.Run("Postgres DSN", func(t *testing.T) {
		cfg := &Config{Driver: DriverPostgres, Host: "db", Port: "5432", Username: "u", Password: "p", Database: "f", SSLMode: "disable"}

		require.NoError(t, cfg.Validate())
		assert.Equal(t, "host=db port=5432 user=u password=p dbname=f sslmode=disable TimeZone=UTC", cfg.DSN())
	})

	t.Run("SQLite DSN enables foreign keys", func(t *testing.T) {
		cfg := &Config{Driver: DriverSQLite, Database: "file:x?mode=memory"}

		require.NoError(t, cfg.Validate())
		assert.Equal(t, "file:x?mode=memory&_foreign_keys=on&_busy_timeout=5000", cfg.DSN())
	})

	t.Run("Invalid settings", func(t *testing.T) {
		assert.Error(t, (&Config{Driver: "mysql"}).Validate())
		assert.Error(t, (&Config{Driver: DriverSQLite}).Validate())
		assert.Error(t, (&Config{Driver: DriverPostgres, Host: "db", Username: "u", Database: "f", SSLMode: "bogus"}).Validate())
	})
}

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"record not found", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"duplicate", gorm.ErrDuplicatedKey, domainErr.ErrConstraintViolation},
		{"foreign key message", errors.New("FOREIGN KEY constraint failed"), domainErr.ErrConstraintViolation},
		{"refused", errors.New("dial tcp: connection refused"), domainErr.ErrDatabaseConnection},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), domainErr.ErrDatabaseConnection},
		{"unknown", errors.New("syntax error"), domainErr.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, "test"), tc.expected)
		})
	}
	assert.NoError(t, mapper.MapError(nil, "test"))
}

func TestRetryOnTransientError(t *testing.T) {
	config := RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
	log := logger.NewNoopLogger()

	t.Run("Transient errors are retried", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), config, func() error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		}, log)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Permanent errors are returned at once", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), config, func() error {
			calls++
			return errors.New("password authentication failed")
		}, log)

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), config, func() error {
			calls++
			return errors.New("connection reset by peer")
		}, log)

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})
}
