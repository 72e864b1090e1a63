package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/logger"
	timeprovider "github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/time"
)

var testDBCounter atomic.Int64

// TestDBManager provides a migrated in-memory sqlite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory database and migrates it
// The database is closed when the test ends
func NewTestDBManager(t *testing.T, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	if timeProvider == nil {
		timeProvider = timeprovider.NewRealTimeProvider()
	}
	log := logger.NewNoopLogger()

	config := &Config{
		Driver:        DriverSQLite,
		Database:      fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1)),
		RetryAttempts: 1,
	}

	manager := NewManager(config, log, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: timeProvider,
	}
}
