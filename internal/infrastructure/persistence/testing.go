//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/config"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	KeyRepo textbook.KeyRepository
}

// SetupTestDB opens and migrates a fresh database; cleanup is registered on t
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	keyRepo, err := NewGormKeyRepository(db, logger)
	require.NoError(t, err, "Failed to create key repository")

	return &TestContext{
		DB:      db,
		KeyRepo: keyRepo,
	}
}

// CreateTestKeyRecord creates one half of the 61*53 key pair
func CreateTestKeyRecord(t *testing.T, keyPairID, keyType string) *textbook.KeyRecord {
	t.Helper()

	kp := textbook.KeyPair{Exponent: 65537, Modulus: 3233}
	if keyType == textbook.KeyTypePrivate {
		kp.Exponent = 2753
	}

	return &textbook.KeyRecord{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Type:            keyType,
		KeyString:       kp.KeyString().String(),
		Exponent:        kp.Exponent,
		Modulus:         kp.Modulus,
		DateTimeCreated: time.Now().UTC(),
	}
}
