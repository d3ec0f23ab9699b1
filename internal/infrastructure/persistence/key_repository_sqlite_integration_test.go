//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/persistence/models"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestKeyRecord(t, uuid.NewString(), textbook.KeyTypePublic)
	require.NoError(t, ctx.KeyRepo.Create(context.Background(), record))

	var created models.KeyRecordModel
	require.NoError(t, ctx.DB.First(&created, "id = ?", record.ID).Error)
	assert.Equal(t, record.KeyString, created.KeyString)
	assert.Equal(t, uint64(3233), created.Modulus)
}

func TestKeySqliteRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestKeyRecord(t, uuid.NewString(), textbook.KeyTypePublic)
	record.KeyString = "not-a-key"

	err := ctx.KeyRepo.Create(context.Background(), record)
	assert.Error(t, err)
}

func TestKeySqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestKeyRecord(t, uuid.NewString(), textbook.KeyTypePrivate)
	require.NoError(t, ctx.KeyRepo.Create(context.Background(), record))

	fetched, err := ctx.KeyRepo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, uint64(2753), fetched.Exponent)
	assert.Equal(t, "0000000ac10000000ca1", fetched.KeyString)
}

func TestKeySqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.KeyRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, textbook.ErrKeyRecordNotFound)
}

func TestKeySqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	pairA := uuid.NewString()
	pairB := uuid.NewString()
	for _, r := range []*textbook.KeyRecord{
		CreateTestKeyRecord(t, pairA, textbook.KeyTypePublic),
		CreateTestKeyRecord(t, pairA, textbook.KeyTypePrivate),
		CreateTestKeyRecord(t, pairB, textbook.KeyTypePublic),
		CreateTestKeyRecord(t, pairB, textbook.KeyTypePrivate),
	} {
		require.NoError(t, ctx.KeyRepo.Create(context.Background(), r))
	}

	all, err := ctx.KeyRepo.List(context.Background(), &textbook.KeyRecordQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	publics, err := ctx.KeyRepo.List(context.Background(), &textbook.KeyRecordQuery{Type: textbook.KeyTypePublic})
	require.NoError(t, err)
	assert.Len(t, publics, 2)

	pair, err := ctx.KeyRepo.List(context.Background(), &textbook.KeyRecordQuery{KeyPairID: pairB})
	require.NoError(t, err)
	assert.Len(t, pair, 2)

	page, err := ctx.KeyRepo.List(context.Background(), &textbook.KeyRecordQuery{Limit: 3, Offset: 2, SortBy: "type", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	future, err := ctx.KeyRepo.List(context.Background(), &textbook.KeyRecordQuery{DateTimeCreated: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestKeySqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.KeyRepo.List(context.Background(), &textbook.KeyRecordQuery{SortBy: "exponent; DROP TABLE key_records"})
	assert.Error(t, err)
}

func TestKeySqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	record := CreateTestKeyRecord(t, uuid.NewString(), textbook.KeyTypePublic)
	require.NoError(t, ctx.KeyRepo.Create(context.Background(), record))
	require.NoError(t, ctx.KeyRepo.DeleteByID(context.Background(), record.ID))

	_, err := ctx.KeyRepo.GetByID(context.Background(), record.ID)
	assert.ErrorIs(t, err, textbook.ErrKeyRecordNotFound)

	err = ctx.KeyRepo.DeleteByID(context.Background(), record.ID)
	assert.ErrorIs(t, err, textbook.ErrKeyRecordNotFound)
}
