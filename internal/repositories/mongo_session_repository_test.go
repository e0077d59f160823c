package repositories_test

import (
	"context"
	"os"
	"testing"
	"time"

	"inforreel_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Требует живой MongoDB: MONGO_URI=mongodb://localhost:27017 go test ./...
func newMongoRepo(t *testing.T) *repositories.MongoSessionRepository {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database("inforreel_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	repo := repositories.NewMongoSessionRepository(db)
	require.NoError(t, repo.EnsureIndexes(ctx))
	return repo
}

func TestMongoSessionRepository_Lifecycle(t *testing.T) {
	repo := newMongoRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newSession("s1", "acc-1", time.Hour)))
	require.NoError(t, repo.Save(ctx, newSession("s2", "acc-1", time.Hour)))
	require.NoError(t, repo.Save(ctx, newSession("s3", "acc-2", time.Hour)))

	// Уникальный индекс по хешу токена
	dup := newSession("s4", "acc-1", time.Hour)
	dup.TokenHash = "hash-s1"
	assert.ErrorIs(t, repo.Save(ctx, dup), repositories.ErrSessionStoreUnavailable)

	found, err := repo.FindByTokenHash(ctx, "hash-s1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", found.AccountID)

	deleted, err := repo.DeleteByTokenHash(ctx, "hash-s1")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.DeleteByTokenHash(ctx, "hash-s1")
	require.NoError(t, err)
	assert.False(t, deleted)

	n, err := repo.DeleteByAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = repo.FindByTokenHash(ctx, "hash-s2")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
	_, err = repo.FindByTokenHash(ctx, "hash-s3")
	assert.NoError(t, err)
}
