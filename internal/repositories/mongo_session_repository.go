package repositories

import (
	"context"
	"errors"
	"fmt"

	"inforreel_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionsCollection = "sessions"

type MongoSessionRepository struct {
	collection *mongo.Collection
}

func NewMongoSessionRepository(db *mongo.Database) *MongoSessionRepository {
	return &MongoSessionRepository{collection: db.Collection(sessionsCollection)}
}

// EnsureIndexes создает уникальный индекс по хешу токена и TTL-индекс по expiresAt.
// expireAfterSeconds=0: документ удаляется в момент expiresAt.
func (r *MongoSessionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tokenHash", Value: 1}},
			Options: options.Index().SetName("idx_sessions_tokenHash").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "accountId", Value: 1}},
			Options: options.Index().SetName("idx_sessions_accountId"),
		},
		{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetName("idx_sessions_expiresAt").SetExpireAfterSeconds(0),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}
	return nil
}

func (r *MongoSessionRepository) Save(ctx context.Context, session *models.Session) error {
	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}
	return nil
}

func (r *MongoSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	var session models.Session
	err := r.collection.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}
	return &session, nil
}

func (r *MongoSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"tokenHash": tokenHash})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoSessionRepository) DeleteByAccount(ctx context.Context, accountID string) (int, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"accountId": accountID})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}
	return int(res.DeletedCount), nil
}
