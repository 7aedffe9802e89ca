package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
)

type mongoPurchaseRepository struct {
	collection *mongo.Collection
}

func NewMongoPurchaseRepository(db *mongo.Database) PurchaseRepository {
	return &mongoPurchaseRepository{
		collection: db.Collection("purchases"),
	}
}

// CreatePurchase relies on the unique index on session_id: concurrent or
// redelivered webhook events race here and exactly one insert wins.
func (m *mongoPurchaseRepository) CreatePurchase(ctx context.Context, p *domain.Purchase) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()

	_, err := m.collection.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatePurchase
		}
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

func (m *mongoPurchaseRepository) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	var p domain.Purchase

	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}

	return &p, nil
}

func (m *mongoPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer cursor.Close(ctx)

	var purchases []domain.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, fmt.Errorf("failed to decode purchases: %w", err)
	}
	return purchases, nil
}

func (m *mongoPurchaseRepository) DeletePurchase(ctx context.Context, id string) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrPurchaseNotFound
	}
	return nil
}

func (m *mongoPurchaseRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create purchase indexes: %w", err)
	}
	return nil
}
