package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
)

type mongoProfileRepository struct {
	profiles *mongo.Collection
	admins   *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database) ProfileRepository {
	return &mongoProfileRepository{
		profiles: db.Collection("profiles"),
		admins:   db.Collection("admins"),
	}
}

func (m *mongoProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile

	err := m.profiles.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

func (m *mongoProfileRepository) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	filter := bson.M{"user_id": p.UserID}
	update := bson.M{"$set": p}
	opts := options.Update().SetUpsert(true)

	_, err := m.profiles.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (m *mongoProfileRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.profiles.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []domain.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}

func (m *mongoProfileRepository) DeleteProfile(ctx context.Context, userID string) error {
	result, err := m.profiles.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (m *mongoProfileRepository) UpdateProfileName(ctx context.Context, userID, name string) error {
	return m.updateProfileField(ctx, userID, "name", name)
}

func (m *mongoProfileRepository) UpdateProfilePhoto(ctx context.Context, userID, photoURL string) error {
	return m.updateProfileField(ctx, userID, "photo_url", photoURL)
}

func (m *mongoProfileRepository) updateProfileField(ctx context.Context, userID, field, value string) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{
		field:        value,
		"updated_at": time.Now(),
	}}

	result, err := m.profiles.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", field, err)
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (m *mongoProfileRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	count, err := m.admins.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return false, fmt.Errorf("failed to check admin membership: %w", err)
	}
	return count > 0, nil
}

func (m *mongoProfileRepository) GrantAdmin(ctx context.Context, userID, grantedBy string) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$setOnInsert": domain.AdminMembership{
		UserID:    userID,
		GrantedBy: grantedBy,
		CreatedAt: time.Now(),
	}}
	opts := options.Update().SetUpsert(true)

	_, err := m.admins.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to grant admin: %w", err)
	}
	return nil
}

// RevokeAdmin is a no-op when no membership exists; revoking twice is fine.
func (m *mongoProfileRepository) RevokeAdmin(ctx context.Context, userID string) error {
	_, err := m.admins.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to revoke admin: %w", err)
	}
	return nil
}

func (m *mongoProfileRepository) CreateIndexes(ctx context.Context) error {
	_, err := m.profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}

	_, err = m.admins.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create admin indexes: %w", err)
	}
	return nil
}
