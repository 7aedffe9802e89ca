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

type mongoCarRepository struct {
	collection *mongo.Collection
}

func NewMongoCarRepository(db *mongo.Database) CarRepository {
	return &mongoCarRepository{
		collection: db.Collection("cars"),
	}
}

func (m *mongoCarRepository) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	var car domain.Car

	filter := bson.M{"_id": id}
	err := m.collection.FindOne(ctx, filter).Decode(&car)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	return &car, nil
}

func (m *mongoCarRepository) ListCars(ctx context.Context) ([]domain.Car, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []domain.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode cars: %w", err)
	}
	return cars, nil
}

func (m *mongoCarRepository) FeaturedCars(ctx context.Context) ([]domain.Car, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.collection.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []domain.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode featured cars: %w", err)
	}
	return cars, nil
}

func (m *mongoCarRepository) CreateCar(ctx context.Context, car *domain.Car) error {
	if car.ID == "" {
		car.ID = uuid.NewString()
	}
	car.CreatedAt = time.Now()

	_, err := m.collection.InsertOne(ctx, car)
	if err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

func (m *mongoCarRepository) UpdateCar(ctx context.Context, car *domain.Car) error {
	filter := bson.M{"_id": car.ID}
	update := bson.M{"$set": bson.M{
		"name":        car.Name,
		"tagline":     car.Tagline,
		"description": car.Description,
		"base_price":  car.BasePrice,
		"category":    car.Category,
		"image_url":   car.ImageURL,
		"specs":       car.Specs,
		"features":    car.Features,
		"colors":      car.Colors,
		"interiors":   car.Interiors,
		"packages":    car.Packages,
		"featured":    car.Featured,
	}}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrCarNotFound
	}
	return nil
}

func (m *mongoCarRepository) DeleteCar(ctx context.Context, id string) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrCarNotFound
	}
	return nil
}

func (m *mongoCarRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "featured", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create car indexes: %w", err)
	}
	return nil
}
