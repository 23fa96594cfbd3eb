package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coderhive/forecast-api/internal/core/domain"
)

const manufacturerCollection = "manufacturers"

// ManufacturerRepository reads the dashboard aggregates written by the
// ingestion pipeline. This service never mutates them.
type ManufacturerRepository struct {
	coll *mongo.Collection
}

func NewManufacturerRepository(db *mongo.Database) *ManufacturerRepository {
	return &ManufacturerRepository{coll: db.Collection(manufacturerCollection)}
}

func (r *ManufacturerRepository) FindByEmail(ctx context.Context, email string) (*domain.Manufacturer, error) {
	var m domain.Manufacturer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find manufacturer: %w", err)
	}
	return &m, nil
}

func (r *ManufacturerRepository) List(ctx context.Context, limit int) ([]domain.ManufacturerSummary, error) {
	opts := options.Find().
		SetProjection(bson.M{"name": 1, "email": 1, "total_clients": 1, "revenue": 1}).
		SetSort(bson.D{{Key: "revenue", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}
	defer cur.Close(ctx)

	var summaries []domain.ManufacturerSummary
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode manufacturers: %w", err)
	}
	return summaries, nil
}
