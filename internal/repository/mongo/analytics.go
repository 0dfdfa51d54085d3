package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"linkly/internal/domain"
	"linkly/internal/repository"
)

type AnalyticsRepository struct {
	coll *mongo.Collection
}

func NewAnalyticsRepository(ctx context.Context, db *mongo.Database) (*AnalyticsRepository, error) {
	coll := db.Collection(repository.AnalyticsCollection)
	if err := ensureUniqueCode(ctx, coll); err != nil {
		return nil, err
	}
	return &AnalyticsRepository{coll: coll}, nil
}

func (r *AnalyticsRepository) Find(ctx context.Context, code string) (*domain.Aggregate, error) {
	var agg domain.Aggregate
	err := r.coll.FindOne(ctx, bson.M{"short_id": code}).Decode(&agg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find analytics: %w", err)
	}
	return &agg, nil
}

func (r *AnalyticsRepository) Insert(ctx context.Context, agg *domain.Aggregate) error {
	if _, err := r.coll.InsertOne(ctx, agg); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to insert analytics: %w", err)
	}
	return nil
}

// AppendClick counts ev against code unless fp was already seen. The
// fingerprint guard lives in the filter so the check and the write are one
// document operation. It reports whether the click was counted.
func (r *AnalyticsRepository) AppendClick(ctx context.Context, code, fp string, ev domain.ClickEvent) (bool, error) {
	filter := bson.M{
		"short_id":     code,
		"finger_print": bson.M{"$ne": fp},
	}
	update := bson.M{
		"$inc":      bson.M{"clicks": 1},
		"$addToSet": bson.M{"finger_print": fp},
		"$push":     bson.M{"click_details": ev},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update analytics: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *AnalyticsRepository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"short_id": code})
	if err != nil {
		return 0, fmt.Errorf("failed to delete analytics: %w", err)
	}
	return res.DeletedCount, nil
}
