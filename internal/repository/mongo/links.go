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

type LinkRepository struct {
	coll *mongo.Collection
}

// NewLinkRepository binds the urls collection and makes sure short codes are
// unique at the storage level.
func NewLinkRepository(ctx context.Context, db *mongo.Database) (*LinkRepository, error) {
	coll := db.Collection(repository.LinksCollection)
	if err := ensureUniqueCode(ctx, coll); err != nil {
		return nil, err
	}
	return &LinkRepository{coll: coll}, nil
}

func (r *LinkRepository) Insert(ctx context.Context, link *domain.Link) error {
	if _, err := r.coll.InsertOne(ctx, link); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

func (r *LinkRepository) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	var link domain.Link
	err := r.coll.FindOne(ctx, bson.M{"short_id": code}).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return &link, nil
}

func (r *LinkRepository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"short_id": code})
	if err != nil {
		return 0, fmt.Errorf("failed to delete link: %w", err)
	}
	return res.DeletedCount, nil
}
