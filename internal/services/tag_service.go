package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forumx/forumx/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNoTags = errors.New("no tags provided")

type TagService struct {
	tags *mongo.Collection
}

func NewTagService(db *mongo.Database) *TagService {
	return &TagService{tags: db.Collection("tags")}
}

// CreateBatch inserts one record per name in a single batch, all sharing
// the same createdAt stamp. Names are not deduplicated against existing
// tags.
func (s *TagService) CreateBatch(ctx context.Context, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return nil, ErrNoTags
	}

	createdAt := time.Now()
	tags := make([]models.Tag, len(names))
	docs := make([]interface{}, len(names))
	for i, name := range names {
		tags[i] = models.Tag{
			ID:        primitive.NewObjectID(),
			Name:      name,
			CreatedAt: createdAt,
		}
		docs[i] = tags[i]
	}

	if _, err := s.tags.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to add tags: %w", err)
	}
	return tags, nil
}

// List returns all tags unfiltered.
func (s *TagService) List(ctx context.Context) ([]models.Tag, error) {
	cursor, err := s.tags.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	defer cursor.Close(ctx)

	tags := make([]models.Tag, 0)
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}
