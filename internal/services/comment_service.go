package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forumx/forumx/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CommentService struct {
	comments *mongo.Collection
}

func NewCommentService(db *mongo.Database) *CommentService {
	return &CommentService{comments: db.Collection("comments")}
}

// Create inserts a comment, stamping createdAt server-side.
func (s *CommentService) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()

	if _, err := s.comments.InsertOne(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("failed to add comment: %w", err)
	}
	return comment, nil
}

// List returns comments for a post when postID is non-empty, otherwise all
// comments unfiltered.
func (s *CommentService) List(ctx context.Context, postID string) ([]models.Comment, error) {
	filter := bson.M{}
	if postID != "" {
		filter = bson.M{"postId": postID}
	}

	cursor, err := s.comments.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := make([]models.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}
