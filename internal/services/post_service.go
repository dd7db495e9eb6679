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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// postPageSize is fixed; callers cannot change it.
const postPageSize = 5

// defaultAuthorLimit caps the short author listing on the profile page.
const defaultAuthorLimit = 3

var (
	ErrInvalidPostID = errors.New("invalid post ID")
	ErrPostNotFound  = errors.New("post not found")
)

type PostService struct {
	posts *mongo.Collection
}

func NewPostService(db *mongo.Database) *PostService {
	return &PostService{posts: db.Collection("posts")}
}

// listPipeline builds the aggregation for the paged listing. voteDifference
// is derived from the stored counters on every read; it is never persisted.
// The trailing createdAt/_id sort keys keep pages stable across posts with
// equal scores.
func listPipeline(sort string, page int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "voteDifference", Value: bson.D{
				{Key: "$subtract", Value: bson.A{"$upVote", "$downVote"}},
			}},
		}}},
	}

	if sort == "popular" {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "voteDifference", Value: -1},
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}}})
	} else {
		// "newest" and any unrecognized sort value.
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: (page - 1) * postPageSize}},
		bson.D{{Key: "$limit", Value: int64(postPageSize)}},
	)
	return pipeline
}

// normalizePage maps missing or invalid page numbers to the first page.
func normalizePage(page int64) int64 {
	if page < 1 {
		return 1
	}
	return page
}

// totalPages is ceil(totalPosts / postPageSize).
func totalPages(totalPosts int64) int64 {
	return (totalPosts + postPageSize - 1) / postPageSize
}

// List returns one page of posts plus pagination metadata. The total count
// is taken over the whole collection, independent of the page requested.
func (s *PostService) List(ctx context.Context, sort string, page int64) (models.PostPage, error) {
	page = normalizePage(page)

	total, err := s.posts.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.PostPage{}, fmt.Errorf("failed to count posts: %w", err)
	}

	cursor, err := s.posts.Aggregate(ctx, listPipeline(sort, page))
	if err != nil {
		return models.PostPage{}, fmt.Errorf("failed to load posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := make([]models.Post, 0, postPageSize)
	if err := cursor.All(ctx, &posts); err != nil {
		return models.PostPage{}, fmt.Errorf("failed to decode posts: %w", err)
	}

	return models.PostPage{
		Posts:       posts,
		TotalPosts:  total,
		TotalPages:  totalPages(total),
		CurrentPage: page,
	}, nil
}

// ListByAuthor returns the author's newest posts, capped at limit.
func (s *PostService) ListByAuthor(ctx context.Context, email string, limit int64) ([]models.Post, error) {
	if limit < 1 {
		limit = defaultAuthorLimit
	}
	return s.findByAuthor(ctx, email, &limit)
}

// ListAllByAuthor returns every post by the author, newest first.
func (s *PostService) ListAllByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	return s.findByAuthor(ctx, email, nil)
}

func (s *PostService) findByAuthor(ctx context.Context, email string, limit *int64) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	if limit != nil {
		opts.SetLimit(*limit)
	}

	cursor, err := s.posts.Find(ctx, bson.M{"authorEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := make([]models.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode user posts: %w", err)
	}
	return posts, nil
}

// Get fetches a single post by its hex ID.
func (s *PostService) Get(ctx context.Context, id string) (models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Post{}, ErrInvalidPostID
	}

	var post models.Post
	err = s.posts.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to fetch post: %w", err)
	}
	return post, nil
}

// Create inserts a new post. Vote counters always start at zero regardless
// of what the caller sent; createdAt is stamped server-side when absent.
func (s *PostService) Create(ctx context.Context, post models.Post) (models.Post, error) {
	post.ID = primitive.NewObjectID()
	post.UpVote = 0
	post.DownVote = 0
	post.VoteDifference = nil
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("failed to add post: %w", err)
	}
	return post, nil
}

// Upvote atomically increments the post's upVote counter by one.
func (s *PostService) Upvote(ctx context.Context, id string) error {
	return s.incrementVote(ctx, id, "upVote")
}

// Downvote atomically increments the post's downVote counter by one.
func (s *PostService) Downvote(ctx context.Context, id string) error {
	return s.incrementVote(ctx, id, "downVote")
}

// incrementVote relies on the store's atomic $inc; repeated calls apply
// repeated increments, there is no per-user vote ledger.
func (s *PostService) incrementVote(ctx context.Context, id, field string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidPostID
	}

	result, err := s.posts.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{field: 1}},
	)
	if err != nil {
		return fmt.Errorf("failed to update votes: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}
