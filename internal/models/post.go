package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	AuthorImage string             `bson:"authorImage,omitempty" json:"authorImage,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tag         string             `bson:"tag,omitempty" json:"tag,omitempty"`
	UpVote      int                `bson:"upVote" json:"upVote"`
	DownVote    int                `bson:"downVote" json:"downVote"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`

	// Computed inside the listing aggregation, never persisted.
	VoteDifference *int `bson:"voteDifference,omitempty" json:"voteDifference,omitempty"`
}

// PostPage is the envelope returned by the paged listing.
type PostPage struct {
	Posts       []Post `json:"posts"`
	TotalPosts  int64  `json:"totalPosts"`
	TotalPages  int64  `json:"totalPages"`
	CurrentPage int64  `json:"currentPage"`
}
