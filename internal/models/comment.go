package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PostID      string             `bson:"postId" json:"postId"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	AuthorImage string             `bson:"authorImage,omitempty" json:"authorImage,omitempty"`
	Content     string             `bson:"content" json:"content"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
