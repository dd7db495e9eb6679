package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	PhotoURL  string             `bson:"photoURL" json:"photoURL"`
	Badge     string             `bson:"badge" json:"badge"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
