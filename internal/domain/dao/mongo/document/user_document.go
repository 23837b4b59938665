// Package document defines the MongoDB document structs for persistence.
// They are kept separate from the domain entities so storage concerns like
// ObjectIDs and bson field names stay out of the domain layer.
package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDocument represents a user in MongoDB.
type UserDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	IsActive  bool               `bson:"isActive"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// CollectionName returns the MongoDB collection name for users.
func (UserDocument) CollectionName() string {
	return "users"
}
