// Package mapper provides conversion between domain entities and MongoDB
// documents.
package mapper

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/document"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// UserMapper converts between User entity and UserDocument.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDocument converts a User entity to a UserDocument.
func (m *UserMapper) ToDocument(user *entity.User) *document.UserDocument {
	if user == nil {
		return nil
	}

	doc := &document.UserDocument{
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.Password,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(user.ID); err == nil {
			doc.ID = oid
		}
	}

	return doc
}

// ToEntity converts a UserDocument to a User entity.
func (m *UserMapper) ToEntity(doc *document.UserDocument) *entity.User {
	if doc == nil {
		return nil
	}

	return &entity.User{
		ID:        doc.ID.Hex(),
		Username:  doc.Username,
		Email:     doc.Email,
		Password:  doc.Password,
		Role:      entity.UserRole(doc.Role),
		IsActive:  doc.IsActive,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
