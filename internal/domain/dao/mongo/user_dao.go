package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/document"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/mapper"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// userDAO implements dao.UserDAO using MongoDB.
type userDAO struct {
	*baseMongoDAO[document.UserDocument]
	mapper *mapper.UserMapper
}

// NewUserDAO creates a new MongoDB-based UserDAO.
func NewUserDAO(db *mongo.Database) dao.UserDAO {
	return &userDAO{
		baseMongoDAO: newBaseMongoDAO[document.UserDocument](db, document.UserDocument{}.CollectionName()),
		mapper:       mapper.NewUserMapper(),
	}
}

// FindByUsername retrieves a user by their username.
func (d *userDAO) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var doc document.UserDocument
	err := d.findOneByFilter(ctx, bson.M{"username": username}, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// InsertIfAbsent inserts the user unless the username is already taken.
func (d *userDAO) InsertIfAbsent(ctx context.Context, user *entity.User) (bool, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc := d.mapper.ToDocument(user)
	doc.ID = primitive.NewObjectID()

	created, err := d.insertIfAbsent(ctx, bson.M{"username": user.Username}, doc)
	if err != nil {
		return false, err
	}
	if created {
		user.ID = doc.ID.Hex()
	}
	return created, nil
}
