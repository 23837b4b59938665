package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/document"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/dao/mongo/mapper"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// catalogDAO implements dao.CatalogDAO using MongoDB. Categories and
// additional services live in separate collections but share the mapper.
type catalogDAO struct {
	categories *baseMongoDAO[document.CategoryDocument]
	services   *baseMongoDAO[document.AdditionalServiceDocument]
	mapper     *mapper.CatalogMapper
}

// NewCatalogDAO creates a new MongoDB-based CatalogDAO.
func NewCatalogDAO(db *mongo.Database) dao.CatalogDAO {
	return &catalogDAO{
		categories: newBaseMongoDAO[document.CategoryDocument](db, document.CategoryDocument{}.CollectionName()),
		services:   newBaseMongoDAO[document.AdditionalServiceDocument](db, document.AdditionalServiceDocument{}.CollectionName()),
		mapper:     mapper.NewCatalogMapper(),
	}
}

// InsertCategoryIfAbsent inserts the category unless its name is taken.
func (d *catalogDAO) InsertCategoryIfAbsent(ctx context.Context, category *entity.ServiceCategory) (bool, error) {
	category.CreatedAt = time.Now()

	doc := d.mapper.CategoryToDocument(category)
	doc.ID = primitive.NewObjectID()

	created, err := d.categories.insertIfAbsent(ctx, bson.M{"name": category.Name}, doc)
	if err != nil {
		return false, err
	}
	if created {
		category.ID = doc.ID.Hex()
	}
	return created, nil
}

// InsertServiceIfAbsent inserts the additional service unless its
// (name, category) pair is taken.
func (d *catalogDAO) InsertServiceIfAbsent(ctx context.Context, service *entity.AdditionalService) (bool, error) {
	service.CreatedAt = time.Now()

	doc := d.mapper.ServiceToDocument(service)
	doc.ID = primitive.NewObjectID()

	filter := bson.M{"name": service.Name, "category": service.Category}
	created, err := d.services.insertIfAbsent(ctx, filter, doc)
	if err != nil {
		return false, err
	}
	if created {
		service.ID = doc.ID.Hex()
	}
	return created, nil
}

// FindAllCategories returns every service category, oldest first.
func (d *catalogDAO) FindAllCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	var docs []*document.CategoryDocument
	if err := d.categories.findManyByFilter(ctx, bson.M{}, opts, &docs); err != nil {
		return nil, err
	}
	return d.mapper.CategoriesToEntities(docs), nil
}

// FindAllServices returns every additional service, oldest first.
func (d *catalogDAO) FindAllServices(ctx context.Context) ([]*entity.AdditionalService, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	var docs []*document.AdditionalServiceDocument
	if err := d.services.findManyByFilter(ctx, bson.M{}, opts, &docs); err != nil {
		return nil, err
	}
	return d.mapper.ServicesToEntities(docs), nil
}
