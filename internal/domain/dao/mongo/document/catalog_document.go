package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryDocument represents a service category in MongoDB, unique by name.
type CategoryDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	PricingMode string             `bson:"pricingMode"`
	HourlyRate  float64            `bson:"hourlyRate,omitempty"`
	BasePrice   float64            `bson:"basePrice,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// CollectionName returns the MongoDB collection name for service categories.
func (CategoryDocument) CollectionName() string {
	return "service_categories"
}

// AdditionalServiceDocument represents an add-on service in MongoDB,
// unique by (name, category).
type AdditionalServiceDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	PricingMode string             `bson:"pricingMode"`
	Amount      float64            `bson:"amount"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// CollectionName returns the MongoDB collection name for additional services.
func (AdditionalServiceDocument) CollectionName() string {
	return "additional_services"
}
