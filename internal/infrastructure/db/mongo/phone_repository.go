package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

const phonesCollection = "phones"

// PhoneRepository persists catalog listings in mongo.
type PhoneRepository struct {
	coll *mongo.Collection
}

func NewPhoneRepository(db *mongo.Database) *PhoneRepository {
	return &PhoneRepository{coll: db.Collection(phonesCollection)}
}

type mongoPhone struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Brand         string             `bson:"brand"`
	Model         string             `bson:"model"`
	Price         float64            `bson:"price"`
	Description   string             `bson:"description"`
	Condition     string             `bson:"condition"`
	StockQuantity int                `bson:"stock_quantity"`
}

func (r *PhoneRepository) List(ctx context.Context) ([]domain.Phone, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer cur.Close(ctx)

	phones := make([]domain.Phone, 0)
	for cur.Next(ctx) {
		var mp mongoPhone
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode phone: %w", err)
		}
		phones = append(phones, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate phones: %w", err)
	}
	return phones, nil
}

func (r *PhoneRepository) Insert(ctx context.Context, phone *domain.Phone) (*domain.Phone, error) {
	doc := mongoPhone{
		Brand:         phone.Brand,
		Model:         phone.Model,
		Price:         phone.Price,
		Description:   phone.Description,
		Condition:     phone.Condition,
		StockQuantity: phone.StockQuantity,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert phone: %w", err)
	}

	created := *phone
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PhoneRepository) FindByID(ctx context.Context, id string) (*domain.Phone, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPhoneNotFound
	}

	var mp mongoPhone
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPhoneNotFound
		}
		return nil, fmt.Errorf("find phone: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PhoneRepository) Update(ctx context.Context, phone *domain.Phone) error {
	oid, err := primitive.ObjectIDFromHex(phone.ID)
	if err != nil {
		return domain.ErrPhoneNotFound
	}

	update := bson.M{"$set": bson.M{
		"brand":          phone.Brand,
		"model":          phone.Model,
		"price":          phone.Price,
		"description":    phone.Description,
		"condition":      phone.Condition,
		"stock_quantity": phone.StockQuantity,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update phone: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPhoneNotFound
	}
	return nil
}

func (r *PhoneRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPhoneNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete phone: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPhoneNotFound
	}
	return nil
}

func (mp mongoPhone) toDomain() *domain.Phone {
	return &domain.Phone{
		ID:            mp.ID.Hex(),
		Brand:         mp.Brand,
		Model:         mp.Model,
		Price:         mp.Price,
		Description:   mp.Description,
		Condition:     mp.Condition,
		StockQuantity: mp.StockQuantity,
	}
}
