package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
)

const AddressesCollection = "enderecos"

type AddressRepository struct {
	DB *mongo.Database
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) collection() *mongo.Collection {
	return r.DB.Collection(AddressesCollection)
}

func (r *AddressRepository) Create(ctx context.Context, a *entity.Address) error {
	defer postProcess(AddressesCollection, "insertOne", time.Now())

	if _, err := r.collection().InsertOne(ctx, a); err != nil {
		recordError(AddressesCollection)
		return fmt.Errorf("erro ao criar endereço: %w", err)
	}
	return nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Address, error) {
	defer postProcess(AddressesCollection, "findOne", time.Now())

	var a entity.Address
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrAddressNotFound
	}
	if err != nil {
		recordError(AddressesCollection)
		return nil, fmt.Errorf("erro ao buscar endereço: %w", err)
	}
	return &a, nil
}

func (r *AddressRepository) FindByCustomerIDs(ctx context.Context, customerIDs []primitive.ObjectID) ([]*entity.Address, error) {
	if len(customerIDs) == 0 {
		return []*entity.Address{}, nil
	}
	return r.find(ctx, bson.M{"userId": bson.M{"$in": customerIDs}})
}

func (r *AddressRepository) FindAll(ctx context.Context) ([]*entity.Address, error) {
	return r.find(ctx, bson.D{})
}

func (r *AddressRepository) find(ctx context.Context, filter interface{}) ([]*entity.Address, error) {
	defer postProcess(AddressesCollection, "find", time.Now())

	cur, err := r.collection().Find(ctx, filter)
	if err != nil {
		recordError(AddressesCollection)
		return nil, fmt.Errorf("erro ao listar endereços: %w", err)
	}
	defer cur.Close(ctx)

	addresses := make([]*entity.Address, 0)
	if err := cur.All(ctx, &addresses); err != nil {
		recordError(AddressesCollection)
		return nil, fmt.Errorf("erro ao ler endereços: %w", err)
	}
	return addresses, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *entity.Address) error {
	defer postProcess(AddressesCollection, "replaceOne", time.Now())

	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		recordError(AddressesCollection)
		return fmt.Errorf("erro ao atualizar endereço: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Address, error) {
	defer postProcess(AddressesCollection, "findOneAndDelete", time.Now())

	var a entity.Address
	err := r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrAddressNotFound
	}
	if err != nil {
		recordError(AddressesCollection)
		return nil, fmt.Errorf("erro ao deletar endereço: %w", err)
	}
	return &a, nil
}

// AssignOwner transfere os endereços informados para o cliente, mesmo os
// que já pertencem a outro cliente.
func (r *AddressRepository) AssignOwner(ctx context.Context, addressIDs []primitive.ObjectID, customerID primitive.ObjectID) (int64, error) {
	if len(addressIDs) == 0 {
		return 0, nil
	}

	defer postProcess(AddressesCollection, "updateMany", time.Now())

	res, err := r.collection().UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": addressIDs}},
		bson.M{"$set": bson.M{"userId": customerID, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		recordError(AddressesCollection)
		return 0, fmt.Errorf("erro ao vincular endereços ao cliente: %w", err)
	}
	return res.ModifiedCount, nil
}
