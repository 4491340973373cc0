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

const CustomersCollection = "clientes"

type CustomerRepository struct {
	DB *mongo.Database
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) collection() *mongo.Collection {
	return r.DB.Collection(CustomersCollection)
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	defer postProcess(CustomersCollection, "insertOne", time.Now())

	if _, err := r.collection().InsertOne(ctx, c); err != nil {
		recordError(CustomersCollection)
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Customer, error) {
	defer postProcess(CustomersCollection, "findOne", time.Now())

	var c entity.Customer
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		recordError(CustomersCollection)
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Customer, error) {
	if len(ids) == 0 {
		return []*entity.Customer{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	return r.find(ctx, bson.D{})
}

func (r *CustomerRepository) find(ctx context.Context, filter interface{}) ([]*entity.Customer, error) {
	defer postProcess(CustomersCollection, "find", time.Now())

	cur, err := r.collection().Find(ctx, filter)
	if err != nil {
		recordError(CustomersCollection)
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer cur.Close(ctx)

	customers := make([]*entity.Customer, 0)
	if err := cur.All(ctx, &customers); err != nil {
		recordError(CustomersCollection)
		return nil, fmt.Errorf("erro ao ler clientes: %w", err)
	}
	return customers, nil
}

// Update substitui o documento inteiro (last write wins).
func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	defer postProcess(CustomersCollection, "replaceOne", time.Now())

	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		recordError(CustomersCollection)
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrCustomerNotFound
	}
	return nil
}

// Delete remove e devolve o documento removido.
func (r *CustomerRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Customer, error) {
	defer postProcess(CustomersCollection, "findOneAndDelete", time.Now())

	var c entity.Customer
	err := r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		recordError(CustomersCollection)
		return nil, fmt.Errorf("erro ao deletar cliente: %w", err)
	}
	return &c, nil
}
