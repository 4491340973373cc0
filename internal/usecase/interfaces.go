package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
	"github.com/xavierca1/sua-pizza-api/internal/infra/queue"
)

type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Customer) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Customer, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Customer, error)
}

type AddressRepositoryInterface interface {
	Create(ctx context.Context, a *entity.Address) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Address, error)
	FindByCustomerIDs(ctx context.Context, customerIDs []primitive.ObjectID) ([]*entity.Address, error)
	FindAll(ctx context.Context) ([]*entity.Address, error)
	Update(ctx context.Context, a *entity.Address) error
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Address, error)
	AssignOwner(ctx context.Context, addressIDs []primitive.ObjectID, customerID primitive.ObjectID) (int64, error)
}

type QueueProducerInterface interface {
	PublishCustomerRegistered(ctx context.Context, payload queue.CustomerRegisteredPayload) error
}
