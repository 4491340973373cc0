package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
)

type ListCustomersUseCase struct {
	Repo        CustomerRepositoryInterface
	AddressRepo AddressRepositoryInterface
}

func NewListCustomersUseCase(repo CustomerRepositoryInterface, addressRepo AddressRepositoryInterface) *ListCustomersUseCase {
	return &ListCustomersUseCase{Repo: repo, AddressRepo: addressRepo}
}

// Execute lista todos os clientes com "enderecos" populado.
func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, databaseError(err)
	}
	if len(customers) == 0 {
		return customers, nil
	}

	ids := make([]primitive.ObjectID, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}

	addresses, err := uc.AddressRepo.FindByCustomerIDs(ctx, ids)
	if err != nil {
		return nil, databaseError(err)
	}

	byOwner := groupByOwner(addresses)
	for _, c := range customers {
		c.Addresses = byOwner[c.ID]
		if c.Addresses == nil {
			c.Addresses = []entity.Address{}
		}
	}

	return customers, nil
}

func groupByOwner(addresses []*entity.Address) map[primitive.ObjectID][]entity.Address {
	out := make(map[primitive.ObjectID][]entity.Address)
	for _, a := range addresses {
		out[a.CustomerID] = append(out[a.CustomerID], *a)
	}
	return out
}
