package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
)

type ListAddressesUseCase struct {
	Repo         AddressRepositoryInterface
	CustomerRepo CustomerRepositoryInterface
}

func NewListAddressesUseCase(repo AddressRepositoryInterface, customerRepo CustomerRepositoryInterface) *ListAddressesUseCase {
	return &ListAddressesUseCase{Repo: repo, CustomerRepo: customerRepo}
}

// Execute lista os endereços com "userId" populado pelo cliente dono.
func (uc *ListAddressesUseCase) Execute(ctx context.Context) ([]entity.AddressWithCustomer, error) {
	addresses, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, databaseError(err)
	}

	out := make([]entity.AddressWithCustomer, 0, len(addresses))
	if len(addresses) == 0 {
		return out, nil
	}

	seen := make(map[primitive.ObjectID]bool)
	ownerIDs := make([]primitive.ObjectID, 0)
	for _, a := range addresses {
		if !seen[a.CustomerID] {
			seen[a.CustomerID] = true
			ownerIDs = append(ownerIDs, a.CustomerID)
		}
	}

	customers, err := uc.CustomerRepo.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, databaseError(err)
	}

	// todos os endereços já estão em memória, então o cliente populado
	// também leva a própria lista de endereços
	byOwner := groupByOwner(addresses)
	owners := make(map[primitive.ObjectID]*entity.Customer, len(customers))
	for _, c := range customers {
		c.Addresses = byOwner[c.ID]
		owners[c.ID] = c
	}

	for _, a := range addresses {
		out = append(out, entity.AddressWithCustomer{
			Address:  *a,
			Customer: owners[a.CustomerID],
		})
	}

	return out, nil
}
