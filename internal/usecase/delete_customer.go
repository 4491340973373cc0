package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
	"github.com/xavierca1/sua-pizza-api/internal/logger"
)

type DeleteCustomerUseCase struct {
	Repo        CustomerRepositoryInterface
	AddressRepo AddressRepositoryInterface
}

func NewDeleteCustomerUseCase(repo CustomerRepositoryInterface, addressRepo AddressRepositoryInterface) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{Repo: repo, AddressRepo: addressRepo}
}

// Execute remove só o cliente. Os endereços dele continuam gravados e
// passam a listar com userId nulo. Devolve o registro removido com os
// endereços que apontavam para ele.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, rawID string) (*entity.Customer, error) {
	id, err := entity.ParseID(rawID)
	if err != nil {
		return nil, invalidID()
	}

	deleted, err := uc.Repo.Delete(ctx, id)
	if errors.Is(err, entity.ErrCustomerNotFound) {
		return nil, customerNotFound()
	}
	if err != nil {
		return nil, databaseError(err)
	}

	deleted.Addresses = loadOwnedAddresses(ctx, uc.AddressRepo, id)
	if n := len(deleted.Addresses); n > 0 {
		logger.Log.Info("cliente removido com endereços órfãos",
			zap.String("customer_id", id.Hex()),
			zap.Int("count", n),
		)
	}

	return deleted, nil
}
