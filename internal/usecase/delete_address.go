package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
)

type DeleteAddressUseCase struct {
	Repo AddressRepositoryInterface
}

func NewDeleteAddressUseCase(repo AddressRepositoryInterface) *DeleteAddressUseCase {
	return &DeleteAddressUseCase{Repo: repo}
}

func (uc *DeleteAddressUseCase) Execute(ctx context.Context, rawID string) (*entity.Address, error) {
	id, err := entity.ParseID(rawID)
	if err != nil {
		return nil, invalidID()
	}

	deleted, err := uc.Repo.Delete(ctx, id)
	if errors.Is(err, entity.ErrAddressNotFound) {
		return nil, addressNotFound()
	}
	if err != nil {
		return nil, databaseError(err)
	}

	return deleted, nil
}
