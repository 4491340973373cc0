package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
)

type UpdateAddressUseCase struct {
	Repo AddressRepositoryInterface
}

func NewUpdateAddressUseCase(repo AddressRepositoryInterface) *UpdateAddressUseCase {
	return &UpdateAddressUseCase{Repo: repo}
}

func (uc *UpdateAddressUseCase) Execute(ctx context.Context, rawID string, input UpdateAddressInput) (*entity.Address, error) {
	id, err := entity.ParseID(rawID)
	if err != nil {
		return nil, invalidID()
	}

	address, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrAddressNotFound) {
		return nil, addressNotFound()
	}
	if err != nil {
		return nil, databaseError(err)
	}

	apply(&address.Street, input.Street)
	apply(&address.Number, input.Number)
	apply(&address.Complement, input.Complement)
	apply(&address.Neighborhood, input.Neighborhood)
	apply(&address.City, input.City)
	apply(&address.State, input.State)
	apply(&address.ZipCode, input.ZipCode)

	if err := address.Validate(); err != nil {
		return nil, validationFailed(err)
	}

	address.UpdatedAt = time.Now().UTC()

	if err := uc.Repo.Update(ctx, address); err != nil {
		if errors.Is(err, entity.ErrAddressNotFound) {
			return nil, addressNotFound()
		}
		return nil, databaseError(err)
	}

	return address, nil
}

func apply(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
