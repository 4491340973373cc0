package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
)

type UpdateCustomerUseCase struct {
	Repo        CustomerRepositoryInterface
	AddressRepo AddressRepositoryInterface
}

func NewUpdateCustomerUseCase(repo CustomerRepositoryInterface, addressRepo AddressRepositoryInterface) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{Repo: repo, AddressRepo: addressRepo}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, rawID string, input UpdateCustomerInput) (*entity.Customer, error) {
	id, err := entity.ParseID(rawID)
	if err != nil {
		return nil, invalidID()
	}

	// existência antes da validação: id desconhecido é 404 qualquer que seja o corpo
	customer, err := uc.Repo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrCustomerNotFound) {
		return nil, customerNotFound()
	}
	if err != nil {
		return nil, databaseError(err)
	}

	addressIDs, err := entity.ParseIDs(input.Addresses)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: "Cliente validation failed: enderecos (is invalid)"}
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Password != nil {
		customer.Password = *input.Password
	}
	if input.Phones != nil {
		customer.Phones = input.Phones
	}

	if err := customer.Validate(); err != nil {
		return nil, validationFailed(err)
	}

	if input.Password != nil {
		if err := customer.HashPassword(); err != nil {
			return nil, &TechnicalError{Code: CodeHash, Message: "falha ao gerar hash da senha: " + err.Error(), Err: err}
		}
	}

	customer.UpdatedAt = time.Now().UTC()

	if err := uc.Repo.Update(ctx, customer); err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			return nil, customerNotFound()
		}
		return nil, databaseError(err)
	}

	if len(addressIDs) > 0 {
		if _, err := uc.AddressRepo.AssignOwner(ctx, addressIDs, customer.ID); err != nil {
			return nil, databaseError(err)
		}
	}

	customer.Addresses = loadOwnedAddresses(ctx, uc.AddressRepo, customer.ID)

	return customer, nil
}
