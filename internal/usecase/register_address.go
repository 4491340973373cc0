package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
	"github.com/xavierca1/sua-pizza-api/internal/logger"
)

type RegisterAddressUseCase struct {
	Repo AddressRepositoryInterface
}

func NewRegisterAddressUseCase(repo AddressRepositoryInterface) *RegisterAddressUseCase {
	return &RegisterAddressUseCase{Repo: repo}
}

// Execute grava o endereço sem conferir se o cliente dono existe.
func (uc *RegisterAddressUseCase) Execute(ctx context.Context, input RegisterAddressInput) (*entity.Address, error) {
	ownerID := primitive.NilObjectID
	if input.UserID != "" {
		id, err := entity.ParseID(input.UserID)
		if err != nil {
			return nil, &DomainError{Code: CodeValidation, Message: "Endereco validation failed: userId (is invalid)"}
		}
		ownerID = id
	}

	address := entity.NewAddress(
		ownerID,
		input.Street,
		input.Number,
		input.Complement,
		input.Neighborhood,
		input.City,
		input.State,
		input.ZipCode,
	)
	if err := address.Validate(); err != nil {
		return nil, validationFailed(err)
	}

	if err := uc.Repo.Create(ctx, address); err != nil {
		return nil, databaseError(err)
	}

	logger.Log.Info("endereço registrado",
		zap.String("address_id", address.ID.Hex()),
		zap.String("customer_id", address.CustomerID.Hex()),
	)

	return address, nil
}
