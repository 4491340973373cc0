package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
	"github.com/xavierca1/sua-pizza-api/internal/infra/queue"
	"github.com/xavierca1/sua-pizza-api/internal/logger"
)

type RegisterCustomerUseCase struct {
	Repo        CustomerRepositoryInterface
	AddressRepo AddressRepositoryInterface
	Queue       QueueProducerInterface
}

func NewRegisterCustomerUseCase(
	repo CustomerRepositoryInterface,
	addressRepo AddressRepositoryInterface,
	queue QueueProducerInterface,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		Repo:        repo,
		AddressRepo: addressRepo,
		Queue:       queue,
	}
}

func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, input RegisterCustomerInput) (*entity.Customer, error) {
	addressIDs, err := entity.ParseIDs(input.Addresses)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: "Cliente validation failed: enderecos (is invalid)"}
	}

	customer := entity.NewCustomer(input.Name, input.Email, input.Password, input.Phones)
	if err := customer.Validate(); err != nil {
		return nil, validationFailed(err)
	}

	if err := customer.HashPassword(); err != nil {
		return nil, &TechnicalError{Code: CodeHash, Message: "falha ao gerar hash da senha: " + err.Error(), Err: err}
	}

	txn := NewTransaction()

	txn.AddOperation("create_customer", func(ctx context.Context) error {
		return uc.Repo.Create(ctx, customer)
	})
	txn.AddCompensation("delete_customer", func(ctx context.Context) error {
		_, err := uc.Repo.Delete(ctx, customer.ID)
		return err
	})

	if len(addressIDs) > 0 {
		txn.AddOperation("assign_addresses", func(ctx context.Context) error {
			_, err := uc.AddressRepo.AssignOwner(ctx, addressIDs, customer.ID)
			return err
		})
	}

	if err := txn.Execute(ctx); err != nil {
		return nil, databaseError(err)
	}

	if len(addressIDs) > 0 {
		customer.Addresses = loadOwnedAddresses(ctx, uc.AddressRepo, customer.ID)
	}

	logger.Log.Info("cliente registrado", zap.String("customer_id", customer.ID.Hex()))

	uc.publishRegistered(ctx, customer)

	return customer, nil
}

func (uc *RegisterCustomerUseCase) publishRegistered(ctx context.Context, c *entity.Customer) {
	if uc.Queue == nil {
		return
	}

	payload := queue.CustomerRegisteredPayload{
		CustomerID: c.ID.Hex(),
		Name:       c.Name,
		Email:      c.Email,
		Phones:     c.Phones,
	}

	// o cadastro já foi gravado; falha na fila não desfaz o registro
	if err := uc.Queue.PublishCustomerRegistered(ctx, payload); err != nil {
		logger.Log.Warn("falha ao publicar evento de cadastro",
			zap.String("customer_id", payload.CustomerID),
			zap.Error(err),
		)
	}
}

// loadOwnedAddresses devolve os endereços do cliente; erro de leitura aqui
// só é logado porque a escrita principal já foi concluída.
func loadOwnedAddresses(ctx context.Context, repo AddressRepositoryInterface, customerID primitive.ObjectID) []entity.Address {
	owned, err := repo.FindByCustomerIDs(ctx, []primitive.ObjectID{customerID})
	if err != nil {
		logger.Log.Error("falha ao carregar endereços do cliente",
			zap.String("customer_id", customerID.Hex()),
			zap.Error(err),
		)
		return []entity.Address{}
	}
	return flatten(owned)
}

func flatten(addresses []*entity.Address) []entity.Address {
	out := make([]entity.Address, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, *a)
	}
	return out
}
