package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
	"github.com/xavierca1/sua-pizza-api/internal/infra/queue"
	"github.com/xavierca1/sua-pizza-api/internal/usecase"
)

// memStore guarda cópias dos documentos, como o banco faria.
type memStore struct {
	mu        sync.Mutex
	customers map[primitive.ObjectID]entity.Customer
	addresses map[primitive.ObjectID]entity.Address
	custOrder []primitive.ObjectID
	addrOrder []primitive.ObjectID
	listErr   error
}

func newMemStore() *memStore {
	return &memStore{
		customers: make(map[primitive.ObjectID]entity.Customer),
		addresses: make(map[primitive.ObjectID]entity.Address),
	}
}

func remove(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type memCustomers struct{ s *memStore }

func (r memCustomers) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[c.ID] = *c
	r.s.custOrder = append(r.s.custOrder, c.ID)
	return nil
}

func (r memCustomers) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	return &c, nil
}

func (r memCustomers) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Customer, 0)
	for _, id := range ids {
		if c, ok := r.s.customers[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r memCustomers) FindAll(_ context.Context) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.listErr != nil {
		return nil, r.s.listErr
	}
	out := make([]*entity.Customer, 0, len(r.s.custOrder))
	for _, id := range r.s.custOrder {
		c := r.s.customers[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r memCustomers) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID]; !ok {
		return entity.ErrCustomerNotFound
	}
	r.s.customers[c.ID] = *c
	return nil
}

func (r memCustomers) Delete(_ context.Context, id primitive.ObjectID) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	delete(r.s.customers, id)
	r.s.custOrder = remove(r.s.custOrder, id)
	return &c, nil
}

type memAddresses struct{ s *memStore }

func (r memAddresses) Create(_ context.Context, a *entity.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.addresses[a.ID] = *a
	r.s.addrOrder = append(r.s.addrOrder, a.ID)
	return nil
}

func (r memAddresses) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.addresses[id]
	if !ok {
		return nil, entity.ErrAddressNotFound
	}
	return &a, nil
}

func (r memAddresses) FindByCustomerIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	owners := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		owners[id] = true
	}
	out := make([]*entity.Address, 0)
	for _, id := range r.s.addrOrder {
		a := r.s.addresses[id]
		if owners[a.CustomerID] {
			out = append(out, &a)
		}
	}
	return out, nil
}

func (r memAddresses) FindAll(_ context.Context) ([]*entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.listErr != nil {
		return nil, r.s.listErr
	}
	out := make([]*entity.Address, 0, len(r.s.addrOrder))
	for _, id := range r.s.addrOrder {
		a := r.s.addresses[id]
		out = append(out, &a)
	}
	return out, nil
}

func (r memAddresses) Update(_ context.Context, a *entity.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.addresses[a.ID]; !ok {
		return entity.ErrAddressNotFound
	}
	r.s.addresses[a.ID] = *a
	return nil
}

func (r memAddresses) Delete(_ context.Context, id primitive.ObjectID) (*entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.addresses[id]
	if !ok {
		return nil, entity.ErrAddressNotFound
	}
	delete(r.s.addresses, id)
	r.s.addrOrder = remove(r.s.addrOrder, id)
	return &a, nil
}

func (r memAddresses) AssignOwner(_ context.Context, addressIDs []primitive.ObjectID, customerID primitive.ObjectID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, id := range addressIDs {
		if a, ok := r.s.addresses[id]; ok {
			a.CustomerID = customerID
			r.s.addresses[id] = a
			n++
		}
	}
	return n, nil
}

func newTestRouter(s *memStore) http.Handler {
	customers := memCustomers{s}
	addresses := memAddresses{s}

	ch := NewCustomerHandler(
		usecase.NewRegisterCustomerUseCase(customers, addresses, queue.NopProducer{}),
		usecase.NewUpdateCustomerUseCase(customers, addresses),
		usecase.NewDeleteCustomerUseCase(customers, addresses),
		usecase.NewListCustomersUseCase(customers, addresses),
	)
	ah := NewAddressHandler(
		usecase.NewRegisterAddressUseCase(addresses),
		usecase.NewUpdateAddressUseCase(addresses),
		usecase.NewDeleteAddressUseCase(addresses),
		usecase.NewListAddressesUseCase(addresses, customers),
	)

	r := chi.NewRouter()
	r.Get("/", Home)
	r.Post("/clientes/registro", ch.Register)
	r.Put("/clientes/{id}", ch.Update)
	r.Delete("/clientes/{id}", ch.Delete)
	r.Get("/clientes", ch.List)
	r.Post("/enderecos/registro", ah.Register)
	r.Put("/enderecos/{id}", ah.Update)
	r.Delete("/enderecos/{id}", ah.Delete)
	r.Get("/enderecos", ah.List)
	return r
}
