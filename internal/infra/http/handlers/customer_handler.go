package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/sua-pizza-api/internal/infra/database"
	"github.com/xavierca1/sua-pizza-api/internal/infra/http/middleware"
	"github.com/xavierca1/sua-pizza-api/internal/usecase"
)

type CustomerHandler struct {
	RegisterUC *usecase.RegisterCustomerUseCase
	UpdateUC   *usecase.UpdateCustomerUseCase
	DeleteUC   *usecase.DeleteCustomerUseCase
	ListUC     *usecase.ListCustomersUseCase
}

func NewCustomerHandler(
	registerUC *usecase.RegisterCustomerUseCase,
	updateUC *usecase.UpdateCustomerUseCase,
	deleteUC *usecase.DeleteCustomerUseCase,
	listUC *usecase.ListCustomersUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		RegisterUC: registerUC,
		UpdateUC:   updateUC,
		DeleteUC:   deleteUC,
		ListUC:     listUC,
	}
}

// Register (POST /clientes/registro)
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterCustomerInput
	if !decodeJSON(w, r, &input) {
		return
	}

	cliente, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err, database.CustomersCollection)
		return
	}

	middleware.RecordCustomerRegistered()

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Cliente registrado com sucesso",
		"cliente": cliente,
	})
}

// Update (PUT /clientes/{id})
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateCustomerInput
	if !decodeJSON(w, r, &input) {
		return
	}

	cliente, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeUseCaseError(w, err, database.CustomersCollection)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Cliente atualizado com sucesso",
		"cliente": cliente,
	})
}

// Delete (DELETE /clientes/{id})
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cliente, err := h.DeleteUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err, database.CustomersCollection)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Cliente deletado com sucesso",
		"cliente": cliente,
	})
}

// List (GET /clientes)
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeListError(w, err, database.CustomersCollection, "Erro ao recuperar clientes")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Lista de clientes",
		"clientes": clientes,
	})
}
