package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/sua-pizza-api/internal/infra/database"
	"github.com/xavierca1/sua-pizza-api/internal/infra/http/middleware"
	"github.com/xavierca1/sua-pizza-api/internal/usecase"
)

type AddressHandler struct {
	RegisterUC *usecase.RegisterAddressUseCase
	UpdateUC   *usecase.UpdateAddressUseCase
	DeleteUC   *usecase.DeleteAddressUseCase
	ListUC     *usecase.ListAddressesUseCase
}

func NewAddressHandler(
	registerUC *usecase.RegisterAddressUseCase,
	updateUC *usecase.UpdateAddressUseCase,
	deleteUC *usecase.DeleteAddressUseCase,
	listUC *usecase.ListAddressesUseCase,
) *AddressHandler {
	return &AddressHandler{
		RegisterUC: registerUC,
		UpdateUC:   updateUC,
		DeleteUC:   deleteUC,
		ListUC:     listUC,
	}
}

func (h *AddressHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterAddressInput
	if !decodeJSON(w, r, &input) {
		return
	}

	endereco, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err, database.AddressesCollection)
		return
	}

	middleware.RecordAddressRegistered()

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Endereço registrado com sucesso",
		"endereco": endereco,
	})
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateAddressInput
	if !decodeJSON(w, r, &input) {
		return
	}

	endereco, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeUseCaseError(w, err, database.AddressesCollection)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Endereço atualizado com sucesso",
		"endereco": endereco,
	})
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	endereco, err := h.DeleteUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err, database.AddressesCollection)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Endereço deletado com sucesso",
		"endereco": endereco,
	})
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	enderecos, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeListError(w, err, database.AddressesCollection, "Erro ao recuperar endereços")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Lista de endereços",
		"enderecos": enderecos,
	})
}
