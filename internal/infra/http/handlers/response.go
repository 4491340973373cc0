package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/sua-pizza-api/internal/logger"
	"github.com/xavierca1/sua-pizza-api/internal/usecase"
)

const (
	CodeInvalidJSON   = "INVALID_JSON"
	CodeInternalError = "INTERNAL_ERROR"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("falha ao escrever resposta", zap.Error(err))
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError traduz o erro do caso de uso em status HTTP.
func writeUseCaseError(w http.ResponseWriter, err error, collection string) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		status := http.StatusBadRequest
		if de.Code == usecase.CodeCustomerNotFound || de.Code == usecase.CodeAddressNotFound {
			status = http.StatusNotFound
		}
		writeErrorResponse(w, status, de.Code, de.Message)
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		logger.Log.Error("erro técnico",
			zap.String("code", te.Code),
			zap.String("collection", collection),
			zap.Error(te.Err),
		)
		writeErrorResponse(w, http.StatusInternalServerError, te.Code, te.Message)
		return
	}

	logger.Log.Error("erro inesperado", zap.Error(err))
	writeErrorResponse(w, http.StatusInternalServerError, CodeInternalError, err.Error())
}

// writeListError mantém o formato {message, error} das listagens.
func writeListError(w http.ResponseWriter, err error, collection, message string) {
	logger.Log.Error(message, zap.Error(err))

	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"message": message,
		"error":   err.Error(),
	})
}

// decodeJSON trata corpo vazio como {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeErrorResponse(w, http.StatusBadRequest, CodeInvalidJSON, "JSON inválido")
		return false
	}
	return true
}
