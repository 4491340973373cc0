package usecase

import (
	"errors"

	"github.com/xavierca1/sua-pizza-api/internal/entity"
)

const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidID        = "INVALID_ID"
	CodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	CodeAddressNotFound  = "ADDRESS_NOT_FOUND"
	CodeDatabase         = "DATABASE_ERROR"
	CodeHash             = "HASH_ERROR"
)

// Erro do cliente da API (400/404)
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// Erro de infraestrutura (500)
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func databaseError(err error) error {
	return &TechnicalError{Code: CodeDatabase, Message: err.Error(), Err: err}
}

func invalidID() error {
	return &DomainError{Code: CodeInvalidID, Message: entity.ErrInvalidID.Error()}
}

func customerNotFound() error {
	return &DomainError{Code: CodeCustomerNotFound, Message: entity.ErrCustomerNotFound.Error()}
}

func addressNotFound() error {
	return &DomainError{Code: CodeAddressNotFound, Message: entity.ErrAddressNotFound.Error()}
}

// validationFailed converte o erro de validação da entidade em DomainError;
// qualquer outro erro é tratado como falha técnica.
func validationFailed(err error) error {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return &DomainError{Code: CodeValidation, Message: verr.Error()}
	}
	return &TechnicalError{Code: CodeValidation, Message: err.Error(), Err: err}
}
