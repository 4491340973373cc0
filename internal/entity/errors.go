package entity

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCustomerNotFound = errors.New("Cliente não encontrado")
	ErrAddressNotFound  = errors.New("Endereço não encontrado")
	ErrInvalidID        = errors.New("id inválido")
)

// ParseID converte o id hexadecimal recebido na URL em ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// ParseIDs converte uma lista de ids, falhando no primeiro inválido.
func ParseIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := ParseID(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
