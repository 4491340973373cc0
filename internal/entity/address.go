package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entidade: Address (coleção "enderecos")
type Address struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CustomerID   primitive.ObjectID `bson:"userId" json:"userId" validate:"required"`
	Street       string             `bson:"logradouro" json:"logradouro" validate:"required"`
	Number       string             `bson:"numero" json:"numero" validate:"required"`
	Complement   string             `bson:"complemento,omitempty" json:"complemento,omitempty"`
	Neighborhood string             `bson:"bairro" json:"bairro" validate:"required"`
	City         string             `bson:"cidade" json:"cidade" validate:"required"`
	State        string             `bson:"estado" json:"estado" validate:"required"`
	ZipCode      string             `bson:"cep,omitempty" json:"cep,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func NewAddress(customerID primitive.ObjectID, street, number, complement, neighborhood, city, state, zipCode string) *Address {
	now := time.Now().UTC()
	return &Address{
		ID:           primitive.NewObjectID(),
		CustomerID:   customerID,
		Street:       street,
		Number:       number,
		Complement:   complement,
		Neighborhood: neighborhood,
		City:         city,
		State:        state,
		ZipCode:      zipCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (a *Address) Validate() error {
	return validateStruct("Endereco", a)
}

// AddressWithCustomer é a forma populada usada na listagem: "userId" vira o
// cliente completo, ou null quando o dono não existe mais.
type AddressWithCustomer struct {
	Address
	Customer *Customer `json:"userId"`
}
