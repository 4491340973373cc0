package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCustomerValidate(t *testing.T) {
	tests := []struct {
		description string
		customer    *Customer
		fields      []string
	}{
		{
			description: "todos os campos",
			customer:    NewCustomer("Maria", "maria@example.com", "segredo", []string{"11999999999"}),
		},
		{
			description: "sem telefones",
			customer:    NewCustomer("Maria", "maria@example.com", "segredo", nil),
			fields:      []string{"telefones"},
		},
		{
			description: "lista de telefones vazia",
			customer:    NewCustomer("Maria", "maria@example.com", "segredo", []string{}),
			fields:      []string{"telefones"},
		},
		{
			description: "telefone em branco",
			customer:    NewCustomer("Maria", "maria@example.com", "segredo", []string{""}),
			fields:      []string{"telefones[0]"},
		},
		{
			description: "sem nome, email e senha",
			customer:    NewCustomer("", "", "", []string{"11999999999"}),
			fields:      []string{"nome", "email", "senha"},
		},
	}

	for _, tt := range tests {
		err := tt.customer.Validate()
		if len(tt.fields) == 0 {
			assert.NoError(t, err, tt.description)
			continue
		}

		var verr *ValidationError
		require.True(t, errors.As(err, &verr), tt.description)
		assert.Equal(t, "Cliente", verr.Entity)

		var got []string
		for _, f := range verr.Fields {
			got = append(got, f.Field)
		}
		assert.Equal(t, tt.fields, got, tt.description)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewCustomer("", "maria@example.com", "segredo", nil).Validate()
	require.Error(t, err)
	assert.Equal(t, "Cliente validation failed: nome (is required), telefones (is required)", err.Error())
}

func TestAddressValidate(t *testing.T) {
	ok := NewAddress(primitive.NewObjectID(), "Rua A", "10", "", "Centro", "São Paulo", "SP", "")
	assert.NoError(t, ok.Validate())

	noOwner := NewAddress(primitive.NilObjectID, "Rua A", "10", "", "Centro", "São Paulo", "SP", "")
	err := noOwner.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Endereco", verr.Entity)
	assert.Equal(t, "userId", verr.Fields[0].Field)

	missing := NewAddress(primitive.NewObjectID(), "", "", "apto 1", "", "", "", "01310-100")
	err = missing.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 5)
}

func TestCustomerPasswordHash(t *testing.T) {
	c := NewCustomer("Maria", "maria@example.com", "segredo", []string{"11999999999"})
	require.NoError(t, c.HashPassword())

	assert.NotEqual(t, "segredo", c.Password)
	assert.True(t, c.CheckPassword("segredo"))
	assert.False(t, c.CheckPassword("outra"))
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("123")
	assert.ErrorIs(t, err, ErrInvalidID)

	ids, err := ParseIDs([]string{id.Hex(), id.Hex()})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = ParseIDs([]string{id.Hex(), "xyz"})
	assert.ErrorIs(t, err, ErrInvalidID)
}
