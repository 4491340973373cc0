package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// Entidade: Customer (coleção "clientes")
type Customer struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"nome" json:"nome" validate:"required"`
	Email    string             `bson:"email" json:"email" validate:"required"`
	Password string             `bson:"senha" json:"-" validate:"required"`
	Phones   []string           `bson:"telefones" json:"telefones" validate:"required,min=1,dive,required"`

	// Derivado: preenchido na leitura a partir de enderecos.userId, nunca gravado
	Addresses []Address `bson:"-" json:"enderecos"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Factory
func NewCustomer(name, email, password string, phones []string) *Customer {
	now := time.Now().UTC()
	return &Customer{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  password,
		Phones:    phones,
		Addresses: []Address{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Customer) Validate() error {
	return validateStruct("Cliente", c)
}

// HashPassword substitui a senha em texto puro pelo hash bcrypt.
func (c *Customer) HashPassword() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Password = string(hash)
	return nil
}

func (c *Customer) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(plain)) == nil
}
