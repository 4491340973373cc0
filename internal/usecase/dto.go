package usecase

type RegisterCustomerInput struct {
	Name      string   `json:"nome"`
	Email     string   `json:"email"`
	Password  string   `json:"senha"`
	Phones    []string `json:"telefones"`
	Addresses []string `json:"enderecos"`
}

// Campos ausentes (nil) mantêm o valor gravado.
type UpdateCustomerInput struct {
	Name      *string  `json:"nome"`
	Email     *string  `json:"email"`
	Password  *string  `json:"senha"`
	Phones    []string `json:"telefones"`
	Addresses []string `json:"enderecos"`
}

type RegisterAddressInput struct {
	UserID       string `json:"userId"`
	Street       string `json:"logradouro"`
	Number       string `json:"numero"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"estado"`
	ZipCode      string `json:"cep"`
}

// O dono (userId) não é alterável.
type UpdateAddressInput struct {
	Street       *string `json:"logradouro"`
	Number       *string `json:"numero"`
	Complement   *string `json:"complemento"`
	Neighborhood *string `json:"bairro"`
	City         *string `json:"cidade"`
	State        *string `json:"estado"`
	ZipCode      *string `json:"cep"`
}
