package dto

// CreateCustomerRequest body para POST /customers. Los cuatro campos son
// anulables; las claves desconocidas del cuerpo se ignoran.
type CreateCustomerRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Email       *string `json:"email"`
	Age         *int    `json:"age"`
}

// UpdateCustomerRequest body para PATCH /customer/:id. Cada campo distingue
// ausente / null / valor (ver Field).
type UpdateCustomerRequest struct {
	Name        Field[string] `json:"name"`
	Description Field[string] `json:"description"`
	Email       Field[string] `json:"email"`
	Age         Field[int]    `json:"age"`
}

// CustomerResponse cliente en respuestas; los campos sin valor se
// serializan como null.
type CustomerResponse struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Email       *string `json:"email"`
	Age         *int    `json:"age"`
}
