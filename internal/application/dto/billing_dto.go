package dto

// Transaction body para POST /transactions. No se persiste: se valida y se
// devuelve tal cual. Los campos son requeridos por presencia (punteros):
// 0 y "" son válidos, la clave ausente o null no.
type Transaction struct {
	ID          *int64  `json:"id" validate:"required"`
	Amount      *int64  `json:"amount" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

// InvoiceCustomer cliente embebido en la factura como valor, no como FK.
// Todos los campos son opcionales, igual que la forma base de cliente.
type InvoiceCustomer struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Email       *string `json:"email"`
	Age         *int    `json:"age"`
}

// Invoice body para POST /invoices. Echo: se valida y se devuelve sin
// persistir. Total lo aporta el caller y no se concilia contra la suma de
// las transacciones.
type Invoice struct {
	ID           *int64           `json:"id" validate:"required"`
	Customer     *InvoiceCustomer `json:"customer" validate:"required"`
	Transactions []Transaction    `json:"transactions" validate:"required,dive"`
	Total        *int64           `json:"total" validate:"required"`
}

// AmountTotal suma los montos de las transacciones embebidas. Ninguna ruta
// lo usa; Total viaja tal cual lo mandó el caller.
func (i Invoice) AmountTotal() int64 {
	var total int64
	for _, tx := range i.Transactions {
		if tx.Amount != nil {
			total += *tx.Amount
		}
	}
	return total
}
