package entity

// Customer representa un cliente persistido. Todos los campos excepto ID
// son anulables: un puntero nil se guarda como NULL en la tabla.
type Customer struct {
	ID          int64
	Name        *string
	Description *string
	Email       *string
	Age         *int
}
