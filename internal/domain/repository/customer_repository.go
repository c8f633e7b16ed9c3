package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	// Create persiste el cliente y asigna el ID generado por el storage.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// Update sobrescribe todas las columnas del cliente indicado por ID.
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
	// List devuelve todos los clientes en el orden que entregue el storage.
	List(ctx context.Context) ([]*entity.Customer, error)
}
