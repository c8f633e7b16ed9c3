package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/validate"
)

// BillingHandler maneja transacciones y facturas. Son endpoints de eco:
// validan la forma del cuerpo y lo devuelven sin persistir nada.
type BillingHandler struct{}

// NewBillingHandler construye el handler.
func NewBillingHandler() *BillingHandler {
	return &BillingHandler{}
}

// CreateTransaction POST /transactions
func (h *BillingHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.Transaction
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DetailResponse{Detail: "Invalid request body"})
	}
	if fields := validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(validationDetail(fields))
	}
	return c.JSON(in)
}

// CreateInvoice POST /invoices
// Total viaja tal cual lo mandó el caller: no se concilia contra la suma
// de las transacciones embebidas.
func (h *BillingHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.Invoice
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DetailResponse{Detail: "Invalid request body"})
	}
	if fields := validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(validationDetail(fields))
	}
	return c.JSON(in)
}

func validationDetail(fields []validate.FieldError) dto.ValidationErrorResponse {
	out := make([]dto.FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, dto.FieldError{Field: f.Field, Error: f.Error})
	}
	return dto.ValidationErrorResponse{Detail: out}
}
