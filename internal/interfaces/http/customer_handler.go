package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// CustomerHandler maneja las peticiones HTTP del CRUD de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DetailResponse{Detail: "Invalid request body"})
	}
	customer, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DetailResponse{Detail: err.Error()})
	}
	return c.JSON(customer)
}

// GetByID GET /customer/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DetailResponse{Detail: "Customer id must be an integer"})
	}
	customer, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.DetailResponse{Detail: "Customer doesn't exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DetailResponse{Detail: err.Error()})
	}
	return c.JSON(customer)
}

// Update PATCH /customer/:id
// Parche parcial: solo los campos presentes en el cuerpo sobrescriben.
// El contrato del API responde 201 Created en la actualización.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DetailResponse{Detail: "Customer id must be an integer"})
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DetailResponse{Detail: "Invalid request body"})
	}
	customer, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.DetailResponse{Detail: "Customer doesn't exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DetailResponse{Detail: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Delete DELETE /customer/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := customerID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DetailResponse{Detail: "Customer id must be an integer"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.DetailResponse{Detail: "Customer doesn't exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DetailResponse{Detail: err.Error()})
	}
	return c.JSON(dto.DetailResponse{Detail: "ok"})
}

// List GET /customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DetailResponse{Detail: err.Error()})
	}
	return c.JSON(list)
}

func customerID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
