package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// TimeHandler maneja la consulta de hora por país.
type TimeHandler struct {
	uc *usecase.WorldClockUseCase
}

// NewTimeHandler construye el handler.
func NewTimeHandler(uc *usecase.WorldClockUseCase) *TimeHandler {
	return &TimeHandler{uc: uc}
}

// CurrentTime GET /time/:iso_code
func (h *TimeHandler) CurrentTime(c *fiber.Ctx) error {
	res, err := h.uc.CurrentTime(c.Params("iso_code"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.DetailResponse{Detail: "Country code doesn't exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.DetailResponse{Detail: err.Error()})
	}
	return c.JSON(res)
}
