package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	WorldClock *usecase.WorldClockUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Saludo raíz
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hola, Manuel!"})
	})

	// Hora por país
	timeHandler := NewTimeHandler(deps.WorldClock)
	app.Get("/time/:iso_code", timeHandler.CurrentTime)

	// Clientes (CRUD persistido)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	app.Post("/customers", customerHandler.Create)
	app.Get("/customers", customerHandler.List)
	app.Get("/customer/:id", customerHandler.GetByID)
	app.Patch("/customer/:id", customerHandler.Update)
	app.Delete("/customer/:id", customerHandler.Delete)

	// Transacciones y facturas (eco, sin persistencia)
	billingHandler := NewBillingHandler()
	app.Post("/transactions", billingHandler.CreateTransaction)
	app.Post("/invoices", billingHandler.CreateInvoice)
}
