package fees

import (
	"github.com/gofiber/fiber/v2"

	"acacia-schools/app/routes/auth"
	"acacia-schools/app/services"
)

// SetupFeesRoutes sets up the fee view routes.
func SetupFeesRoutes(app *fiber.App, svc *services.FeeService) {
	api := app.Group("/api/fees")
	api.Use(auth.TokenMiddleware)

	api.Get("/overview", func(c *fiber.Ctx) error {
		return GetOverviewAPI(c, svc)
	})

	api.Get("/analytics", func(c *fiber.Ctx) error {
		return GetAnalyticsAPI(c, svc)
	})

	api.Get("/export", func(c *fiber.Ctx) error {
		return ExportCollectionSheetAPI(c, svc)
	})

	api.Get("/students/:studentId", func(c *fiber.Ctx) error {
		return GetStudentCardAPI(c, svc)
	})

	api.Get("/students/:studentId/history", func(c *fiber.Ctx) error {
		return GetPaymentHistoryAPI(c, svc)
	})

	api.Post("/payment", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, svc)
	})

	api.Put("/structure/:studentId", func(c *fiber.Ctx) error {
		return UpdateStructureAPI(c, svc)
	})
}
