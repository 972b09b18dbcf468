// file: internals/features/assessment/standards/route/standards_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	standardsController "asesmenku_backend/internals/features/assessment/standards/controller"
	standardsService "asesmenku_backend/internals/features/assessment/standards/service"
)

// StandardsRoutes: seleksi standar dinamis per sesi.
func StandardsRoutes(router fiber.Router, db *gorm.DB, overrides *standardsService.OverrideStore) {
	ctl := standardsController.NewStandardsController(db, overrides)

	standards := router.Group("/standards")
	standards.Get("/:template_id/selection", ctl.GetSelection)
	standards.Post("/:template_id/selection", ctl.SaveSelection)
	standards.Delete("/:template_id/selection", ctl.ResetSelection)
	standards.Get("/:template_id/categories/:category_code/adjustments", ctl.CategoryAdjustments)
}
