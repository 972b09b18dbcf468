// file: internals/features/assessment/templates/route/templates_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	templatesController "asesmenku_backend/internals/features/assessment/templates/controller"
)

// TemplateRoutes: baca struktur template standar penilaian.
func TemplateRoutes(router fiber.Router, db *gorm.DB) {
	ctl := templatesController.NewTemplatesController(db)

	templates := router.Group("/templates")
	templates.Get("/", ctl.List)
	templates.Get("/:template_id", ctl.Detail)
}
