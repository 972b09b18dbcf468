// file: internals/features/assessment/analytics/route/analytics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "asesmenku_backend/internals/features/assessment/analytics/controller"
	standardsService "asesmenku_backend/internals/features/assessment/standards/service"
)

// AnalyticsRoutes: turunan talent pool & rekomendasi pelatihan (read-only).
func AnalyticsRoutes(router fiber.Router, db *gorm.DB, overrides *standardsService.OverrideStore) {
	ctl := analyticsController.NewAnalyticsController(db, overrides)

	analytics := router.Group("/analytics")
	analytics.Get("/events/:event_id/formations/:position_formation_id/nine-box", ctl.NineBoxMatrix)
	analytics.Get("/events/:event_id/formations/:position_formation_id/aspects/:aspect_id/training", ctl.TrainingSummary)
}
