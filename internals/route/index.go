// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "asesmenku_backend/internals/features/assessment/analytics/route"
	eventsRoute "asesmenku_backend/internals/features/assessment/events/route"
	scoringRoute "asesmenku_backend/internals/features/assessment/scoring/route"
	standardsRoute "asesmenku_backend/internals/features/assessment/standards/route"
	standardsService "asesmenku_backend/internals/features/assessment/standards/service"
	templatesRoute "asesmenku_backend/internals/features/assessment/templates/route"
	authMiddleware "asesmenku_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes me-mount seluruh fitur.
// overrides hidup se-proses: seleksi standar dinamis per sesi tinggal di sini.
func SetupRoutes(app *fiber.App, db *gorm.DB, overrides *standardsService.OverrideStore) {
	startTime = time.Now()

	BaseRoutes(app)

	// PUBLIC → baca struktur template, tanpa token
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	templatesRoute.TemplateRoutes(public, db)

	// PRIVATE → semua operasi penilaian butuh JWT
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Mounting Event routes...")
	eventsRoute.EventRoutes(private, db)

	log.Println("[INFO] Mounting Standards routes...")
	standardsRoute.StandardsRoutes(private, db, overrides)

	log.Println("[INFO] Mounting Scoring routes...")
	scoringRoute.ScoringRoutes(private, db, overrides)

	log.Println("[INFO] Mounting Analytics routes...")
	analyticsRoute.AnalyticsRoutes(private, db, overrides)
}
