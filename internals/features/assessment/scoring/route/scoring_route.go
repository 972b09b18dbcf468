// file: internals/features/assessment/scoring/route/scoring_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoringController "asesmenku_backend/internals/features/assessment/scoring/controller"
	standardsService "asesmenku_backend/internals/features/assessment/standards/service"
	"asesmenku_backend/internals/middlewares"
)

// ScoringRoutes: kalkulasi & hasil penilaian.
// Rekalkulasi event pakai rate limiter ketat, satu request bisa memutar
// ulang ratusan peserta.
func ScoringRoutes(router fiber.Router, db *gorm.DB, overrides *standardsService.OverrideStore) {
	ctl := scoringController.NewScoringController(db, overrides)

	participants := router.Group("/participants")
	participants.Post("/:participant_id/calculate", ctl.CalculateParticipant)
	participants.Post("/:participant_id/recalculate", ctl.RecalculateParticipant)
	participants.Get("/:participant_id/result", ctl.GetParticipantResult)

	events := router.Group("/events")
	events.Post("/:event_id/recalculate", middlewares.StrictRateLimiter(), ctl.RecalculateEvent)
}
