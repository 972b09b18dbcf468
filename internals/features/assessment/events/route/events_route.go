// file: internals/features/assessment/events/route/events_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventsController "asesmenku_backend/internals/features/assessment/events/controller"
)

// EventRoutes: instansi, event asesmen, formasi jabatan, peserta.
func EventRoutes(router fiber.Router, db *gorm.DB) {
	ctl := eventsController.NewEventsController(db)

	institutions := router.Group("/institutions")
	institutions.Post("/", ctl.CreateInstitution)
	institutions.Get("/", ctl.ListInstitutions)

	events := router.Group("/events")
	events.Post("/", ctl.CreateEvent)
	events.Get("/", ctl.ListEvents)
	events.Get("/:event_id", ctl.GetEvent)
	events.Post("/:event_id/formations", ctl.CreatePositionFormation)
	events.Get("/:event_id/formations", ctl.ListPositionFormations)
	events.Post("/:event_id/participants", ctl.CreateParticipant)
	events.Get("/:event_id/participants", ctl.ListParticipants)

	router.Get("/participants/:participant_id", ctl.GetParticipant)
}
