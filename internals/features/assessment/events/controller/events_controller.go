// file: internals/features/assessment/events/controller/events_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "asesmenku_backend/internals/features/assessment/events/dto"
	eventModel "asesmenku_backend/internals/features/assessment/events/model"
	helper "asesmenku_backend/internals/helpers"
)

type EventsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventsController(db *gorm.DB) *EventsController {
	return &EventsController{DB: db, Validator: validator.New()}
}

/* ========================================================
   Institutions
======================================================== */

// POST /institutions
func (ctl *EventsController) CreateInstitution(c *fiber.Ctx) error {
	var req dto.CreateInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := eventModel.InstitutionModel{
		InstitutionName:    req.Name,
		InstitutionAddress: req.Address,
		InstitutionContact: req.Contact,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Instansi dibuat", dto.ToInstitutionResponse(&m))
}

// GET /institutions
func (ctl *EventsController) ListInstitutions(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.DefaultOpts)

	var total int64
	q := ctl.DB.WithContext(c.UserContext()).Model(&eventModel.InstitutionModel{})
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []eventModel.InstitutionModel
	if err := q.Order("institution_created_at DESC").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.InstitutionResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToInstitutionResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{"items": resp, "pagination": p.Meta(total)})
}

/* ========================================================
   Events
======================================================== */

// POST /events
func (ctl *EventsController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.StartAt != nil && req.EndAt != nil && req.EndAt.Before(*req.StartAt) {
		return helper.Error(c, http.StatusBadRequest, "Tanggal selesai sebelum tanggal mulai")
	}

	var institution eventModel.InstitutionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&institution, "institution_id = ?", req.InstitutionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Instansi tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	m := eventModel.AssessmentEventModel{
		AssessmentEventInstitutionID: req.InstitutionID,
		AssessmentEventName:          req.Name,
		AssessmentEventCode:          req.Code,
		AssessmentEventStartAt:       req.StartAt,
		AssessmentEventEndAt:         req.EndAt,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Event asesmen dibuat", dto.ToEventResponse(&m))
}

// GET /events?institution_id=...
func (ctl *EventsController) ListEvents(c *fiber.Ctx) error {
	p := helper.ParsePagination(c, helper.DefaultOpts)

	q := ctl.DB.WithContext(c.UserContext()).Model(&eventModel.AssessmentEventModel{})
	if raw := c.Query("institution_id"); raw != "" {
		q = q.Where("assessment_event_institution_id = ?", raw)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []eventModel.AssessmentEventModel
	if err := q.Order("assessment_event_created_at DESC").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToEventResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{"items": resp, "pagination": p.Meta(total)})
}

// GET /events/:event_id
func (ctl *EventsController) GetEvent(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}

	var m eventModel.AssessmentEventModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "assessment_event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.ToEventResponse(&m))
}

/* ========================================================
   Position formations
======================================================== */

// POST /events/:event_id/formations
// Formasi mengikat event ke SATU template standar.
func (ctl *EventsController) CreatePositionFormation(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}

	var req dto.CreatePositionFormationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := eventModel.PositionFormationModel{
		PositionFormationEventID:    eventID,
		PositionFormationTemplateID: req.TemplateID,
		PositionFormationName:       req.Name,
		PositionFormationQuota:      req.Quota,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Formasi jabatan dibuat", dto.ToPositionFormationResponse(&m))
}

// GET /events/:event_id/formations
func (ctl *EventsController) ListPositionFormations(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}

	var rows []eventModel.PositionFormationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("position_formation_event_id = ?", eventID).
		Order("position_formation_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.PositionFormationResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToPositionFormationResponse(&rows[i]))
	}
	return helper.Success(c, "OK", resp)
}

/* ========================================================
   Participants
======================================================== */

// POST /events/:event_id/participants
func (ctl *EventsController) CreateParticipant(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}

	var req dto.CreateParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// formasi harus milik event yang sama
	var formation eventModel.PositionFormationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&formation, "position_formation_id = ? AND position_formation_event_id = ?", req.PositionFormationID, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Formasi tidak ditemukan pada event ini")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	m := eventModel.ParticipantModel{
		ParticipantEventID:             eventID,
		ParticipantPositionFormationID: req.PositionFormationID,
		ParticipantName:                req.Name,
		ParticipantNumber:              req.Number,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Peserta didaftarkan", dto.ToParticipantResponse(&m))
}

// GET /events/:event_id/participants?position_formation_id=...
func (ctl *EventsController) ListParticipants(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}
	p := helper.ParsePagination(c, helper.DefaultOpts)

	q := ctl.DB.WithContext(c.UserContext()).Model(&eventModel.ParticipantModel{}).
		Where("participant_event_id = ?", eventID)
	if raw := c.Query("position_formation_id"); raw != "" {
		q = q.Where("participant_position_formation_id = ?", raw)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []eventModel.ParticipantModel
	if err := q.Order("participant_number ASC").
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ParticipantResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToParticipantResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{"items": resp, "pagination": p.Meta(total)})
}

// GET /participants/:participant_id
func (ctl *EventsController) GetParticipant(c *fiber.Ctx) error {
	participantID, err := helper.ParseUUIDParam(c, "participant_id")
	if err != nil {
		return err
	}

	var m eventModel.ParticipantModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "participant_id = ?", participantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Peserta tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.ToParticipantResponse(&m))
}
