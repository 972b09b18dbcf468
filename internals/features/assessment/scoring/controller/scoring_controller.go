// file: internals/features/assessment/scoring/controller/scoring_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"asesmenku_backend/internals/constants"
	"asesmenku_backend/internals/features/assessment/repository"
	dto "asesmenku_backend/internals/features/assessment/scoring/dto"
	scoringService "asesmenku_backend/internals/features/assessment/scoring/service"
	standardsService "asesmenku_backend/internals/features/assessment/standards/service"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
	helper "asesmenku_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */

type ScoringController struct {
	DB        *gorm.DB
	Overrides *standardsService.OverrideStore
	Validator *validator.Validate
}

func NewScoringController(db *gorm.DB, overrides *standardsService.OverrideStore) *ScoringController {
	return &ScoringController{
		DB:        db,
		Overrides: overrides,
		Validator: validator.New(),
	}
}

// kolaborator per request: store + cache fresh, override store shared
func (ctl *ScoringController) collaborators() (repository.Store, *templateService.TemplateCache, *scoringService.Calculator, *standardsService.StandardService) {
	store := repository.NewGormStore(ctl.DB)
	cache := templateService.NewTemplateCache(store)
	calc := scoringService.NewCalculator(store, cache)
	std := standardsService.NewStandardService(ctl.Overrides, cache)
	return store, cache, calc, std
}

func (ctl *ScoringController) overrideContext(c *fiber.Ctx, std *standardsService.StandardService, store repository.Store, participantID uuid.UUID) (standardsService.OverrideContext, error) {
	participant, err := store.ParticipantByID(c.UserContext(), participantID)
	if err != nil {
		return standardsService.OverrideContext{}, err
	}
	formation, err := store.PositionFormationByID(c.UserContext(), participant.ParticipantPositionFormationID)
	if err != nil {
		return standardsService.OverrideContext{}, err
	}
	return std.Context(helper.SessionKey(c), formation.PositionFormationTemplateID), nil
}

/* ========================================================
   Handlers
======================================================== */

// POST /participants/:participant_id/calculate
// Ingest feed rating mentah lalu jalankan pipeline penuh (satu transaksi).
func (ctl *ScoringController) CalculateParticipant(c *fiber.Ctx) error {
	participantID, err := helper.ParseUUIDParam(c, "participant_id")
	if err != nil {
		return err
	}

	var feed dto.ParticipantFeedInput
	if err := c.BodyParser(&feed); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Body tidak valid")
	}
	if len(feed) == 0 {
		return helper.Error(c, http.StatusBadRequest, "Feed rating kosong")
	}
	for _, inputs := range feed {
		for _, input := range inputs {
			if err := ctl.Validator.Struct(input); err != nil {
				return helper.ValidationError(c, err)
			}
		}
	}

	store, _, calc, std := ctl.collaborators()
	ov, err := ctl.overrideContext(c, std, store, participantID)
	if err != nil {
		return ctl.mapError(c, err)
	}

	if err := calc.CalculateParticipant(c.UserContext(), ov, participantID, feed); err != nil {
		return ctl.mapError(c, err)
	}
	return ctl.respondResult(c, store, participantID, "Penilaian dihitung")
}

// POST /participants/:participant_id/recalculate
// Putar ulang agregasi dari rating mentah yang sudah tersimpan.
func (ctl *ScoringController) RecalculateParticipant(c *fiber.Ctx) error {
	participantID, err := helper.ParseUUIDParam(c, "participant_id")
	if err != nil {
		return err
	}

	store, _, calc, std := ctl.collaborators()
	ov, err := ctl.overrideContext(c, std, store, participantID)
	if err != nil {
		return ctl.mapError(c, err)
	}

	if err := calc.RecalculateParticipant(c.UserContext(), ov, participantID); err != nil {
		return ctl.mapError(c, err)
	}
	return ctl.respondResult(c, store, participantID, "Penilaian dihitung ulang")
}

// POST /events/:event_id/recalculate?position_formation_id=...
// Rekalkulasi batch satu event; tiap peserta transaksinya terpisah.
func (ctl *ScoringController) RecalculateEvent(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}

	var formationID *uuid.UUID
	if raw := c.Query("position_formation_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "position_formation_id tidak valid")
		}
		formationID = &id
	}

	store, _, calc, std := ctl.collaborators()

	// konteks override di-resolve per template formasi; kalau event
	// campur beberapa template, tiap peserta tetap dapat konteksnya sendiri
	// lewat resolve di dalam loop, di sini cukup sesi + template formasi filter
	ov := standardsService.OverrideContext{}
	if formationID != nil {
		formation, err := store.PositionFormationByID(c.UserContext(), *formationID)
		if err != nil {
			return ctl.mapError(c, err)
		}
		ov = std.Context(helper.SessionKey(c), formation.PositionFormationTemplateID)
	}

	result, err := calc.RecalculateEvent(c.UserContext(), ov, eventID, formationID)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "Rekalkulasi event selesai", result)
}

// GET /participants/:participant_id/result
// Hasil lengkap 4 level satu peserta.
func (ctl *ScoringController) GetParticipantResult(c *fiber.Ctx) error {
	participantID, err := helper.ParseUUIDParam(c, "participant_id")
	if err != nil {
		return err
	}
	store := repository.NewGormStore(ctl.DB)
	return ctl.respondResult(c, store, participantID, "OK")
}

/* ========================================================
   Perakit hasil
======================================================== */

func (ctl *ScoringController) respondResult(c *fiber.Ctx, store repository.Store, participantID uuid.UUID, message string) error {
	ctx := c.UserContext()

	resp := dto.ParticipantResultResponse{ParticipantID: participantID}

	final, err := store.FinalAssessmentByParticipant(ctx, participantID)
	switch {
	case err == nil:
		resp.Final = dto.ToFinalResultResponse(final)
	case !errors.Is(err, repository.ErrNotFound):
		return ctl.mapError(c, err)
	}

	for _, code := range []string{constants.CategoryPotensi, constants.CategoryKompetensi} {
		ca, err := store.CategoryAssessmentByCode(ctx, participantID, code)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return ctl.mapError(c, err)
		}
		category := dto.ToCategoryResultResponse(ca)

		aspects, err := store.AspectAssessmentsByCategoryAssessment(ctx, ca.CategoryAssessmentID)
		if err != nil {
			return ctl.mapError(c, err)
		}
		for i := range aspects {
			aspect := dto.ToAspectResultResponse(&aspects[i])
			subs, err := store.SubAspectAssessmentsByAspectAssessment(ctx, aspects[i].AspectAssessmentID)
			if err != nil {
				return ctl.mapError(c, err)
			}
			for j := range subs {
				aspect.SubAspects = append(aspect.SubAspects, dto.ToSubAspectResultResponse(&subs[j]))
			}
			category.Aspects = append(category.Aspects, aspect)
		}
		resp.Categories = append(resp.Categories, category)
	}

	if resp.Final == nil && len(resp.Categories) == 0 {
		return helper.Error(c, http.StatusNotFound, "Peserta belum punya hasil penilaian")
	}
	return helper.Success(c, message, resp)
}

func (ctl *ScoringController) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return helper.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, scoringService.ErrInvalidRating):
		return helper.Error(c, http.StatusBadRequest, err.Error())
	default:
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
}
