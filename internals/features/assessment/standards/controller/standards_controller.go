// file: internals/features/assessment/standards/controller/standards_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asesmenku_backend/internals/features/assessment/repository"
	dto "asesmenku_backend/internals/features/assessment/standards/dto"
	service "asesmenku_backend/internals/features/assessment/standards/service"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
	helper "asesmenku_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */

type StandardsController struct {
	DB        *gorm.DB
	Overrides *service.OverrideStore
	Validator *validator.Validate
}

func NewStandardsController(db *gorm.DB, overrides *service.OverrideStore) *StandardsController {
	return &StandardsController{
		DB:        db,
		Overrides: overrides,
		Validator: validator.New(),
	}
}

// satu service standar per request: cache-nya berumur request, store-nya shared
func (ctl *StandardsController) standardService() *service.StandardService {
	store := repository.NewGormStore(ctl.DB)
	cache := templateService.NewTemplateCache(store)
	return service.NewStandardService(ctl.Overrides, cache)
}

/* ========================================================
   Handlers
======================================================== */

// GET /standards/:template_id/selection
// Seleksi yang sedang berlaku untuk sesi ini (master + override).
func (ctl *StandardsController) GetSelection(c *fiber.Ctx) error {
	templateID, err := helper.ParseUUIDParam(c, "template_id")
	if err != nil {
		return err
	}

	sel, err := ctl.standardService().CurrentSelection(c.UserContext(), helper.SessionKey(c), templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.Error(c, http.StatusNotFound, "Template tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", sel)
}

// POST /standards/:template_id/selection
// Terapkan seleksi standar dinamis untuk sesi ini. Validasi gagal →
// 422 + daftar lengkap pelanggaran, override lama tetap berlaku.
func (ctl *StandardsController) SaveSelection(c *fiber.Ctx) error {
	templateID, err := helper.ParseUUIDParam(c, "template_id")
	if err != nil {
		return err
	}

	var req dto.SaveSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	svc := ctl.standardService()
	sessionKey := helper.SessionKey(c)

	sel, err := svc.CurrentSelection(c.UserContext(), sessionKey, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.Error(c, http.StatusNotFound, "Template tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	// terapkan permintaan lewat operasi builder supaya aturan normalisasi
	// (nonaktif ⇒ bobot 0 + sub nonaktif; aktif dari bobot 0 ⇒ auto-pilih
	// sub pertama) ikut jalan
	for _, reqAspect := range req.Aspects {
		if !reqAspect.Active {
			sel.DeactivateAspect(reqAspect.Code)
			continue
		}
		sel.ActivateAspect(reqAspect.Code)
		if !req.AutoDistribute {
			sel.SetAspectWeight(reqAspect.Code, reqAspect.Weight)
		}
		for _, reqSub := range reqAspect.SubAspects {
			sel.ToggleSubAspect(reqAspect.Code, reqSub.Code, reqSub.Active)
		}
	}
	if req.AutoDistribute {
		sel.DistributeWeights()
	}

	if err := svc.SaveBulkSelection(c.UserContext(), sessionKey, templateID, sel); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return helper.RuleViolations(c, ve.Violations)
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Seleksi standar diterapkan", sel)
}

// DELETE /standards/:template_id/selection
// Buang override sesi, kembali ke standar master.
func (ctl *StandardsController) ResetSelection(c *fiber.Ctx) error {
	templateID, err := helper.ParseUUIDParam(c, "template_id")
	if err != nil {
		return err
	}
	ctl.standardService().Reset(helper.SessionKey(c), templateID)
	return helper.Success(c, "Seleksi standar di-reset", nil)
}

// GET /standards/:template_id/categories/:category_code/adjustments
func (ctl *StandardsController) CategoryAdjustments(c *fiber.Ctx) error {
	templateID, err := helper.ParseUUIDParam(c, "template_id")
	if err != nil {
		return err
	}
	categoryCode := c.Params("category_code")

	adjusted, err := ctl.standardService().HasCategoryAdjustments(c.UserContext(), helper.SessionKey(c), templateID, categoryCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.Error(c, http.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{
		"category_code":   categoryCode,
		"has_adjustments": adjusted,
	})
}
