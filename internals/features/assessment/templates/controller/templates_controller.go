// file: internals/features/assessment/templates/controller/templates_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"asesmenku_backend/internals/features/assessment/repository"
	dto "asesmenku_backend/internals/features/assessment/templates/dto"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
	helper "asesmenku_backend/internals/helpers"
)

// TemplatesController: akses baca struktur template. Master data dikelola
// lewat seeding/migrasi, bukan endpoint ini.
type TemplatesController struct {
	DB *gorm.DB
}

func NewTemplatesController(db *gorm.DB) *TemplatesController {
	return &TemplatesController{DB: db}
}

// GET /templates
func (ctl *TemplatesController) List(c *fiber.Ctx) error {
	store := repository.NewGormStore(ctl.DB)
	templates, err := store.Templates(c.UserContext())
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TemplateResponse, 0, len(templates))
	for i := range templates {
		resp = append(resp, dto.ToTemplateResponse(&templates[i]))
	}
	return helper.Success(c, "OK", resp)
}

// GET /templates/:template_id
// Detail lengkap: kategori → aspek → sub-aspek, urut order index.
func (ctl *TemplatesController) Detail(c *fiber.Ctx) error {
	templateID, err := helper.ParseUUIDParam(c, "template_id")
	if err != nil {
		return err
	}

	store := repository.NewGormStore(ctl.DB)
	cache := templateService.NewTemplateCache(store)
	ctx := c.UserContext()

	tpl, err := store.TemplateByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.Error(c, http.StatusNotFound, "Template tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	detail := dto.TemplateDetailResponse{TemplateResponse: dto.ToTemplateResponse(tpl)}

	categories, err := cache.CategoriesByTemplate(ctx, templateID)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	for _, cat := range categories {
		category := dto.ToCategoryResponse(cat)

		aspects, err := cache.AspectsByCategory(ctx, cat.AssessmentCategoryID)
		if err != nil {
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
		for _, asp := range aspects {
			aspect := dto.ToAspectResponse(asp)

			subs, err := cache.SubAspectsByAspect(ctx, asp.AssessmentAspectID)
			if err != nil {
				return helper.Error(c, http.StatusInternalServerError, err.Error())
			}
			for _, sub := range subs {
				aspect.SubAspects = append(aspect.SubAspects, dto.ToSubAspectResponse(sub))
			}
			category.Aspects = append(category.Aspects, aspect)
		}
		detail.Categories = append(detail.Categories, category)
	}

	return helper.Success(c, "OK", detail)
}
