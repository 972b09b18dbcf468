// file: internals/features/assessment/analytics/controller/analytics_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsService "asesmenku_backend/internals/features/assessment/analytics/service"
	standardsService "asesmenku_backend/internals/features/assessment/standards/service"
	helper "asesmenku_backend/internals/helpers"
)

// Default batas nine-box: skala rating 1–5, tengah band 3.0–4.0.
const (
	defaultAxisLow  = 3.0
	defaultAxisHigh = 4.0

	// Default toleransi rekomendasi pelatihan (persen di bawah standar).
	defaultTrainingTolerance = 10.0
)

type AnalyticsController struct {
	DB        *gorm.DB
	Overrides *standardsService.OverrideStore
}

func NewAnalyticsController(db *gorm.DB, overrides *standardsService.OverrideStore) *AnalyticsController {
	return &AnalyticsController{
		DB:        db,
		Overrides: overrides,
	}
}

// service per request: memo hasil di dalamnya hanya hidup selama satu
// evaluasi, jadi rekalkulasi oleh sesi lain langsung terlihat di baca berikutnya.
func (ctl *AnalyticsController) service() *analyticsService.AnalyticsService {
	return analyticsService.NewAnalyticsService(ctl.DB)
}

func queryFloat(c *fiber.Ctx, key string, def float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// GET /analytics/events/:event_id/formations/:position_formation_id/nine-box
// Matriks talent pool 3×3; batas sumbu bisa dioverride lewat query.
func (ctl *AnalyticsController) NineBoxMatrix(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}
	formationID, err := helper.ParseUUIDParam(c, "position_formation_id")
	if err != nil {
		return err
	}

	boundaries := analyticsService.NineBoxBoundaries{
		PotensiLow:  queryFloat(c, "potensi_low", defaultAxisLow),
		PotensiHigh: queryFloat(c, "potensi_high", defaultAxisHigh),
		KinerjaLow:  queryFloat(c, "kinerja_low", defaultAxisLow),
		KinerjaHigh: queryFloat(c, "kinerja_high", defaultAxisHigh),
	}
	if boundaries.PotensiLow > boundaries.PotensiHigh || boundaries.KinerjaLow > boundaries.KinerjaHigh {
		return helper.Error(c, http.StatusBadRequest, "Batas bawah tidak boleh melebihi batas atas")
	}

	matrix, err := ctl.service().NineBoxMatrixData(c.UserContext(), eventID, formationID, boundaries, ctl.Overrides.Version(helper.SessionKey(c)))
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", matrix)
}

// GET /analytics/events/:event_id/formations/:position_formation_id/aspects/:aspect_id/training
// Ringkasan rekomendasi pelatihan satu aspek; toleransi (persen) via query.
func (ctl *AnalyticsController) TrainingSummary(c *fiber.Ctx) error {
	eventID, err := helper.ParseUUIDParam(c, "event_id")
	if err != nil {
		return err
	}
	formationID, err := helper.ParseUUIDParam(c, "position_formation_id")
	if err != nil {
		return err
	}
	aspectID, err := helper.ParseUUIDParam(c, "aspect_id")
	if err != nil {
		return err
	}

	tolerance := queryFloat(c, "tolerance", defaultTrainingTolerance)
	if tolerance < 0 || tolerance > 100 {
		return helper.Error(c, http.StatusBadRequest, "Toleransi harus 0–100 persen")
	}

	summary, err := ctl.service().TrainingSummaryData(c.UserContext(), eventID, formationID, aspectID, tolerance, ctl.Overrides.Version(helper.SessionKey(c)))
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", summary)
}
