// file: internals/features/assessment/standards/service/standard_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

// ValidationError membawa daftar pelanggaran aturan standar dinamis.
// Satu pesan per aturan yang dilanggar; state sebelumnya tidak berubah.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "seleksi standar tidak valid: " + strings.Join(e.Violations, "; ")
}

// StandardService adalah muka standar dinamis untuk satu request:
// store berumur panjang (per proses, ber-sesi), cache berumur request.
type StandardService struct {
	store *OverrideStore
	cache *templateService.TemplateCache
}

func NewStandardService(store *OverrideStore, cache *templateService.TemplateCache) *StandardService {
	return &StandardService{store: store, cache: cache}
}

// Context menghidrasi OverrideContext sesi untuk dibawa ke engine scoring.
func (s *StandardService) Context(sessionKey string, templateID uuid.UUID) OverrideContext {
	return NewOverrideContext(templateID, s.store.Get(sessionKey, templateID))
}

// IsAspectActive: kode tak dikenal → default aman (aktif), tidak pernah error.
func (s *StandardService) IsAspectActive(sessionKey string, templateID uuid.UUID, code string) bool {
	return s.Context(sessionKey, templateID).IsAspectActive(code)
}

// AspectWeight: bobot override kalau ada; fallback bobot master via cache.
// Kode tak dikenal → 0 (default aman), tidak pernah error.
func (s *StandardService) AspectWeight(ctx context.Context, sessionKey string, templateID uuid.UUID, code string) int {
	ov := s.Context(sessionKey, templateID)
	if set := s.store.Get(sessionKey, templateID); set != nil {
		if w, ok := set.AspectWeights[code]; ok {
			return w
		}
	}
	master, err := s.cache.AspectByCode(ctx, templateID, code)
	if err != nil {
		return 0
	}
	return ov.AspectWeightOr(code, master.AssessmentAspectWeightPercentage)
}

func (s *StandardService) IsSubAspectActive(sessionKey string, templateID uuid.UUID, code string) bool {
	return s.Context(sessionKey, templateID).IsSubAspectActive(code)
}

// HasCategoryAdjustments: true bila ada aspek kategori itu yang nonaktif,
// berbobot beda dari master, atau punya sub-aspek nonaktif.
func (s *StandardService) HasCategoryAdjustments(ctx context.Context, sessionKey string, templateID uuid.UUID, categoryCode string) (bool, error) {
	set := s.store.Get(sessionKey, templateID)
	if set == nil {
		return false, nil
	}
	ov := NewOverrideContext(templateID, set)

	cat, err := s.cache.CategoryByCode(ctx, templateID, categoryCode)
	if err != nil {
		return false, err
	}
	aspects, err := s.cache.AspectsByCategory(ctx, cat.AssessmentCategoryID)
	if err != nil {
		return false, err
	}
	for _, asp := range aspects {
		if !ov.IsAspectActive(asp.AssessmentAspectCode) {
			return true, nil
		}
		if ov.AspectWeightOr(asp.AssessmentAspectCode, asp.AssessmentAspectWeightPercentage) != asp.AssessmentAspectWeightPercentage {
			return true, nil
		}
		subs, err := s.cache.SubAspectsByAspect(ctx, asp.AssessmentAspectID)
		if err != nil {
			return false, err
		}
		for _, sub := range subs {
			if !ov.IsSubAspectActive(sub.AssessmentSubAspectCode) {
				return true, nil
			}
		}
	}
	return false, nil
}

// CurrentSelection membangun Selection dari master + override sesi.
func (s *StandardService) CurrentSelection(ctx context.Context, sessionKey string, templateID uuid.UUID) (*Selection, error) {
	return BuildSelection(ctx, s.cache, templateID, s.store.Get(sessionKey, templateID))
}

// SaveBulkSelection memvalidasi lalu mengganti override set (sesi, template).
// Gagal validasi → *ValidationError, override lama tetap berlaku.
func (s *StandardService) SaveBulkSelection(ctx context.Context, sessionKey string, templateID uuid.UUID, sel *Selection) error {
	if violations := sel.Validate(); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	s.store.Replace(sessionKey, templateID, sel.ToOverrideSet())
	return nil
}

// Reset membuang override sesi untuk satu template.
func (s *StandardService) Reset(sessionKey string, templateID uuid.UUID) {
	s.store.Clear(sessionKey, templateID)
}

// Version meneruskan versi override sesi (untuk memo analytics).
func (s *StandardService) Version(sessionKey string) uint64 {
	return s.store.Version(sessionKey)
}
