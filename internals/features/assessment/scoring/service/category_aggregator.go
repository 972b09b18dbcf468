// file: internals/features/assessment/scoring/service/category_aggregator.go
package service

import (
	"context"

	"github.com/google/uuid"

	"asesmenku_backend/internals/features/assessment/repository"
	model "asesmenku_backend/internals/features/assessment/scoring/model"
	overrideService "asesmenku_backend/internals/features/assessment/standards/service"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

// CategoryAggregator menjumlahkan aspek-aspek AKTIF satu kategori menjadi
// total kategori + kesimpulannya.
type CategoryAggregator struct {
	store repository.Store
	cache *templateService.TemplateCache
}

func NewCategoryAggregator(store repository.Store, cache *templateService.TemplateCache) *CategoryAggregator {
	return &CategoryAggregator{store: store, cache: cache}
}

// Create meng-upsert baris penilaian kategori untuk satu peserta.
// Kategori di-resolve lewat template formasi jabatan peserta (template
// terikat di formasi, bukan di event). Total dinolkan, menunggu kalkulasi.
func (s *CategoryAggregator) Create(ctx context.Context, participantID, templateID uuid.UUID, categoryCode string) (*model.CategoryAssessmentModel, error) {
	cat, err := s.cache.CategoryByCode(ctx, templateID, categoryCode)
	if err != nil {
		return nil, err
	}

	m := &model.CategoryAssessmentModel{
		CategoryAssessmentParticipantID: participantID,
		CategoryAssessmentCategoryID:    cat.AssessmentCategoryID,
		CategoryAssessmentCategoryCode:  cat.AssessmentCategoryCode,
		CategoryAssessmentTemplateID:    templateID,
	}
	if err := s.store.UpsertCategoryAssessment(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Calculate menjumlahkan rating/skor aspek yang kodenya AKTIF menurut
// standar dinamis. Set aktif kosong → kategori dibiarkan tanpa skor
// (no-op; agregat lama tetap tersimpan).
func (s *CategoryAggregator) Calculate(ctx context.Context, ov overrideService.OverrideContext, categoryAssessmentID uuid.UUID) error {
	ca, err := s.store.CategoryAssessmentByID(ctx, categoryAssessmentID)
	if err != nil {
		return err
	}
	rows, err := s.store.AspectAssessmentsByCategoryAssessment(ctx, categoryAssessmentID)
	if err != nil {
		return err
	}

	// mulai dari nol, baris lama bisa masih membawa total kalkulasi sebelumnya
	ca.CategoryAssessmentStandardRating = 0
	ca.CategoryAssessmentIndividualRating = 0
	ca.CategoryAssessmentStandardScore = 0
	ca.CategoryAssessmentIndividualScore = 0

	var active int
	for _, aa := range rows {
		if !ov.IsAspectActive(aa.AspectAssessmentAspectCode) {
			continue
		}
		active++
		ca.CategoryAssessmentStandardRating += aa.AspectAssessmentStandardRating
		ca.CategoryAssessmentIndividualRating += aa.AspectAssessmentIndividualRating
		ca.CategoryAssessmentStandardScore += aa.AspectAssessmentStandardScore
		ca.CategoryAssessmentIndividualScore += aa.AspectAssessmentIndividualScore
	}
	if active == 0 {
		return nil
	}

	ca.CategoryAssessmentGapRating = ca.CategoryAssessmentIndividualRating - ca.CategoryAssessmentStandardRating
	ca.CategoryAssessmentGapScore = ca.CategoryAssessmentIndividualScore - ca.CategoryAssessmentStandardScore
	ca.CategoryAssessmentConclusionCode = categoryConclusion(ca.CategoryAssessmentGapScore)

	return s.store.UpdateCategoryAssessmentTotals(ctx, ca)
}
