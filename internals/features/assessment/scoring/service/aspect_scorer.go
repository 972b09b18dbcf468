// file: internals/features/assessment/scoring/service/aspect_scorer.go
package service

import (
	"context"
	"fmt"

	"asesmenku_backend/internals/features/assessment/repository"
	model "asesmenku_backend/internals/features/assessment/scoring/model"
	overrideService "asesmenku_backend/internals/features/assessment/standards/service"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

// AspectScorer menghitung satu aspek: rating individu (turunan sub-aspek
// atau langsung dari feed), bobot efektif, skor, gap, dan kesimpulan.
type AspectScorer struct {
	store repository.Store
	cache *templateService.TemplateCache
}

func NewAspectScorer(store repository.Store, cache *templateService.TemplateCache) *AspectScorer {
	return &AspectScorer{store: store, cache: cache}
}

// Create meng-upsert baris penilaian aspek di bawah satu penilaian kategori.
// Snapshot standard_rating: rata-rata standar master sub-aspek bila aspek
// punya sub-aspek (gaya potensi), selain itu standar master aspek.
// Kolom turunan dinolkan, menunggu kalkulasi.
func (s *AspectScorer) Create(ctx context.Context, ca *model.CategoryAssessmentModel, aspectCode string) (*model.AspectAssessmentModel, error) {
	asp, err := s.cache.AspectByCode(ctx, ca.CategoryAssessmentTemplateID, aspectCode)
	if err != nil {
		return nil, err
	}
	// aspek harus benar-benar milik kategori ini
	if asp.AssessmentAspectCategoryID != ca.CategoryAssessmentCategoryID {
		return nil, fmt.Errorf("aspek %s bukan milik kategori %s: %w",
			aspectCode, ca.CategoryAssessmentCategoryCode, repository.ErrNotFound)
	}

	standard := asp.AssessmentAspectStandardRating
	subs, err := s.cache.SubAspectsByAspect(ctx, asp.AssessmentAspectID)
	if err != nil {
		return nil, err
	}
	if len(subs) > 0 {
		var sum float64
		for _, sub := range subs {
			sum += float64(sub.AssessmentSubAspectStandardRating)
		}
		standard = sum / float64(len(subs))
	}

	m := &model.AspectAssessmentModel{
		AspectAssessmentCategoryAssessmentID: ca.CategoryAssessmentID,
		AspectAssessmentAspectID:             asp.AssessmentAspectID,
		AspectAssessmentAspectCode:           asp.AssessmentAspectCode,
		AspectAssessmentStandardRating:       standard,
	}
	if err := s.store.UpsertAspectAssessment(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ScoreDerived (gaya potensi): rating individu = rata-rata aritmetika
// rating sub-aspek yang SEDANG AKTIF menurut standar dinamis. Tidak ada
// penilaian sub-aspek, atau semuanya nonaktif → aspek dibiarkan tanpa skor
// (no-op yang disengaja, bukan error: aspek yang dimatikan memang tidak
// menyumbang apa-apa).
func (s *AspectScorer) ScoreDerived(ctx context.Context, ov overrideService.OverrideContext, aa *model.AspectAssessmentModel) (bool, error) {
	subs, err := s.store.SubAspectAssessmentsByAspectAssessment(ctx, aa.AspectAssessmentID)
	if err != nil {
		return false, err
	}

	var sum float64
	var n int
	for _, sub := range subs {
		if !ov.IsSubAspectActive(sub.SubAspectAssessmentSubAspectCode) {
			continue
		}
		sum += float64(sub.SubAspectAssessmentIndividualRating)
		n++
	}
	if n == 0 {
		return false, nil
	}

	return true, s.finish(ctx, ov, aa, sum/float64(n))
}

// ScoreDirect (gaya kompetensi): rating individu integer 1..5 langsung
// dari feed eksternal.
func (s *AspectScorer) ScoreDirect(ctx context.Context, ov overrideService.OverrideContext, aa *model.AspectAssessmentModel, individualRating int) error {
	if !validRating(individualRating) {
		return fmt.Errorf("aspek %s: %w", aa.AspectAssessmentAspectCode, ErrInvalidRating)
	}
	return s.finish(ctx, ov, aa, float64(individualRating))
}

// finish: perhitungan bersama begitu rating individu diketahui.
func (s *AspectScorer) finish(ctx context.Context, ov overrideService.OverrideContext, aa *model.AspectAssessmentModel, individualRating float64) error {
	asp, err := s.cache.AspectByID(ctx, aa.AspectAssessmentAspectID)
	if err != nil {
		return err
	}
	weight := float64(ov.AspectWeightOr(aa.AspectAssessmentAspectCode, asp.AssessmentAspectWeightPercentage))

	aa.AspectAssessmentIndividualRating = individualRating
	aa.AspectAssessmentStandardScore = aa.AspectAssessmentStandardRating * weight
	aa.AspectAssessmentIndividualScore = individualRating * weight
	aa.AspectAssessmentGapRating = individualRating - aa.AspectAssessmentStandardRating
	aa.AspectAssessmentGapScore = aa.AspectAssessmentIndividualScore - aa.AspectAssessmentStandardScore
	aa.AspectAssessmentPercentageScore = percentageScore(individualRating)
	aa.AspectAssessmentConclusionCode = aspectConclusion(aa.AspectAssessmentGapRating)

	return s.store.UpdateAspectAssessmentScores(ctx, aa)
}
