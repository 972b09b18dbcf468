// file: internals/features/assessment/scoring/service/final_combiner.go
package service

import (
	"context"

	"github.com/google/uuid"

	"asesmenku_backend/internals/constants"
	"asesmenku_backend/internals/features/assessment/repository"
	model "asesmenku_backend/internals/features/assessment/scoring/model"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

// FinalCombiner menggabungkan dua kategori top-level menjadi satu
// persentase capaian + kesimpulan akhir per peserta.
//
// Kode kategori "potensi" dan "kompetensi" memang hard-coded: keduanya
// wajib struktural, bukan dinamis. Bobot yang dipakai adalah bobot MASTER
// kategori, standar dinamis tidak berlaku di level ini.
type FinalCombiner struct {
	store repository.Store
	cache *templateService.TemplateCache
}

func NewFinalCombiner(store repository.Store, cache *templateService.TemplateCache) *FinalCombiner {
	return &FinalCombiner{store: store, cache: cache}
}

// Calculate meng-upsert penilaian final satu peserta. Kedua penilaian
// kategori harus sudah ada; kalau belum → ErrNotFound.
func (s *FinalCombiner) Calculate(ctx context.Context, participantID, templateID uuid.UUID) (*model.FinalAssessmentModel, error) {
	potensi, err := s.store.CategoryAssessmentByCode(ctx, participantID, constants.CategoryPotensi)
	if err != nil {
		return nil, err
	}
	kompetensi, err := s.store.CategoryAssessmentByCode(ctx, participantID, constants.CategoryKompetensi)
	if err != nil {
		return nil, err
	}

	potensiCat, err := s.cache.CategoryByCode(ctx, templateID, constants.CategoryPotensi)
	if err != nil {
		return nil, err
	}
	kompetensiCat, err := s.cache.CategoryByCode(ctx, templateID, constants.CategoryKompetensi)
	if err != nil {
		return nil, err
	}

	potensiW := float64(potensiCat.AssessmentCategoryWeightPercentage) / 100
	kompetensiW := float64(kompetensiCat.AssessmentCategoryWeightPercentage) / 100

	m := &model.FinalAssessmentModel{
		FinalAssessmentParticipantID:      participantID,
		FinalAssessmentPotensiWeight:      potensiCat.AssessmentCategoryWeightPercentage,
		FinalAssessmentKompetensiWeight:   kompetensiCat.AssessmentCategoryWeightPercentage,
		FinalAssessmentPotensiStandard:    potensi.CategoryAssessmentStandardScore,
		FinalAssessmentPotensiScore:       potensi.CategoryAssessmentIndividualScore,
		FinalAssessmentKompetensiStandard: kompetensi.CategoryAssessmentStandardScore,
		FinalAssessmentKompetensiScore:    kompetensi.CategoryAssessmentIndividualScore,
	}
	m.FinalAssessmentTotalStandardScore = potensi.CategoryAssessmentStandardScore*potensiW +
		kompetensi.CategoryAssessmentStandardScore*kompetensiW
	m.FinalAssessmentTotalIndividualScore = potensi.CategoryAssessmentIndividualScore*potensiW +
		kompetensi.CategoryAssessmentIndividualScore*kompetensiW

	// guard bagi-nol: standar total 0 → capaian 0, bukan NaN/error
	if m.FinalAssessmentTotalStandardScore != 0 {
		m.FinalAssessmentAchievementPercentage = m.FinalAssessmentTotalIndividualScore / m.FinalAssessmentTotalStandardScore * 100
	}
	m.FinalAssessmentConclusionCode = finalConclusion(m.FinalAssessmentAchievementPercentage)

	if err := s.store.UpsertFinalAssessment(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
