// file: internals/features/assessment/scoring/service/sub_aspect_scorer.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"asesmenku_backend/internals/constants"
	"asesmenku_backend/internals/features/assessment/repository"
	model "asesmenku_backend/internals/features/assessment/scoring/model"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

// SubAspectScorer menyimpan satu rating mentah per sub-aspek.
type SubAspectScorer struct {
	store repository.Store
	cache *templateService.TemplateCache
}

func NewSubAspectScorer(store repository.Store, cache *templateService.TemplateCache) *SubAspectScorer {
	return &SubAspectScorer{store: store, cache: cache}
}

// Record meng-upsert penilaian sub-aspek (key: aspect_assessment + sub_aspect).
// standard_rating di-snapshot dari master SAAT baris dibuat; upsert berikutnya
// hanya mengganti rating individu + label (snapshot historis tidak tersentuh,
// itu dijaga di layer repository).
func (s *SubAspectScorer) Record(ctx context.Context, templateID, aspectAssessmentID uuid.UUID, subAspectCode string, individualRating int) (*model.SubAspectAssessmentModel, error) {
	if !validRating(individualRating) {
		return nil, fmt.Errorf("sub-aspek %s: %w", subAspectCode, ErrInvalidRating)
	}

	sub, err := s.cache.SubAspectByCode(ctx, templateID, subAspectCode)
	if err != nil {
		return nil, err // ErrNotFound bila kode tidak resolve di template ini
	}

	m := &model.SubAspectAssessmentModel{
		SubAspectAssessmentAspectAssessmentID: aspectAssessmentID,
		SubAspectAssessmentSubAspectID:        sub.AssessmentSubAspectID,
		SubAspectAssessmentSubAspectCode:      sub.AssessmentSubAspectCode,
		SubAspectAssessmentStandardRating:     sub.AssessmentSubAspectStandardRating,
		SubAspectAssessmentIndividualRating:   individualRating,
		SubAspectAssessmentRatingLabel:        constants.RatingLabel(individualRating),
	}
	if err := s.store.UpsertSubAspectAssessment(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
