// file: internals/features/assessment/repository/gorm_store.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	eventModel "asesmenku_backend/internals/features/assessment/events/model"
	scoringModel "asesmenku_backend/internals/features/assessment/scoring/model"
	templateModel "asesmenku_backend/internals/features/assessment/templates/model"
)

// GormStore adalah implementasi Store di atas GORM/Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// terjemahkan gorm.ErrRecordNotFound → ErrNotFound bertipe, dengan konteks kode/id
func asNotFound(err error, what string, key interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %v: %w", what, key, ErrNotFound)
	}
	return err
}

/* ========================================================
   TemplateStore
======================================================== */

func (s *GormStore) TemplateByID(ctx context.Context, id uuid.UUID) (*templateModel.AssessmentTemplateModel, error) {
	var m templateModel.AssessmentTemplateModel
	if err := s.db.WithContext(ctx).
		First(&m, "assessment_template_id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "template", id)
	}
	return &m, nil
}

func (s *GormStore) Templates(ctx context.Context) ([]templateModel.AssessmentTemplateModel, error) {
	var rows []templateModel.AssessmentTemplateModel
	err := s.db.WithContext(ctx).
		Order("assessment_template_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) CategoriesByTemplate(ctx context.Context, templateID uuid.UUID) ([]templateModel.AssessmentCategoryModel, error) {
	var rows []templateModel.AssessmentCategoryModel
	err := s.db.WithContext(ctx).
		Where("assessment_category_template_id = ?", templateID).
		Order("assessment_category_order_index ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) CategoryByID(ctx context.Context, id uuid.UUID) (*templateModel.AssessmentCategoryModel, error) {
	var m templateModel.AssessmentCategoryModel
	if err := s.db.WithContext(ctx).
		First(&m, "assessment_category_id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "kategori", id)
	}
	return &m, nil
}

func (s *GormStore) CategoryByCode(ctx context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentCategoryModel, error) {
	var m templateModel.AssessmentCategoryModel
	if err := s.db.WithContext(ctx).
		Where("assessment_category_template_id = ? AND assessment_category_code = ?", templateID, code).
		First(&m).Error; err != nil {
		return nil, asNotFound(err, "kategori", code)
	}
	return &m, nil
}

func (s *GormStore) AspectsByCategory(ctx context.Context, categoryID uuid.UUID) ([]templateModel.AssessmentAspectModel, error) {
	var rows []templateModel.AssessmentAspectModel
	err := s.db.WithContext(ctx).
		Where("assessment_aspect_category_id = ?", categoryID).
		Order("assessment_aspect_order_index ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) AspectByID(ctx context.Context, id uuid.UUID) (*templateModel.AssessmentAspectModel, error) {
	var m templateModel.AssessmentAspectModel
	if err := s.db.WithContext(ctx).
		First(&m, "assessment_aspect_id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "aspek", id)
	}
	return &m, nil
}

func (s *GormStore) AspectByCode(ctx context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentAspectModel, error) {
	var m templateModel.AssessmentAspectModel
	if err := s.db.WithContext(ctx).
		Where("assessment_aspect_template_id = ? AND assessment_aspect_code = ?", templateID, code).
		First(&m).Error; err != nil {
		return nil, asNotFound(err, "aspek", code)
	}
	return &m, nil
}

func (s *GormStore) SubAspectsByAspect(ctx context.Context, aspectID uuid.UUID) ([]templateModel.AssessmentSubAspectModel, error) {
	var rows []templateModel.AssessmentSubAspectModel
	err := s.db.WithContext(ctx).
		Where("assessment_sub_aspect_aspect_id = ?", aspectID).
		Order("assessment_sub_aspect_order_index ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) SubAspectByID(ctx context.Context, id uuid.UUID) (*templateModel.AssessmentSubAspectModel, error) {
	var m templateModel.AssessmentSubAspectModel
	if err := s.db.WithContext(ctx).
		First(&m, "assessment_sub_aspect_id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "sub-aspek", id)
	}
	return &m, nil
}

func (s *GormStore) SubAspectByCode(ctx context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentSubAspectModel, error) {
	var m templateModel.AssessmentSubAspectModel
	if err := s.db.WithContext(ctx).
		Where("assessment_sub_aspect_template_id = ? AND assessment_sub_aspect_code = ?", templateID, code).
		First(&m).Error; err != nil {
		return nil, asNotFound(err, "sub-aspek", code)
	}
	return &m, nil
}

/* ========================================================
   AssessmentStore: peserta
======================================================== */

func (s *GormStore) ParticipantByID(ctx context.Context, id uuid.UUID) (*eventModel.ParticipantModel, error) {
	var m eventModel.ParticipantModel
	if err := s.db.WithContext(ctx).
		Preload("PositionFormation").
		First(&m, "participant_id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "peserta", id)
	}
	return &m, nil
}

func (s *GormStore) ParticipantsByEvent(ctx context.Context, eventID uuid.UUID, positionFormationID *uuid.UUID) ([]eventModel.ParticipantModel, error) {
	q := s.db.WithContext(ctx).
		Where("participant_event_id = ?", eventID)
	if positionFormationID != nil {
		q = q.Where("participant_position_formation_id = ?", *positionFormationID)
	}
	var rows []eventModel.ParticipantModel
	err := q.Order("participant_number ASC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) SaveParticipantRawRatings(ctx context.Context, participantID uuid.UUID, payload datatypes.JSON) error {
	return s.db.WithContext(ctx).
		Model(&eventModel.ParticipantModel{}).
		Where("participant_id = ?", participantID).
		Update("participant_raw_ratings", payload).Error
}

func (s *GormStore) PositionFormationByID(ctx context.Context, id uuid.UUID) (*eventModel.PositionFormationModel, error) {
	var m eventModel.PositionFormationModel
	if err := s.db.WithContext(ctx).
		First(&m, "position_formation_id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "formasi jabatan", id)
	}
	return &m, nil
}

/* ========================================================
   AssessmentStore: hasil penilaian
======================================================== */

func (s *GormStore) UpsertCategoryAssessment(ctx context.Context, m *scoringModel.CategoryAssessmentModel) error {
	// DO UPDATE (bukan DO NOTHING) supaya RETURNING selalu mengisi ulang ID
	// dari baris yang sudah ada.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "category_assessment_participant_id"},
				{Name: "category_assessment_category_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"category_assessment_category_code",
				"category_assessment_template_id",
				"category_assessment_updated_at",
			}),
		}).
		Create(m).Error
}

func (s *GormStore) UpdateCategoryAssessmentTotals(ctx context.Context, m *scoringModel.CategoryAssessmentModel) error {
	return s.db.WithContext(ctx).
		Model(&scoringModel.CategoryAssessmentModel{}).
		Where("category_assessment_id = ?", m.CategoryAssessmentID).
		Updates(map[string]interface{}{
			"category_assessment_standard_rating":   m.CategoryAssessmentStandardRating,
			"category_assessment_individual_rating": m.CategoryAssessmentIndividualRating,
			"category_assessment_standard_score":    m.CategoryAssessmentStandardScore,
			"category_assessment_individual_score":  m.CategoryAssessmentIndividualScore,
			"category_assessment_gap_rating":        m.CategoryAssessmentGapRating,
			"category_assessment_gap_score":         m.CategoryAssessmentGapScore,
			"category_assessment_conclusion_code":   m.CategoryAssessmentConclusionCode,
		}).Error
}

func (s *GormStore) CategoryAssessmentByID(ctx context.Context, id uuid.UUID) (*scoringModel.CategoryAssessmentModel, error) {
	var m scoringModel.CategoryAssessmentModel
	if err := s.db.WithContext(ctx).
		First(&m, "category_assessment_id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "penilaian kategori", id)
	}
	return &m, nil
}

func (s *GormStore) CategoryAssessmentByCode(ctx context.Context, participantID uuid.UUID, categoryCode string) (*scoringModel.CategoryAssessmentModel, error) {
	var m scoringModel.CategoryAssessmentModel
	if err := s.db.WithContext(ctx).
		Where("category_assessment_participant_id = ? AND category_assessment_category_code = ?", participantID, categoryCode).
		First(&m).Error; err != nil {
		return nil, asNotFound(err, "penilaian kategori", categoryCode)
	}
	return &m, nil
}

func (s *GormStore) UpsertAspectAssessment(ctx context.Context, m *scoringModel.AspectAssessmentModel) error {
	// Pembuatan ulang me-refresh snapshot standar dan menolkan kolom turunan;
	// kalkulasi ulang setelahnya yang mengisi kembali.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "aspect_assessment_category_assessment_id"},
				{Name: "aspect_assessment_aspect_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"aspect_assessment_aspect_code",
				"aspect_assessment_standard_rating",
				"aspect_assessment_individual_rating",
				"aspect_assessment_standard_score",
				"aspect_assessment_individual_score",
				"aspect_assessment_gap_rating",
				"aspect_assessment_gap_score",
				"aspect_assessment_percentage_score",
				"aspect_assessment_conclusion_code",
				"aspect_assessment_updated_at",
			}),
		}).
		Create(m).Error
}

func (s *GormStore) UpdateAspectAssessmentScores(ctx context.Context, m *scoringModel.AspectAssessmentModel) error {
	return s.db.WithContext(ctx).
		Model(&scoringModel.AspectAssessmentModel{}).
		Where("aspect_assessment_id = ?", m.AspectAssessmentID).
		Updates(map[string]interface{}{
			"aspect_assessment_individual_rating": m.AspectAssessmentIndividualRating,
			"aspect_assessment_standard_score":    m.AspectAssessmentStandardScore,
			"aspect_assessment_individual_score":  m.AspectAssessmentIndividualScore,
			"aspect_assessment_gap_rating":        m.AspectAssessmentGapRating,
			"aspect_assessment_gap_score":         m.AspectAssessmentGapScore,
			"aspect_assessment_percentage_score":  m.AspectAssessmentPercentageScore,
			"aspect_assessment_conclusion_code":   m.AspectAssessmentConclusionCode,
		}).Error
}

func (s *GormStore) AspectAssessmentByID(ctx context.Context, id uuid.UUID) (*scoringModel.AspectAssessmentModel, error) {
	var m scoringModel.AspectAssessmentModel
	if err := s.db.WithContext(ctx).
		First(&m, "aspect_assessment_id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "penilaian aspek", id)
	}
	return &m, nil
}

func (s *GormStore) AspectAssessmentsByCategoryAssessment(ctx context.Context, categoryAssessmentID uuid.UUID) ([]scoringModel.AspectAssessmentModel, error) {
	var rows []scoringModel.AspectAssessmentModel
	err := s.db.WithContext(ctx).
		Where("aspect_assessment_category_assessment_id = ?", categoryAssessmentID).
		Order("aspect_assessment_aspect_code ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) UpsertSubAspectAssessment(ctx context.Context, m *scoringModel.SubAspectAssessmentModel) error {
	// standard_rating adalah snapshot historis: TIDAK ikut di-update saat konflik.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "sub_aspect_assessment_aspect_assessment_id"},
				{Name: "sub_aspect_assessment_sub_aspect_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"sub_aspect_assessment_individual_rating",
				"sub_aspect_assessment_rating_label",
				"sub_aspect_assessment_updated_at",
			}),
		}).
		Create(m).Error
}

func (s *GormStore) SubAspectAssessmentsByAspectAssessment(ctx context.Context, aspectAssessmentID uuid.UUID) ([]scoringModel.SubAspectAssessmentModel, error) {
	var rows []scoringModel.SubAspectAssessmentModel
	err := s.db.WithContext(ctx).
		Where("sub_aspect_assessment_aspect_assessment_id = ?", aspectAssessmentID).
		Order("sub_aspect_assessment_sub_aspect_code ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) UpsertFinalAssessment(ctx context.Context, m *scoringModel.FinalAssessmentModel) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "final_assessment_participant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"final_assessment_potensi_weight",
				"final_assessment_kompetensi_weight",
				"final_assessment_potensi_standard",
				"final_assessment_potensi_score",
				"final_assessment_kompetensi_standard",
				"final_assessment_kompetensi_score",
				"final_assessment_total_standard_score",
				"final_assessment_total_individual_score",
				"final_assessment_achievement_percentage",
				"final_assessment_conclusion_code",
				"final_assessment_updated_at",
			}),
		}).
		Create(m).Error
}

func (s *GormStore) FinalAssessmentByParticipant(ctx context.Context, participantID uuid.UUID) (*scoringModel.FinalAssessmentModel, error) {
	var m scoringModel.FinalAssessmentModel
	if err := s.db.WithContext(ctx).
		First(&m, "final_assessment_participant_id = ?", participantID).Error; err != nil {
		return nil, asNotFound(err, "penilaian final", participantID)
	}
	return &m, nil
}
