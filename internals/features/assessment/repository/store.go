// file: internals/features/assessment/repository/store.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	eventModel "asesmenku_backend/internals/features/assessment/events/model"
	scoringModel "asesmenku_backend/internals/features/assessment/scoring/model"
	templateModel "asesmenku_backend/internals/features/assessment/templates/model"
)

// ErrNotFound dikembalikan saat kode/id tidak resolve.
// Fatal untuk satu peserta/aspek yang sedang diproses, ditangkap dan
// dihitung oleh orkestrasi batch, bukan fatal untuk seluruh sistem.
var ErrNotFound = errors.New("record tidak ditemukan")

// TemplateStore: akses master data template → kategori → aspek → sub-aspek.
type TemplateStore interface {
	TemplateByID(ctx context.Context, id uuid.UUID) (*templateModel.AssessmentTemplateModel, error)
	Templates(ctx context.Context) ([]templateModel.AssessmentTemplateModel, error)

	CategoriesByTemplate(ctx context.Context, templateID uuid.UUID) ([]templateModel.AssessmentCategoryModel, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*templateModel.AssessmentCategoryModel, error)
	CategoryByCode(ctx context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentCategoryModel, error)

	AspectsByCategory(ctx context.Context, categoryID uuid.UUID) ([]templateModel.AssessmentAspectModel, error)
	AspectByID(ctx context.Context, id uuid.UUID) (*templateModel.AssessmentAspectModel, error)
	AspectByCode(ctx context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentAspectModel, error)

	SubAspectsByAspect(ctx context.Context, aspectID uuid.UUID) ([]templateModel.AssessmentSubAspectModel, error)
	SubAspectByID(ctx context.Context, id uuid.UUID) (*templateModel.AssessmentSubAspectModel, error)
	SubAspectByCode(ctx context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentSubAspectModel, error)
}

// AssessmentStore: CRUD peserta + empat level hasil penilaian.
type AssessmentStore interface {
	ParticipantByID(ctx context.Context, id uuid.UUID) (*eventModel.ParticipantModel, error)
	ParticipantsByEvent(ctx context.Context, eventID uuid.UUID, positionFormationID *uuid.UUID) ([]eventModel.ParticipantModel, error)
	SaveParticipantRawRatings(ctx context.Context, participantID uuid.UUID, payload datatypes.JSON) error
	PositionFormationByID(ctx context.Context, id uuid.UUID) (*eventModel.PositionFormationModel, error)

	// Upsert key (participant_id, category_id); mengisi ulang ID dari baris yang ada.
	UpsertCategoryAssessment(ctx context.Context, m *scoringModel.CategoryAssessmentModel) error
	UpdateCategoryAssessmentTotals(ctx context.Context, m *scoringModel.CategoryAssessmentModel) error
	CategoryAssessmentByID(ctx context.Context, id uuid.UUID) (*scoringModel.CategoryAssessmentModel, error)
	CategoryAssessmentByCode(ctx context.Context, participantID uuid.UUID, categoryCode string) (*scoringModel.CategoryAssessmentModel, error)

	// Upsert key (category_assessment_id, aspect_id).
	UpsertAspectAssessment(ctx context.Context, m *scoringModel.AspectAssessmentModel) error
	UpdateAspectAssessmentScores(ctx context.Context, m *scoringModel.AspectAssessmentModel) error
	AspectAssessmentByID(ctx context.Context, id uuid.UUID) (*scoringModel.AspectAssessmentModel, error)
	AspectAssessmentsByCategoryAssessment(ctx context.Context, categoryAssessmentID uuid.UUID) ([]scoringModel.AspectAssessmentModel, error)

	// Upsert key (aspect_assessment_id, sub_aspect_id); standard_rating
	// snapshot tidak pernah di-overwrite setelah baris ada.
	UpsertSubAspectAssessment(ctx context.Context, m *scoringModel.SubAspectAssessmentModel) error
	SubAspectAssessmentsByAspectAssessment(ctx context.Context, aspectAssessmentID uuid.UUID) ([]scoringModel.SubAspectAssessmentModel, error)

	UpsertFinalAssessment(ctx context.Context, m *scoringModel.FinalAssessmentModel) error
	FinalAssessmentByParticipant(ctx context.Context, participantID uuid.UUID) (*scoringModel.FinalAssessmentModel, error)
}

// Store menggabungkan semua kolaborator persistence yang dipakai engine.
// Transaction menjalankan fn di dalam satu transaksi; Store yang diterima
// fn terikat ke transaksi tersebut.
type Store interface {
	TemplateStore
	AssessmentStore
	Transaction(ctx context.Context, fn func(Store) error) error
}
