// file: internals/features/assessment/scoring/model/assessments_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Catatan umum:
// - Tabel penilaian TIDAK pakai soft delete; barisnya ikut terhapus
//   bersama peserta (cascade), tidak pernah dihapus satuan.
// - Kolom *_standard_rating adalah snapshot master saat pembuatan
//   (data historis, tidak ikut berubah saat master diedit).

// SubAspectAssessmentModel merepresentasikan tabel `sub_aspect_assessments`.
// Upsert key: (aspect_assessment_id, sub_aspect_id).
type SubAspectAssessmentModel struct {
	SubAspectAssessmentID uuid.UUID `json:"sub_aspect_assessment_id" gorm:"column:sub_aspect_assessment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SubAspectAssessmentAspectAssessmentID uuid.UUID `json:"sub_aspect_assessment_aspect_assessment_id" gorm:"column:sub_aspect_assessment_aspect_assessment_id;type:uuid;not null;uniqueIndex:uq_sub_aspect_assessments,priority:1"`
	SubAspectAssessmentSubAspectID        uuid.UUID `json:"sub_aspect_assessment_sub_aspect_id" gorm:"column:sub_aspect_assessment_sub_aspect_id;type:uuid;not null;uniqueIndex:uq_sub_aspect_assessments,priority:2"`
	SubAspectAssessmentSubAspectCode      string    `json:"sub_aspect_assessment_sub_aspect_code" gorm:"column:sub_aspect_assessment_sub_aspect_code;type:varchar(60);not null;index:idx_sub_aspect_assessments_code"`

	SubAspectAssessmentStandardRating   int    `json:"sub_aspect_assessment_standard_rating" gorm:"column:sub_aspect_assessment_standard_rating;not null"`
	SubAspectAssessmentIndividualRating int    `json:"sub_aspect_assessment_individual_rating" gorm:"column:sub_aspect_assessment_individual_rating;not null"`
	SubAspectAssessmentRatingLabel      string `json:"sub_aspect_assessment_rating_label" gorm:"column:sub_aspect_assessment_rating_label;type:varchar(60);not null"`

	SubAspectAssessmentCreatedAt time.Time `json:"sub_aspect_assessment_created_at" gorm:"column:sub_aspect_assessment_created_at;not null;autoCreateTime"`
	SubAspectAssessmentUpdatedAt time.Time `json:"sub_aspect_assessment_updated_at" gorm:"column:sub_aspect_assessment_updated_at;not null;autoUpdateTime"`
}

func (SubAspectAssessmentModel) TableName() string { return "sub_aspect_assessments" }

// AspectAssessmentModel merepresentasikan tabel `aspect_assessments`.
// Upsert key: (category_assessment_id, aspect_id).
type AspectAssessmentModel struct {
	AspectAssessmentID uuid.UUID `json:"aspect_assessment_id" gorm:"column:aspect_assessment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	AspectAssessmentCategoryAssessmentID uuid.UUID `json:"aspect_assessment_category_assessment_id" gorm:"column:aspect_assessment_category_assessment_id;type:uuid;not null;uniqueIndex:uq_aspect_assessments,priority:1"`
	AspectAssessmentAspectID             uuid.UUID `json:"aspect_assessment_aspect_id" gorm:"column:aspect_assessment_aspect_id;type:uuid;not null;uniqueIndex:uq_aspect_assessments,priority:2"`
	AspectAssessmentAspectCode           string    `json:"aspect_assessment_aspect_code" gorm:"column:aspect_assessment_aspect_code;type:varchar(60);not null;index:idx_aspect_assessments_code"`

	// Snapshot standar: potensi = rata-rata standar sub-aspek master,
	// selain itu = standar master aspek.
	AspectAssessmentStandardRating   float64 `json:"aspect_assessment_standard_rating" gorm:"column:aspect_assessment_standard_rating;type:numeric(8,4);not null;default:0"`
	AspectAssessmentIndividualRating float64 `json:"aspect_assessment_individual_rating" gorm:"column:aspect_assessment_individual_rating;type:numeric(8,4);not null;default:0"`

	// Skor = rating × bobot efektif (bobot override kalau ada, selain itu master)
	AspectAssessmentStandardScore   float64 `json:"aspect_assessment_standard_score" gorm:"column:aspect_assessment_standard_score;type:numeric(10,4);not null;default:0"`
	AspectAssessmentIndividualScore float64 `json:"aspect_assessment_individual_score" gorm:"column:aspect_assessment_individual_score;type:numeric(10,4);not null;default:0"`

	AspectAssessmentGapRating       float64 `json:"aspect_assessment_gap_rating" gorm:"column:aspect_assessment_gap_rating;type:numeric(8,4);not null;default:0"`
	AspectAssessmentGapScore        float64 `json:"aspect_assessment_gap_score" gorm:"column:aspect_assessment_gap_score;type:numeric(10,4);not null;default:0"`
	AspectAssessmentPercentageScore int     `json:"aspect_assessment_percentage_score" gorm:"column:aspect_assessment_percentage_score;not null;default:0"`
	AspectAssessmentConclusionCode  string  `json:"aspect_assessment_conclusion_code" gorm:"column:aspect_assessment_conclusion_code;type:varchar(30);not null;default:''"`

	AspectAssessmentCreatedAt time.Time `json:"aspect_assessment_created_at" gorm:"column:aspect_assessment_created_at;not null;autoCreateTime"`
	AspectAssessmentUpdatedAt time.Time `json:"aspect_assessment_updated_at" gorm:"column:aspect_assessment_updated_at;not null;autoUpdateTime"`
}

func (AspectAssessmentModel) TableName() string { return "aspect_assessments" }

// CategoryAssessmentModel merepresentasikan tabel `category_assessments`.
// Total = penjumlahan aspek yang AKTIF saja (per standar dinamis sesi).
// Upsert key: (participant_id, category_id).
type CategoryAssessmentModel struct {
	CategoryAssessmentID uuid.UUID `json:"category_assessment_id" gorm:"column:category_assessment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	CategoryAssessmentParticipantID uuid.UUID `json:"category_assessment_participant_id" gorm:"column:category_assessment_participant_id;type:uuid;not null;uniqueIndex:uq_category_assessments,priority:1"`
	CategoryAssessmentCategoryID    uuid.UUID `json:"category_assessment_category_id" gorm:"column:category_assessment_category_id;type:uuid;not null;uniqueIndex:uq_category_assessments,priority:2"`
	CategoryAssessmentCategoryCode  string    `json:"category_assessment_category_code" gorm:"column:category_assessment_category_code;type:varchar(60);not null;index:idx_category_assessments_code"`
	CategoryAssessmentTemplateID    uuid.UUID `json:"category_assessment_template_id" gorm:"column:category_assessment_template_id;type:uuid;not null;index:idx_category_assessments_template"`

	CategoryAssessmentStandardRating   float64 `json:"category_assessment_standard_rating" gorm:"column:category_assessment_standard_rating;type:numeric(10,4);not null;default:0"`
	CategoryAssessmentIndividualRating float64 `json:"category_assessment_individual_rating" gorm:"column:category_assessment_individual_rating;type:numeric(10,4);not null;default:0"`
	CategoryAssessmentStandardScore    float64 `json:"category_assessment_standard_score" gorm:"column:category_assessment_standard_score;type:numeric(12,4);not null;default:0"`
	CategoryAssessmentIndividualScore  float64 `json:"category_assessment_individual_score" gorm:"column:category_assessment_individual_score;type:numeric(12,4);not null;default:0"`

	CategoryAssessmentGapRating      float64 `json:"category_assessment_gap_rating" gorm:"column:category_assessment_gap_rating;type:numeric(10,4);not null;default:0"`
	CategoryAssessmentGapScore       float64 `json:"category_assessment_gap_score" gorm:"column:category_assessment_gap_score;type:numeric(12,4);not null;default:0"`
	CategoryAssessmentConclusionCode string  `json:"category_assessment_conclusion_code" gorm:"column:category_assessment_conclusion_code;type:varchar(10);not null;default:''"`

	CategoryAssessmentCreatedAt time.Time `json:"category_assessment_created_at" gorm:"column:category_assessment_created_at;not null;autoCreateTime"`
	CategoryAssessmentUpdatedAt time.Time `json:"category_assessment_updated_at" gorm:"column:category_assessment_updated_at;not null;autoUpdateTime"`
}

func (CategoryAssessmentModel) TableName() string { return "category_assessments" }

// FinalAssessmentModel merepresentasikan tabel `final_assessments`.
// Satu baris per peserta; gabungan berbobot potensi × kompetensi
// memakai bobot MASTER kategori (override tidak berlaku di level ini).
type FinalAssessmentModel struct {
	FinalAssessmentID uuid.UUID `json:"final_assessment_id" gorm:"column:final_assessment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	FinalAssessmentParticipantID uuid.UUID `json:"final_assessment_participant_id" gorm:"column:final_assessment_participant_id;type:uuid;not null;uniqueIndex:uq_final_assessments_participant"`

	FinalAssessmentPotensiWeight      int     `json:"final_assessment_potensi_weight" gorm:"column:final_assessment_potensi_weight;not null;default:0"`
	FinalAssessmentKompetensiWeight   int     `json:"final_assessment_kompetensi_weight" gorm:"column:final_assessment_kompetensi_weight;not null;default:0"`
	FinalAssessmentPotensiStandard    float64 `json:"final_assessment_potensi_standard" gorm:"column:final_assessment_potensi_standard;type:numeric(12,4);not null;default:0"`
	FinalAssessmentPotensiScore       float64 `json:"final_assessment_potensi_score" gorm:"column:final_assessment_potensi_score;type:numeric(12,4);not null;default:0"`
	FinalAssessmentKompetensiStandard float64 `json:"final_assessment_kompetensi_standard" gorm:"column:final_assessment_kompetensi_standard;type:numeric(12,4);not null;default:0"`
	FinalAssessmentKompetensiScore    float64 `json:"final_assessment_kompetensi_score" gorm:"column:final_assessment_kompetensi_score;type:numeric(12,4);not null;default:0"`

	FinalAssessmentTotalStandardScore    float64 `json:"final_assessment_total_standard_score" gorm:"column:final_assessment_total_standard_score;type:numeric(12,4);not null;default:0"`
	FinalAssessmentTotalIndividualScore  float64 `json:"final_assessment_total_individual_score" gorm:"column:final_assessment_total_individual_score;type:numeric(12,4);not null;default:0"`
	FinalAssessmentAchievementPercentage float64 `json:"final_assessment_achievement_percentage" gorm:"column:final_assessment_achievement_percentage;type:numeric(7,2);not null;default:0"`
	FinalAssessmentConclusionCode        string  `json:"final_assessment_conclusion_code" gorm:"column:final_assessment_conclusion_code;type:varchar(10);not null;default:''"`

	FinalAssessmentCreatedAt time.Time `json:"final_assessment_created_at" gorm:"column:final_assessment_created_at;not null;autoCreateTime"`
	FinalAssessmentUpdatedAt time.Time `json:"final_assessment_updated_at" gorm:"column:final_assessment_updated_at;not null;autoUpdateTime"`
}

func (FinalAssessmentModel) TableName() string { return "final_assessments" }
