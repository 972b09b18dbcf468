// file: internals/features/assessment/templates/model/templates_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentTemplateModel merepresentasikan tabel `assessment_templates`.
// Satu template = satu susunan kategori → aspek → sub-aspek beserta bobotnya.
type AssessmentTemplateModel struct {
	// =========================
	// Primary Key
	// =========================
	AssessmentTemplateID uuid.UUID `json:"assessment_template_id" gorm:"column:assessment_template_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// =========================
	// Data Utama
	// =========================
	AssessmentTemplateName        string  `json:"assessment_template_name" gorm:"column:assessment_template_name;type:varchar(180);not null"`
	AssessmentTemplateDescription *string `json:"assessment_template_description" gorm:"column:assessment_template_description;type:text"`

	// =========================
	// Timestamps
	// =========================
	AssessmentTemplateCreatedAt time.Time      `json:"assessment_template_created_at" gorm:"column:assessment_template_created_at;not null;autoCreateTime"`
	AssessmentTemplateUpdatedAt time.Time      `json:"assessment_template_updated_at" gorm:"column:assessment_template_updated_at;not null;autoUpdateTime"`
	AssessmentTemplateDeletedAt gorm.DeletedAt `json:"assessment_template_deleted_at" gorm:"column:assessment_template_deleted_at;index"`

	// Relasi
	Categories []AssessmentCategoryModel `json:"categories,omitempty" gorm:"foreignKey:AssessmentCategoryTemplateID;references:AssessmentTemplateID"`
}

func (AssessmentTemplateModel) TableName() string {
	return "assessment_templates"
}

// AssessmentCategoryModel merepresentasikan tabel `assessment_categories`.
// Kategori top-level (potensi / kompetensi); bobot kategori dalam satu
// template harus berjumlah 100.
type AssessmentCategoryModel struct {
	// =========================
	// Primary Key
	// =========================
	AssessmentCategoryID uuid.UUID `json:"assessment_category_id" gorm:"column:assessment_category_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// =========================
	// Relasi (FK)
	// =========================
	AssessmentCategoryTemplateID uuid.UUID `json:"assessment_category_template_id" gorm:"column:assessment_category_template_id;type:uuid;not null;uniqueIndex:uq_assessment_categories_code,priority:1"`

	// =========================
	// Data Utama
	// =========================
	// Kode unik dalam satu template ("potensi", "kompetensi")
	AssessmentCategoryCode             string `json:"assessment_category_code" gorm:"column:assessment_category_code;type:varchar(60);not null;uniqueIndex:uq_assessment_categories_code,priority:2"`
	AssessmentCategoryName             string `json:"assessment_category_name" gorm:"column:assessment_category_name;type:varchar(180);not null"`
	AssessmentCategoryWeightPercentage int    `json:"assessment_category_weight_percentage" gorm:"column:assessment_category_weight_percentage;not null;default:0"`
	AssessmentCategoryOrderIndex       int    `json:"assessment_category_order_index" gorm:"column:assessment_category_order_index;not null;default:0"`

	// =========================
	// Timestamps
	// =========================
	AssessmentCategoryCreatedAt time.Time      `json:"assessment_category_created_at" gorm:"column:assessment_category_created_at;not null;autoCreateTime"`
	AssessmentCategoryUpdatedAt time.Time      `json:"assessment_category_updated_at" gorm:"column:assessment_category_updated_at;not null;autoUpdateTime"`
	AssessmentCategoryDeletedAt gorm.DeletedAt `json:"assessment_category_deleted_at" gorm:"column:assessment_category_deleted_at;index"`

	// Relasi
	Aspects []AssessmentAspectModel `json:"aspects,omitempty" gorm:"foreignKey:AssessmentAspectCategoryID;references:AssessmentCategoryID"`
}

func (AssessmentCategoryModel) TableName() string {
	return "assessment_categories"
}

// AssessmentAspectModel merepresentasikan tabel `assessment_aspects`.
// template_id didenormalisasi supaya lookup kode (unik per template,
// lintas kategori) tidak perlu join.
type AssessmentAspectModel struct {
	// =========================
	// Primary Key
	// =========================
	AssessmentAspectID uuid.UUID `json:"assessment_aspect_id" gorm:"column:assessment_aspect_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// =========================
	// Relasi (FK)
	// =========================
	AssessmentAspectCategoryID uuid.UUID `json:"assessment_aspect_category_id" gorm:"column:assessment_aspect_category_id;type:uuid;not null;index:idx_assessment_aspects_category"`
	AssessmentAspectTemplateID uuid.UUID `json:"assessment_aspect_template_id" gorm:"column:assessment_aspect_template_id;type:uuid;not null;uniqueIndex:uq_assessment_aspects_code,priority:1"`

	// =========================
	// Data Utama
	// =========================
	AssessmentAspectCode             string  `json:"assessment_aspect_code" gorm:"column:assessment_aspect_code;type:varchar(60);not null;uniqueIndex:uq_assessment_aspects_code,priority:2"`
	AssessmentAspectName             string  `json:"assessment_aspect_name" gorm:"column:assessment_aspect_name;type:varchar(180);not null"`
	AssessmentAspectWeightPercentage int     `json:"assessment_aspect_weight_percentage" gorm:"column:assessment_aspect_weight_percentage;not null;default:0"`
	AssessmentAspectStandardRating   float64 `json:"assessment_aspect_standard_rating" gorm:"column:assessment_aspect_standard_rating;type:numeric(5,2);not null;default:0"`
	AssessmentAspectOrderIndex       int     `json:"assessment_aspect_order_index" gorm:"column:assessment_aspect_order_index;not null;default:0"`

	// =========================
	// Timestamps
	// =========================
	AssessmentAspectCreatedAt time.Time      `json:"assessment_aspect_created_at" gorm:"column:assessment_aspect_created_at;not null;autoCreateTime"`
	AssessmentAspectUpdatedAt time.Time      `json:"assessment_aspect_updated_at" gorm:"column:assessment_aspect_updated_at;not null;autoUpdateTime"`
	AssessmentAspectDeletedAt gorm.DeletedAt `json:"assessment_aspect_deleted_at" gorm:"column:assessment_aspect_deleted_at;index"`

	// Relasi
	SubAspects []AssessmentSubAspectModel `json:"sub_aspects,omitempty" gorm:"foreignKey:AssessmentSubAspectAspectID;references:AssessmentAspectID"`
}

func (AssessmentAspectModel) TableName() string {
	return "assessment_aspects"
}

// AssessmentSubAspectModel merepresentasikan tabel `assessment_sub_aspects`.
type AssessmentSubAspectModel struct {
	// =========================
	// Primary Key
	// =========================
	AssessmentSubAspectID uuid.UUID `json:"assessment_sub_aspect_id" gorm:"column:assessment_sub_aspect_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// =========================
	// Relasi (FK)
	// =========================
	AssessmentSubAspectAspectID   uuid.UUID `json:"assessment_sub_aspect_aspect_id" gorm:"column:assessment_sub_aspect_aspect_id;type:uuid;not null;index:idx_assessment_sub_aspects_aspect"`
	AssessmentSubAspectTemplateID uuid.UUID `json:"assessment_sub_aspect_template_id" gorm:"column:assessment_sub_aspect_template_id;type:uuid;not null;uniqueIndex:uq_assessment_sub_aspects_code,priority:1"`

	// =========================
	// Data Utama
	// =========================
	AssessmentSubAspectCode           string `json:"assessment_sub_aspect_code" gorm:"column:assessment_sub_aspect_code;type:varchar(60);not null;uniqueIndex:uq_assessment_sub_aspects_code,priority:2"`
	AssessmentSubAspectName           string `json:"assessment_sub_aspect_name" gorm:"column:assessment_sub_aspect_name;type:varchar(180);not null"`
	AssessmentSubAspectStandardRating int    `json:"assessment_sub_aspect_standard_rating" gorm:"column:assessment_sub_aspect_standard_rating;not null;default:3"`
	AssessmentSubAspectOrderIndex     int    `json:"assessment_sub_aspect_order_index" gorm:"column:assessment_sub_aspect_order_index;not null;default:0"`

	// =========================
	// Timestamps
	// =========================
	AssessmentSubAspectCreatedAt time.Time      `json:"assessment_sub_aspect_created_at" gorm:"column:assessment_sub_aspect_created_at;not null;autoCreateTime"`
	AssessmentSubAspectUpdatedAt time.Time      `json:"assessment_sub_aspect_updated_at" gorm:"column:assessment_sub_aspect_updated_at;not null;autoUpdateTime"`
	AssessmentSubAspectDeletedAt gorm.DeletedAt `json:"assessment_sub_aspect_deleted_at" gorm:"column:assessment_sub_aspect_deleted_at;index"`
}

func (AssessmentSubAspectModel) TableName() string {
	return "assessment_sub_aspects"
}
