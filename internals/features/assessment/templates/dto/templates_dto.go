// file: internals/features/assessment/templates/dto/templates_dto.go
package dto

import (
	"github.com/google/uuid"

	templateModel "asesmenku_backend/internals/features/assessment/templates/model"
)

type TemplateResponse struct {
	TemplateID  uuid.UUID `json:"template_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

type SubAspectResponse struct {
	SubAspectID    uuid.UUID `json:"sub_aspect_id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	StandardRating int       `json:"standard_rating"`
	OrderIndex     int       `json:"order_index"`
}

type AspectResponse struct {
	AspectID         uuid.UUID `json:"aspect_id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	WeightPercentage int       `json:"weight_percentage"`
	StandardRating   float64   `json:"standard_rating"`
	OrderIndex       int       `json:"order_index"`

	SubAspects []SubAspectResponse `json:"sub_aspects,omitempty"`
}

type CategoryResponse struct {
	CategoryID       uuid.UUID `json:"category_id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	WeightPercentage int       `json:"weight_percentage"`
	OrderIndex       int       `json:"order_index"`

	Aspects []AspectResponse `json:"aspects"`
}

type TemplateDetailResponse struct {
	TemplateResponse
	Categories []CategoryResponse `json:"categories"`
}

func ToTemplateResponse(m *templateModel.AssessmentTemplateModel) TemplateResponse {
	return TemplateResponse{
		TemplateID:  m.AssessmentTemplateID,
		Name:        m.AssessmentTemplateName,
		Description: m.AssessmentTemplateDescription,
	}
}

func ToSubAspectResponse(m *templateModel.AssessmentSubAspectModel) SubAspectResponse {
	return SubAspectResponse{
		SubAspectID:    m.AssessmentSubAspectID,
		Code:           m.AssessmentSubAspectCode,
		Name:           m.AssessmentSubAspectName,
		StandardRating: m.AssessmentSubAspectStandardRating,
		OrderIndex:     m.AssessmentSubAspectOrderIndex,
	}
}

func ToAspectResponse(m *templateModel.AssessmentAspectModel) AspectResponse {
	return AspectResponse{
		AspectID:         m.AssessmentAspectID,
		Code:             m.AssessmentAspectCode,
		Name:             m.AssessmentAspectName,
		WeightPercentage: m.AssessmentAspectWeightPercentage,
		StandardRating:   m.AssessmentAspectStandardRating,
		OrderIndex:       m.AssessmentAspectOrderIndex,
	}
}

func ToCategoryResponse(m *templateModel.AssessmentCategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:       m.AssessmentCategoryID,
		Code:             m.AssessmentCategoryCode,
		Name:             m.AssessmentCategoryName,
		WeightPercentage: m.AssessmentCategoryWeightPercentage,
		OrderIndex:       m.AssessmentCategoryOrderIndex,
	}
}
