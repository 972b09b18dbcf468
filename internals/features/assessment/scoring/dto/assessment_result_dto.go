// file: internals/features/assessment/scoring/dto/assessment_result_dto.go
package dto

import (
	"github.com/google/uuid"

	scoringModel "asesmenku_backend/internals/features/assessment/scoring/model"
)

/* ========================================================
   Response: hasil lengkap satu peserta (4 level)
======================================================== */

type SubAspectResultResponse struct {
	Code             string `json:"code"`
	StandardRating   int    `json:"standard_rating"`
	IndividualRating int    `json:"individual_rating"`
	RatingLabel      string `json:"rating_label"`
}

type AspectResultResponse struct {
	Code             string  `json:"code"`
	StandardRating   float64 `json:"standard_rating"`
	IndividualRating float64 `json:"individual_rating"`
	StandardScore    float64 `json:"standard_score"`
	IndividualScore  float64 `json:"individual_score"`
	GapRating        float64 `json:"gap_rating"`
	GapScore         float64 `json:"gap_score"`
	PercentageScore  int     `json:"percentage_score"`
	Conclusion       string  `json:"conclusion"`

	SubAspects []SubAspectResultResponse `json:"sub_aspects,omitempty"`
}

type CategoryResultResponse struct {
	Code             string  `json:"code"`
	StandardRating   float64 `json:"standard_rating"`
	IndividualRating float64 `json:"individual_rating"`
	StandardScore    float64 `json:"standard_score"`
	IndividualScore  float64 `json:"individual_score"`
	GapRating        float64 `json:"gap_rating"`
	GapScore         float64 `json:"gap_score"`
	Conclusion       string  `json:"conclusion"`

	Aspects []AspectResultResponse `json:"aspects"`
}

type FinalResultResponse struct {
	PotensiWeight         int     `json:"potensi_weight"`
	KompetensiWeight      int     `json:"kompetensi_weight"`
	PotensiScore          float64 `json:"potensi_score"`
	KompetensiScore       float64 `json:"kompetensi_score"`
	TotalStandardScore    float64 `json:"total_standard_score"`
	TotalIndividualScore  float64 `json:"total_individual_score"`
	AchievementPercentage float64 `json:"achievement_percentage"`
	Conclusion            string  `json:"conclusion"`
}

type ParticipantResultResponse struct {
	ParticipantID uuid.UUID                `json:"participant_id"`
	Final         *FinalResultResponse     `json:"final,omitempty"`
	Categories    []CategoryResultResponse `json:"categories"`
}

/* ========================================================
   Konverter model → response
======================================================== */

func ToSubAspectResultResponse(m *scoringModel.SubAspectAssessmentModel) SubAspectResultResponse {
	return SubAspectResultResponse{
		Code:             m.SubAspectAssessmentSubAspectCode,
		StandardRating:   m.SubAspectAssessmentStandardRating,
		IndividualRating: m.SubAspectAssessmentIndividualRating,
		RatingLabel:      m.SubAspectAssessmentRatingLabel,
	}
}

func ToAspectResultResponse(m *scoringModel.AspectAssessmentModel) AspectResultResponse {
	return AspectResultResponse{
		Code:             m.AspectAssessmentAspectCode,
		StandardRating:   m.AspectAssessmentStandardRating,
		IndividualRating: m.AspectAssessmentIndividualRating,
		StandardScore:    m.AspectAssessmentStandardScore,
		IndividualScore:  m.AspectAssessmentIndividualScore,
		GapRating:        m.AspectAssessmentGapRating,
		GapScore:         m.AspectAssessmentGapScore,
		PercentageScore:  m.AspectAssessmentPercentageScore,
		Conclusion:       m.AspectAssessmentConclusionCode,
	}
}

func ToCategoryResultResponse(m *scoringModel.CategoryAssessmentModel) CategoryResultResponse {
	return CategoryResultResponse{
		Code:             m.CategoryAssessmentCategoryCode,
		StandardRating:   m.CategoryAssessmentStandardRating,
		IndividualRating: m.CategoryAssessmentIndividualRating,
		StandardScore:    m.CategoryAssessmentStandardScore,
		IndividualScore:  m.CategoryAssessmentIndividualScore,
		GapRating:        m.CategoryAssessmentGapRating,
		GapScore:         m.CategoryAssessmentGapScore,
		Conclusion:       m.CategoryAssessmentConclusionCode,
	}
}

func ToFinalResultResponse(m *scoringModel.FinalAssessmentModel) *FinalResultResponse {
	return &FinalResultResponse{
		PotensiWeight:         m.FinalAssessmentPotensiWeight,
		KompetensiWeight:      m.FinalAssessmentKompetensiWeight,
		PotensiScore:          m.FinalAssessmentPotensiScore,
		KompetensiScore:       m.FinalAssessmentKompetensiScore,
		TotalStandardScore:    m.FinalAssessmentTotalStandardScore,
		TotalIndividualScore:  m.FinalAssessmentTotalIndividualScore,
		AchievementPercentage: m.FinalAssessmentAchievementPercentage,
		Conclusion:            m.FinalAssessmentConclusionCode,
	}
}
