// file: internals/features/assessment/analytics/service/training.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// TrainingRecommended: peserta direkomendasikan ikut pelatihan bila rating
// individunya jatuh di bawah ambang toleransi standar,
// yaitu standard × (1 − tolerance/100).
func TrainingRecommended(individualRating, standardRating, tolerancePercent float64) bool {
	return individualRating < TrainingThreshold(standardRating, tolerancePercent)
}

func TrainingThreshold(standardRating, tolerancePercent float64) float64 {
	return standardRating * (1 - tolerancePercent/100)
}

type TrainingEntry struct {
	ParticipantID     uuid.UUID `json:"participant_id"`
	ParticipantName   string    `json:"participant_name"`
	ParticipantNumber string    `json:"participant_number"`
	IndividualRating  float64   `json:"individual_rating"`
	StandardRating    float64   `json:"standard_rating"`
	Recommended       bool      `json:"recommended"`
}

type TrainingSummary struct {
	AspectID         uuid.UUID       `json:"aspect_id"`
	AspectCode       string          `json:"aspect_code"`
	AspectName       string          `json:"aspect_name"`
	TolerancePercent float64         `json:"tolerance_percent"`
	Total            int             `json:"total"`
	Recommended      int             `json:"recommended"`
	NotRecommended   int             `json:"not_recommended"`
	AverageRating    float64         `json:"average_rating"`
	Entries          []TrainingEntry `json:"entries"`
}

type trainingRow struct {
	ParticipantID     uuid.UUID
	ParticipantName   string
	ParticipantNumber string
	AspectCode        string
	AspectName        string
	IndividualRating  float64
	StandardRating    float64
}

// TrainingSummaryData: rekomendasi pelatihan satu aspek untuk semua peserta
// (event, formasi), dibandingkan terhadap snapshot standar masing-masing.
func (s *AnalyticsService) TrainingSummaryData(ctx context.Context, eventID, positionFormationID, aspectID uuid.UUID, tolerancePercent float64, overrideVersion uint64) (*TrainingSummary, error) {
	key := fmt.Sprintf("training:%s:%s:%s:%.4f", eventID, positionFormationID, aspectID, tolerancePercent)
	if v, ok := s.lookup(key, overrideVersion); ok {
		return v.(*TrainingSummary), nil
	}

	var rows []trainingRow
	if err := s.db.WithContext(ctx).Raw(`
		SELECT
			p.participant_id                          AS participant_id,
			p.participant_name                        AS participant_name,
			p.participant_number                      AS participant_number,
			asp.assessment_aspect_code                AS aspect_code,
			asp.assessment_aspect_name                AS aspect_name,
			aa.aspect_assessment_individual_rating    AS individual_rating,
			aa.aspect_assessment_standard_rating      AS standard_rating
		FROM participants p
		JOIN category_assessments ca
		  ON ca.category_assessment_participant_id = p.participant_id
		JOIN aspect_assessments aa
		  ON aa.aspect_assessment_category_assessment_id = ca.category_assessment_id
		 AND aa.aspect_assessment_aspect_id = ?
		JOIN assessment_aspects asp
		  ON asp.assessment_aspect_id = aa.aspect_assessment_aspect_id
		WHERE p.participant_event_id = ?
		  AND p.participant_position_formation_id = ?
		  AND p.participant_deleted_at IS NULL
		ORDER BY p.participant_number ASC
	`, aspectID, eventID, positionFormationID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := &TrainingSummary{
		AspectID:         aspectID,
		TolerancePercent: tolerancePercent,
	}
	var ratingSum float64
	for _, r := range rows {
		summary.AspectCode = r.AspectCode
		summary.AspectName = r.AspectName

		recommended := TrainingRecommended(r.IndividualRating, r.StandardRating, tolerancePercent)
		if recommended {
			summary.Recommended++
		} else {
			summary.NotRecommended++
		}
		ratingSum += r.IndividualRating

		summary.Entries = append(summary.Entries, TrainingEntry{
			ParticipantID:     r.ParticipantID,
			ParticipantName:   r.ParticipantName,
			ParticipantNumber: r.ParticipantNumber,
			IndividualRating:  r.IndividualRating,
			StandardRating:    r.StandardRating,
			Recommended:       recommended,
		})
	}
	summary.Total = len(rows)
	if summary.Total > 0 {
		summary.AverageRating = ratingSum / float64(summary.Total)
	}

	s.remember(key, overrideVersion, summary)
	return summary, nil
}
