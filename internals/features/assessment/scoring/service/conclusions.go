// file: internals/features/assessment/scoring/service/conclusions.go
package service

import (
	"errors"
	"math"

	"asesmenku_backend/internals/constants"
)

// ErrInvalidRating untuk rating individu di luar skala 1..5.
var ErrInvalidRating = errors.New("rating individu harus 1 sampai 5")

// Kesimpulan level aspek dari gap rating:
// < −0.5 below_standard, [−0.5, 0.5) meets_standard, ≥ 0.5 exceeds_standard.
func aspectConclusion(gapRating float64) string {
	switch {
	case gapRating < -0.5:
		return constants.AspectBelowStandard
	case gapRating < 0.5:
		return constants.AspectMeetsStandard
	default:
		return constants.AspectExceedsStandard
	}
}

// Kesimpulan level kategori dari gap score:
// < −10 DBS, [−10, 0) MS, [0, 20) K, ≥ 20 SK.
func categoryConclusion(gapScore float64) string {
	switch {
	case gapScore < -10:
		return constants.CategoryDBS
	case gapScore < 0:
		return constants.CategoryMS
	case gapScore < 20:
		return constants.CategoryK
	default:
		return constants.CategorySK
	}
}

// Kesimpulan level final dari persentase capaian:
// < 80 TMS, [80, 90) MMS, ≥ 90 MS.
func finalConclusion(achievementPercentage float64) string {
	switch {
	case achievementPercentage < 80:
		return constants.FinalTMS
	case achievementPercentage < 90:
		return constants.FinalMMS
	default:
		return constants.FinalMS
	}
}

// percentage_score = round(individual_rating / 5 × 100), integer.
func percentageScore(individualRating float64) int {
	return int(math.Round(individualRating / float64(constants.RatingMax) * 100))
}

func validRating(rating int) bool {
	return rating >= constants.RatingMin && rating <= constants.RatingMax
}
