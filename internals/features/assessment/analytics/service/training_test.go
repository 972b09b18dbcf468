// file: internals/features/assessment/analytics/service/training_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrainingThreshold(t *testing.T) {
	assert.InDelta(t, 2.7, TrainingThreshold(3.0, 10), 1e-9)
	assert.InDelta(t, 3.0, TrainingThreshold(3.0, 0), 1e-9)
	assert.InDelta(t, 0.0, TrainingThreshold(3.0, 100), 1e-9)
}

func TestTrainingRecommended(t *testing.T) {
	cases := []struct {
		name       string
		individual float64
		standard   float64
		tolerance  float64
		want       bool
	}{
		{"jauh di bawah standar", 2.0, 3.0, 10, true},
		{"tepat di ambang", 3.0, 4.0, 25, false},
		{"di atas ambang tapi di bawah standar", 2.8, 3.0, 10, false},
		{"memenuhi standar", 3.0, 3.0, 10, false},
		{"toleransi nol ketat", 2.99, 3.0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TrainingRecommended(tc.individual, tc.standard, tc.tolerance))
		})
	}
}
