// file: internals/features/assessment/standards/service/selection_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSelection() *Selection {
	return &Selection{
		TemplateID: uuid.New(),
		Aspects: []AspectSelection{
			{
				AspectConfig: AspectConfig{Code: "kecerdasan", Active: true, Weight: 40},
				CategoryCode: "potensi", MasterWeight: 40,
				SubAspects: []SubAspectConfig{
					{Code: "logika", Active: true},
					{Code: "verbal", Active: true},
				},
			},
			{
				AspectConfig: AspectConfig{Code: "ketelitian", Active: true, Weight: 35},
				CategoryCode: "potensi", MasterWeight: 35,
				SubAspects: []SubAspectConfig{
					{Code: "fokus", Active: true},
				},
			},
			{
				AspectConfig: AspectConfig{Code: "kepribadian", Active: true, Weight: 25},
				CategoryCode: "potensi", MasterWeight: 25,
				SubAspects: []SubAspectConfig{
					{Code: "stabilitas", Active: true},
				},
			},
			{
				AspectConfig: AspectConfig{Code: "integritas", Active: true, Weight: 40},
				CategoryCode: "kompetensi", MasterWeight: 40,
			},
			{
				AspectConfig: AspectConfig{Code: "kerjasama", Active: true, Weight: 35},
				CategoryCode: "kompetensi", MasterWeight: 35,
			},
			{
				AspectConfig: AspectConfig{Code: "komunikasi", Active: true, Weight: 25},
				CategoryCode: "kompetensi", MasterWeight: 25,
			},
		},
	}
}

func TestValidateAcceptsWellFormedSelection(t *testing.T) {
	sel := testSelection()
	assert.Empty(t, sel.Validate())
}

func TestValidateWeightSumPerCategory(t *testing.T) {
	t.Run("40+35+25 lolos", func(t *testing.T) {
		sel := testSelection()
		assert.Empty(t, sel.Validate())
	})

	t.Run("40+30+20 ditolak", func(t *testing.T) {
		sel := testSelection()
		sel.SetAspectWeight("ketelitian", 30)
		sel.SetAspectWeight("kepribadian", 20)
		violations := sel.Validate()
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "100")
		assert.Contains(t, violations[0], "potensi")
	})
}

func TestValidateMinimumActiveAspects(t *testing.T) {
	sel := testSelection()
	sel.DeactivateAspect("kepribadian")
	sel.SetAspectWeight("kecerdasan", 60)
	sel.SetAspectWeight("ketelitian", 40)

	violations := sel.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "Minimal 3 aspek aktif")
}

func TestValidateActiveAspectNeedsActiveSubAspect(t *testing.T) {
	sel := testSelection()
	sel.ToggleSubAspect("ketelitian", "fokus", false)

	violations := sel.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "ketelitian")
	assert.Contains(t, violations[0], "sub-aspek")
}

func TestValidateReportsAllViolationsAtOnce(t *testing.T) {
	sel := testSelection()
	sel.DeactivateAspect("kepribadian")       // min-3 dilanggar
	sel.ToggleSubAspect("ketelitian", "fokus", false) // sub aktif dilanggar
	// bobot potensi sekarang 75 ≠ 100

	violations := sel.Validate()
	assert.Len(t, violations, 3)
}

func TestDeactivateAspectForcesWeightAndSubsOff(t *testing.T) {
	sel := testSelection()
	sel.DeactivateAspect("kecerdasan")

	a := sel.find("kecerdasan")
	require.NotNil(t, a)
	assert.False(t, a.Active)
	assert.Zero(t, a.Weight)
	for _, sub := range a.SubAspects {
		assert.False(t, sub.Active)
	}
}

func TestActivateAspectAutoSelectsFirstSubAspect(t *testing.T) {
	sel := testSelection()
	sel.DeactivateAspect("kecerdasan")
	sel.ActivateAspect("kecerdasan")

	a := sel.find("kecerdasan")
	require.NotNil(t, a)
	assert.True(t, a.Active)
	assert.True(t, a.SubAspects[0].Active)
	assert.False(t, a.SubAspects[1].Active)
}

func TestActivateAspectKeepsExistingSubSelection(t *testing.T) {
	sel := testSelection()
	a := sel.find("kecerdasan")
	require.NotNil(t, a)

	// nonaktif manual tanpa menolkan bobot: pilihan sub dipertahankan
	a.Active = false
	a.SubAspects[0].Active = false
	sel.ActivateAspect("kecerdasan")

	assert.True(t, a.Active)
	assert.False(t, a.SubAspects[0].Active)
	assert.True(t, a.SubAspects[1].Active)
}

func TestDistributeWeights(t *testing.T) {
	t.Run("tiga aspek aktif", func(t *testing.T) {
		sel := testSelection()
		sel.DistributeWeights()
		// 100/3: 34+33+33
		assert.Equal(t, 34, sel.find("kecerdasan").Weight)
		assert.Equal(t, 33, sel.find("ketelitian").Weight)
		assert.Equal(t, 33, sel.find("kepribadian").Weight)
	})

	t.Run("aspek nonaktif dinolkan dan sisanya dibagi", func(t *testing.T) {
		sel := testSelection()
		sel.DeactivateAspect("kepribadian")
		sel.DistributeWeights()
		assert.Equal(t, 50, sel.find("kecerdasan").Weight)
		assert.Equal(t, 50, sel.find("ketelitian").Weight)
		assert.Zero(t, sel.find("kepribadian").Weight)
	})

	t.Run("kategori lain tidak terganggu", func(t *testing.T) {
		sel := testSelection()
		sel.DistributeWeights()
		total := 0
		for _, code := range []string{"integritas", "kerjasama", "komunikasi"} {
			total += sel.find(code).Weight
		}
		assert.Equal(t, 100, total)
	})
}

func TestToOverrideSetRoundTrip(t *testing.T) {
	sel := testSelection()
	sel.DeactivateAspect("kepribadian")
	sel.SetAspectWeight("kecerdasan", 60)
	sel.SetAspectWeight("ketelitian", 40)
	sel.ToggleSubAspect("kecerdasan", "verbal", false)

	set := sel.ToOverrideSet()
	ov := NewOverrideContext(sel.TemplateID, set)

	assert.False(t, ov.IsAspectActive("kepribadian"))
	assert.True(t, ov.IsAspectActive("kecerdasan"))
	assert.Equal(t, 60, ov.AspectWeightOr("kecerdasan", 40))
	assert.Equal(t, 40, ov.AspectWeightOr("ketelitian", 35))
	assert.False(t, ov.IsSubAspectActive("verbal"))
	assert.True(t, ov.IsSubAspectActive("logika"))
	assert.False(t, ov.IsSubAspectActive("stabilitas")) // ikut mati bersama aspeknya
	assert.True(t, ov.HasOverrides())
}

func TestOverrideContextDefaults(t *testing.T) {
	ov := OverrideContext{}
	assert.True(t, ov.IsAspectActive("apapun"))
	assert.True(t, ov.IsSubAspectActive("apapun"))
	assert.Equal(t, 40, ov.AspectWeightOr("apapun", 40))
	assert.False(t, ov.HasOverrides())
}
