// file: internals/features/assessment/scoring/service/calculator_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asesmenku_backend/internals/constants"
	eventModel "asesmenku_backend/internals/features/assessment/events/model"
	"asesmenku_backend/internals/features/assessment/repository"
	"asesmenku_backend/internals/features/assessment/scoring/dto"
	overrideService "asesmenku_backend/internals/features/assessment/standards/service"
	templateModel "asesmenku_backend/internals/features/assessment/templates/model"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

func intPtr(v int) *int { return &v }

type fixture struct {
	store *memStore
	calc  *Calculator

	templateID    uuid.UUID
	eventID       uuid.UUID
	formationID   uuid.UUID
	participantID uuid.UUID
}

// Template uji:
//
//	potensi (bobot 50): kecerdasan w40 (sub logika=3, verbal=3),
//	                    ketelitian w35 (sub fokus=4),
//	                    kepribadian w25 (sub stabilitas=3)
//	kompetensi (bobot 50): integritas w40 std3, kerjasama w35 std3,
//	                       komunikasi w25 std4
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:       newMemStore(),
		templateID:  uuid.New(),
		eventID:     uuid.New(),
		formationID: uuid.New(),
	}

	f.store.templates[f.templateID] = &templateModel.AssessmentTemplateModel{
		AssessmentTemplateID:   f.templateID,
		AssessmentTemplateName: "Template Uji",
	}

	potensiID := f.addCategory(constants.CategoryPotensi, 50, 1)
	kompetensiID := f.addCategory(constants.CategoryKompetensi, 50, 2)

	kecerdasan := f.addAspect(potensiID, "kecerdasan", 40, 0, 1)
	ketelitian := f.addAspect(potensiID, "ketelitian", 35, 0, 2)
	kepribadian := f.addAspect(potensiID, "kepribadian", 25, 0, 3)
	f.addSubAspect(kecerdasan, "logika", 3, 1)
	f.addSubAspect(kecerdasan, "verbal", 3, 2)
	f.addSubAspect(ketelitian, "fokus", 4, 1)
	f.addSubAspect(kepribadian, "stabilitas", 3, 1)

	f.addAspect(kompetensiID, "integritas", 40, 3, 1)
	f.addAspect(kompetensiID, "kerjasama", 35, 3, 2)
	f.addAspect(kompetensiID, "komunikasi", 25, 4, 3)

	f.store.formations[f.formationID] = &eventModel.PositionFormationModel{
		PositionFormationID:         f.formationID,
		PositionFormationEventID:    f.eventID,
		PositionFormationTemplateID: f.templateID,
		PositionFormationName:       "Analis Data",
	}
	f.participantID = f.addParticipant("P-001")

	f.calc = NewCalculator(f.store, templateService.NewTemplateCache(f.store))
	return f
}

func (f *fixture) addCategory(code string, weight, order int) uuid.UUID {
	id := uuid.New()
	f.store.categories = append(f.store.categories, &templateModel.AssessmentCategoryModel{
		AssessmentCategoryID:               id,
		AssessmentCategoryTemplateID:       f.templateID,
		AssessmentCategoryCode:             code,
		AssessmentCategoryName:             code,
		AssessmentCategoryWeightPercentage: weight,
		AssessmentCategoryOrderIndex:       order,
	})
	return id
}

func (f *fixture) addAspect(categoryID uuid.UUID, code string, weight int, standard float64, order int) uuid.UUID {
	id := uuid.New()
	f.store.aspects = append(f.store.aspects, &templateModel.AssessmentAspectModel{
		AssessmentAspectID:               id,
		AssessmentAspectCategoryID:       categoryID,
		AssessmentAspectTemplateID:       f.templateID,
		AssessmentAspectCode:             code,
		AssessmentAspectName:             code,
		AssessmentAspectWeightPercentage: weight,
		AssessmentAspectStandardRating:   standard,
		AssessmentAspectOrderIndex:       order,
	})
	return id
}

func (f *fixture) addSubAspect(aspectID uuid.UUID, code string, standard, order int) {
	f.store.subAspects = append(f.store.subAspects, &templateModel.AssessmentSubAspectModel{
		AssessmentSubAspectID:             uuid.New(),
		AssessmentSubAspectAspectID:       aspectID,
		AssessmentSubAspectTemplateID:     f.templateID,
		AssessmentSubAspectCode:           code,
		AssessmentSubAspectName:           code,
		AssessmentSubAspectStandardRating: standard,
		AssessmentSubAspectOrderIndex:     order,
	})
}

func (f *fixture) addParticipant(number string) uuid.UUID {
	id := uuid.New()
	f.store.participants[id] = &eventModel.ParticipantModel{
		ParticipantID:                  id,
		ParticipantEventID:             f.eventID,
		ParticipantPositionFormationID: f.formationID,
		ParticipantName:                "Peserta " + number,
		ParticipantNumber:              number,
	}
	return id
}

func defaultFeed() dto.ParticipantFeedInput {
	return dto.ParticipantFeedInput{
		constants.CategoryPotensi: {
			{AspectCode: "kecerdasan", SubAspects: []dto.SubAspectRatingInput{
				{SubAspectCode: "logika", IndividualRating: 4},
				{SubAspectCode: "verbal", IndividualRating: 4},
			}},
			{AspectCode: "ketelitian", SubAspects: []dto.SubAspectRatingInput{
				{SubAspectCode: "fokus", IndividualRating: 4},
			}},
			{AspectCode: "kepribadian", SubAspects: []dto.SubAspectRatingInput{
				{SubAspectCode: "stabilitas", IndividualRating: 2},
			}},
		},
		constants.CategoryKompetensi: {
			{AspectCode: "integritas", IndividualRating: intPtr(3)},
			{AspectCode: "kerjasama", IndividualRating: intPtr(4)},
			{AspectCode: "komunikasi", IndividualRating: intPtr(4)},
		},
	}
}

func TestCalculateParticipantFullPipeline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.calc.CalculateParticipant(ctx, overrideService.OverrideContext{}, f.participantID, defaultFeed())
	require.NoError(t, err)

	t.Run("aspek turunan sub-aspek", func(t *testing.T) {
		potensi, err := f.store.CategoryAssessmentByCode(ctx, f.participantID, constants.CategoryPotensi)
		require.NoError(t, err)
		rows, err := f.store.AspectAssessmentsByCategoryAssessment(ctx, potensi.CategoryAssessmentID)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		byCode := map[string]bool{}
		for _, aa := range rows {
			byCode[aa.AspectAssessmentAspectCode] = true
			if aa.AspectAssessmentAspectCode == "kecerdasan" {
				assert.InDelta(t, 3.0, aa.AspectAssessmentStandardRating, 1e-9)
				assert.InDelta(t, 4.0, aa.AspectAssessmentIndividualRating, 1e-9)
				assert.InDelta(t, 1.0, aa.AspectAssessmentGapRating, 1e-9)
				assert.Equal(t, 80, aa.AspectAssessmentPercentageScore)
				assert.Equal(t, constants.AspectExceedsStandard, aa.AspectAssessmentConclusionCode)
			}
		}
		assert.True(t, byCode["ketelitian"])
		assert.True(t, byCode["kepribadian"])
	})

	t.Run("total kategori", func(t *testing.T) {
		potensi, err := f.store.CategoryAssessmentByCode(ctx, f.participantID, constants.CategoryPotensi)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, potensi.CategoryAssessmentStandardRating, 1e-9)
		assert.InDelta(t, 10.0, potensi.CategoryAssessmentIndividualRating, 1e-9)
		assert.InDelta(t, 335.0, potensi.CategoryAssessmentStandardScore, 1e-9)
		assert.InDelta(t, 350.0, potensi.CategoryAssessmentIndividualScore, 1e-9)
		assert.InDelta(t, 15.0, potensi.CategoryAssessmentGapScore, 1e-9)
		assert.Equal(t, constants.CategoryK, potensi.CategoryAssessmentConclusionCode)

		kompetensi, err := f.store.CategoryAssessmentByCode(ctx, f.participantID, constants.CategoryKompetensi)
		require.NoError(t, err)
		assert.InDelta(t, 325.0, kompetensi.CategoryAssessmentStandardScore, 1e-9)
		assert.InDelta(t, 360.0, kompetensi.CategoryAssessmentIndividualScore, 1e-9)
		assert.Equal(t, constants.CategorySK, kompetensi.CategoryAssessmentConclusionCode)
	})

	t.Run("gabungan final", func(t *testing.T) {
		final, err := f.store.FinalAssessmentByParticipant(ctx, f.participantID)
		require.NoError(t, err)
		assert.Equal(t, 50, final.FinalAssessmentPotensiWeight)
		assert.InDelta(t, 330.0, final.FinalAssessmentTotalStandardScore, 1e-9)
		assert.InDelta(t, 355.0, final.FinalAssessmentTotalIndividualScore, 1e-9)
		assert.InDelta(t, 355.0/330.0*100, final.FinalAssessmentAchievementPercentage, 1e-9)
		assert.Equal(t, constants.FinalMS, final.FinalAssessmentConclusionCode)
	})

	t.Run("feed tersimpan untuk replay", func(t *testing.T) {
		p, err := f.store.ParticipantByID(ctx, f.participantID)
		require.NoError(t, err)
		assert.NotEmpty(t, p.ParticipantRawRatings)
	})
}

func TestDerivedRatingSkipsInactiveSubAspects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ov := overrideService.NewOverrideContext(f.templateID, &overrideService.OverrideSet{
		ActiveSubAspects: map[string]bool{"verbal": false},
	})

	feed := defaultFeed()
	feed[constants.CategoryPotensi][0].SubAspects = []dto.SubAspectRatingInput{
		{SubAspectCode: "logika", IndividualRating: 4},
		{SubAspectCode: "verbal", IndividualRating: 2},
	}

	require.NoError(t, f.calc.CalculateParticipant(ctx, ov, f.participantID, feed))

	potensi, err := f.store.CategoryAssessmentByCode(ctx, f.participantID, constants.CategoryPotensi)
	require.NoError(t, err)
	rows, err := f.store.AspectAssessmentsByCategoryAssessment(ctx, potensi.CategoryAssessmentID)
	require.NoError(t, err)
	for _, aa := range rows {
		if aa.AspectAssessmentAspectCode == "kecerdasan" {
			// verbal=2 nonaktif, rata-rata hanya dari logika=4
			assert.InDelta(t, 4.0, aa.AspectAssessmentIndividualRating, 1e-9)
		}
	}
}

func TestRecalculateParticipantIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ov := overrideService.OverrideContext{}

	require.NoError(t, f.calc.CalculateParticipant(ctx, ov, f.participantID, defaultFeed()))
	first, err := f.store.CategoryAssessmentByCode(ctx, f.participantID, constants.CategoryPotensi)
	require.NoError(t, err)

	require.NoError(t, f.calc.RecalculateParticipant(ctx, ov, f.participantID))
	require.NoError(t, f.calc.RecalculateParticipant(ctx, ov, f.participantID))

	second, err := f.store.CategoryAssessmentByCode(ctx, f.participantID, constants.CategoryPotensi)
	require.NoError(t, err)

	// total tidak menggandakan diri pada replay
	assert.InDelta(t, first.CategoryAssessmentIndividualScore, second.CategoryAssessmentIndividualScore, 1e-9)
	assert.InDelta(t, first.CategoryAssessmentStandardScore, second.CategoryAssessmentStandardScore, 1e-9)
	assert.Equal(t, first.CategoryAssessmentConclusionCode, second.CategoryAssessmentConclusionCode)
}

func TestOverrideExcludesAspectAndReweights(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ov := overrideService.NewOverrideContext(f.templateID, &overrideService.OverrideSet{
		ActiveAspects: map[string]bool{"kepribadian": false},
		AspectWeights: map[string]int{"kecerdasan": 60, "ketelitian": 40, "kepribadian": 0},
	})

	require.NoError(t, f.calc.CalculateParticipant(ctx, ov, f.participantID, defaultFeed()))

	potensi, err := f.store.CategoryAssessmentByCode(ctx, f.participantID, constants.CategoryPotensi)
	require.NoError(t, err)
	// kecerdasan 4×60 + ketelitian 4×40; kepribadian tidak dihitung
	assert.InDelta(t, 400.0, potensi.CategoryAssessmentIndividualScore, 1e-9)
	assert.InDelta(t, 3.0*60+4.0*40, potensi.CategoryAssessmentStandardScore, 1e-9)
}

func TestSubAspectStandardSnapshotImmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ov := overrideService.OverrideContext{}

	require.NoError(t, f.calc.CalculateParticipant(ctx, ov, f.participantID, defaultFeed()))

	// master diedit setelah penilaian pertama
	for _, sub := range f.store.subAspects {
		if sub.AssessmentSubAspectCode == "logika" {
			sub.AssessmentSubAspectStandardRating = 5
		}
	}
	// cache baru supaya master hasil edit terbaca
	f.calc = NewCalculator(f.store, templateService.NewTemplateCache(f.store))
	require.NoError(t, f.calc.RecalculateParticipant(ctx, ov, f.participantID))

	potensi, err := f.store.CategoryAssessmentByCode(ctx, f.participantID, constants.CategoryPotensi)
	require.NoError(t, err)
	rows, err := f.store.AspectAssessmentsByCategoryAssessment(ctx, potensi.CategoryAssessmentID)
	require.NoError(t, err)
	for _, aa := range rows {
		if aa.AspectAssessmentAspectCode != "kecerdasan" {
			continue
		}
		subs, err := f.store.SubAspectAssessmentsByAspectAssessment(ctx, aa.AspectAssessmentID)
		require.NoError(t, err)
		for _, sub := range subs {
			if sub.SubAspectAssessmentSubAspectCode == "logika" {
				// snapshot historis tetap 3 walau master sudah jadi 5
				assert.Equal(t, 3, sub.SubAspectAssessmentStandardRating)
			}
		}
	}
}

func TestRecalculateWithoutStoredFeed(t *testing.T) {
	f := newFixture(t)

	err := f.calc.RecalculateParticipant(context.Background(), overrideService.OverrideContext{}, f.participantID)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInvalidRatingRollsBackParticipant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	feed := defaultFeed()
	feed[constants.CategoryKompetensi][0].IndividualRating = intPtr(6)

	err := f.calc.CalculateParticipant(ctx, overrideService.OverrideContext{}, f.participantID, feed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRating)

	// transaksi batal seluruhnya: feed dan agregat tidak tersimpan
	p, err := f.store.ParticipantByID(ctx, f.participantID)
	require.NoError(t, err)
	assert.Empty(t, p.ParticipantRawRatings)
	assert.Empty(t, f.store.categoryAssessments)
}

func TestTransactionRollbackOnStorageFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.failFinalFor[f.participantID] = true

	err := f.calc.CalculateParticipant(ctx, overrideService.OverrideContext{}, f.participantID, defaultFeed())
	require.Error(t, err)

	assert.Empty(t, f.store.categoryAssessments)
	assert.Empty(t, f.store.aspectAssessments)
	assert.Empty(t, f.store.finalAssessments)
}

func TestRecalculateEventContinuesPastFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ov := overrideService.OverrideContext{}

	// peserta pertama punya feed tersimpan, peserta kedua belum
	require.NoError(t, f.calc.CalculateParticipant(ctx, ov, f.participantID, defaultFeed()))
	orphanID := f.addParticipant("P-002")

	result, err := f.calc.RecalculateEvent(ctx, ov, f.eventID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, orphanID, result.Failures[0].ParticipantID)
}

func TestRecalculateEventHonorsCancellation(t *testing.T) {
	f := newFixture(t)
	ov := overrideService.OverrideContext{}
	require.NoError(t, f.calc.CalculateParticipant(context.Background(), ov, f.participantID, defaultFeed()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := f.calc.RecalculateEvent(ctx, ov, f.eventID, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, result.Succeeded)
}

func TestRecalculateEventFormationFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ov := overrideService.OverrideContext{}
	require.NoError(t, f.calc.CalculateParticipant(ctx, ov, f.participantID, defaultFeed()))

	otherFormation := uuid.New()
	f.store.formations[otherFormation] = &eventModel.PositionFormationModel{
		PositionFormationID:         otherFormation,
		PositionFormationEventID:    f.eventID,
		PositionFormationTemplateID: f.templateID,
	}
	other := f.addParticipant("P-003")
	f.store.participants[other].ParticipantPositionFormationID = otherFormation

	result, err := f.calc.RecalculateEvent(ctx, ov, f.eventID, &f.formationID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Succeeded)
}
