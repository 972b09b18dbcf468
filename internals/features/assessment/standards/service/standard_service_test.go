// file: internals/features/assessment/standards/service/standard_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asesmenku_backend/internals/features/assessment/repository"
	templateModel "asesmenku_backend/internals/features/assessment/templates/model"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

// masterStore: TemplateStore minimal untuk menghidupkan TemplateCache di test.
type masterStore struct {
	templateID uuid.UUID
	categories []templateModel.AssessmentCategoryModel
	aspects    []templateModel.AssessmentAspectModel
	subAspects []templateModel.AssessmentSubAspectModel
}

func (m *masterStore) TemplateByID(_ context.Context, id uuid.UUID) (*templateModel.AssessmentTemplateModel, error) {
	if id != m.templateID {
		return nil, repository.ErrNotFound
	}
	return &templateModel.AssessmentTemplateModel{AssessmentTemplateID: id}, nil
}

func (m *masterStore) Templates(context.Context) ([]templateModel.AssessmentTemplateModel, error) {
	return []templateModel.AssessmentTemplateModel{{AssessmentTemplateID: m.templateID}}, nil
}

func (m *masterStore) CategoriesByTemplate(_ context.Context, templateID uuid.UUID) ([]templateModel.AssessmentCategoryModel, error) {
	var out []templateModel.AssessmentCategoryModel
	for _, c := range m.categories {
		if c.AssessmentCategoryTemplateID == templateID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *masterStore) CategoryByID(_ context.Context, id uuid.UUID) (*templateModel.AssessmentCategoryModel, error) {
	for i := range m.categories {
		if m.categories[i].AssessmentCategoryID == id {
			return &m.categories[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *masterStore) CategoryByCode(_ context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentCategoryModel, error) {
	for i := range m.categories {
		if m.categories[i].AssessmentCategoryTemplateID == templateID &&
			m.categories[i].AssessmentCategoryCode == code {
			return &m.categories[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *masterStore) AspectsByCategory(_ context.Context, categoryID uuid.UUID) ([]templateModel.AssessmentAspectModel, error) {
	var out []templateModel.AssessmentAspectModel
	for _, a := range m.aspects {
		if a.AssessmentAspectCategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *masterStore) AspectByID(_ context.Context, id uuid.UUID) (*templateModel.AssessmentAspectModel, error) {
	for i := range m.aspects {
		if m.aspects[i].AssessmentAspectID == id {
			return &m.aspects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *masterStore) AspectByCode(_ context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentAspectModel, error) {
	for i := range m.aspects {
		if m.aspects[i].AssessmentAspectTemplateID == templateID &&
			m.aspects[i].AssessmentAspectCode == code {
			return &m.aspects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *masterStore) SubAspectsByAspect(_ context.Context, aspectID uuid.UUID) ([]templateModel.AssessmentSubAspectModel, error) {
	var out []templateModel.AssessmentSubAspectModel
	for _, s := range m.subAspects {
		if s.AssessmentSubAspectAspectID == aspectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *masterStore) SubAspectByID(_ context.Context, id uuid.UUID) (*templateModel.AssessmentSubAspectModel, error) {
	for i := range m.subAspects {
		if m.subAspects[i].AssessmentSubAspectID == id {
			return &m.subAspects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *masterStore) SubAspectByCode(_ context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentSubAspectModel, error) {
	for i := range m.subAspects {
		if m.subAspects[i].AssessmentSubAspectTemplateID == templateID &&
			m.subAspects[i].AssessmentSubAspectCode == code {
			return &m.subAspects[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func newMasterStore() *masterStore {
	templateID := uuid.New()
	m := &masterStore{templateID: templateID}

	addCategory := func(code string, order int) uuid.UUID {
		id := uuid.New()
		m.categories = append(m.categories, templateModel.AssessmentCategoryModel{
			AssessmentCategoryID:         id,
			AssessmentCategoryTemplateID: templateID,
			AssessmentCategoryCode:       code,
			AssessmentCategoryOrderIndex: order,
		})
		return id
	}
	addAspect := func(categoryID uuid.UUID, code string, weight int) uuid.UUID {
		id := uuid.New()
		m.aspects = append(m.aspects, templateModel.AssessmentAspectModel{
			AssessmentAspectID:               id,
			AssessmentAspectCategoryID:       categoryID,
			AssessmentAspectTemplateID:       templateID,
			AssessmentAspectCode:             code,
			AssessmentAspectWeightPercentage: weight,
		})
		return id
	}
	addSub := func(aspectID uuid.UUID, code string) {
		m.subAspects = append(m.subAspects, templateModel.AssessmentSubAspectModel{
			AssessmentSubAspectID:         uuid.New(),
			AssessmentSubAspectAspectID:   aspectID,
			AssessmentSubAspectTemplateID: templateID,
			AssessmentSubAspectCode:       code,
		})
	}

	potensi := addCategory("potensi", 1)
	kompetensi := addCategory("kompetensi", 2)

	kecerdasan := addAspect(potensi, "kecerdasan", 40)
	addSub(kecerdasan, "logika")
	addSub(kecerdasan, "verbal")
	ketelitian := addAspect(potensi, "ketelitian", 35)
	addSub(ketelitian, "fokus")
	kepribadian := addAspect(potensi, "kepribadian", 25)
	addSub(kepribadian, "stabilitas")

	addAspect(kompetensi, "integritas", 40)
	addAspect(kompetensi, "kerjasama", 35)
	addAspect(kompetensi, "komunikasi", 25)

	return m
}

func newStandardService(m *masterStore) (*StandardService, *OverrideStore) {
	overrides := NewOverrideStore()
	cache := templateService.NewTemplateCache(m)
	return NewStandardService(overrides, cache), overrides
}

func TestCurrentSelectionReflectsMasterDefaults(t *testing.T) {
	m := newMasterStore()
	svc, _ := newStandardService(m)

	sel, err := svc.CurrentSelection(context.Background(), "sesi", m.templateID)
	require.NoError(t, err)
	require.Len(t, sel.Aspects, 6)

	for _, a := range sel.Aspects {
		assert.True(t, a.Active, a.Code)
		assert.Equal(t, a.MasterWeight, a.Weight, a.Code)
	}
}

func TestSaveBulkSelectionRejectsInvalidAndKeepsOldState(t *testing.T) {
	m := newMasterStore()
	svc, overrides := newStandardService(m)
	ctx := context.Background()

	// simpan seleksi valid dulu
	sel, err := svc.CurrentSelection(ctx, "sesi", m.templateID)
	require.NoError(t, err)
	sel.SetAspectWeight("kecerdasan", 50)
	sel.SetAspectWeight("ketelitian", 25)
	require.NoError(t, svc.SaveBulkSelection(ctx, "sesi", m.templateID, sel))
	versionAfterValid := overrides.Version("sesi")

	// lalu coba yang melanggar: bobot tidak 100
	bad, err := svc.CurrentSelection(ctx, "sesi", m.templateID)
	require.NoError(t, err)
	bad.SetAspectWeight("kecerdasan", 10)

	err = svc.SaveBulkSelection(ctx, "sesi", m.templateID, bad)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Violations)

	// override lama tetap berlaku, versi tidak naik
	assert.Equal(t, versionAfterValid, overrides.Version("sesi"))
	current, err := svc.CurrentSelection(ctx, "sesi", m.templateID)
	require.NoError(t, err)
	assert.Equal(t, 50, current.find("kecerdasan").Weight)
}

func TestResetRestoresMasterDefaults(t *testing.T) {
	m := newMasterStore()
	svc, _ := newStandardService(m)
	ctx := context.Background()

	sel, err := svc.CurrentSelection(ctx, "sesi", m.templateID)
	require.NoError(t, err)
	sel.DeactivateAspect("kepribadian")
	sel.SetAspectWeight("kecerdasan", 60)
	sel.SetAspectWeight("ketelitian", 40)
	require.NoError(t, svc.SaveBulkSelection(ctx, "sesi", m.templateID, sel))

	svc.Reset("sesi", m.templateID)

	current, err := svc.CurrentSelection(ctx, "sesi", m.templateID)
	require.NoError(t, err)
	assert.True(t, current.find("kepribadian").Active)
	assert.Equal(t, 40, current.find("kecerdasan").Weight)
}

func TestHasCategoryAdjustments(t *testing.T) {
	m := newMasterStore()
	svc, _ := newStandardService(m)
	ctx := context.Background()

	adjusted, err := svc.HasCategoryAdjustments(ctx, "sesi", m.templateID, "potensi")
	require.NoError(t, err)
	assert.False(t, adjusted)

	sel, err := svc.CurrentSelection(ctx, "sesi", m.templateID)
	require.NoError(t, err)
	sel.ToggleSubAspect("kecerdasan", "verbal", false)
	require.NoError(t, svc.SaveBulkSelection(ctx, "sesi", m.templateID, sel))

	adjusted, err = svc.HasCategoryAdjustments(ctx, "sesi", m.templateID, "potensi")
	require.NoError(t, err)
	assert.True(t, adjusted)

	// kategori lain tidak tersentuh
	adjusted, err = svc.HasCategoryAdjustments(ctx, "sesi", m.templateID, "kompetensi")
	require.NoError(t, err)
	assert.False(t, adjusted)
}
