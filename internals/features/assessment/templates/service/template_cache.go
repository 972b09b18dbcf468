// file: internals/features/assessment/templates/service/template_cache.go
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"asesmenku_backend/internals/features/assessment/repository"
	model "asesmenku_backend/internals/features/assessment/templates/model"
)

// TemplateCache menyimpan master data template → kategori → aspek → sub-aspek
// di memori selama satu request/worker. Menilai satu peserta butuh lookup
// kode→entity berulang kali lintas banyak sub-aspek; tanpa cache ini tiap
// lookup jadi satu query.
//
// TIDAK aman untuk dipakai lintas goroutine: satu instance per request /
// per worker, jangan dijadikan singleton global.
type TemplateCache struct {
	store repository.TemplateStore

	preloaded map[uuid.UUID]bool

	categoriesByID  map[uuid.UUID]*model.AssessmentCategoryModel
	aspectsByID     map[uuid.UUID]*model.AssessmentAspectModel
	subAspectsByID  map[uuid.UUID]*model.AssessmentSubAspectModel
	categoryByCode  map[uuid.UUID]map[string]*model.AssessmentCategoryModel
	aspectByCode    map[uuid.UUID]map[string]*model.AssessmentAspectModel
	subAspectByCode map[uuid.UUID]map[string]*model.AssessmentSubAspectModel

	aspectsByCategory  map[uuid.UUID][]*model.AssessmentAspectModel
	subAspectsByAspect map[uuid.UUID][]*model.AssessmentSubAspectModel
}

func NewTemplateCache(store repository.TemplateStore) *TemplateCache {
	c := &TemplateCache{store: store}
	c.reset()
	return c
}

func (c *TemplateCache) reset() {
	c.preloaded = make(map[uuid.UUID]bool)
	c.categoriesByID = make(map[uuid.UUID]*model.AssessmentCategoryModel)
	c.aspectsByID = make(map[uuid.UUID]*model.AssessmentAspectModel)
	c.subAspectsByID = make(map[uuid.UUID]*model.AssessmentSubAspectModel)
	c.categoryByCode = make(map[uuid.UUID]map[string]*model.AssessmentCategoryModel)
	c.aspectByCode = make(map[uuid.UUID]map[string]*model.AssessmentAspectModel)
	c.subAspectByCode = make(map[uuid.UUID]map[string]*model.AssessmentSubAspectModel)
	c.aspectsByCategory = make(map[uuid.UUID][]*model.AssessmentAspectModel)
	c.subAspectsByAspect = make(map[uuid.UUID][]*model.AssessmentSubAspectModel)
}

// Clear membuang seluruh isi cache. Dipanggil saat master data berubah
// di tengah request supaya lookup berikutnya membaca data segar.
func (c *TemplateCache) Clear() { c.reset() }

// Preload memuat seluruh pohon template sekali jalan. Idempoten:
// pemanggilan kedua untuk template yang sama adalah no-op.
func (c *TemplateCache) Preload(ctx context.Context, templateID uuid.UUID) error {
	if c.preloaded[templateID] {
		return nil
	}

	categories, err := c.store.CategoriesByTemplate(ctx, templateID)
	if err != nil {
		return err
	}
	for i := range categories {
		cat := &categories[i]
		c.putCategory(cat)

		aspects, err := c.store.AspectsByCategory(ctx, cat.AssessmentCategoryID)
		if err != nil {
			return err
		}
		list := make([]*model.AssessmentAspectModel, 0, len(aspects))
		for j := range aspects {
			asp := &aspects[j]
			c.putAspect(asp)
			list = append(list, asp)

			subs, err := c.store.SubAspectsByAspect(ctx, asp.AssessmentAspectID)
			if err != nil {
				return err
			}
			subList := make([]*model.AssessmentSubAspectModel, 0, len(subs))
			for k := range subs {
				sub := &subs[k]
				c.putSubAspect(sub)
				subList = append(subList, sub)
			}
			c.subAspectsByAspect[asp.AssessmentAspectID] = subList
		}
		c.aspectsByCategory[cat.AssessmentCategoryID] = list
	}

	c.preloaded[templateID] = true
	return nil
}

func (c *TemplateCache) putCategory(m *model.AssessmentCategoryModel) {
	c.categoriesByID[m.AssessmentCategoryID] = m
	byCode := c.categoryByCode[m.AssessmentCategoryTemplateID]
	if byCode == nil {
		byCode = make(map[string]*model.AssessmentCategoryModel)
		c.categoryByCode[m.AssessmentCategoryTemplateID] = byCode
	}
	byCode[m.AssessmentCategoryCode] = m
}

func (c *TemplateCache) putAspect(m *model.AssessmentAspectModel) {
	c.aspectsByID[m.AssessmentAspectID] = m
	byCode := c.aspectByCode[m.AssessmentAspectTemplateID]
	if byCode == nil {
		byCode = make(map[string]*model.AssessmentAspectModel)
		c.aspectByCode[m.AssessmentAspectTemplateID] = byCode
	}
	byCode[m.AssessmentAspectCode] = m
}

func (c *TemplateCache) putSubAspect(m *model.AssessmentSubAspectModel) {
	c.subAspectsByID[m.AssessmentSubAspectID] = m
	byCode := c.subAspectByCode[m.AssessmentSubAspectTemplateID]
	if byCode == nil {
		byCode = make(map[string]*model.AssessmentSubAspectModel)
		c.subAspectByCode[m.AssessmentSubAspectTemplateID] = byCode
	}
	byCode[m.AssessmentSubAspectCode] = m
}

// Lookup by code, miss jatuh ke repository lalu mengisi cache, jadi
// kebenaran tidak pernah bergantung pada Preload sudah jalan atau belum.

func (c *TemplateCache) CategoryByCode(ctx context.Context, templateID uuid.UUID, code string) (*model.AssessmentCategoryModel, error) {
	if byCode := c.categoryByCode[templateID]; byCode != nil {
		if m, ok := byCode[code]; ok {
			return m, nil
		}
	}
	m, err := c.store.CategoryByCode(ctx, templateID, code)
	if err != nil {
		return nil, err
	}
	c.putCategory(m)
	return m, nil
}

func (c *TemplateCache) AspectByCode(ctx context.Context, templateID uuid.UUID, code string) (*model.AssessmentAspectModel, error) {
	if byCode := c.aspectByCode[templateID]; byCode != nil {
		if m, ok := byCode[code]; ok {
			return m, nil
		}
	}
	m, err := c.store.AspectByCode(ctx, templateID, code)
	if err != nil {
		return nil, err
	}
	c.putAspect(m)
	return m, nil
}

func (c *TemplateCache) SubAspectByCode(ctx context.Context, templateID uuid.UUID, code string) (*model.AssessmentSubAspectModel, error) {
	if byCode := c.subAspectByCode[templateID]; byCode != nil {
		if m, ok := byCode[code]; ok {
			return m, nil
		}
	}
	m, err := c.store.SubAspectByCode(ctx, templateID, code)
	if err != nil {
		return nil, err
	}
	c.putSubAspect(m)
	return m, nil
}

func (c *TemplateCache) CategoryByID(ctx context.Context, id uuid.UUID) (*model.AssessmentCategoryModel, error) {
	if m, ok := c.categoriesByID[id]; ok {
		return m, nil
	}
	m, err := c.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.putCategory(m)
	return m, nil
}

func (c *TemplateCache) AspectByID(ctx context.Context, id uuid.UUID) (*model.AssessmentAspectModel, error) {
	if m, ok := c.aspectsByID[id]; ok {
		return m, nil
	}
	m, err := c.store.AspectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.putAspect(m)
	return m, nil
}

func (c *TemplateCache) SubAspectByID(ctx context.Context, id uuid.UUID) (*model.AssessmentSubAspectModel, error) {
	if m, ok := c.subAspectsByID[id]; ok {
		return m, nil
	}
	m, err := c.store.SubAspectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.putSubAspect(m)
	return m, nil
}

// CategoriesByTemplate mengembalikan kategori terurut; lewat Preload supaya
// hasilnya konsisten dengan isi cache.
func (c *TemplateCache) CategoriesByTemplate(ctx context.Context, templateID uuid.UUID) ([]*model.AssessmentCategoryModel, error) {
	if err := c.Preload(ctx, templateID); err != nil {
		return nil, err
	}
	var rows []*model.AssessmentCategoryModel
	for _, m := range c.categoryByCode[templateID] {
		rows = append(rows, m)
	}
	sortCategories(rows)
	return rows, nil
}

func (c *TemplateCache) AspectsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*model.AssessmentAspectModel, error) {
	if list, ok := c.aspectsByCategory[categoryID]; ok {
		return list, nil
	}
	aspects, err := c.store.AspectsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	list := make([]*model.AssessmentAspectModel, 0, len(aspects))
	for i := range aspects {
		c.putAspect(&aspects[i])
		list = append(list, &aspects[i])
	}
	c.aspectsByCategory[categoryID] = list
	return list, nil
}

func (c *TemplateCache) SubAspectsByAspect(ctx context.Context, aspectID uuid.UUID) ([]*model.AssessmentSubAspectModel, error) {
	if list, ok := c.subAspectsByAspect[aspectID]; ok {
		return list, nil
	}
	subs, err := c.store.SubAspectsByAspect(ctx, aspectID)
	if err != nil {
		return nil, err
	}
	list := make([]*model.AssessmentSubAspectModel, 0, len(subs))
	for i := range subs {
		c.putSubAspect(&subs[i])
		list = append(list, &subs[i])
	}
	c.subAspectsByAspect[aspectID] = list
	return list, nil
}

func sortCategories(rows []*model.AssessmentCategoryModel) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].AssessmentCategoryOrderIndex < rows[j].AssessmentCategoryOrderIndex
	})
}
