// file: internals/features/assessment/standards/service/selection.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

// Konfigurasi seleksi bertipe (bukan map-of-map): satu entri per aspek /
// sub-aspek, urutan mengikuti master.
type AspectConfig struct {
	Code   string `json:"code"`
	Active bool   `json:"active"`
	Weight int    `json:"weight"`
}

type SubAspectConfig struct {
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

// AspectSelection menggabungkan konfigurasi satu aspek + sub-aspeknya +
// konteks kategorinya untuk keperluan validasi.
type AspectSelection struct {
	AspectConfig
	CategoryCode string            `json:"category_code"`
	MasterWeight int               `json:"master_weight"`
	SubAspects   []SubAspectConfig `json:"sub_aspects"`
}

// Selection adalah editor standar dinamis satu template: dibangun dari
// master + override yang sedang berlaku, diedit bebas (boleh transien
// melanggar aturan), lalu divalidasi saat mau di-apply.
type Selection struct {
	TemplateID uuid.UUID         `json:"template_id"`
	Aspects    []AspectSelection `json:"aspects"`
}

// BuildSelection menyusun Selection dari struktur template (via cache)
// dan override set sesi (nil = semua default).
func BuildSelection(ctx context.Context, cache *templateService.TemplateCache, templateID uuid.UUID, set *OverrideSet) (*Selection, error) {
	categories, err := cache.CategoriesByTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	ov := NewOverrideContext(templateID, set)
	sel := &Selection{TemplateID: templateID}
	for _, cat := range categories {
		aspects, err := cache.AspectsByCategory(ctx, cat.AssessmentCategoryID)
		if err != nil {
			return nil, err
		}
		for _, asp := range aspects {
			item := AspectSelection{
				AspectConfig: AspectConfig{
					Code:   asp.AssessmentAspectCode,
					Active: ov.IsAspectActive(asp.AssessmentAspectCode),
					Weight: ov.AspectWeightOr(asp.AssessmentAspectCode, asp.AssessmentAspectWeightPercentage),
				},
				CategoryCode: cat.AssessmentCategoryCode,
				MasterWeight: asp.AssessmentAspectWeightPercentage,
			}
			subs, err := cache.SubAspectsByAspect(ctx, asp.AssessmentAspectID)
			if err != nil {
				return nil, err
			}
			for _, sub := range subs {
				item.SubAspects = append(item.SubAspects, SubAspectConfig{
					Code:   sub.AssessmentSubAspectCode,
					Active: ov.IsSubAspectActive(sub.AssessmentSubAspectCode),
				})
			}
			sel.Aspects = append(sel.Aspects, item)
		}
	}
	return sel, nil
}

func (s *Selection) find(code string) *AspectSelection {
	for i := range s.Aspects {
		if s.Aspects[i].Code == code {
			return &s.Aspects[i]
		}
	}
	return nil
}

// DeactivateAspect menonaktifkan aspek: bobotnya dipaksa 0 dan semua
// sub-aspeknya ikut nonaktif.
func (s *Selection) DeactivateAspect(code string) {
	a := s.find(code)
	if a == nil {
		return
	}
	a.Active = false
	a.Weight = 0
	for i := range a.SubAspects {
		a.SubAspects[i].Active = false
	}
}

// ActivateAspect mengaktifkan kembali aspek. Kalau aspek sebelumnya
// berbobot 0 dan punya sub-aspek tapi tidak ada yang aktif, sub-aspek
// pertama otomatis dipilih supaya aspek langsung bisa dinilai.
func (s *Selection) ActivateAspect(code string) {
	a := s.find(code)
	if a == nil {
		return
	}
	wasZero := a.Weight == 0
	a.Active = true
	if wasZero && len(a.SubAspects) > 0 && !a.hasActiveSubAspect() {
		a.SubAspects[0].Active = true
	}
}

func (a *AspectSelection) hasActiveSubAspect() bool {
	for _, sub := range a.SubAspects {
		if sub.Active {
			return true
		}
	}
	return false
}

// SetAspectWeight mengubah bobot satu aspek (boleh transien bikin total ≠ 100).
func (s *Selection) SetAspectWeight(code string, weight int) {
	if a := s.find(code); a != nil {
		a.Weight = weight
	}
}

// ToggleSubAspect mengubah aktivasi satu sub-aspek.
func (s *Selection) ToggleSubAspect(aspectCode, subAspectCode string, active bool) {
	a := s.find(aspectCode)
	if a == nil {
		return
	}
	for i := range a.SubAspects {
		if a.SubAspects[i].Code == subAspectCode {
			a.SubAspects[i].Active = active
			return
		}
	}
}

// DistributeWeights membagi rata bobot 100 ke aspek aktif per kategori:
// tiap aspek dapat ⌊100/N⌋, sisanya (100 − N×⌊100/N⌋) ditambahkan ke
// tepat satu aspek (yang pertama), total selalu persis 100.
// Aspek nonaktif dipaksa 0.
func (s *Selection) DistributeWeights() {
	byCategory := map[string][]*AspectSelection{}
	order := []string{}
	for i := range s.Aspects {
		a := &s.Aspects[i]
		if _, ok := byCategory[a.CategoryCode]; !ok {
			order = append(order, a.CategoryCode)
		}
		byCategory[a.CategoryCode] = append(byCategory[a.CategoryCode], a)
	}

	for _, cat := range order {
		var active []*AspectSelection
		for _, a := range byCategory[cat] {
			if a.Active {
				active = append(active, a)
			} else {
				a.Weight = 0
			}
		}
		n := len(active)
		if n == 0 {
			continue
		}
		base := 100 / n
		rem := 100 - base*n
		for i, a := range active {
			a.Weight = base
			if i == 0 {
				a.Weight += rem
			}
		}
	}
}

// Validate mengembalikan SEMUA pelanggaran aturan sekaligus (satu pesan per
// aturan), supaya UI bisa menampilkan semuanya, bukan cuma yang pertama.
func (s *Selection) Validate() []string {
	var violations []string

	type catAgg struct {
		code        string
		activeCount int
		weightSum   int
	}
	aggs := []*catAgg{}
	byCode := map[string]*catAgg{}
	for i := range s.Aspects {
		a := &s.Aspects[i]
		agg := byCode[a.CategoryCode]
		if agg == nil {
			agg = &catAgg{code: a.CategoryCode}
			byCode[a.CategoryCode] = agg
			aggs = append(aggs, agg)
		}
		if a.Active {
			agg.activeCount++
			agg.weightSum += a.Weight
			if len(a.SubAspects) > 0 && !a.hasActiveSubAspect() {
				violations = append(violations,
					fmt.Sprintf("Aspek %s aktif tapi tidak punya sub-aspek aktif (minimal 1)", a.Code))
			}
		}
	}

	for _, agg := range aggs {
		if agg.weightSum != 100 {
			violations = append(violations,
				fmt.Sprintf("Total bobot aspek aktif pada kategori %s harus 100, sekarang %d", agg.code, agg.weightSum))
		}
		if agg.activeCount < 3 {
			violations = append(violations,
				fmt.Sprintf("Minimal 3 aspek aktif pada kategori %s, sekarang %d", agg.code, agg.activeCount))
		}
	}

	return violations
}

// ToOverrideSet menurunkan OverrideSet dari seleksi. Semua entri ditulis
// eksplisit (bukan cuma delta) supaya round-trip getter mengembalikan
// persis nilai yang disimpan.
func (s *Selection) ToOverrideSet() *OverrideSet {
	set := &OverrideSet{
		ActiveAspects:    make(map[string]bool),
		AspectWeights:    make(map[string]int),
		ActiveSubAspects: make(map[string]bool),
	}
	for _, a := range s.Aspects {
		set.ActiveAspects[a.Code] = a.Active
		set.AspectWeights[a.Code] = a.Weight
		for _, sub := range a.SubAspects {
			set.ActiveSubAspects[sub.Code] = sub.Active
		}
	}
	return set
}
