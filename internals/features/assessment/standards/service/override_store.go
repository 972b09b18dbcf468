// file: internals/features/assessment/standards/service/override_store.go
package service

import (
	"sync"

	"github.com/google/uuid"
)

// OverrideSet adalah standar dinamis satu template dalam satu sesi:
// aktivasi + bobot aspek dan aktivasi sub-aspek, TANPA mengubah template
// tersimpan. Key map = kode aspek/sub-aspek; entri yang tidak ada berarti
// default (aktif, bobot master).
type OverrideSet struct {
	ActiveAspects    map[string]bool `json:"active_aspects"`
	AspectWeights    map[string]int  `json:"aspect_weights"`
	ActiveSubAspects map[string]bool `json:"active_sub_aspects"`
}

func (s *OverrideSet) clone() *OverrideSet {
	cp := &OverrideSet{
		ActiveAspects:    make(map[string]bool, len(s.ActiveAspects)),
		AspectWeights:    make(map[string]int, len(s.AspectWeights)),
		ActiveSubAspects: make(map[string]bool, len(s.ActiveSubAspects)),
	}
	for k, v := range s.ActiveAspects {
		cp.ActiveAspects[k] = v
	}
	for k, v := range s.AspectWeights {
		cp.AspectWeights[k] = v
	}
	for k, v := range s.ActiveSubAspects {
		cp.ActiveSubAspects[k] = v
	}
	return cp
}

// OverrideStore menyimpan override set per (sesi, template) di memori proses.
// Sesuai sifatnya (eksperimen what-if) data ini TIDAK pernah dipersist;
// hilang bersama sesi. Aman dipakai lintas request karena ber-mutex,
// dan dua sesi tidak pernah saling melihat set masing-masing.
type OverrideStore struct {
	mu       sync.RWMutex
	sessions map[string]map[uuid.UUID]*OverrideSet
	versions map[string]uint64
}

func NewOverrideStore() *OverrideStore {
	return &OverrideStore{
		sessions: make(map[string]map[uuid.UUID]*OverrideSet),
		versions: make(map[string]uint64),
	}
}

// Get mengembalikan salinan override set, atau nil bila sesi/template
// belum punya (artinya semua nilai default).
func (s *OverrideStore) Get(sessionKey string, templateID uuid.UUID) *OverrideSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byTemplate := s.sessions[sessionKey]
	if byTemplate == nil {
		return nil
	}
	set := byTemplate[templateID]
	if set == nil {
		return nil
	}
	return set.clone()
}

// Replace mengganti override set untuk (sesi, template). Validasi sudah
// harus lolos SEBELUM sampai sini (lihat StandardService.SaveBulkSelection).
func (s *OverrideStore) Replace(sessionKey string, templateID uuid.UUID, set *OverrideSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byTemplate := s.sessions[sessionKey]
	if byTemplate == nil {
		byTemplate = make(map[uuid.UUID]*OverrideSet)
		s.sessions[sessionKey] = byTemplate
	}
	byTemplate[templateID] = set.clone()
	s.versions[sessionKey]++
}

// Clear membuang override (sesi, template); scoring kembali ke standar master.
func (s *OverrideStore) Clear(sessionKey string, templateID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if byTemplate := s.sessions[sessionKey]; byTemplate != nil {
		delete(byTemplate, templateID)
	}
	s.versions[sessionKey]++
}

// Version naik setiap kali override sesi berubah; dipakai analytics untuk
// membatalkan memo hasil hitungan.
func (s *OverrideStore) Version(sessionKey string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions[sessionKey]
}

/* ========================================================
   OverrideContext
======================================================== */

// OverrideContext adalah nilai eksplisit yang dibawa masuk ke SETIAP
// pemanggilan scoring/agregasi, bukan state global atau session implisit.
// Layer HTTP yang menghidrasinya dari OverrideStore; CLI batch memakai
// zero value (= murni standar master).
type OverrideContext struct {
	TemplateID uuid.UUID
	set        *OverrideSet
}

func NewOverrideContext(templateID uuid.UUID, set *OverrideSet) OverrideContext {
	return OverrideContext{TemplateID: templateID, set: set}
}

// IsAspectActive: default true bila tidak ada entri (kode tak dikenal ⇒ aman).
func (o OverrideContext) IsAspectActive(code string) bool {
	if o.set == nil {
		return true
	}
	active, ok := o.set.ActiveAspects[code]
	if !ok {
		return true
	}
	return active
}

// AspectWeightOr: bobot override bila ada, selain itu bobot master yang
// diberikan pemanggil.
func (o OverrideContext) AspectWeightOr(code string, masterWeight int) int {
	if o.set == nil {
		return masterWeight
	}
	if w, ok := o.set.AspectWeights[code]; ok {
		return w
	}
	return masterWeight
}

// IsSubAspectActive: default true bila tidak ada entri.
func (o OverrideContext) IsSubAspectActive(code string) bool {
	if o.set == nil {
		return true
	}
	active, ok := o.set.ActiveSubAspects[code]
	if !ok {
		return true
	}
	return active
}

// HasOverrides: false untuk zero value / set kosong.
func (o OverrideContext) HasOverrides() bool {
	if o.set == nil {
		return false
	}
	return len(o.set.ActiveAspects) > 0 || len(o.set.AspectWeights) > 0 || len(o.set.ActiveSubAspects) > 0
}
