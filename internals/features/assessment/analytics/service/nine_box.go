// file: internals/features/assessment/analytics/service/nine_box.go
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"asesmenku_backend/internals/constants"
)

// NineBoxBoundaries adalah batas klasifikasi kedua sumbu. Nilainya
// konfigurasi dari pemanggil, bukan dihitung di sini.
type NineBoxBoundaries struct {
	PotensiLow  float64 `json:"potensi_low"`
	PotensiHigh float64 `json:"potensi_high"`
	KinerjaLow  float64 `json:"kinerja_low"`
	KinerjaHigh float64 `json:"kinerja_high"`
}

// Label kotak 1..9 (kotak 9 = potensi tinggi × kinerja tinggi).
var nineBoxLabels = map[int]string{
	1: "Perlu Perhatian",
	2: "Perlu Pengembangan Kinerja",
	3: "Pekerja Andal",
	4: "Perlu Pengembangan Potensi",
	5: "Pekerja Inti",
	6: "Kontributor Kuat",
	7: "Teka-Teki",
	8: "Talenta Berkembang",
	9: "Bintang",
}

// ClassifyNineBox memetakan (potensi, kinerja) ke kotak 1..9:
// level 1..3 per sumbu dari batas bawah/atas, kotak = (levelPotensi−1)×3 + levelKinerja.
func ClassifyNineBox(potensiRating, kinerjaRating float64, b NineBoxBoundaries) int {
	return (axisLevel(potensiRating, b.PotensiLow, b.PotensiHigh)-1)*3 +
		axisLevel(kinerjaRating, b.KinerjaLow, b.KinerjaHigh)
}

func axisLevel(v, low, high float64) int {
	switch {
	case v < low:
		return 1
	case v < high:
		return 2
	default:
		return 3
	}
}

func NineBoxLabel(box int) string { return nineBoxLabels[box] }

type NineBoxEntry struct {
	ParticipantID     uuid.UUID `json:"participant_id"`
	ParticipantName   string    `json:"participant_name"`
	ParticipantNumber string    `json:"participant_number"`
	PotensiRating     float64   `json:"potensi_rating"`
	KinerjaRating     float64   `json:"kinerja_rating"`
	Achievement       float64   `json:"achievement_percentage"`
	Box               int       `json:"box"`
	BoxLabel          string    `json:"box_label"`
}

type NineBoxMatrix struct {
	Boundaries NineBoxBoundaries `json:"boundaries"`
	Entries    []NineBoxEntry    `json:"entries"`
	BoxCounts  map[int]int       `json:"box_counts"`
}

// AnalyticsService: view analitis read-only di atas agregat yang sudah jadi.
// Instance dibuat per evaluasi (satu request), jadi memo di dalamnya tidak
// pernah lebih tua dari agregat di database. Versi override sesi ikut jadi
// kunci memo, hasil what-if tidak boleh menampilkan hitungan override lama.
type AnalyticsService struct {
	db *gorm.DB

	mu   sync.Mutex
	memo map[string]memoEntry
}

type memoEntry struct {
	version uint64
	value   interface{}
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db, memo: make(map[string]memoEntry)}
}

func (s *AnalyticsService) lookup(key string, version uint64) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.memo[key]
	if !ok || e.version != version {
		return nil, false
	}
	return e.value, true
}

func (s *AnalyticsService) remember(key string, version uint64, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memo[key] = memoEntry{version: version, value: value}
}

type nineBoxRow struct {
	ParticipantID     uuid.UUID
	ParticipantName   string
	ParticipantNumber string
	CategoryCode      string
	IndividualRating  float64
	Achievement       float64
}

// NineBoxMatrixData mengambil rating kedua kategori semua peserta
// (event, formasi) dalam satu query lalu mengklasifikasikan per kotak.
// overrideVersion = versi override sesi pemanggil (untuk memo).
func (s *AnalyticsService) NineBoxMatrixData(ctx context.Context, eventID, positionFormationID uuid.UUID, b NineBoxBoundaries, overrideVersion uint64) (*NineBoxMatrix, error) {
	key := fmt.Sprintf("ninebox:%s:%s:%+v", eventID, positionFormationID, b)
	if v, ok := s.lookup(key, overrideVersion); ok {
		return v.(*NineBoxMatrix), nil
	}

	var rows []nineBoxRow
	if err := s.db.WithContext(ctx).Raw(`
		SELECT
			p.participant_id                              AS participant_id,
			p.participant_name                            AS participant_name,
			p.participant_number                          AS participant_number,
			ca.category_assessment_category_code          AS category_code,
			ca.category_assessment_individual_rating      AS individual_rating,
			COALESCE(f.final_assessment_achievement_percentage, 0) AS achievement
		FROM participants p
		JOIN category_assessments ca
		  ON ca.category_assessment_participant_id = p.participant_id
		 AND ca.category_assessment_category_code = ANY(?)
		LEFT JOIN final_assessments f
		  ON f.final_assessment_participant_id = p.participant_id
		WHERE p.participant_event_id = ?
		  AND p.participant_position_formation_id = ?
		  AND p.participant_deleted_at IS NULL
		ORDER BY p.participant_number ASC
	`, pq.Array([]string{constants.CategoryPotensi, constants.CategoryKompetensi}), eventID, positionFormationID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	// pivot dua baris kategori per peserta jadi satu entry
	byParticipant := map[uuid.UUID]*NineBoxEntry{}
	order := []uuid.UUID{}
	for _, r := range rows {
		e := byParticipant[r.ParticipantID]
		if e == nil {
			e = &NineBoxEntry{
				ParticipantID:     r.ParticipantID,
				ParticipantName:   r.ParticipantName,
				ParticipantNumber: r.ParticipantNumber,
				Achievement:       r.Achievement,
			}
			byParticipant[r.ParticipantID] = e
			order = append(order, r.ParticipantID)
		}
		switch r.CategoryCode {
		case constants.CategoryPotensi:
			e.PotensiRating = r.IndividualRating
		case constants.CategoryKompetensi:
			e.KinerjaRating = r.IndividualRating
		}
	}

	matrix := &NineBoxMatrix{
		Boundaries: b,
		BoxCounts:  make(map[int]int),
	}
	for _, id := range order {
		e := byParticipant[id]
		e.Box = ClassifyNineBox(e.PotensiRating, e.KinerjaRating, b)
		e.BoxLabel = NineBoxLabel(e.Box)
		matrix.BoxCounts[e.Box]++
		matrix.Entries = append(matrix.Entries, *e)
	}

	s.remember(key, overrideVersion, matrix)
	return matrix, nil
}
