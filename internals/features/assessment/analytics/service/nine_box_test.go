// file: internals/features/assessment/analytics/service/nine_box_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBoundaries = NineBoxBoundaries{
	PotensiLow: 3.0, PotensiHigh: 4.0,
	KinerjaLow: 3.0, KinerjaHigh: 4.0,
}

func TestClassifyNineBox(t *testing.T) {
	cases := []struct {
		name    string
		potensi float64
		kinerja float64
		want    int
	}{
		{"dua-duanya rendah", 2.0, 2.0, 1},
		{"potensi rendah kinerja sedang", 2.0, 3.5, 2},
		{"potensi rendah kinerja tinggi", 2.0, 4.5, 3},
		{"potensi sedang kinerja rendah", 3.5, 2.0, 4},
		{"dua-duanya sedang", 3.5, 3.5, 5},
		{"potensi sedang kinerja tinggi", 3.5, 4.8, 6},
		{"potensi tinggi kinerja rendah", 4.5, 1.0, 7},
		{"potensi tinggi kinerja sedang", 4.5, 3.5, 8},
		{"dua-duanya tinggi", 4.5, 4.5, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyNineBox(tc.potensi, tc.kinerja, testBoundaries))
		})
	}
}

func TestClassifyNineBoxBoundaryValues(t *testing.T) {
	// tepat di batas bawah masuk level tengah, tepat di batas atas masuk level tinggi
	assert.Equal(t, 5, ClassifyNineBox(3.0, 3.0, testBoundaries))
	assert.Equal(t, 9, ClassifyNineBox(4.0, 4.0, testBoundaries))
}

func TestNineBoxLabel(t *testing.T) {
	assert.Equal(t, "Bintang", NineBoxLabel(9))
	assert.Equal(t, "Perlu Perhatian", NineBoxLabel(1))
	assert.Empty(t, NineBoxLabel(0))
}

func TestMemoInvalidatedByOverrideVersion(t *testing.T) {
	s := NewAnalyticsService(nil)
	s.remember("kunci", 1, "hasil")

	v, ok := s.lookup("kunci", 1)
	assert.True(t, ok)
	assert.Equal(t, "hasil", v)

	// versi override berubah → memo tidak berlaku lagi
	_, ok = s.lookup("kunci", 2)
	assert.False(t, ok)

	_, ok = s.lookup("kunci-lain", 1)
	assert.False(t, ok)
}

// Hasil yang dihafal satu evaluasi tidak boleh selamat ke evaluasi berikutnya.
// Rekalkulasi mengubah agregat tanpa menyentuh versi override, jadi satu-satunya
// jaminan kesegaran adalah memo ikut mati bersama instance service-nya.
func TestMemoDiesWithServiceInstance(t *testing.T) {
	first := NewAnalyticsService(nil)
	first.remember("ninebox:event:formasi", 7, &NineBoxMatrix{})

	v, ok := first.lookup("ninebox:event:formasi", 7)
	assert.True(t, ok)
	assert.NotNil(t, v)

	// evaluasi baru = instance baru, memo lama tidak terlihat
	second := NewAnalyticsService(nil)
	_, ok = second.lookup("ninebox:event:formasi", 7)
	assert.False(t, ok)
}
