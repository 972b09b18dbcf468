package constants

// ==========================
// ✅ Kode kategori top-level
// ==========================
// Final assessment selalu menggabungkan dua kategori ini;
// kode lain tidak ikut dihitung di level final.
const (
	CategoryPotensi    = "potensi"
	CategoryKompetensi = "kompetensi"
)

// ==========================
// ✅ Kesimpulan level aspek
// ==========================
const (
	AspectBelowStandard   = "below_standard"
	AspectMeetsStandard   = "meets_standard"
	AspectExceedsStandard = "exceeds_standard"
)

// ==========================
// ✅ Kesimpulan level kategori
// ==========================
const (
	CategoryDBS = "DBS" // Di Bawah Standar
	CategoryMS  = "MS"  // Memenuhi Standar
	CategoryK   = "K"   // Kompeten
	CategorySK  = "SK"  // Sangat Kompeten
)

// ==========================
// ✅ Kesimpulan level final
// ==========================
const (
	FinalTMS = "TMS" // Tidak Memenuhi Syarat
	FinalMMS = "MMS" // Masih Memenuhi Syarat
	FinalMS  = "MS"  // Memenuhi Syarat
)

// Batas rating individu (skala Likert 1..5)
const (
	RatingMin = 1
	RatingMax = 5
)

// Label rating 1..5 untuk sub-aspek
var RatingLabels = map[int]string{
	1: "Sangat Kurang",
	2: "Kurang",
	3: "Cukup",
	4: "Baik",
	5: "Sangat Baik",
}

// RatingLabel mengembalikan label untuk rating 1..5, "" bila di luar skala.
func RatingLabel(rating int) string {
	return RatingLabels[rating]
}
