// file: internals/seeds/assessment_template_seed.go
package seeds

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"asesmenku_backend/internals/constants"
	templateModel "asesmenku_backend/internals/features/assessment/templates/model"
)

// ID tetap supaya seeding idempoten (insert kedua kali = no-op).
var defaultTemplateID = uuid.MustParse("7f9b1c2e-0a4d-4f7b-9c3e-1d2a3b4c5d6e")

func RunAllSeeds(db *gorm.DB) {
	SeedDefaultTemplate(db)
}

// SeedDefaultTemplate menanam satu template standar contoh:
// potensi (3 aspek + sub-aspek) dan kompetensi (3 aspek rating langsung),
// bobot 40/35/25 per kategori, kategori 50/50.
func SeedDefaultTemplate(db *gorm.DB) {
	desc := "Template standar bawaan untuk seleksi jabatan"
	tpl := templateModel.AssessmentTemplateModel{
		AssessmentTemplateID:          defaultTemplateID,
		AssessmentTemplateName:        "Standar Seleksi Umum",
		AssessmentTemplateDescription: &desc,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tpl).Error; err != nil {
		log.Printf("[SEED] ❌ template: %v", err)
		return
	}

	potensiID := seedCategory(db, constants.CategoryPotensi, "Potensi", 50, 1)
	kompetensiID := seedCategory(db, constants.CategoryKompetensi, "Kompetensi", 50, 2)
	if potensiID == uuid.Nil || kompetensiID == uuid.Nil {
		return
	}

	kecerdasan := seedAspect(db, potensiID, "kecerdasan_umum", "Kecerdasan Umum", 40, 0, 1)
	seedSubAspect(db, kecerdasan, "logika", "Kemampuan Logika", 3, 1)
	seedSubAspect(db, kecerdasan, "verbal", "Kemampuan Verbal", 3, 2)
	seedSubAspect(db, kecerdasan, "numerik", "Kemampuan Numerik", 3, 3)

	ketelitian := seedAspect(db, potensiID, "sikap_kerja", "Sikap Kerja", 35, 0, 2)
	seedSubAspect(db, ketelitian, "ketelitian", "Ketelitian", 4, 1)
	seedSubAspect(db, ketelitian, "kecepatan", "Kecepatan Kerja", 3, 2)

	kepribadian := seedAspect(db, potensiID, "kepribadian", "Kepribadian", 25, 0, 3)
	seedSubAspect(db, kepribadian, "stabilitas_emosi", "Stabilitas Emosi", 3, 1)
	seedSubAspect(db, kepribadian, "penyesuaian_diri", "Penyesuaian Diri", 3, 2)

	seedAspect(db, kompetensiID, "integritas", "Integritas", 40, 3, 1)
	seedAspect(db, kompetensiID, "kerjasama", "Kerjasama", 35, 3, 2)
	seedAspect(db, kompetensiID, "komunikasi", "Komunikasi", 25, 3, 3)

	log.Println("[SEED] ✅ template standar bawaan siap")
}

func seedCategory(db *gorm.DB, code, name string, weight, order int) uuid.UUID {
	m := templateModel.AssessmentCategoryModel{
		AssessmentCategoryTemplateID:       defaultTemplateID,
		AssessmentCategoryCode:             code,
		AssessmentCategoryName:             name,
		AssessmentCategoryWeightPercentage: weight,
		AssessmentCategoryOrderIndex:       order,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		log.Printf("[SEED] ❌ kategori %s: %v", code, err)
		return uuid.Nil
	}
	// baris bisa sudah ada dari seeding sebelumnya, ambil ID-nya
	var existing templateModel.AssessmentCategoryModel
	if err := db.First(&existing,
		"assessment_category_template_id = ? AND assessment_category_code = ?",
		defaultTemplateID, code).Error; err != nil {
		log.Printf("[SEED] ❌ kategori %s: %v", code, err)
		return uuid.Nil
	}
	return existing.AssessmentCategoryID
}

func seedAspect(db *gorm.DB, categoryID uuid.UUID, code, name string, weight int, standard float64, order int) uuid.UUID {
	m := templateModel.AssessmentAspectModel{
		AssessmentAspectCategoryID:       categoryID,
		AssessmentAspectTemplateID:       defaultTemplateID,
		AssessmentAspectCode:             code,
		AssessmentAspectName:             name,
		AssessmentAspectWeightPercentage: weight,
		AssessmentAspectStandardRating:   standard,
		AssessmentAspectOrderIndex:       order,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		log.Printf("[SEED] ❌ aspek %s: %v", code, err)
		return uuid.Nil
	}
	var existing templateModel.AssessmentAspectModel
	if err := db.First(&existing,
		"assessment_aspect_template_id = ? AND assessment_aspect_code = ?",
		defaultTemplateID, code).Error; err != nil {
		log.Printf("[SEED] ❌ aspek %s: %v", code, err)
		return uuid.Nil
	}
	return existing.AssessmentAspectID
}

func seedSubAspect(db *gorm.DB, aspectID uuid.UUID, code, name string, standard, order int) {
	if aspectID == uuid.Nil {
		return
	}
	m := templateModel.AssessmentSubAspectModel{
		AssessmentSubAspectAspectID:       aspectID,
		AssessmentSubAspectTemplateID:     defaultTemplateID,
		AssessmentSubAspectCode:           code,
		AssessmentSubAspectName:           name,
		AssessmentSubAspectStandardRating: standard,
		AssessmentSubAspectOrderIndex:     order,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		log.Printf("[SEED] ❌ sub-aspek %s: %v", code, err)
	}
}
