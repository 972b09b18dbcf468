// file: internals/features/assessment/standards/dto/standards_dto.go
package dto

// Request seleksi standar dinamis. Entri aspek yang tidak dikirim tetap
// memakai nilai yang sedang berlaku (master atau override sebelumnya).
type SubAspectSelectionRequest struct {
	Code   string `json:"code" validate:"required"`
	Active bool   `json:"active"`
}

type AspectSelectionRequest struct {
	Code   string `json:"code" validate:"required"`
	Active bool   `json:"active"`
	// Diabaikan saat auto_distribute=true.
	Weight     int                         `json:"weight" validate:"min=0,max=100"`
	SubAspects []SubAspectSelectionRequest `json:"sub_aspects" validate:"omitempty,dive"`
}

type SaveSelectionRequest struct {
	Aspects []AspectSelectionRequest `json:"aspects" validate:"required,min=1,dive"`

	// true → bobot dibagi rata otomatis ke aspek aktif per kategori
	// (masing-masing ⌊100/N⌋, sisa ke satu aspek).
	AutoDistribute bool `json:"auto_distribute"`
}
