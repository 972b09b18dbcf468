// file: internals/features/assessment/scoring/dto/participant_feed_dto.go
package dto

// Payload feed eksternal: rating mentah per peserta, dikelompokkan per kode
// kategori. Disimpan apa adanya (JSONB) di baris peserta supaya rekalkulasi
// bisa memutar ulang tanpa feed.

type SubAspectRatingInput struct {
	SubAspectCode    string `json:"sub_aspect_code" validate:"required"`
	IndividualRating int    `json:"individual_rating" validate:"required,min=1,max=5"`
}

type AspectRatingInput struct {
	AspectCode string `json:"aspect_code" validate:"required"`

	// Diisi untuk aspek gaya kompetensi (rating langsung).
	IndividualRating *int `json:"individual_rating,omitempty" validate:"omitempty,min=1,max=5"`

	// Diisi untuk aspek gaya potensi (rating diturunkan dari sub-aspek).
	SubAspects []SubAspectRatingInput `json:"sub_aspects,omitempty" validate:"omitempty,dive"`
}

// ParticipantFeedInput: kode kategori → daftar rating aspek.
type ParticipantFeedInput map[string][]AspectRatingInput
