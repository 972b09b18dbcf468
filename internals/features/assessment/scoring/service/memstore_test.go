// file: internals/features/assessment/scoring/service/memstore_test.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	eventModel "asesmenku_backend/internals/features/assessment/events/model"
	"asesmenku_backend/internals/features/assessment/repository"
	scoringModel "asesmenku_backend/internals/features/assessment/scoring/model"
	templateModel "asesmenku_backend/internals/features/assessment/templates/model"
)

// memStore: implementasi Store di memori untuk test engine.
// Transaction meniru semantik rollback dengan snapshot + restore.
type memStore struct {
	templates  map[uuid.UUID]*templateModel.AssessmentTemplateModel
	categories []*templateModel.AssessmentCategoryModel
	aspects    []*templateModel.AssessmentAspectModel
	subAspects []*templateModel.AssessmentSubAspectModel

	formations   map[uuid.UUID]*eventModel.PositionFormationModel
	participants map[uuid.UUID]*eventModel.ParticipantModel

	categoryAssessments map[uuid.UUID]*scoringModel.CategoryAssessmentModel
	aspectAssessments   map[uuid.UUID]*scoringModel.AspectAssessmentModel
	subAssessments      map[uuid.UUID]*scoringModel.SubAspectAssessmentModel
	finalAssessments    map[uuid.UUID]*scoringModel.FinalAssessmentModel

	// injeksi error per peserta, dipakai test atomicity/batch
	failFinalFor map[uuid.UUID]bool
}

func newMemStore() *memStore {
	return &memStore{
		templates:           map[uuid.UUID]*templateModel.AssessmentTemplateModel{},
		formations:          map[uuid.UUID]*eventModel.PositionFormationModel{},
		participants:        map[uuid.UUID]*eventModel.ParticipantModel{},
		categoryAssessments: map[uuid.UUID]*scoringModel.CategoryAssessmentModel{},
		aspectAssessments:   map[uuid.UUID]*scoringModel.AspectAssessmentModel{},
		subAssessments:      map[uuid.UUID]*scoringModel.SubAspectAssessmentModel{},
		finalAssessments:    map[uuid.UUID]*scoringModel.FinalAssessmentModel{},
		failFinalFor:        map[uuid.UUID]bool{},
	}
}

/* ========================================================
   TemplateStore
======================================================== */

func (s *memStore) TemplateByID(_ context.Context, id uuid.UUID) (*templateModel.AssessmentTemplateModel, error) {
	if t, ok := s.templates[id]; ok {
		return t, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) Templates(_ context.Context) ([]templateModel.AssessmentTemplateModel, error) {
	out := make([]templateModel.AssessmentTemplateModel, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (s *memStore) CategoriesByTemplate(_ context.Context, templateID uuid.UUID) ([]templateModel.AssessmentCategoryModel, error) {
	var out []templateModel.AssessmentCategoryModel
	for _, c := range s.categories {
		if c.AssessmentCategoryTemplateID == templateID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *memStore) CategoryByID(_ context.Context, id uuid.UUID) (*templateModel.AssessmentCategoryModel, error) {
	for _, c := range s.categories {
		if c.AssessmentCategoryID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) CategoryByCode(_ context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentCategoryModel, error) {
	for _, c := range s.categories {
		if c.AssessmentCategoryTemplateID == templateID && c.AssessmentCategoryCode == code {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) AspectsByCategory(_ context.Context, categoryID uuid.UUID) ([]templateModel.AssessmentAspectModel, error) {
	var out []templateModel.AssessmentAspectModel
	for _, a := range s.aspects {
		if a.AssessmentAspectCategoryID == categoryID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *memStore) AspectByID(_ context.Context, id uuid.UUID) (*templateModel.AssessmentAspectModel, error) {
	for _, a := range s.aspects {
		if a.AssessmentAspectID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) AspectByCode(_ context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentAspectModel, error) {
	for _, a := range s.aspects {
		if a.AssessmentAspectTemplateID == templateID && a.AssessmentAspectCode == code {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) SubAspectsByAspect(_ context.Context, aspectID uuid.UUID) ([]templateModel.AssessmentSubAspectModel, error) {
	var out []templateModel.AssessmentSubAspectModel
	for _, sub := range s.subAspects {
		if sub.AssessmentSubAspectAspectID == aspectID {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (s *memStore) SubAspectByID(_ context.Context, id uuid.UUID) (*templateModel.AssessmentSubAspectModel, error) {
	for _, sub := range s.subAspects {
		if sub.AssessmentSubAspectID == id {
			return sub, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) SubAspectByCode(_ context.Context, templateID uuid.UUID, code string) (*templateModel.AssessmentSubAspectModel, error) {
	for _, sub := range s.subAspects {
		if sub.AssessmentSubAspectTemplateID == templateID && sub.AssessmentSubAspectCode == code {
			return sub, nil
		}
	}
	return nil, repository.ErrNotFound
}

/* ========================================================
   AssessmentStore
======================================================== */

func (s *memStore) ParticipantByID(_ context.Context, id uuid.UUID) (*eventModel.ParticipantModel, error) {
	if p, ok := s.participants[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) ParticipantsByEvent(_ context.Context, eventID uuid.UUID, positionFormationID *uuid.UUID) ([]eventModel.ParticipantModel, error) {
	var out []eventModel.ParticipantModel
	for _, p := range s.participants {
		if p.ParticipantEventID != eventID {
			continue
		}
		if positionFormationID != nil && p.ParticipantPositionFormationID != *positionFormationID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *memStore) SaveParticipantRawRatings(_ context.Context, participantID uuid.UUID, payload datatypes.JSON) error {
	p, ok := s.participants[participantID]
	if !ok {
		return repository.ErrNotFound
	}
	p.ParticipantRawRatings = payload
	return nil
}

func (s *memStore) PositionFormationByID(_ context.Context, id uuid.UUID) (*eventModel.PositionFormationModel, error) {
	if f, ok := s.formations[id]; ok {
		return f, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) UpsertCategoryAssessment(_ context.Context, m *scoringModel.CategoryAssessmentModel) error {
	for _, row := range s.categoryAssessments {
		if row.CategoryAssessmentParticipantID == m.CategoryAssessmentParticipantID &&
			row.CategoryAssessmentCategoryID == m.CategoryAssessmentCategoryID {
			// baris sudah ada: ID diisi ulang, total lama tetap tersimpan
			m.CategoryAssessmentID = row.CategoryAssessmentID
			return nil
		}
	}
	m.CategoryAssessmentID = uuid.New()
	cp := *m
	s.categoryAssessments[m.CategoryAssessmentID] = &cp
	return nil
}

func (s *memStore) UpdateCategoryAssessmentTotals(_ context.Context, m *scoringModel.CategoryAssessmentModel) error {
	row, ok := s.categoryAssessments[m.CategoryAssessmentID]
	if !ok {
		return repository.ErrNotFound
	}
	row.CategoryAssessmentStandardRating = m.CategoryAssessmentStandardRating
	row.CategoryAssessmentIndividualRating = m.CategoryAssessmentIndividualRating
	row.CategoryAssessmentStandardScore = m.CategoryAssessmentStandardScore
	row.CategoryAssessmentIndividualScore = m.CategoryAssessmentIndividualScore
	row.CategoryAssessmentGapRating = m.CategoryAssessmentGapRating
	row.CategoryAssessmentGapScore = m.CategoryAssessmentGapScore
	row.CategoryAssessmentConclusionCode = m.CategoryAssessmentConclusionCode
	return nil
}

func (s *memStore) CategoryAssessmentByID(_ context.Context, id uuid.UUID) (*scoringModel.CategoryAssessmentModel, error) {
	if row, ok := s.categoryAssessments[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) CategoryAssessmentByCode(_ context.Context, participantID uuid.UUID, categoryCode string) (*scoringModel.CategoryAssessmentModel, error) {
	for _, row := range s.categoryAssessments {
		if row.CategoryAssessmentParticipantID == participantID &&
			row.CategoryAssessmentCategoryCode == categoryCode {
			cp := *row
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) UpsertAspectAssessment(_ context.Context, m *scoringModel.AspectAssessmentModel) error {
	for _, row := range s.aspectAssessments {
		if row.AspectAssessmentCategoryAssessmentID == m.AspectAssessmentCategoryAssessmentID &&
			row.AspectAssessmentAspectID == m.AspectAssessmentAspectID {
			// snapshot standar di-refresh, kolom turunan dinolkan
			row.AspectAssessmentStandardRating = m.AspectAssessmentStandardRating
			row.AspectAssessmentIndividualRating = 0
			row.AspectAssessmentStandardScore = 0
			row.AspectAssessmentIndividualScore = 0
			row.AspectAssessmentGapRating = 0
			row.AspectAssessmentGapScore = 0
			row.AspectAssessmentPercentageScore = 0
			row.AspectAssessmentConclusionCode = ""
			m.AspectAssessmentID = row.AspectAssessmentID
			return nil
		}
	}
	m.AspectAssessmentID = uuid.New()
	cp := *m
	s.aspectAssessments[m.AspectAssessmentID] = &cp
	return nil
}

func (s *memStore) UpdateAspectAssessmentScores(_ context.Context, m *scoringModel.AspectAssessmentModel) error {
	row, ok := s.aspectAssessments[m.AspectAssessmentID]
	if !ok {
		return repository.ErrNotFound
	}
	row.AspectAssessmentIndividualRating = m.AspectAssessmentIndividualRating
	row.AspectAssessmentStandardScore = m.AspectAssessmentStandardScore
	row.AspectAssessmentIndividualScore = m.AspectAssessmentIndividualScore
	row.AspectAssessmentGapRating = m.AspectAssessmentGapRating
	row.AspectAssessmentGapScore = m.AspectAssessmentGapScore
	row.AspectAssessmentPercentageScore = m.AspectAssessmentPercentageScore
	row.AspectAssessmentConclusionCode = m.AspectAssessmentConclusionCode
	return nil
}

func (s *memStore) AspectAssessmentByID(_ context.Context, id uuid.UUID) (*scoringModel.AspectAssessmentModel, error) {
	if row, ok := s.aspectAssessments[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) AspectAssessmentsByCategoryAssessment(_ context.Context, categoryAssessmentID uuid.UUID) ([]scoringModel.AspectAssessmentModel, error) {
	var out []scoringModel.AspectAssessmentModel
	for _, row := range s.aspectAssessments {
		if row.AspectAssessmentCategoryAssessmentID == categoryAssessmentID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *memStore) UpsertSubAspectAssessment(_ context.Context, m *scoringModel.SubAspectAssessmentModel) error {
	for _, row := range s.subAssessments {
		if row.SubAspectAssessmentAspectAssessmentID == m.SubAspectAssessmentAspectAssessmentID &&
			row.SubAspectAssessmentSubAspectID == m.SubAspectAssessmentSubAspectID {
			// snapshot standar TIDAK disentuh
			row.SubAspectAssessmentIndividualRating = m.SubAspectAssessmentIndividualRating
			row.SubAspectAssessmentRatingLabel = m.SubAspectAssessmentRatingLabel
			m.SubAspectAssessmentID = row.SubAspectAssessmentID
			return nil
		}
	}
	m.SubAspectAssessmentID = uuid.New()
	cp := *m
	s.subAssessments[m.SubAspectAssessmentID] = &cp
	return nil
}

func (s *memStore) SubAspectAssessmentsByAspectAssessment(_ context.Context, aspectAssessmentID uuid.UUID) ([]scoringModel.SubAspectAssessmentModel, error) {
	var out []scoringModel.SubAspectAssessmentModel
	for _, row := range s.subAssessments {
		if row.SubAspectAssessmentAspectAssessmentID == aspectAssessmentID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *memStore) UpsertFinalAssessment(_ context.Context, m *scoringModel.FinalAssessmentModel) error {
	if s.failFinalFor[m.FinalAssessmentParticipantID] {
		return errors.New("gangguan storage disimulasikan")
	}
	for _, row := range s.finalAssessments {
		if row.FinalAssessmentParticipantID == m.FinalAssessmentParticipantID {
			m.FinalAssessmentID = row.FinalAssessmentID
			*row = *m
			return nil
		}
	}
	m.FinalAssessmentID = uuid.New()
	cp := *m
	s.finalAssessments[m.FinalAssessmentID] = &cp
	return nil
}

func (s *memStore) FinalAssessmentByParticipant(_ context.Context, participantID uuid.UUID) (*scoringModel.FinalAssessmentModel, error) {
	for _, row := range s.finalAssessments {
		if row.FinalAssessmentParticipantID == participantID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

/* ========================================================
   Transaction: snapshot + restore
======================================================== */

func (s *memStore) Transaction(_ context.Context, fn func(repository.Store) error) error {
	backupCA := cloneMap(s.categoryAssessments)
	backupAA := cloneMap(s.aspectAssessments)
	backupSA := cloneMap(s.subAssessments)
	backupFA := cloneMap(s.finalAssessments)
	backupP := cloneMap(s.participants)

	if err := fn(s); err != nil {
		s.categoryAssessments = backupCA
		s.aspectAssessments = backupAA
		s.subAssessments = backupSA
		s.finalAssessments = backupFA
		s.participants = backupP
		return err
	}
	return nil
}

func cloneMap[K comparable, V any](in map[K]*V) map[K]*V {
	out := make(map[K]*V, len(in))
	for k, v := range in {
		cp := *v
		out[k] = &cp
	}
	return out
}
