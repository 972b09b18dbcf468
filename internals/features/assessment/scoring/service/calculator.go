// file: internals/features/assessment/scoring/service/calculator.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	eventModel "asesmenku_backend/internals/features/assessment/events/model"
	"asesmenku_backend/internals/features/assessment/repository"
	"asesmenku_backend/internals/features/assessment/scoring/dto"
	overrideService "asesmenku_backend/internals/features/assessment/standards/service"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

// Calculator mengorkestrasi pipeline penuh satu peserta:
// rating mentah → sub-aspek → aspek → kategori → final.
//
// Satu peserta = satu transaksi: semua level commit bersama atau tidak
// sama sekali, tidak pernah ada agregat setengah jadi.
type Calculator struct {
	store repository.Store
	cache *templateService.TemplateCache
}

func NewCalculator(store repository.Store, cache *templateService.TemplateCache) *Calculator {
	return &Calculator{store: store, cache: cache}
}

// CalculateParticipant meng-ingest feed mentah lalu menjalankan pipeline.
// Payload di-snapshot ke baris peserta dulu supaya RecalculateParticipant
// bisa memutar ulang persis input yang sama.
func (c *Calculator) CalculateParticipant(ctx context.Context, ov overrideService.OverrideContext, participantID uuid.UUID, feed dto.ParticipantFeedInput) error {
	participant, templateID, err := c.resolveParticipant(ctx, participantID)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("marshal feed peserta %s: %w", participantID, err)
	}

	return c.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.SaveParticipantRawRatings(ctx, participantID, datatypes.JSON(payload)); err != nil {
			return err
		}
		return c.runPipeline(ctx, tx, ov, participant, templateID, feed)
	})
}

// RecalculateParticipant memutar ulang agregasi dari rating mentah yang
// sudah tersimpan, dipakai setelah standar master atau override berubah.
// Idempoten: dua kali berturut tanpa perubahan data menghasilkan agregat
// yang identik.
func (c *Calculator) RecalculateParticipant(ctx context.Context, ov overrideService.OverrideContext, participantID uuid.UUID) error {
	participant, templateID, err := c.resolveParticipant(ctx, participantID)
	if err != nil {
		return err
	}

	if len(participant.ParticipantRawRatings) == 0 {
		return fmt.Errorf("peserta %s belum punya rating mentah: %w", participantID, repository.ErrNotFound)
	}
	var feed dto.ParticipantFeedInput
	if err := json.Unmarshal(participant.ParticipantRawRatings, &feed); err != nil {
		return fmt.Errorf("payload rating peserta %s rusak: %w", participantID, err)
	}

	return c.store.Transaction(ctx, func(tx repository.Store) error {
		return c.runPipeline(ctx, tx, ov, participant, templateID, feed)
	})
}

func (c *Calculator) resolveParticipant(ctx context.Context, participantID uuid.UUID) (*eventModel.ParticipantModel, uuid.UUID, error) {
	participant, err := c.store.ParticipantByID(ctx, participantID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	formation := participant.PositionFormation
	if formation == nil {
		formation, err = c.store.PositionFormationByID(ctx, participant.ParticipantPositionFormationID)
		if err != nil {
			return nil, uuid.Nil, err
		}
	}
	return participant, formation.PositionFormationTemplateID, nil
}

// runPipeline: urutan kategori dideterministik-kan (sort kode) supaya hasil
// replay selalu sama.
func (c *Calculator) runPipeline(ctx context.Context, tx repository.Store, ov overrideService.OverrideContext, participant *eventModel.ParticipantModel, templateID uuid.UUID, feed dto.ParticipantFeedInput) error {
	if err := c.cache.Preload(ctx, templateID); err != nil {
		return err
	}

	subScorer := NewSubAspectScorer(tx, c.cache)
	aspectScorer := NewAspectScorer(tx, c.cache)
	aggregator := NewCategoryAggregator(tx, c.cache)
	combiner := NewFinalCombiner(tx, c.cache)

	codes := make([]string, 0, len(feed))
	for code := range feed {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, categoryCode := range codes {
		ca, err := aggregator.Create(ctx, participant.ParticipantID, templateID, categoryCode)
		if err != nil {
			return err
		}

		for _, input := range feed[categoryCode] {
			aa, err := aspectScorer.Create(ctx, ca, input.AspectCode)
			if err != nil {
				return err
			}

			switch {
			case len(input.SubAspects) > 0:
				for _, sub := range input.SubAspects {
					if _, err := subScorer.Record(ctx, templateID, aa.AspectAssessmentID, sub.SubAspectCode, sub.IndividualRating); err != nil {
						return err
					}
				}
				if _, err := aspectScorer.ScoreDerived(ctx, ov, aa); err != nil {
					return err
				}
			case input.IndividualRating != nil:
				if err := aspectScorer.ScoreDirect(ctx, ov, aa, *input.IndividualRating); err != nil {
					return err
				}
				// tanpa rating dan tanpa sub-aspek: aspek sengaja dibiarkan tanpa skor
			}
		}

		if err := aggregator.Calculate(ctx, ov, ca.CategoryAssessmentID); err != nil {
			return err
		}
	}

	_, err := combiner.Calculate(ctx, participant.ParticipantID, templateID)
	return err
}

/* ========================================================
   Batch
======================================================== */

type BatchFailure struct {
	ParticipantID uuid.UUID `json:"participant_id"`
	Error         string    `json:"error"`
}

type BatchResult struct {
	Total     int            `json:"total"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Failures  []BatchFailure `json:"failures,omitempty"`
}

// RecalculateEvent menjalankan RecalculateParticipant untuk semua peserta
// event (opsional difilter formasi). Tiap peserta transaksinya terisolasi:
// satu gagal, yang lain jalan terus; hasilnya dihitung per peserta.
// Bisa diinterupsi lewat ctx di antara dua peserta, peserta yang sudah
// commit tetap utuh.
func (c *Calculator) RecalculateEvent(ctx context.Context, ov overrideService.OverrideContext, eventID uuid.UUID, positionFormationID *uuid.UUID) (*BatchResult, error) {
	participants, err := c.store.ParticipantsByEvent(ctx, eventID, positionFormationID)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{Total: len(participants)}
	for _, p := range participants {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := c.RecalculateParticipant(ctx, ov, p.ParticipantID); err != nil {
			result.Failed++
			result.Failures = append(result.Failures, BatchFailure{
				ParticipantID: p.ParticipantID,
				Error:         err.Error(),
			})
			log.Printf("[RECALC] ❌ peserta %s (%s): %v", p.ParticipantNumber, p.ParticipantID, err)
			continue
		}
		result.Succeeded++
	}
	return result, nil
}
