// file: internals/features/assessment/events/dto/events_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	eventModel "asesmenku_backend/internals/features/assessment/events/model"
)

/* ========================================================
   Request
======================================================== */

type CreateInstitutionRequest struct {
	Name    string  `json:"name" validate:"required,min=3,max=150"`
	Address *string `json:"address" validate:"omitempty,max=300"`
	Contact *string `json:"contact" validate:"omitempty,max=100"`
}

type CreateEventRequest struct {
	InstitutionID uuid.UUID  `json:"institution_id" validate:"required"`
	Name          string     `json:"name" validate:"required,min=3,max=150"`
	Code          string     `json:"code" validate:"required,min=2,max=60"`
	StartAt       *time.Time `json:"start_at"`
	EndAt         *time.Time `json:"end_at"`
}

type CreatePositionFormationRequest struct {
	TemplateID uuid.UUID `json:"template_id" validate:"required"`
	Name       string    `json:"name" validate:"required,min=3,max=150"`
	Quota      int       `json:"quota" validate:"omitempty,min=0"`
}

type CreateParticipantRequest struct {
	PositionFormationID uuid.UUID `json:"position_formation_id" validate:"required"`
	Name                string    `json:"name" validate:"required,min=3,max=150"`
	Number              string    `json:"number" validate:"required,min=1,max=60"`
}

/* ========================================================
   Response
======================================================== */

type InstitutionResponse struct {
	InstitutionID uuid.UUID `json:"institution_id"`
	Name          string    `json:"name"`
	Address       *string   `json:"address,omitempty"`
	Contact       *string   `json:"contact,omitempty"`
}

type EventResponse struct {
	EventID       uuid.UUID  `json:"event_id"`
	InstitutionID uuid.UUID  `json:"institution_id"`
	Name          string     `json:"name"`
	Code          string     `json:"code"`
	StartAt       *time.Time `json:"start_at,omitempty"`
	EndAt         *time.Time `json:"end_at,omitempty"`
}

type PositionFormationResponse struct {
	PositionFormationID uuid.UUID `json:"position_formation_id"`
	EventID             uuid.UUID `json:"event_id"`
	TemplateID          uuid.UUID `json:"template_id"`
	Name                string    `json:"name"`
	Quota               int       `json:"quota"`
}

type ParticipantResponse struct {
	ParticipantID       uuid.UUID `json:"participant_id"`
	EventID             uuid.UUID `json:"event_id"`
	PositionFormationID uuid.UUID `json:"position_formation_id"`
	Name                string    `json:"name"`
	Number              string    `json:"number"`
	HasRawRatings       bool      `json:"has_raw_ratings"`
}

func ToInstitutionResponse(m *eventModel.InstitutionModel) InstitutionResponse {
	return InstitutionResponse{
		InstitutionID: m.InstitutionID,
		Name:          m.InstitutionName,
		Address:       m.InstitutionAddress,
		Contact:       m.InstitutionContact,
	}
}

func ToEventResponse(m *eventModel.AssessmentEventModel) EventResponse {
	return EventResponse{
		EventID:       m.AssessmentEventID,
		InstitutionID: m.AssessmentEventInstitutionID,
		Name:          m.AssessmentEventName,
		Code:          m.AssessmentEventCode,
		StartAt:       m.AssessmentEventStartAt,
		EndAt:         m.AssessmentEventEndAt,
	}
}

func ToPositionFormationResponse(m *eventModel.PositionFormationModel) PositionFormationResponse {
	return PositionFormationResponse{
		PositionFormationID: m.PositionFormationID,
		EventID:             m.PositionFormationEventID,
		TemplateID:          m.PositionFormationTemplateID,
		Name:                m.PositionFormationName,
		Quota:               m.PositionFormationQuota,
	}
}

func ToParticipantResponse(m *eventModel.ParticipantModel) ParticipantResponse {
	return ParticipantResponse{
		ParticipantID:       m.ParticipantID,
		EventID:             m.ParticipantEventID,
		PositionFormationID: m.ParticipantPositionFormationID,
		Name:                m.ParticipantName,
		Number:              m.ParticipantNumber,
		HasRawRatings:       len(m.ParticipantRawRatings) > 0,
	}
}
