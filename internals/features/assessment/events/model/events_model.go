// file: internals/features/assessment/events/model/events_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InstitutionModel merepresentasikan tabel `institutions` (instansi pengirim peserta).
type InstitutionModel struct {
	InstitutionID uuid.UUID `json:"institution_id" gorm:"column:institution_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	InstitutionName    string  `json:"institution_name" gorm:"column:institution_name;type:varchar(180);not null"`
	InstitutionAddress *string `json:"institution_address" gorm:"column:institution_address;type:text"`
	InstitutionContact *string `json:"institution_contact" gorm:"column:institution_contact;type:varchar(60)"`

	InstitutionCreatedAt time.Time      `json:"institution_created_at" gorm:"column:institution_created_at;not null;autoCreateTime"`
	InstitutionUpdatedAt time.Time      `json:"institution_updated_at" gorm:"column:institution_updated_at;not null;autoUpdateTime"`
	InstitutionDeletedAt gorm.DeletedAt `json:"institution_deleted_at" gorm:"column:institution_deleted_at;index"`
}

func (InstitutionModel) TableName() string { return "institutions" }

// AssessmentEventModel merepresentasikan tabel `assessment_events`.
type AssessmentEventModel struct {
	AssessmentEventID uuid.UUID `json:"assessment_event_id" gorm:"column:assessment_event_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	AssessmentEventInstitutionID uuid.UUID `json:"assessment_event_institution_id" gorm:"column:assessment_event_institution_id;type:uuid;not null;index:idx_assessment_events_institution"`

	AssessmentEventName    string     `json:"assessment_event_name" gorm:"column:assessment_event_name;type:varchar(180);not null"`
	AssessmentEventCode    string     `json:"assessment_event_code" gorm:"column:assessment_event_code;type:varchar(60);not null;uniqueIndex:uq_assessment_events_code"`
	AssessmentEventStartAt *time.Time `json:"assessment_event_start_at" gorm:"column:assessment_event_start_at;type:timestamptz"`
	AssessmentEventEndAt   *time.Time `json:"assessment_event_end_at" gorm:"column:assessment_event_end_at;type:timestamptz"`

	AssessmentEventCreatedAt time.Time      `json:"assessment_event_created_at" gorm:"column:assessment_event_created_at;not null;autoCreateTime"`
	AssessmentEventUpdatedAt time.Time      `json:"assessment_event_updated_at" gorm:"column:assessment_event_updated_at;not null;autoUpdateTime"`
	AssessmentEventDeletedAt gorm.DeletedAt `json:"assessment_event_deleted_at" gorm:"column:assessment_event_deleted_at;index"`

	Institution *InstitutionModel `json:"institution,omitempty" gorm:"foreignKey:AssessmentEventInstitutionID;references:InstitutionID"`
}

func (AssessmentEventModel) TableName() string { return "assessment_events" }

// PositionFormationModel merepresentasikan tabel `position_formations`.
// Template standar terikat di formasi jabatan, BUKAN di event ,
// satu event bisa menilai beberapa formasi dengan template berbeda.
type PositionFormationModel struct {
	PositionFormationID uuid.UUID `json:"position_formation_id" gorm:"column:position_formation_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	PositionFormationEventID    uuid.UUID `json:"position_formation_event_id" gorm:"column:position_formation_event_id;type:uuid;not null;index:idx_position_formations_event"`
	PositionFormationTemplateID uuid.UUID `json:"position_formation_template_id" gorm:"column:position_formation_template_id;type:uuid;not null;index:idx_position_formations_template"`

	PositionFormationName  string `json:"position_formation_name" gorm:"column:position_formation_name;type:varchar(180);not null"`
	PositionFormationQuota int    `json:"position_formation_quota" gorm:"column:position_formation_quota;not null;default:0"`

	PositionFormationCreatedAt time.Time      `json:"position_formation_created_at" gorm:"column:position_formation_created_at;not null;autoCreateTime"`
	PositionFormationUpdatedAt time.Time      `json:"position_formation_updated_at" gorm:"column:position_formation_updated_at;not null;autoUpdateTime"`
	PositionFormationDeletedAt gorm.DeletedAt `json:"position_formation_deleted_at" gorm:"column:position_formation_deleted_at;index"`
}

func (PositionFormationModel) TableName() string { return "position_formations" }

// ParticipantModel merepresentasikan tabel `participants`.
// participant_raw_ratings menyimpan snapshot payload feed terakhir (JSONB);
// rekalkulasi memutar ulang payload ini tanpa perlu feed eksternal lagi.
type ParticipantModel struct {
	ParticipantID uuid.UUID `json:"participant_id" gorm:"column:participant_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ParticipantEventID             uuid.UUID `json:"participant_event_id" gorm:"column:participant_event_id;type:uuid;not null;index:idx_participants_event"`
	ParticipantPositionFormationID uuid.UUID `json:"participant_position_formation_id" gorm:"column:participant_position_formation_id;type:uuid;not null;index:idx_participants_position_formation"`

	ParticipantName       string         `json:"participant_name" gorm:"column:participant_name;type:varchar(180);not null"`
	ParticipantNumber     string         `json:"participant_number" gorm:"column:participant_number;type:varchar(60);not null"`
	ParticipantRawRatings datatypes.JSON `json:"participant_raw_ratings" gorm:"column:participant_raw_ratings;type:jsonb"`

	ParticipantCreatedAt time.Time      `json:"participant_created_at" gorm:"column:participant_created_at;not null;autoCreateTime"`
	ParticipantUpdatedAt time.Time      `json:"participant_updated_at" gorm:"column:participant_updated_at;not null;autoUpdateTime"`
	ParticipantDeletedAt gorm.DeletedAt `json:"participant_deleted_at" gorm:"column:participant_deleted_at;index"`

	PositionFormation *PositionFormationModel `json:"position_formation,omitempty" gorm:"foreignKey:ParticipantPositionFormationID;references:PositionFormationID"`
}

func (ParticipantModel) TableName() string { return "participants" }
