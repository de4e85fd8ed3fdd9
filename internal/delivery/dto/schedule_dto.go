package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ScheduleVisitRequest struct {
	Specialization string `json:"specialization" validate:"required"`
	Room           string `json:"room" validate:"required"`
	PatientName    string `json:"patient_name" validate:"required,max=255"`
	StartAt        string `json:"start_at" validate:"required"` // Format: RFC3339
	EndAt          string `json:"end_at" validate:"required"`   // Format: RFC3339
}

type OpenOnCallRequest struct {
	Specialization string `json:"specialization" validate:"required"`
	Room           string `json:"room" validate:"required"`
	StartAt        string `json:"start_at" validate:"required"` // Format: RFC3339
	EndAt          string `json:"end_at" validate:"required"`   // Format: RFC3339
}

type BlockOutRoomRequest struct {
	StartAt string `json:"start_at" validate:"required"` // Format: RFC3339
	EndAt   string `json:"end_at" validate:"required"`   // Format: RFC3339
}

// Response DTOs

type EntryResponse struct {
	ID             uuid.UUID `json:"id"`
	Specialization string    `json:"specialization"`
	Room           string    `json:"room"`
	PatientName    string    `json:"patient_name,omitempty"`
	OnCall         bool      `json:"on_call"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
}

type ScheduleVisitResponse struct {
	Visit     EntryResponse   `json:"visit"`
	Remainder []EntryResponse `json:"remainder"`
}

type SnapshotResponse struct {
	ClinicID uuid.UUID       `json:"clinic_id"`
	Entries  []EntryResponse `json:"entries"`
	Total    int             `json:"total"`
}
