package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntryRecord is the persisted form of an Entry. The domain
// value itself stays free of storage concerns; this row adds the
// identifiers the database and the API need (row ID, clinic ID).
// An empty patient name marks an on-call block.
type ScheduleEntryRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClinicID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_clinic_room_start,priority:1" json:"clinic_id"`
	Specialization string    `gorm:"type:varchar(50);not null" json:"specialization"`
	Room           string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_clinic_room_start,priority:2" json:"room"`
	PatientName    string    `gorm:"type:varchar(255)" json:"patient_name"`
	StartAt        time.Time `gorm:"not null;uniqueIndex:idx_clinic_room_start,priority:3" json:"start_at"`
	EndAt          time.Time `gorm:"not null" json:"end_at"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScheduleEntryRecord) TableName() string {
	return "schedule_entries"
}

// IsOnCall reports whether the row represents unbooked time.
func (r *ScheduleEntryRecord) IsOnCall() bool {
	return r.PatientName == ""
}
