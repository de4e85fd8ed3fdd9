package repository

import (
	"time"

	"clinic-schedule-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleEntryRepository interface {
	Create(db *gorm.DB, record *entity.ScheduleEntryRecord) error
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.ScheduleEntryRecord, error)
	FindCandidates(db *gorm.DB, filter *entity.CandidateFilter) ([]entity.ScheduleEntryRecord, error)
	FindInterfering(db *gorm.DB, clinicID uuid.UUID, room string, from, to time.Time) ([]entity.ScheduleEntryRecord, error)
	FindVisit(db *gorm.DB, clinicID, visitID uuid.UUID) (*entity.ScheduleEntryRecord, error)
	FindFlankingOnCall(db *gorm.DB, visit *entity.ScheduleEntryRecord) ([]entity.ScheduleEntryRecord, error)
	ReplaceEntries(db *gorm.DB, removeIDs []uuid.UUID, insert []entity.ScheduleEntryRecord) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
