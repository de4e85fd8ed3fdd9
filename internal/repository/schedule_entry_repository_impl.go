package repository

import (
	"errors"
	"time"

	"clinic-schedule-service/internal/domain/entity"
	domainRepo "clinic-schedule-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleEntryRepository struct{}

func NewScheduleEntryRepository() domainRepo.ScheduleEntryRepository {
	return &scheduleEntryRepository{}
}

func (r *scheduleEntryRepository) Create(db *gorm.DB, record *entity.ScheduleEntryRecord) error {
	return db.Create(record).Error
}

func (r *scheduleEntryRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.ScheduleEntryRecord, error) {
	var records []entity.ScheduleEntryRecord
	err := db.Where("clinic_id = ?", clinicID).
		Order("room ASC, start_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindCandidates returns the on-call rows eligible for immersion:
// same clinic, room and specialization, overlapping the filter window.
// Rows touching the window only at an endpoint are excluded, matching
// the half-open interference rule.
func (r *scheduleEntryRepository) FindCandidates(db *gorm.DB, filter *entity.CandidateFilter) ([]entity.ScheduleEntryRecord, error) {
	var records []entity.ScheduleEntryRecord
	err := db.Where("clinic_id = ?", filter.ClinicID).
		Where("room = ?", filter.Room).
		Where("specialization = ?", string(filter.Specialization)).
		Where("patient_name = ''").
		Where("start_at < ? AND end_at > ?", filter.To, filter.From).
		Order("start_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindInterfering returns every row, booked or not, of any doctor,
// overlapping the window in the given room.
func (r *scheduleEntryRepository) FindInterfering(db *gorm.DB, clinicID uuid.UUID, room string, from, to time.Time) ([]entity.ScheduleEntryRecord, error) {
	var records []entity.ScheduleEntryRecord
	err := db.Where("clinic_id = ?", clinicID).
		Where("room = ?", room).
		Where("start_at < ? AND end_at > ?", to, from).
		Order("start_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *scheduleEntryRepository) FindVisit(db *gorm.DB, clinicID, visitID uuid.UUID) (*entity.ScheduleEntryRecord, error) {
	var record entity.ScheduleEntryRecord
	err := db.Where("clinic_id = ? AND id = ?", clinicID, visitID).
		Where("patient_name <> ''").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// FindFlankingOnCall returns the on-call rows that touch the visit
// exactly at its start or end, in the same clinic, room and
// specialization. Used when a cancelled visit is folded back into the
// surrounding on-call time.
func (r *scheduleEntryRepository) FindFlankingOnCall(db *gorm.DB, visit *entity.ScheduleEntryRecord) ([]entity.ScheduleEntryRecord, error) {
	var records []entity.ScheduleEntryRecord
	err := db.Where("clinic_id = ?", visit.ClinicID).
		Where("room = ?", visit.Room).
		Where("specialization = ?", visit.Specialization).
		Where("patient_name = ''").
		Where("end_at = ? OR start_at = ?", visit.StartAt, visit.EndAt).
		Order("start_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ReplaceEntries removes the consumed rows and inserts their
// replacements in one transaction, so the schedule never shows a
// half-applied split.
func (r *scheduleEntryRepository) ReplaceEntries(db *gorm.DB, removeIDs []uuid.UUID, insert []entity.ScheduleEntryRecord) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if len(removeIDs) > 0 {
			if err := tx.Where("id IN ?", removeIDs).
				Delete(&entity.ScheduleEntryRecord{}).Error; err != nil {
				return err
			}
		}

		if len(insert) > 0 {
			if err := tx.Create(&insert).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *scheduleEntryRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ScheduleEntryRecord{})
	return affected.RowsAffected, affected.Error
}
