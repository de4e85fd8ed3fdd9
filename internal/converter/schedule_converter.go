package converter

import (
	"clinic-schedule-service/internal/delivery/dto"
	"clinic-schedule-service/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordToEntry rebuilds the domain value from a stored row. The range
// invariant is re-checked, so a corrupted row surfaces as
// entity.ErrInvalidRange instead of a silently broken entry.
func RecordToEntry(record *entity.ScheduleEntryRecord) (entity.Entry, error) {
	doctor := entity.Doctor{Specialization: entity.Specialization(record.Specialization)}
	room := entity.Room{Name: record.Room}

	if record.IsOnCall() {
		return entity.NewOnCallEntry(doctor, room, record.StartAt, record.EndAt)
	}

	return entity.NewVisitEntry(doctor, entity.Patient{Name: record.PatientName}, room, record.StartAt, record.EndAt)
}

// RecordsToEntries converts a result set, failing on the first invalid
// row.
func RecordsToEntries(records []entity.ScheduleEntryRecord) ([]entity.Entry, error) {
	entries := make([]entity.Entry, len(records))
	for i := range records {
		entry, err := RecordToEntry(&records[i])
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

// EntryToRecord produces a fresh row for the entry, with a new row ID.
func EntryToRecord(clinicID uuid.UUID, entry entity.Entry) entity.ScheduleEntryRecord {
	return entity.ScheduleEntryRecord{
		ID:             uuid.New(),
		ClinicID:       clinicID,
		Specialization: string(entry.Doctor.Specialization),
		Room:           entry.Room.Name,
		PatientName:    entry.Patient.Name,
		StartAt:        entry.Range.From,
		EndAt:          entry.Range.To,
	}
}

// RecordToResponse converts a row to its API shape.
func RecordToResponse(record *entity.ScheduleEntryRecord) dto.EntryResponse {
	return dto.EntryResponse{
		ID:             record.ID,
		Specialization: record.Specialization,
		Room:           record.Room,
		PatientName:    record.PatientName,
		OnCall:         record.IsOnCall(),
		StartAt:        record.StartAt,
		EndAt:          record.EndAt,
	}
}

// RecordsToResponses converts a slice of rows to their API shape.
func RecordsToResponses(records []entity.ScheduleEntryRecord) []dto.EntryResponse {
	responses := make([]dto.EntryResponse, len(records))
	for i := range records {
		responses[i] = RecordToResponse(&records[i])
	}
	return responses
}
