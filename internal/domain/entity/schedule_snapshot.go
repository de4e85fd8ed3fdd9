package entity

import "github.com/google/uuid"

// ScheduleSnapshot is the full schedule of one clinic: a clinic
// identifier plus a set of entries. Entries are deduplicated by full
// structural equality; their order carries no meaning.
type ScheduleSnapshot struct {
	ClinicID uuid.UUID
	Entries  []Entry
}

func NewScheduleSnapshot(clinicID uuid.UUID) *ScheduleSnapshot {
	return &ScheduleSnapshot{ClinicID: clinicID}
}

// Contains reports whether the snapshot already holds a structurally
// equal entry.
func (s *ScheduleSnapshot) Contains(entry Entry) bool {
	for _, existing := range s.Entries {
		if existing.Equal(entry) {
			return true
		}
	}

	return false
}

// Add appends the entry unless a structurally equal one is present.
// Reports whether the snapshot grew.
func (s *ScheduleSnapshot) Add(entry Entry) bool {
	if s.Contains(entry) {
		return false
	}

	s.Entries = append(s.Entries, entry)

	return true
}

func (s *ScheduleSnapshot) Len() int {
	return len(s.Entries)
}
