package entity

import "time"

// Entry is one scheduled block of clinic time: a doctor, a half-open
// time range, a room, and an optional patient. An entry without a
// patient is on-call time; with a patient it is a visit.
//
// Entries are immutable values. Every operation that "changes" an
// entry returns a fresh one; nothing mutates in place, which is what
// makes the whole algebra safe to call concurrently.
type Entry struct {
	Doctor  Doctor
	Range   TimeRange
	Room    Room
	Patient Patient
}

// NewOnCallEntry builds an unbooked entry for the given doctor and room.
func NewOnCallEntry(doctor Doctor, room Room, from, to time.Time) (Entry, error) {
	timeRange, err := NewTimeRange(from, to)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Doctor: doctor,
		Range:  timeRange,
		Room:   room,
	}, nil
}

// NewVisitEntry builds a booked entry carrying a patient.
func NewVisitEntry(doctor Doctor, patient Patient, room Room, from, to time.Time) (Entry, error) {
	timeRange, err := NewTimeRange(from, to)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Doctor:  doctor,
		Range:   timeRange,
		Room:    room,
		Patient: patient,
	}, nil
}

// IsVisit reports whether the entry carries a patient.
func (e Entry) IsVisit() bool {
	return !e.Patient.IsZero()
}

// DatesInterfereWith reports whether the two entries occupy overlapping
// time, regardless of room. Both directions are checked; a range ending
// exactly when the other starts does not interfere.
func (e Entry) DatesInterfereWith(other Entry) bool {
	return e.Range.Contains(other.Range.From) || other.Range.Contains(e.Range.From)
}

// InterferesWith reports whether the two entries occupy overlapping
// time in the same room.
func (e Entry) InterferesWith(other Entry) bool {
	return e.Room == other.Room && e.DatesInterfereWith(other)
}

// Equal is full structural equality: doctor, range, room and patient
// must all match. Snapshot deduplication relies on it.
func (e Entry) Equal(other Entry) bool {
	return e.Doctor == other.Doctor &&
		e.Room == other.Room &&
		e.Patient == other.Patient &&
		e.Range.Equal(other.Range)
}

// TrimTo clips the entry's range to remove the portion overlapping
// other. The second return value is false when nothing of the entry
// survives:
//   - other covers the whole entry (equal ranges included): removed;
//   - other sits strictly inside the entry: a single clipped entry
//     cannot represent the two leftover pieces, so the entry is
//     removed entirely;
//   - other overlaps the tail: the tail is cut back to other's start;
//   - other overlaps the head: the head is pushed to other's end;
//   - no overlap: the entry comes back unchanged.
func (e Entry) TrimTo(other Entry) (Entry, bool) {
	self, overlap := e.Range, other.Range

	// Disjoint ranges need no trim. Touching endpoints do not overlap.
	if !self.From.Before(overlap.To) || !overlap.From.Before(self.To) {
		return e, true
	}

	coversHead := !overlap.From.After(self.From)
	coversTail := !overlap.To.Before(self.To)

	switch {
	case coversHead && coversTail:
		return Entry{}, false

	case !coversHead && !coversTail:
		// Strictly inside: trimming would split the entry in two.
		return Entry{}, false

	case coversTail:
		trimmed := e
		trimmed.Range.To = overlap.From

		return trimmed, true

	default:
		trimmed := e
		trimmed.Range.From = overlap.To

		return trimmed, true
	}
}
