package entity

import (
	"time"

	"github.com/google/uuid"
)

// CandidateFilter selects the on-call rows eligible for immersion:
// same clinic, same room, same doctor, overlapping the requested
// window. The window test is half-open on both rows and request.
type CandidateFilter struct {
	ClinicID       uuid.UUID
	Room           string
	Specialization Specialization
	From           time.Time
	To             time.Time
}
