package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-schedule-service/internal/converter"
	"clinic-schedule-service/internal/delivery/dto"
	"clinic-schedule-service/internal/domain/entity"
	"clinic-schedule-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidTimeFormat     = errors.New("invalid time format, use RFC3339")
	ErrUnknownSpecialization = errors.New("unknown specialization")
	ErrNotImmersable         = errors.New("visit does not fit the on-call time at that slot")
	ErrVisitNotFound         = errors.New("visit not found")
	ErrEntryInterferes       = errors.New("entry interferes with existing schedule in the room")
	ErrRoomBooked            = errors.New("room has booked visits in the requested window")
)

// SnapshotCache caches rendered schedule snapshots per clinic. A cache
// miss is (nil, nil), never an error.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, clinicID uuid.UUID) (*dto.SnapshotResponse, error)
	SetSnapshot(ctx context.Context, clinicID uuid.UUID, snapshot *dto.SnapshotResponse) error
	Invalidate(ctx context.Context, clinicID uuid.UUID) error
}

type ScheduleUsecase interface {
	ScheduleVisit(ctx context.Context, clinicID uuid.UUID, req *dto.ScheduleVisitRequest) (*dto.ScheduleVisitResponse, error)
	CancelVisit(ctx context.Context, clinicID, visitID uuid.UUID) error
	OpenOnCallBlock(ctx context.Context, clinicID uuid.UUID, req *dto.OpenOnCallRequest) (*dto.EntryResponse, error)
	BlockOutRoom(ctx context.Context, clinicID uuid.UUID, room string, req *dto.BlockOutRoomRequest) ([]dto.EntryResponse, error)
	GetSnapshot(ctx context.Context, clinicID uuid.UUID) (*dto.SnapshotResponse, error)
}

type scheduleUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	entryRepo repository.ScheduleEntryRepository
	cache     SnapshotCache
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	entryRepo repository.ScheduleEntryRepository,
	cache SnapshotCache,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:        db,
		log:       log,
		entryRepo: entryRepo,
		cache:     cache,
	}
}

// ScheduleVisit books a patient into a contiguous run of the doctor's
// on-call time. Candidate selection happens here (same clinic, room,
// specialization, overlapping window); whether the visit actually fits
// is decided by the entry algebra alone.
func (u *scheduleUsecase) ScheduleVisit(ctx context.Context, clinicID uuid.UUID, req *dto.ScheduleVisitRequest) (*dto.ScheduleVisitResponse, error) {
	spec := entity.Specialization(req.Specialization)
	if !spec.IsValid() {
		return nil, ErrUnknownSpecialization
	}

	startAt, endAt, err := parseWindow(req.StartAt, req.EndAt)
	if err != nil {
		return nil, err
	}

	visit, err := entity.NewVisitEntry(
		entity.Doctor{Specialization: spec},
		entity.Patient{Name: req.PatientName},
		entity.Room{Name: req.Room},
		startAt,
		endAt,
	)
	if err != nil {
		return nil, err
	}

	records, err := u.entryRepo.FindCandidates(u.db.WithContext(ctx), &entity.CandidateFilter{
		ClinicID:       clinicID,
		Room:           req.Room,
		Specialization: spec,
		From:           startAt,
		To:             endAt,
	})
	if err != nil {
		u.log.Warnf("Failed to find candidate entries for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	candidates, err := converter.RecordsToEntries(records)
	if err != nil {
		u.log.Errorf("Corrupted schedule row for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	result, ok := visit.ImmerseInto(candidates)
	if !ok {
		return nil, ErrNotImmersable
	}

	removeIDs := recordIDs(records)
	insert := make([]entity.ScheduleEntryRecord, len(result))
	for i, entry := range result {
		insert[i] = converter.EntryToRecord(clinicID, entry)
	}

	if err := u.entryRepo.ReplaceEntries(u.db.WithContext(ctx), removeIDs, insert); err != nil {
		u.log.Warnf("Failed to replace schedule entries for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	u.invalidateSnapshot(ctx, clinicID)

	response := &dto.ScheduleVisitResponse{}
	for i := range insert {
		if insert[i].IsOnCall() {
			response.Remainder = append(response.Remainder, converter.RecordToResponse(&insert[i]))
			continue
		}
		response.Visit = converter.RecordToResponse(&insert[i])
	}

	return response, nil
}

// CancelVisit removes a booked visit and folds the freed time back
// into the flanking on-call blocks, so repeated booking and cancelling
// does not fragment the schedule.
func (u *scheduleUsecase) CancelVisit(ctx context.Context, clinicID, visitID uuid.UUID) error {
	record, err := u.entryRepo.FindVisit(u.db.WithContext(ctx), clinicID, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %s: %+v", visitID, err)
		return err
	}
	if record == nil {
		return ErrVisitNotFound
	}

	flanking, err := u.entryRepo.FindFlankingOnCall(u.db.WithContext(ctx), record)
	if err != nil {
		u.log.Warnf("Failed to find flanking entries for visit %s: %+v", visitID, err)
		return err
	}

	doctor := entity.Doctor{Specialization: entity.Specialization(record.Specialization)}
	room := entity.Room{Name: record.Room}

	released, err := entity.NewOnCallEntry(doctor, room, record.StartAt, record.EndAt)
	if err != nil {
		return err
	}

	merged := []entity.Entry{released}

	neighbors, err := converter.RecordsToEntries(flanking)
	if err != nil {
		u.log.Errorf("Corrupted schedule row for clinic %s: %+v", clinicID, err)
		return err
	}
	merged = append(merged, neighbors...)

	total, ok := entity.Squash(merged)
	if !ok {
		// Flanking rows are selected by exact adjacency, so the squash
		// cannot gap. Keep the freed block alone if it does anyway.
		u.log.Errorf("Flanking entries of visit %s do not squash, releasing visit only", visitID)
		total = released.Range
		flanking = nil
	}

	mergedEntry, err := entity.NewOnCallEntry(doctor, room, total.From, total.To)
	if err != nil {
		return err
	}

	removeIDs := append([]uuid.UUID{record.ID}, recordIDs(flanking)...)
	insert := []entity.ScheduleEntryRecord{converter.EntryToRecord(clinicID, mergedEntry)}

	if err := u.entryRepo.ReplaceEntries(u.db.WithContext(ctx), removeIDs, insert); err != nil {
		u.log.Warnf("Failed to replace schedule entries for clinic %s: %+v", clinicID, err)
		return err
	}

	u.invalidateSnapshot(ctx, clinicID)

	return nil
}

// OpenOnCallBlock registers new unbooked time. The block is rejected
// when anything already scheduled in the room interferes with it.
func (u *scheduleUsecase) OpenOnCallBlock(ctx context.Context, clinicID uuid.UUID, req *dto.OpenOnCallRequest) (*dto.EntryResponse, error) {
	spec := entity.Specialization(req.Specialization)
	if !spec.IsValid() {
		return nil, ErrUnknownSpecialization
	}

	startAt, endAt, err := parseWindow(req.StartAt, req.EndAt)
	if err != nil {
		return nil, err
	}

	block, err := entity.NewOnCallEntry(
		entity.Doctor{Specialization: spec},
		entity.Room{Name: req.Room},
		startAt,
		endAt,
	)
	if err != nil {
		return nil, err
	}

	interfering, err := u.entryRepo.FindInterfering(u.db.WithContext(ctx), clinicID, req.Room, startAt, endAt)
	if err != nil {
		u.log.Warnf("Failed to find interfering entries for clinic %s: %+v", clinicID, err)
		return nil, err
	}
	if len(interfering) > 0 {
		return nil, ErrEntryInterferes
	}

	record := converter.EntryToRecord(clinicID, block)
	if err := u.entryRepo.Create(u.db.WithContext(ctx), &record); err != nil {
		u.log.Warnf("Failed to create on-call entry for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	u.invalidateSnapshot(ctx, clinicID)

	response := converter.RecordToResponse(&record)

	return &response, nil
}

// BlockOutRoom carves a closed interval out of a room's on-call time,
// clipping or dropping every overlapped block. Booked visits are never
// trimmed; any visit in the window rejects the whole block-out.
func (u *scheduleUsecase) BlockOutRoom(ctx context.Context, clinicID uuid.UUID, room string, req *dto.BlockOutRoomRequest) ([]dto.EntryResponse, error) {
	startAt, endAt, err := parseWindow(req.StartAt, req.EndAt)
	if err != nil {
		return nil, err
	}

	blocker, err := entity.NewOnCallEntry(entity.Doctor{}, entity.Room{Name: room}, startAt, endAt)
	if err != nil {
		return nil, err
	}

	records, err := u.entryRepo.FindInterfering(u.db.WithContext(ctx), clinicID, room, startAt, endAt)
	if err != nil {
		u.log.Warnf("Failed to find interfering entries for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	for i := range records {
		if !records[i].IsOnCall() {
			return nil, ErrRoomBooked
		}
	}

	var (
		removeIDs []uuid.UUID
		insert    []entity.ScheduleEntryRecord
	)

	for i := range records {
		entry, err := converter.RecordToEntry(&records[i])
		if err != nil {
			u.log.Errorf("Corrupted schedule row for clinic %s: %+v", clinicID, err)
			return nil, err
		}

		trimmed, kept := entry.TrimTo(blocker)
		if kept && trimmed.Equal(entry) {
			continue
		}

		removeIDs = append(removeIDs, records[i].ID)
		if kept {
			insert = append(insert, converter.EntryToRecord(clinicID, trimmed))
		}
	}

	if err := u.entryRepo.ReplaceEntries(u.db.WithContext(ctx), removeIDs, insert); err != nil {
		u.log.Warnf("Failed to replace schedule entries for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	u.invalidateSnapshot(ctx, clinicID)

	return converter.RecordsToResponses(insert), nil
}

// GetSnapshot returns the clinic's full schedule, cache first.
func (u *scheduleUsecase) GetSnapshot(ctx context.Context, clinicID uuid.UUID) (*dto.SnapshotResponse, error) {
	cached, err := u.cache.GetSnapshot(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to read snapshot cache for clinic %s: %+v", clinicID, err)
	}
	if cached != nil {
		return cached, nil
	}

	records, err := u.entryRepo.FindByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to load schedule for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	snapshot := entity.NewScheduleSnapshot(clinicID)
	responses := make([]dto.EntryResponse, 0, len(records))

	for i := range records {
		entry, err := converter.RecordToEntry(&records[i])
		if err != nil {
			u.log.Errorf("Corrupted schedule row for clinic %s: %+v", clinicID, err)
			return nil, err
		}

		if snapshot.Add(entry) {
			responses = append(responses, converter.RecordToResponse(&records[i]))
		}
	}

	response := &dto.SnapshotResponse{
		ClinicID: clinicID,
		Entries:  responses,
		Total:    snapshot.Len(),
	}

	if err := u.cache.SetSnapshot(ctx, clinicID, response); err != nil {
		u.log.Warnf("Failed to cache snapshot for clinic %s: %+v", clinicID, err)
	}

	return response, nil
}

func (u *scheduleUsecase) invalidateSnapshot(ctx context.Context, clinicID uuid.UUID) {
	if err := u.cache.Invalidate(ctx, clinicID); err != nil {
		u.log.Warnf("Failed to invalidate snapshot cache for clinic %s: %+v", clinicID, err)
	}
}

func parseWindow(start, end string) (time.Time, time.Time, error) {
	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimeFormat
	}

	endAt, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTimeFormat
	}

	return startAt, endAt, nil
}

func recordIDs(records []entity.ScheduleEntryRecord) []uuid.UUID {
	ids := make([]uuid.UUID, len(records))
	for i := range records {
		ids[i] = records[i].ID
	}
	return ids
}
