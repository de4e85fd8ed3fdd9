package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-schedule-service/internal/delivery/dto"
	"clinic-schedule-service/internal/domain/entity"
	"clinic-schedule-service/internal/usecase"
	"clinic-schedule-service/pkg/response"
	"clinic-schedule-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) ScheduleVisit(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := clinicIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.ScheduleVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.scheduleUsecase.ScheduleVisit(r.Context(), clinicID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownSpecialization):
			response.Error(w, http.StatusBadRequest, "Unknown specialization", nil)
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.Error(w, http.StatusBadRequest, "Invalid time format, use RFC3339", nil)
		case errors.Is(err, entity.ErrInvalidRange):
			response.Error(w, http.StatusBadRequest, "Visit must start before it ends", nil)
		case errors.Is(err, usecase.ErrNotImmersable):
			response.Error(w, http.StatusUnprocessableEntity, "Visit does not fit the on-call time at that slot", nil)
		default:
			response.InternalServerError(w, "Failed to schedule visit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Visit scheduled successfully", visit)
}

func (h *ScheduleHandler) CancelVisit(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := clinicIDFromPath(w, r)
	if !ok {
		return
	}

	visitID, err := uuid.Parse(mux.Vars(r)["visitId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	if err := h.scheduleUsecase.CancelVisit(r.Context(), clinicID, visitID); err != nil {
		if errors.Is(err, usecase.ErrVisitNotFound) {
			response.NotFound(w, "Visit not found")
			return
		}
		response.InternalServerError(w, "Failed to cancel visit")
		return
	}

	response.Success(w, http.StatusOK, "Visit cancelled successfully", nil)
}

func (h *ScheduleHandler) OpenOnCallBlock(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := clinicIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.OpenOnCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	block, err := h.scheduleUsecase.OpenOnCallBlock(r.Context(), clinicID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownSpecialization):
			response.Error(w, http.StatusBadRequest, "Unknown specialization", nil)
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.Error(w, http.StatusBadRequest, "Invalid time format, use RFC3339", nil)
		case errors.Is(err, entity.ErrInvalidRange):
			response.Error(w, http.StatusBadRequest, "Block must start before it ends", nil)
		case errors.Is(err, usecase.ErrEntryInterferes):
			response.Error(w, http.StatusConflict, "Block interferes with existing schedule in the room", nil)
		default:
			response.InternalServerError(w, "Failed to open on-call block")
		}
		return
	}

	response.Success(w, http.StatusCreated, "On-call block opened successfully", block)
}

func (h *ScheduleHandler) BlockOutRoom(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := clinicIDFromPath(w, r)
	if !ok {
		return
	}

	room := mux.Vars(r)["room"]
	if room == "" {
		response.Error(w, http.StatusBadRequest, "Invalid room", nil)
		return
	}

	var req dto.BlockOutRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	remaining, err := h.scheduleUsecase.BlockOutRoom(r.Context(), clinicID, room, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.Error(w, http.StatusBadRequest, "Invalid time format, use RFC3339", nil)
		case errors.Is(err, entity.ErrInvalidRange):
			response.Error(w, http.StatusBadRequest, "Block must start before it ends", nil)
		case errors.Is(err, usecase.ErrRoomBooked):
			response.Error(w, http.StatusConflict, "Room has booked visits in the requested window", nil)
		default:
			response.InternalServerError(w, "Failed to block out room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room blocked out successfully", remaining)
}

func (h *ScheduleHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := clinicIDFromPath(w, r)
	if !ok {
		return
	}

	snapshot, err := h.scheduleUsecase.GetSnapshot(r.Context(), clinicID)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule snapshot")
		return
	}

	response.Success(w, http.StatusOK, "Schedule snapshot retrieved successfully", snapshot)
}

func clinicIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	clinicID, err := uuid.Parse(mux.Vars(r)["clinicId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return uuid.Nil, false
	}

	return clinicID, true
}
