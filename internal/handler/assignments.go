package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tylerleech/twnkil-schedule/internal/domain"
	"github.com/tylerleech/twnkil-schedule/internal/scheduler"
)

func (h *Handler) GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.repository.GetAllAssignments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, assignments)
}

func (h *Handler) GetRecentAssignments(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(chi.URLParam(r, "limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	assignments, err := h.repository.GetRecentAssignments(limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, assignments)
}

func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(AssignmentCtx).(*domain.Assignment)

	h.writeJSON(w, r, http.StatusOK, assignment)
}

func (h *Handler) GetAssignmentByWeek(w http.ResponseWriter, r *http.Request) {
	dateParam := chi.URLParam(r, "date")
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	assignment, err := h.repository.GetAssignmentByWeek(scheduler.WeekStart(date))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "No assignment found for this week")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, assignment)
}

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeekStartDate        string  `json:"weekStartDate" validate:"required"`
		AuditEmployee1       string  `json:"auditEmployee1" validate:"required,oneof=tyler nalleli claudia ana"`
		AuditEmployee2       string  `json:"auditEmployee2" validate:"required,oneof=tyler nalleli claudia ana"`
		AuditDay             int32   `json:"auditDay"`
		BalanceCheckEmployee string  `json:"balanceCheckEmployee" validate:"required,oneof=tyler nalleli claudia ana"`
		Notes                *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.WeekStartDate)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Invalid weekStartDate, expected YYYY-MM-DD")
		return
	}

	candidate := &domain.Assignment{
		WeekStartDate:        scheduler.WeekStart(date),
		AuditEmployee1:       domain.Employee(req.AuditEmployee1),
		AuditEmployee2:       domain.Employee(req.AuditEmployee2),
		AuditDay:             req.AuditDay,
		BalanceCheckEmployee: domain.Employee(req.BalanceCheckEmployee),
		Notes:                req.Notes,
	}

	previous, err := h.previousAssignment(candidate.WeekStartDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if result := scheduler.Validate(candidate, previous); !result.Valid {
		h.validationFailed(w, r, result.Errors)
		return
	}

	if err := h.repository.CreateAssignment(candidate); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "assignments_week_start_date_key":
			h.conflict(w, r, "Assignment already exists for this week")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, candidate)
}

func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(AssignmentCtx).(*domain.Assignment)

	var req struct {
		AuditEmployee1       *string `json:"auditEmployee1" validate:"omitempty,oneof=tyler nalleli claudia ana"`
		AuditEmployee2       *string `json:"auditEmployee2" validate:"omitempty,oneof=tyler nalleli claudia ana"`
		AuditDay             *int32  `json:"auditDay"`
		BalanceCheckEmployee *string `json:"balanceCheckEmployee" validate:"omitempty,oneof=tyler nalleli claudia ana"`
		Notes                *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// Merge the proposed changes into a copy so the stored record is
	// untouched if validation rejects the update.
	merged := *assignment
	if req.AuditEmployee1 != nil {
		merged.AuditEmployee1 = domain.Employee(*req.AuditEmployee1)
	}
	if req.AuditEmployee2 != nil {
		merged.AuditEmployee2 = domain.Employee(*req.AuditEmployee2)
	}
	if req.AuditDay != nil {
		merged.AuditDay = *req.AuditDay
	}
	if req.BalanceCheckEmployee != nil {
		merged.BalanceCheckEmployee = domain.Employee(*req.BalanceCheckEmployee)
	}
	if req.Notes != nil {
		merged.Notes = req.Notes
	}

	touchesRules := req.AuditEmployee1 != nil || req.AuditEmployee2 != nil ||
		req.AuditDay != nil || req.BalanceCheckEmployee != nil
	if touchesRules {
		previous, err := h.previousAssignment(merged.WeekStartDate)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		if result := scheduler.Validate(&merged, previous); !result.Valid {
			h.validationFailed(w, r, result.Errors)
			return
		}
	}

	if err := h.repository.UpdateAssignment(&merged); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.conflict(w, r, "Assignment was modified concurrently, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, &merged)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(AssignmentCtx).(*domain.Assignment)

	deleted, err := h.repository.DeleteAssignment(assignment.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !deleted {
		h.notFound(w, r, "Assignment not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GenerateForWeek(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeekStartDate string `json:"weekStartDate" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.WeekStartDate)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "Invalid weekStartDate, expected YYYY-MM-DD")
		return
	}

	assignment, err := h.scheduler.CreateWeekAssignment(date)
	if err != nil {
		h.generationError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, assignment)
}

func (h *Handler) GenerateNextWeek(w http.ResponseWriter, r *http.Request) {
	assignment, err := h.scheduler.GenerateNextWeek()
	if err != nil {
		h.generationError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, assignment)
}

// generationError maps scheduler failures onto the error taxonomy: a
// week conflict (including losing a storage-level race on the week
// key) is a 409, candidate exhaustion is reported distinctly.
func (h *Handler) generationError(w http.ResponseWriter, r *http.Request, err error) {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, scheduler.ErrWeekConflict):
		h.conflict(w, r, "Assignment already exists for this week")
	case errors.As(err, &pgErr) && pgErr.ConstraintName == "assignments_week_start_date_key":
		h.conflict(w, r, "Assignment already exists for this week")
	case errors.Is(err, scheduler.ErrNoCandidates):
		h.errorResponse(w, r, http.StatusInternalServerError, "No valid assignment could be generated")
	default:
		h.internalServerError(w, r, err)
	}
}

// previousAssignment fetches the record for the week exactly seven
// days before weekStart, nil when that week is unscheduled.
func (h *Handler) previousAssignment(weekStart time.Time) (*domain.Assignment, error) {
	previous, err := h.repository.GetAssignmentByWeek(scheduler.PreviousWeek(weekStart))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return previous, nil
}
