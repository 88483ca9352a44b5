package scheduler

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

// ErrWeekConflict signals that an assignment already exists for the
// exact target week of a create call.
var ErrWeekConflict = errors.New("assignment already exists for this week")

// Store is the slice of the persistence layer the scheduler needs.
// Absence is signalled with sql.ErrNoRows.
type Store interface {
	GetAssignmentByWeek(weekStart time.Time) (*domain.Assignment, error)
	CreateAssignment(assignment *domain.Assignment) error
}

// Scheduler ties generation and persistence together for the two
// entry points. It holds no state beyond its collaborators.
type Scheduler struct {
	store     Store
	generator *Generator
	now       func() time.Time
}

func New(store Store, generator *Generator) *Scheduler {
	return &Scheduler{
		store:     store,
		generator: generator,
		now:       time.Now,
	}
}

// previousAssignment looks up the assignment for the week exactly
// seven days before weekStart, returning nil when there is none.
func (s *Scheduler) previousAssignment(weekStart time.Time) (*domain.Assignment, error) {
	previous, err := s.store.GetAssignmentByWeek(PreviousWeek(weekStart))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return previous, nil
}

// CreateWeekAssignment generates and persists an assignment for the
// week containing weekStart. It fails with ErrWeekConflict if that
// week is already scheduled.
func (s *Scheduler) CreateWeekAssignment(weekStart time.Time) (*domain.Assignment, error) {
	normalized := WeekStart(weekStart)

	if _, err := s.store.GetAssignmentByWeek(normalized); err == nil {
		return nil, ErrWeekConflict
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	previous, err := s.previousAssignment(normalized)
	if err != nil {
		return nil, err
	}

	assignment, err := s.generator.Generate(normalized, previous)
	if err != nil {
		return nil, fmt.Errorf("generating assignment: %w", err)
	}

	if err := s.store.CreateAssignment(assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// GenerateNextWeek generates and persists the assignment for the week
// after the current one, constrained against the current week's
// assignment. If next week is already scheduled the existing record
// is returned as-is, so repeated calls never create duplicates.
func (s *Scheduler) GenerateNextWeek() (*domain.Assignment, error) {
	nextWeek := NextWeekStart(s.now())

	existing, err := s.store.GetAssignmentByWeek(nextWeek)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	current, err := s.previousAssignment(nextWeek)
	if err != nil {
		return nil, err
	}

	assignment, err := s.generator.Generate(nextWeek, current)
	if err != nil {
		return nil, fmt.Errorf("generating assignment: %w", err)
	}

	if err := s.store.CreateAssignment(assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}
