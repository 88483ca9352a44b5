package scheduler

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

// fakeStore is an in-memory Store keyed by week start.
type fakeStore struct {
	assignments map[int64]*domain.Assignment
	nextID      int64
	createCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{assignments: make(map[int64]*domain.Assignment)}
}

func (f *fakeStore) GetAssignmentByWeek(weekStart time.Time) (*domain.Assignment, error) {
	if a, ok := f.assignments[weekStart.Unix()]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) CreateAssignment(assignment *domain.Assignment) error {
	f.createCalls++
	f.nextID++
	assignment.ID = f.nextID
	assignment.CreatedAt = time.Now()
	f.assignments[assignment.WeekStartDate.Unix()] = assignment
	return nil
}

func newTestScheduler(store Store, now time.Time) *Scheduler {
	s := New(store, NewGenerator(rand.New(rand.NewSource(1))))
	s.now = func() time.Time { return now }
	return s
}

func TestCreateWeekAssignmentNormalizesAndPersists(t *testing.T) {
	store := newFakeStore()
	s := newTestScheduler(store, time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC))

	// A mid-week date lands on the Monday of its week.
	created, err := s.CreateWeekAssignment(time.Date(2025, 1, 22, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), created.WeekStartDate)
	require.NotZero(t, created.ID)

	stored, err := store.GetAssignmentByWeek(created.WeekStartDate)
	require.NoError(t, err)
	require.Equal(t, created.ID, stored.ID)
}

func TestCreateWeekAssignmentConflicts(t *testing.T) {
	store := newFakeStore()
	s := newTestScheduler(store, time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC))

	_, err := s.CreateWeekAssignment(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Any date in the same week conflicts, no second record appears.
	_, err = s.CreateWeekAssignment(time.Date(2025, 1, 23, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, ErrWeekConflict)
	require.Equal(t, 1, store.createCalls)
}

func TestCreateWeekAssignmentRespectsPreviousWeek(t *testing.T) {
	store := newFakeStore()
	s := newTestScheduler(store, time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC))

	previous := &domain.Assignment{
		WeekStartDate:        time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		AuditEmployee1:       domain.EmployeeTyler,
		AuditEmployee2:       domain.EmployeeClaudia,
		AuditDay:             3,
		BalanceCheckEmployee: domain.EmployeeAna,
	}
	require.NoError(t, store.CreateAssignment(previous))

	for i := 0; i < 50; i++ {
		created, err := s.CreateWeekAssignment(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		require.False(t, created.AuditPair().Equal(previous.AuditPair()))
		require.NotEqual(t, previous.AuditDay, created.AuditDay)

		delete(store.assignments, created.WeekStartDate.Unix())
	}
}

func TestGenerateNextWeekIsIdempotent(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(store, now)

	first, err := s.GenerateNextWeek()
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), first.WeekStartDate)

	second, err := s.GenerateNextWeek()
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 1, store.createCalls)
}

func TestGenerateNextWeekUsesCurrentWeekAsPrevious(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	s := newTestScheduler(store, now)

	current := &domain.Assignment{
		WeekStartDate:        time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		AuditEmployee1:       domain.EmployeeNalleli,
		AuditEmployee2:       domain.EmployeeAna,
		AuditDay:             2,
		BalanceCheckEmployee: domain.EmployeeTyler,
	}
	require.NoError(t, store.CreateAssignment(current))

	next, err := s.GenerateNextWeek()
	require.NoError(t, err)
	require.False(t, next.AuditPair().Equal(current.AuditPair()))
	require.NotEqual(t, current.AuditDay, next.AuditDay)
}
