package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

func TestGenerateWithoutPrevious(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))
	weekStart := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		assignment, err := gen.Generate(weekStart, nil)
		require.NoError(t, err)

		require.Equal(t, weekStart, assignment.WeekStartDate)
		require.NotEqual(t, assignment.AuditEmployee1, assignment.AuditEmployee2)
		require.True(t, IsValidDay(assignment.AuditDay))
		require.True(t, IsEligibleForBalanceCheck(assignment.BalanceCheckEmployee))
		require.Zero(t, assignment.ID)
		require.True(t, assignment.CreatedAt.IsZero())
	}
}

func TestGenerateNeverRepeatsPreviousWeek(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(42)))

	previous := &domain.Assignment{
		WeekStartDate:        time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		AuditEmployee1:       domain.EmployeeTyler,
		AuditEmployee2:       domain.EmployeeClaudia,
		AuditDay:             3,
		BalanceCheckEmployee: domain.EmployeeAna,
	}
	weekStart := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		assignment, err := gen.Generate(weekStart, previous)
		require.NoError(t, err)

		require.False(t, assignment.AuditPair().Equal(previous.AuditPair()))
		require.NotEqual(t, previous.AuditDay, assignment.AuditDay)
		require.True(t, IsEligibleForBalanceCheck(assignment.BalanceCheckEmployee))
	}
}

func TestGenerateAlwaysPassesValidation(t *testing.T) {
	// Generation and validation share the same rule set, so a generated
	// draft must never be something validation would reject.
	gen := NewGenerator(rand.New(rand.NewSource(7)))
	previous := &domain.Assignment{
		WeekStartDate:        time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		AuditEmployee1:       domain.EmployeeNalleli,
		AuditEmployee2:       domain.EmployeeAna,
		AuditDay:             5,
		BalanceCheckEmployee: domain.EmployeeTyler,
	}
	weekStart := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		assignment, err := gen.Generate(weekStart, previous)
		require.NoError(t, err)

		result := Validate(assignment, previous)
		require.True(t, result.Valid, "generated draft failed validation: %v", result.Errors)
	}
}

func TestGenerateIsDeterministicWithSinSource(t *testing.T) {
	weekStart := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	first, err := NewGenerator(NewSinSource(1000)).Generate(weekStart, nil)
	require.NoError(t, err)
	second, err := NewGenerator(NewSinSource(1000)).Generate(weekStart, nil)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSinSourceStaysInRange(t *testing.T) {
	src := NewSinSource(99)
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 6)
	}
}
