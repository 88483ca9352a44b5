package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

func TestIsValidDay(t *testing.T) {
	require.False(t, IsValidDay(0))
	require.False(t, IsValidDay(6))
	require.False(t, IsValidDay(-1))
	for d := int32(1); d <= 5; d++ {
		require.True(t, IsValidDay(d))
	}
}

func TestIsEligibleForBalanceCheck(t *testing.T) {
	require.True(t, IsEligibleForBalanceCheck(domain.EmployeeTyler))
	require.True(t, IsEligibleForBalanceCheck(domain.EmployeeClaudia))
	require.True(t, IsEligibleForBalanceCheck(domain.EmployeeAna))
	require.False(t, IsEligibleForBalanceCheck(domain.EmployeeNalleli))
}

func TestPairEqualIgnoresOrder(t *testing.T) {
	p1 := domain.NewPair(domain.EmployeeTyler, domain.EmployeeClaudia)
	p2 := domain.NewPair(domain.EmployeeClaudia, domain.EmployeeTyler)
	require.True(t, p1.Equal(p2))

	p3 := domain.NewPair(domain.EmployeeTyler, domain.EmployeeAna)
	require.False(t, p1.Equal(p3))
}

func TestAvailablePairsExcludesPrevious(t *testing.T) {
	previous := domain.NewPair(domain.EmployeeTyler, domain.EmployeeClaudia)
	pairs := availablePairs(&previous)

	require.Len(t, pairs, len(domain.AuditPairs)-1)
	for _, pair := range pairs {
		require.False(t, pair.Equal(previous))
	}
}

func TestAvailablePairsWithoutPrevious(t *testing.T) {
	require.Equal(t, domain.AuditPairs, availablePairs(nil))
}

func TestAvailableDaysExcludesPrevious(t *testing.T) {
	days := availableDays(3)
	require.Equal(t, []int32{1, 2, 4, 5}, days)

	require.Equal(t, []int32{1, 2, 3, 4, 5}, availableDays(0))
}
