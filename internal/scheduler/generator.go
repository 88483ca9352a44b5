package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

// ErrNoCandidates is returned when filtering empties a candidate set.
// With the fixed four-person roster this is unreachable, but an empty
// set must fail loudly rather than fall back to an invalid pick.
var ErrNoCandidates = errors.New("no candidates left after applying constraints")

// Generator produces draft assignments for a target week, constrained
// against the immediately preceding week's assignment.
type Generator struct {
	rng Source
}

func NewGenerator(rng Source) *Generator {
	return &Generator{rng: rng}
}

// Generate picks an audit pair, an audit day and a balance check
// employee for the week starting at weekStart. Each is an independent
// uniform draw from its candidate set; if previous is non-nil the pair
// and day candidate sets exclude the previous week's values. The
// returned draft carries no ID or creation time, those are assigned at
// persistence.
func (g *Generator) Generate(weekStart time.Time, previous *domain.Assignment) (*domain.Assignment, error) {
	var previousPair *domain.Pair
	var previousDay int32
	if previous != nil {
		pair := previous.AuditPair()
		previousPair = &pair
		previousDay = previous.AuditDay
	}

	pairs := availablePairs(previousPair)
	if len(pairs) == 0 {
		return nil, fmt.Errorf("picking audit pair: %w", ErrNoCandidates)
	}
	pair := pairs[g.rng.Intn(len(pairs))]

	days := availableDays(previousDay)
	if len(days) == 0 {
		return nil, fmt.Errorf("picking audit day: %w", ErrNoCandidates)
	}
	day := days[g.rng.Intn(len(days))]

	if len(domain.BalanceCheckRoster) == 0 {
		return nil, fmt.Errorf("picking balance check employee: %w", ErrNoCandidates)
	}
	balanceEmployee := domain.BalanceCheckRoster[g.rng.Intn(len(domain.BalanceCheckRoster))]

	return &domain.Assignment{
		WeekStartDate:        weekStart,
		AuditEmployee1:       pair.First,
		AuditEmployee2:       pair.Second,
		AuditDay:             day,
		BalanceCheckEmployee: balanceEmployee,
	}, nil
}
