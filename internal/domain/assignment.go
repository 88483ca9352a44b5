package domain

import "time"

// Assignment is the weekly task assignment: the two-person foreign
// currency audit plus the single-person branch balance check. At most
// one assignment exists per week start date.
type Assignment struct {
	ID                   int64     `json:"id"`
	WeekStartDate        time.Time `json:"weekStartDate"` // always the Monday of its week
	AuditEmployee1       Employee  `json:"auditEmployee1"`
	AuditEmployee2       Employee  `json:"auditEmployee2"`
	AuditDay             int32     `json:"auditDay"` // 1-5 for Mon-Fri
	BalanceCheckEmployee Employee  `json:"balanceCheckEmployee"`
	Notes                *string   `json:"notes"`
	CreatedAt            time.Time `json:"createdAt"`
	Version              int32     `json:"-"`
}

// AuditPair returns the unordered audit pair of the assignment.
func (a *Assignment) AuditPair() Pair {
	return NewPair(a.AuditEmployee1, a.AuditEmployee2)
}
