package domain

import "fmt"

// Employee is one of the four fixed roster members. The roster is a
// closed set and is not user-extensible.
type Employee string

const (
	EmployeeTyler   Employee = "tyler"
	EmployeeNalleli Employee = "nalleli"
	EmployeeClaudia Employee = "claudia"
	EmployeeAna     Employee = "ana"
)

// Roster holds every employee.
var Roster = []Employee{EmployeeTyler, EmployeeNalleli, EmployeeClaudia, EmployeeAna}

// BalanceCheckRoster holds the employees eligible for the branch
// balance check. Nalleli is permanently excluded from this role.
var BalanceCheckRoster = []Employee{EmployeeTyler, EmployeeClaudia, EmployeeAna}

func ParseEmployee(s string) (Employee, error) {
	switch Employee(s) {
	case EmployeeTyler, EmployeeNalleli, EmployeeClaudia, EmployeeAna:
		return Employee(s), nil
	default:
		return "", fmt.Errorf("unknown employee %q", s)
	}
}

// Pair is an unordered pair of audit employees. NewPair canonicalizes
// the order so that equality is structural.
type Pair struct {
	First  Employee
	Second Employee
}

func NewPair(a, b Employee) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{First: a, Second: b}
}

func (p Pair) Equal(other Pair) bool {
	return p.First == other.First && p.Second == other.Second
}

func (p Pair) Contains(e Employee) bool {
	return p.First == e || p.Second == e
}

// AuditPairs is the curated list of audit pairings used by the branch,
// every unordered pair drawn from the four-person roster.
var AuditPairs = []Pair{
	NewPair(EmployeeTyler, EmployeeClaudia),
	NewPair(EmployeeTyler, EmployeeNalleli),
	NewPair(EmployeeTyler, EmployeeAna),
	NewPair(EmployeeNalleli, EmployeeClaudia),
	NewPair(EmployeeNalleli, EmployeeAna),
	NewPair(EmployeeClaudia, EmployeeAna),
}
