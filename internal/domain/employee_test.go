package domain

import "testing"

func TestParseEmployee(t *testing.T) {
	for _, e := range Roster {
		parsed, err := ParseEmployee(string(e))
		if err != nil {
			t.Fatalf("ParseEmployee(%q): %v", e, err)
		}
		if parsed != e {
			t.Errorf("ParseEmployee(%q) = %q", e, parsed)
		}
	}

	if _, err := ParseEmployee("bob"); err == nil {
		t.Error("expected error for unknown employee")
	}
	if _, err := ParseEmployee(""); err == nil {
		t.Error("expected error for empty employee")
	}
}

func TestNewPairCanonicalOrder(t *testing.T) {
	p1 := NewPair(EmployeeTyler, EmployeeAna)
	p2 := NewPair(EmployeeAna, EmployeeTyler)
	if p1 != p2 {
		t.Errorf("pair order should not matter: %v vs %v", p1, p2)
	}
	if p1.First != EmployeeAna {
		t.Errorf("expected canonical order, got %v", p1)
	}
}

func TestAuditPairsCoverRoster(t *testing.T) {
	// Four employees yield six unordered pairs.
	if len(AuditPairs) != 6 {
		t.Fatalf("expected 6 audit pairs, got %d", len(AuditPairs))
	}

	seen := map[Pair]bool{}
	for _, p := range AuditPairs {
		if p.First == p.Second {
			t.Errorf("pair %v pairs an employee with themselves", p)
		}
		if seen[p] {
			t.Errorf("duplicate pair %v", p)
		}
		seen[p] = true
	}
}
