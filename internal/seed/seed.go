package seed

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/tylerleech/twnkil-schedule/internal/config"
	"github.com/tylerleech/twnkil-schedule/internal/domain"
	"github.com/tylerleech/twnkil-schedule/internal/repository"
	"github.com/tylerleech/twnkil-schedule/internal/scheduler"
	"golang.org/x/crypto/bcrypt"
)

// SeedUsers inserts a dashboard account for every roster member,
// skipping those that already exist.
func SeedUsers(r *repository.Repository, cfg *config.Config) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.User.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash seed password", "error", err)
		return
	}

	for _, employee := range domain.Roster {
		username := string(employee)

		if _, err := r.GetUserByUsername(username); err == nil {
			slog.Info("user already exists", "username", username)
			continue
		} else if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up user", "username", username, "error", err)
			continue
		}

		user := &domain.User{
			Username:     username,
			PasswordHash: string(passwordHash),
			FullName:     username,
			Email:        cfg.EmployeeEmail(username),
			Role:         domain.RoleMember,
		}
		if err := r.CreateUser(user); err != nil {
			slog.Error("failed to insert user", "username", username, "error", err)
			continue
		}

		slog.Info("inserted user", "username", username)
	}
}

// SeedAssignments fills a run of consecutive weeks around the current
// one with generated assignments, each constrained against the week
// before it. Weeks that are already scheduled are kept as-is and used
// as the previous reference for the week after them.
func SeedAssignments(r *repository.Repository, gen *scheduler.Generator, weeksBack, weeksAhead int) {
	currentWeek := scheduler.WeekStart(time.Now())

	var previous *domain.Assignment
	for offset := -weeksBack; offset <= weeksAhead; offset++ {
		weekStart := currentWeek.AddDate(0, 0, 7*offset)

		existing, err := r.GetAssignmentByWeek(weekStart)
		if err == nil {
			slog.Info("assignment already exists", "week", weekStart.Format("2006-01-02"))
			previous = existing
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up assignment", "week", weekStart.Format("2006-01-02"), "error", err)
			return
		}

		assignment, err := gen.Generate(weekStart, previous)
		if err != nil {
			slog.Error("failed to generate assignment", "week", weekStart.Format("2006-01-02"), "error", err)
			return
		}

		if err := r.CreateAssignment(assignment); err != nil {
			slog.Error("failed to insert assignment", "week", weekStart.Format("2006-01-02"), "error", err)
			return
		}

		slog.Info("inserted assignment", "week", weekStart.Format("2006-01-02"))
		previous = assignment
	}
}
