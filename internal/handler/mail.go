package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tylerleech/twnkil-schedule/internal/domain"
)

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func displayName(e domain.Employee) string {
	s := string(e)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// SendNotifications emails the two audit participants and the balance
// check employee of an assignment via the mail queue.
func (h *Handler) SendNotifications(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(AssignmentCtx).(*domain.Assignment)

	weekOf := assignment.WeekStartDate.Format("January 2, 2006")
	auditDate := assignment.WeekStartDate.AddDate(0, 0, int(assignment.AuditDay)-1).Format("Monday, January 2")
	auditDay := ""
	if assignment.AuditDay >= 1 && assignment.AuditDay <= 5 {
		auditDay = dayNames[assignment.AuditDay-1]
	}

	auditPair := []struct {
		employee domain.Employee
		partner  domain.Employee
	}{
		{assignment.AuditEmployee1, assignment.AuditEmployee2},
		{assignment.AuditEmployee2, assignment.AuditEmployee1},
	}

	for _, member := range auditPair {
		msg := domain.MailMessage{
			Type: "audit_assignment",
			To:   h.config.EmployeeEmail(string(member.employee)),
			Data: domain.AuditAssignmentMailData{
				EmployeeName: displayName(member.employee),
				PartnerName:  displayName(member.partner),
				WeekOf:       weekOf,
				AuditDate:    auditDate,
				AuditDay:     auditDay,
			},
		}
		if err := h.publishMail(msg); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	msg := domain.MailMessage{
		Type: "balance_check",
		To:   h.config.EmployeeEmail(string(assignment.BalanceCheckEmployee)),
		Data: domain.BalanceCheckMailData{
			EmployeeName: displayName(assignment.BalanceCheckEmployee),
			WeekOf:       weekOf,
		},
	}
	if err := h.publishMail(msg); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"message": "Notifications sent successfully"})
}
