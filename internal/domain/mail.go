package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type AuditAssignmentMailData struct {
	EmployeeName string `json:"employeeName"`
	PartnerName  string `json:"partnerName"`
	WeekOf       string `json:"weekOf"`
	AuditDate    string `json:"auditDate"`
	AuditDay     string `json:"auditDay"`
}

type BalanceCheckMailData struct {
	EmployeeName string `json:"employeeName"`
	WeekOf       string `json:"weekOf"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}
