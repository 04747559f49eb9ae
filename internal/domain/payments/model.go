package payments

import (
	"strings"
	"time"
)

// Payment is a front-desk monetary record tied to a member and a plan.
// Date and DueDate are stored as zero-padded "YYYY-MM-DD" strings so the
// monthly and upcoming-window queries can range-filter on them.
type Payment struct {
	ID       string  `firestore:"-" json:"id"`
	MemberID string  `firestore:"memberId" json:"memberId"`
	PlanID   string  `firestore:"planId" json:"planId"`
	Amount   float64 `firestore:"amount" json:"amount"`
	Date     string  `firestore:"date" json:"date"`
	DueDate  string  `firestore:"dueDate,omitempty" json:"dueDate,omitempty"`
	Method   string  `firestore:"method" json:"method"`
	Status   string  `firestore:"status" json:"status"`
	Notes    string  `firestore:"notes,omitempty" json:"notes,omitempty"`
}

const (
	MethodCredit   = "credit"
	MethodDebit    = "debit"
	MethodCash     = "cash"
	MethodPix      = "pix"
	MethodTransfer = "transfer"

	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

var ValidMethods = []string{MethodCredit, MethodDebit, MethodCash, MethodPix, MethodTransfer}
var ValidStatuses = []string{StatusCompleted, StatusPending, StatusFailed}

func IsValidMethod(method string) bool {
	for _, m := range ValidMethods {
		if m == method {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// MemberRenewal carries the member-side overwrite performed together with a
// payment insert.
type MemberRenewal struct {
	MemberID        string
	PlanID          string
	LastPaymentDate time.Time
	NextPaymentDate time.Time
}

type RecordPaymentInput struct {
	MemberID string  `json:"memberId"`
	PlanID   string  `json:"planId"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	DueDate  string  `json:"dueDate,omitempty"`
	Method   string  `json:"method"`
	Status   string  `json:"status,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

func (in *RecordPaymentInput) Trim() {
	in.MemberID = strings.TrimSpace(in.MemberID)
	in.PlanID = strings.TrimSpace(in.PlanID)
	in.Date = strings.TrimSpace(in.Date)
	in.DueDate = strings.TrimSpace(in.DueDate)
	in.Method = strings.ToLower(strings.TrimSpace(in.Method))
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
}

type UpdatePaymentInput struct {
	Amount  *float64 `json:"amount,omitempty"`
	Date    *string  `json:"date,omitempty"`
	DueDate *string  `json:"dueDate,omitempty"`
	Method  *string  `json:"method,omitempty"`
	Status  *string  `json:"status,omitempty"`
	Notes   *string  `json:"notes,omitempty"`
}

func (in *UpdatePaymentInput) Trim() {
	if in.Date != nil {
		v := strings.TrimSpace(*in.Date)
		*in.Date = v
	}
	if in.DueDate != nil {
		v := strings.TrimSpace(*in.DueDate)
		*in.DueDate = v
	}
	if in.Method != nil {
		v := strings.ToLower(strings.TrimSpace(*in.Method))
		*in.Method = v
	}
	if in.Status != nil {
		v := strings.ToLower(strings.TrimSpace(*in.Status))
		*in.Status = v
	}
	if in.Notes != nil {
		v := strings.TrimSpace(*in.Notes)
		*in.Notes = v
	}
}
