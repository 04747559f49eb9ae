package members

import (
	"strings"
	"time"
)

// Member is a gym customer. LastPaymentDate and NextPaymentDate stay null
// until the first payment is recorded; from then on the payment lifecycle
// owns them.
type Member struct {
	ID               string     `firestore:"-" json:"id"`
	Name             string     `firestore:"name" json:"name"`
	Email            string     `firestore:"email,omitempty" json:"email,omitempty"`
	Phone            string     `firestore:"phone" json:"phone"`
	RegistrationDate time.Time  `firestore:"registrationDate" json:"registrationDate"`
	BirthDate        string     `firestore:"birthDate,omitempty" json:"birthDate,omitempty"`
	Plan             string     `firestore:"plan" json:"plan"`
	Status           string     `firestore:"status" json:"status"`
	LastPaymentDate  *time.Time `firestore:"lastPaymentDate" json:"lastPaymentDate"`
	NextPaymentDate  *time.Time `firestore:"nextPaymentDate" json:"nextPaymentDate"`
	Notes            string     `firestore:"notes,omitempty" json:"notes,omitempty"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

var ValidStatuses = []string{StatusActive, StatusInactive, StatusPending}

func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type CreateMemberInput struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate,omitempty"`
	Plan      string `json:"plan,omitempty"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (in *CreateMemberInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.BirthDate = strings.TrimSpace(in.BirthDate)
	in.Plan = strings.TrimSpace(in.Plan)
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
}

type UpdateMemberInput struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Plan      *string `json:"plan,omitempty"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (in *UpdateMemberInput) Trim() {
	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		*in.Name = v
	}
	if in.Email != nil {
		v := strings.TrimSpace(*in.Email)
		*in.Email = v
	}
	if in.Phone != nil {
		v := strings.TrimSpace(*in.Phone)
		*in.Phone = v
	}
	if in.BirthDate != nil {
		v := strings.TrimSpace(*in.BirthDate)
		*in.BirthDate = v
	}
	if in.Plan != nil {
		v := strings.TrimSpace(*in.Plan)
		*in.Plan = v
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
