package trainers

import (
	"strings"
	"time"
)

type Trainer struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email,omitempty" json:"email,omitempty"`
	Phone     string    `firestore:"phone" json:"phone"`
	Specialty string    `firestore:"specialty" json:"specialty"`
	HireDate  time.Time `firestore:"hireDate" json:"hireDate"`
	Status    string    `firestore:"status" json:"status"`
	Schedule  string    `firestore:"schedule,omitempty" json:"schedule,omitempty"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var ValidStatuses = []string{StatusActive, StatusInactive}

func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type CreateTrainerInput struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	Status    string `json:"status,omitempty"`
	Schedule  string `json:"schedule,omitempty"`
}

func (in *CreateTrainerInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Specialty = strings.TrimSpace(in.Specialty)
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	in.Schedule = strings.TrimSpace(in.Schedule)
}

type UpdateTrainerInput struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Status    *string `json:"status,omitempty"`
	Schedule  *string `json:"schedule,omitempty"`
}

func (in *UpdateTrainerInput) Trim() {
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
	if in.Specialty != nil {
		v := strings.TrimSpace(*in.Specialty)
		*in.Specialty = v
	}
	if in.Status != nil {
		v := strings.ToLower(strings.TrimSpace(*in.Status))
		*in.Status = v
	}
	if in.Schedule != nil {
		v := strings.TrimSpace(*in.Schedule)
		*in.Schedule = v
	}
}
