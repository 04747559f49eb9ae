package plans

import "strings"

// Plan is a subscription tier. Duration is in whole months and drives the
// renewal date computed when a payment is recorded.
type Plan struct {
	ID          string   `firestore:"-" json:"id"`
	Name        string   `firestore:"name" json:"name"`
	Description string   `firestore:"description" json:"description"`
	Price       float64  `firestore:"price" json:"price"`
	Duration    int      `firestore:"duration" json:"duration"`
	Benefits    []string `firestore:"benefits" json:"benefits"`
	Active      bool     `firestore:"active" json:"active"`
}

type CreatePlanInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration"`
	Benefits    []string `json:"benefits"`
	Active      bool     `json:"active"`
}

func (in *CreatePlanInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	for i := range in.Benefits {
		in.Benefits[i] = strings.TrimSpace(in.Benefits[i])
	}
}

type UpdatePlanInput struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	Benefits    *[]string `json:"benefits,omitempty"`
	Active      *bool     `json:"active,omitempty"`
}

func (in *UpdatePlanInput) Trim() {
	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		*in.Name = v
	}
	if in.Description != nil {
		v := strings.TrimSpace(*in.Description)
		*in.Description = v
	}
	if in.Benefits != nil {
		for i := range *in.Benefits {
			(*in.Benefits)[i] = strings.TrimSpace((*in.Benefits)[i])
		}
	}
}
