package trainers

import (
	"context"
	"fmt"
	"time"
)

// Store is what the service needs from the trainers collection. *Repo
// implements it.
type Store interface {
	Create(ctx context.Context, t Trainer) (*Trainer, error)
	Get(ctx context.Context, id string) (*Trainer, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*Trainer, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Trainer, error)
}

type Service struct {
	store Store
	clock func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, clock: time.Now}
}

// Create stamps hireDate with the server clock; the caller never supplies it.
func (s *Service) Create(ctx context.Context, in CreateTrainerInput) (*Trainer, error) {
	in.Trim()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrBadRequest)
	}

	status := in.Status
	if status == "" {
		status = StatusActive
	}
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be one of: active, inactive", ErrBadRequest)
	}

	return s.store.Create(ctx, Trainer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Specialty: in.Specialty,
		HireDate:  s.clock().UTC(),
		Status:    status,
		Schedule:  in.Schedule,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Trainer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: trainer id is required", ErrBadRequest)
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateTrainerInput) (*Trainer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: trainer id is required", ErrBadRequest)
	}
	in.Trim()

	updates := map[string]interface{}{}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Phone != nil {
		if *in.Phone == "" {
			return nil, fmt.Errorf("%w: phone cannot be empty", ErrBadRequest)
		}
		updates["phone"] = *in.Phone
	}
	if in.Specialty != nil {
		updates["specialty"] = *in.Specialty
	}
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status must be one of: active, inactive", ErrBadRequest)
		}
		updates["status"] = *in.Status
	}
	if in.Schedule != nil {
		updates["schedule"] = *in.Schedule
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrBadRequest)
	}

	return s.store.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: trainer id is required", ErrBadRequest)
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Trainer, error) {
	return s.store.ListAll(ctx)
}
