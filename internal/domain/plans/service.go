package plans

import (
	"context"
	"fmt"
)

// Store is what the service needs from the plans collection. *Repo
// implements it.
type Store interface {
	Create(ctx context.Context, p Plan) (*Plan, error)
	Get(ctx context.Context, id string) (*Plan, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*Plan, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Plan, error)
	ListActive(ctx context.Context) ([]Plan, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, in CreatePlanInput) (*Plan, error) {
	in.Trim()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrBadRequest)
	}
	if in.Duration < 1 {
		return nil, fmt.Errorf("%w: duration must be at least one month", ErrBadRequest)
	}

	benefits := in.Benefits
	if benefits == nil {
		benefits = []string{}
	}

	return s.store.Create(ctx, Plan{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		Benefits:    benefits,
		Active:      in.Active,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Plan, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: plan id is required", ErrBadRequest)
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdatePlanInput) (*Plan, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: plan id is required", ErrBadRequest)
	}
	in.Trim()

	updates := map[string]interface{}{}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrBadRequest)
		}
		updates["price"] = *in.Price
	}
	if in.Duration != nil {
		if *in.Duration < 1 {
			return nil, fmt.Errorf("%w: duration must be at least one month", ErrBadRequest)
		}
		updates["duration"] = *in.Duration
	}
	if in.Benefits != nil {
		updates["benefits"] = *in.Benefits
	}
	if in.Active != nil {
		updates["active"] = *in.Active
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrBadRequest)
	}

	return s.store.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: plan id is required", ErrBadRequest)
	}
	return s.store.Delete(ctx, id)
}

// List returns all plans, or only the ones open for signup when activeOnly
// is set.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]Plan, error) {
	if activeOnly {
		return s.store.ListActive(ctx)
	}
	return s.store.ListAll(ctx)
}
