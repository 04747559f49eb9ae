package members

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sidraque/Gym-NR/internal/utils"
)

// Store is what the service needs from the members collection. *Repo
// implements it.
type Store interface {
	Insert(ctx context.Context, m Member) (*Member, error)
	Get(ctx context.Context, id string) (*Member, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*Member, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Member, error)
	CountRegisteredBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type Service struct {
	store Store
	clock func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, clock: time.Now}
}

// Create stamps registrationDate server-side. The payment-date fields start
// out null regardless of input; only a recorded payment sets them.
func (s *Service) Create(ctx context.Context, in CreateMemberInput) (*Member, error) {
	in.Trim()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrBadRequest)
	}

	status := in.Status
	if status == "" {
		status = StatusPending
	}
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be one of: active, inactive, pending", ErrBadRequest)
	}

	return s.store.Insert(ctx, Member{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		RegistrationDate: s.clock().UTC(),
		BirthDate:        in.BirthDate,
		Plan:             in.Plan,
		Status:           status,
		Notes:            utils.TrimMax(in.Notes, 500),
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Member, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: member id is required", ErrBadRequest)
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateMemberInput) (*Member, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: member id is required", ErrBadRequest)
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
	if in.BirthDate != nil {
		updates["birthDate"] = *in.BirthDate
	}
	if in.Plan != nil {
		updates["plan"] = *in.Plan
	}
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status must be one of: active, inactive, pending", ErrBadRequest)
		}
		updates["status"] = *in.Status
	}
	if in.Notes != nil {
		updates["notes"] = utils.TrimMax(*in.Notes, 500)
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrBadRequest)
	}

	return s.store.Update(ctx, id, updates)
}

// Delete removes the member only. Associated payments and check-ins are
// deliberately left in place; their memberId references go stale.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: member id is required", ErrBadRequest)
	}
	return s.store.Delete(ctx, id)
}

// List returns all members, filtered by a folded substring match on name,
// email and phone when query is non-empty.
func (s *Service) List(ctx context.Context, query string) ([]Member, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	query = utils.Fold(query)
	if query == "" {
		return all, nil
	}

	var out []Member
	for _, m := range all {
		if strings.Contains(utils.Fold(m.Name), query) ||
			strings.Contains(utils.Fold(m.Email), query) ||
			strings.Contains(m.Phone, query) {
			out = append(out, m)
		}
	}
	return out, nil
}
