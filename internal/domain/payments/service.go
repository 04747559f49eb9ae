package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/Sidraque/Gym-NR/internal/dates"
	"github.com/Sidraque/Gym-NR/internal/domain/plans"
	"github.com/Sidraque/Gym-NR/internal/utils"
)

// Store is what the service needs from the payments collection. *Repo
// implements it.
type Store interface {
	Record(ctx context.Context, p Payment, renewal MemberRenewal) (*Payment, error)
	Get(ctx context.Context, id string) (*Payment, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*Payment, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Payment, error)
	ListByMember(ctx context.Context, memberID string) ([]Payment, error)
	TotalInMonth(ctx context.Context, year int, month time.Month) (float64, error)
	ListDueBetween(ctx context.Context, start, end string) ([]Payment, error)
}

// PlanSource resolves the plan a payment renews. *plans.Service implements it.
type PlanSource interface {
	Get(ctx context.Context, id string) (*plans.Plan, error)
}

type Service struct {
	store Store
	plans PlanSource
	clock func() time.Time
}

func NewService(store Store, planSource PlanSource) *Service {
	return &Service{store: store, plans: planSource, clock: time.Now}
}

// Record validates the payment, resolves its plan, and persists the payment
// together with the member renewal: lastPaymentDate = payment date,
// nextPaymentDate = payment date advanced by the plan duration, plan and
// status overwritten. The overwrite is unconditional: a backdated payment
// recorded later still wins, because recording order, not payment date,
// decides. Renewal arithmetic follows dates.AddMonths normalization.
func (s *Service) Record(ctx context.Context, in RecordPaymentInput) (*Payment, error) {
	in.Trim()

	if in.MemberID == "" {
		return nil, fmt.Errorf("%w: memberId is required", ErrBadRequest)
	}
	if in.PlanID == "" {
		return nil, fmt.Errorf("%w: planId is required", ErrBadRequest)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrBadRequest)
	}
	if !IsValidMethod(in.Method) {
		return nil, fmt.Errorf("%w: method must be one of: credit, debit, cash, pix, transfer", ErrBadRequest)
	}

	status := in.Status
	if status == "" {
		status = StatusCompleted
	}
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: status must be one of: completed, pending, failed", ErrBadRequest)
	}

	paidAt, err := dates.ParseDay(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
	}
	if in.DueDate != "" {
		if _, err := dates.ParseDay(in.DueDate); err != nil {
			return nil, fmt.Errorf("%w: dueDate must be YYYY-MM-DD", ErrBadRequest)
		}
	}

	plan, err := s.plans.Get(ctx, in.PlanID)
	if err != nil {
		if plans.IsErrNotFound(err) {
			return nil, fmt.Errorf("%w: plan %s not found", ErrNotFound, in.PlanID)
		}
		return nil, fmt.Errorf("failed to resolve plan: %w", err)
	}

	renewal := MemberRenewal{
		MemberID:        in.MemberID,
		PlanID:          plan.ID,
		LastPaymentDate: paidAt,
		NextPaymentDate: dates.AddMonths(paidAt, plan.Duration),
	}

	return s.store.Record(ctx, Payment{
		MemberID: in.MemberID,
		PlanID:   in.PlanID,
		Amount:   in.Amount,
		Date:     dates.Day(paidAt),
		DueDate:  in.DueDate,
		Method:   in.Method,
		Status:   status,
		Notes:    utils.TrimMax(in.Notes, 500),
	}, renewal)
}

func (s *Service) Get(ctx context.Context, id string) (*Payment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: payment id is required", ErrBadRequest)
	}
	return s.store.Get(ctx, id)
}

// Update patches payment fields only. It deliberately does not re-run the
// member renewal: editing a historical record must not move the member's
// next payment date.
func (s *Service) Update(ctx context.Context, id string, in UpdatePaymentInput) (*Payment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: payment id is required", ErrBadRequest)
	}
	in.Trim()

	updates := map[string]interface{}{}

	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrBadRequest)
		}
		updates["amount"] = *in.Amount
	}
	if in.Date != nil {
		if _, err := dates.ParseDay(*in.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
		}
		updates["date"] = *in.Date
	}
	if in.DueDate != nil {
		if *in.DueDate != "" {
			if _, err := dates.ParseDay(*in.DueDate); err != nil {
				return nil, fmt.Errorf("%w: dueDate must be YYYY-MM-DD", ErrBadRequest)
			}
		}
		updates["dueDate"] = *in.DueDate
	}
	if in.Method != nil {
		if !IsValidMethod(*in.Method) {
			return nil, fmt.Errorf("%w: method must be one of: credit, debit, cash, pix, transfer", ErrBadRequest)
		}
		updates["method"] = *in.Method
	}
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status must be one of: completed, pending, failed", ErrBadRequest)
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

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: payment id is required", ErrBadRequest)
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Payment, error) {
	return s.store.ListAll(ctx)
}

func (s *Service) ListByMember(ctx context.Context, memberID string) ([]Payment, error) {
	if memberID == "" {
		return nil, fmt.Errorf("%w: member id is required", ErrBadRequest)
	}
	return s.store.ListByMember(ctx, memberID)
}

// TotalForMonth sums payment amounts over a 1-indexed calendar month.
func (s *Service) TotalForMonth(ctx context.Context, year int, month int) (float64, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month must be between 1 and 12", ErrBadRequest)
	}
	return s.store.TotalInMonth(ctx, year, time.Month(month))
}

// Upcoming returns payments due in the inclusive [today, today+7] window.
func (s *Service) Upcoming(ctx context.Context) ([]Payment, error) {
	now := s.clock().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start, end := dates.Window(today, 7)
	return s.store.ListDueBetween(ctx, start, end)
}
