package checkins

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sidraque/Gym-NR/internal/dates"
)

// Store is what the service needs from the checkIns collection. *Repo
// implements it.
type Store interface {
	Insert(ctx context.Context, c CheckIn) (*CheckIn, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*CheckIn, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]CheckIn, error)
	ListByMember(ctx context.Context, memberID string) ([]CheckIn, error)
	ListInMonth(ctx context.Context, year int, month time.Month) ([]CheckIn, error)
}

type Service struct {
	store Store
	clock func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, clock: time.Now}
}

// Create stamps the visit from the server clock. The member reference is
// not verified: a check-in for an id that was deleted later (or never
// existed) is stored as-is.
func (s *Service) Create(ctx context.Context, memberID string) (*CheckIn, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, fmt.Errorf("%w: memberId is required", ErrBadRequest)
	}

	now := s.clock().UTC()
	return s.store.Insert(ctx, CheckIn{
		MemberID:  memberID,
		Date:      dates.Day(now),
		Time:      now.Format("15:04:05"),
		Timestamp: now.UnixMilli(),
	})
}

// Update merges the given fields. Date and time are corrections the front
// desk makes by hand; when the date changes the caller is expected to send
// a matching timestamp, none is derived here.
func (s *Service) Update(ctx context.Context, id string, in UpdateCheckInInput) (*CheckIn, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: check-in id is required", ErrBadRequest)
	}
	in.Trim()

	updates := map[string]interface{}{}

	if in.MemberID != nil {
		if *in.MemberID == "" {
			return nil, fmt.Errorf("%w: memberId cannot be empty", ErrBadRequest)
		}
		updates["memberId"] = *in.MemberID
	}
	if in.Date != nil {
		if _, err := dates.ParseDay(*in.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
		}
		updates["date"] = *in.Date
	}
	if in.Time != nil {
		if _, err := time.Parse("15:04:05", *in.Time); err != nil {
			return nil, fmt.Errorf("%w: time must be HH:MM:SS", ErrBadRequest)
		}
		updates["time"] = *in.Time
	}
	if in.Timestamp != nil {
		if *in.Timestamp <= 0 {
			return nil, fmt.Errorf("%w: timestamp must be positive", ErrBadRequest)
		}
		updates["timestamp"] = *in.Timestamp
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrBadRequest)
	}

	return s.store.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: check-in id is required", ErrBadRequest)
	}
	return s.store.Delete(ctx, id)
}

// ListAll returns every check-in, newest first. Sorting happens here, not
// in the query, so no composite index is required.
func (s *Service) ListAll(ctx context.Context) ([]CheckIn, error) {
	out, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID string) ([]CheckIn, error) {
	if memberID == "" {
		return nil, fmt.Errorf("%w: member id is required", ErrBadRequest)
	}
	out, err := s.store.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out)
	return out, nil
}

// ListForMonth returns the check-ins of a 1-indexed calendar month.
func (s *Service) ListForMonth(ctx context.Context, year int, month int) ([]CheckIn, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrBadRequest)
	}
	return s.store.ListInMonth(ctx, year, time.Month(month))
}
