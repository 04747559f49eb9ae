package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Sidraque/Gym-NR/internal/dates"
	"github.com/Sidraque/Gym-NR/internal/domain/checkins"
	"github.com/Sidraque/Gym-NR/internal/domain/members"
	"github.com/Sidraque/Gym-NR/internal/domain/trainers"
)

// The sources are the slices of each repo the aggregator actually touches.

type MemberSource interface {
	ListAll(ctx context.Context) ([]members.Member, error)
	CountRegisteredBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type TrainerSource interface {
	ListAll(ctx context.Context) ([]trainers.Trainer, error)
}

type PaymentSource interface {
	TotalInMonth(ctx context.Context, year int, month time.Month) (float64, error)
}

type CheckInSource interface {
	ListInMonth(ctx context.Context, year int, month time.Month) ([]checkins.CheckIn, error)
}

type Service struct {
	members  MemberSource
	trainers TrainerSource
	payments PaymentSource
	checkins CheckInSource
	clock    func() time.Time
}

func NewService(m MemberSource, t TrainerSource, p PaymentSource, c CheckInSource) *Service {
	return &Service{
		members:  m,
		trainers: t,
		payments: p,
		checkins: c,
		clock:    time.Now,
	}
}

// Snapshot fans the seven independent sub-fetches out concurrently and
// waits for all of them. Any failure cancels the rest and fails the whole
// snapshot; there is no partial result.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	now := s.clock().UTC()
	curYear, curMonth := dates.CurrentMonth(now)
	prevYear, prevMonth := dates.PreviousMonth(now)
	cutoff := dates.EndOfPreviousMonth(now)

	var (
		memberList    []members.Member
		trainerList   []trainers.Trainer
		curTotal      float64
		prevTotal     float64
		curCheckIns   []checkins.CheckIn
		prevCheckIns  []checkins.CheckIn
		membersBefore int
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		memberList, err = s.members.ListAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		membersBefore, err = s.members.CountRegisteredBefore(ctx, cutoff)
		return err
	})
	g.Go(func() error {
		var err error
		trainerList, err = s.trainers.ListAll(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		curTotal, err = s.payments.TotalInMonth(ctx, curYear, curMonth)
		return err
	})
	g.Go(func() error {
		var err error
		prevTotal, err = s.payments.TotalInMonth(ctx, prevYear, prevMonth)
		return err
	})
	g.Go(func() error {
		var err error
		curCheckIns, err = s.checkins.ListInMonth(ctx, curYear, curMonth)
		return err
	})
	g.Go(func() error {
		var err error
		prevCheckIns, err = s.checkins.ListInMonth(ctx, prevYear, prevMonth)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Snapshot{
		Members:           memberList,
		MembersCount:      len(memberList),
		MembersLastMonth:  membersBefore,
		Trainers:          trainerList,
		TrainersCount:     len(trainerList),
		PaymentsAmount:    curTotal,
		PaymentsLastMonth: prevTotal,
		CheckIns:          curCheckIns,
		CheckInsCount:     len(curCheckIns),
		CheckInsLastMonth: len(prevCheckIns),
	}, nil
}
