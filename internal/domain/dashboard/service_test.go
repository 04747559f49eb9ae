package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sidraque/Gym-NR/internal/dates"
	"github.com/Sidraque/Gym-NR/internal/domain/checkins"
	"github.com/Sidraque/Gym-NR/internal/domain/members"
	"github.com/Sidraque/Gym-NR/internal/domain/trainers"
)

type fakeMembers struct {
	list []members.Member
	err  error
}

func (f *fakeMembers) ListAll(_ context.Context) ([]members.Member, error) {
	return f.list, f.err
}

func (f *fakeMembers) CountRegisteredBefore(_ context.Context, cutoff time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, m := range f.list {
		if !m.RegistrationDate.After(cutoff) {
			n++
		}
	}
	return n, nil
}

type fakeTrainers struct {
	list []trainers.Trainer
}

func (f *fakeTrainers) ListAll(_ context.Context) ([]trainers.Trainer, error) {
	return f.list, nil
}

type fakePayments struct {
	byMonth map[string]float64
	err     error
}

func (f *fakePayments) TotalInMonth(_ context.Context, year int, month time.Month) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	start, _ := dates.MonthRange(year, month)
	return f.byMonth[start[:7]], nil
}

type fakeCheckIns struct {
	byMonth map[string][]checkins.CheckIn
}

func (f *fakeCheckIns) ListInMonth(_ context.Context, year int, month time.Month) ([]checkins.CheckIn, error) {
	start, _ := dates.MonthRange(year, month)
	return f.byMonth[start[:7]], nil
}

func day(s string) time.Time {
	t, err := dates.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSnapshotAggregates(t *testing.T) {
	m := &fakeMembers{list: []members.Member{
		{ID: "m1", RegistrationDate: day("2024-01-10")},
		{ID: "m2", RegistrationDate: day("2024-02-20")},
		{ID: "m3", RegistrationDate: day("2024-03-05")},
	}}
	tr := &fakeTrainers{list: []trainers.Trainer{{ID: "t1"}, {ID: "t2"}}}
	p := &fakePayments{byMonth: map[string]float64{
		"2024-03": 450.5,
		"2024-02": 300,
	}}
	c := &fakeCheckIns{byMonth: map[string][]checkins.CheckIn{
		"2024-03": {{ID: "c1"}, {ID: "c2"}, {ID: "c3"}},
		"2024-02": {{ID: "c4"}},
	}}

	svc := NewService(m, tr, p, c)
	svc.clock = func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if snap.MembersCount != 3 {
		t.Errorf("membersCount = %d, want 3", snap.MembersCount)
	}
	// registered on or before 2024-02-29
	if snap.MembersLastMonth != 2 {
		t.Errorf("membersLastMonth = %d, want 2", snap.MembersLastMonth)
	}
	if snap.TrainersCount != 2 {
		t.Errorf("trainersCount = %d, want 2", snap.TrainersCount)
	}
	if snap.PaymentsAmount != 450.5 {
		t.Errorf("paymentsAmount = %v, want 450.5", snap.PaymentsAmount)
	}
	if snap.PaymentsLastMonth != 300 {
		t.Errorf("paymentsLastMonth = %v, want 300", snap.PaymentsLastMonth)
	}
	if snap.CheckInsCount != 3 || len(snap.CheckIns) != 3 {
		t.Errorf("checkInsCount = %d (%d listed), want 3", snap.CheckInsCount, len(snap.CheckIns))
	}
	if snap.CheckInsLastMonth != 1 {
		t.Errorf("checkInsLastMonth = %d, want 1", snap.CheckInsLastMonth)
	}
}

// January snapshots must report December of the previous year as "last
// month".
func TestSnapshotPreviousMonthWrapsYear(t *testing.T) {
	p := &fakePayments{byMonth: map[string]float64{
		"2024-01": 100,
		"2023-12": 999,
	}}
	svc := NewService(&fakeMembers{}, &fakeTrainers{}, p, &fakeCheckIns{})
	svc.clock = func() time.Time {
		return time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	}

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.PaymentsLastMonth != 999 {
		t.Errorf("paymentsLastMonth = %v, want 999 (December 2023)", snap.PaymentsLastMonth)
	}
}

func TestSnapshotFailsWhole(t *testing.T) {
	boom := errors.New("store down")
	svc := NewService(&fakeMembers{err: boom}, &fakeTrainers{}, &fakePayments{}, &fakeCheckIns{})

	snap, err := svc.Snapshot(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if snap != nil {
		t.Fatalf("snapshot = %+v, want nil on failure", snap)
	}
}
