package checkins

import (
	"context"
	"testing"
	"time"

	"github.com/Sidraque/Gym-NR/internal/dates"
)

type fakeStore struct {
	checkins []CheckIn
}

func (f *fakeStore) Insert(_ context.Context, c CheckIn) (*CheckIn, error) {
	c.ID = "c1"
	f.checkins = append(f.checkins, c)
	return &c, nil
}

func (f *fakeStore) Update(_ context.Context, id string, updates map[string]interface{}) (*CheckIn, error) {
	for i := range f.checkins {
		if f.checkins[i].ID != id {
			continue
		}
		if v, ok := updates["memberId"]; ok {
			f.checkins[i].MemberID = v.(string)
		}
		if v, ok := updates["date"]; ok {
			f.checkins[i].Date = v.(string)
		}
		if v, ok := updates["time"]; ok {
			f.checkins[i].Time = v.(string)
		}
		if v, ok := updates["timestamp"]; ok {
			f.checkins[i].Timestamp = v.(int64)
		}
		c := f.checkins[i]
		return &c, nil
	}
	return nil, ErrNotFound
}

func (f *fakeStore) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeStore) ListAll(_ context.Context) ([]CheckIn, error) {
	out := make([]CheckIn, len(f.checkins))
	copy(out, f.checkins)
	return out, nil
}

func (f *fakeStore) ListByMember(_ context.Context, memberID string) ([]CheckIn, error) {
	var out []CheckIn
	for _, c := range f.checkins {
		if c.MemberID == memberID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) ListInMonth(_ context.Context, year int, month time.Month) ([]CheckIn, error) {
	start, end := dates.MonthRange(year, month)
	var out []CheckIn
	for _, c := range f.checkins {
		if c.Date >= start && c.Date <= end {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestCreateStampsClock(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)
	now := time.Date(2024, 6, 28, 18, 45, 30, 0, time.UTC)
	svc.clock = func() time.Time { return now }

	got, err := svc.Create(context.Background(), " m1 ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if got.MemberID != "m1" {
		t.Errorf("memberId = %q, want trimmed m1", got.MemberID)
	}
	if got.Date != "2024-06-28" {
		t.Errorf("date = %q, want 2024-06-28", got.Date)
	}
	if got.Time != "18:45:30" {
		t.Errorf("time = %q, want 18:45:30", got.Time)
	}
	if got.Timestamp != now.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", got.Timestamp, now.UnixMilli())
	}
}

func TestCreateRequiresMember(t *testing.T) {
	svc := NewService(&fakeStore{})
	if _, err := svc.Create(context.Background(), "  "); !IsErrBadRequest(err) {
		t.Errorf("err = %v, want bad request", err)
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	store := &fakeStore{checkins: []CheckIn{
		{ID: "c1", MemberID: "m1", Date: "2024-06-28", Time: "18:45:30", Timestamp: 100},
	}}
	svc := NewService(store)

	date := " 2024-06-27 "
	ts := int64(200)
	got, err := svc.Update(context.Background(), "c1", UpdateCheckInInput{Date: &date, Timestamp: &ts})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got.Date != "2024-06-27" {
		t.Errorf("date = %q, want trimmed 2024-06-27", got.Date)
	}
	if got.Timestamp != 200 {
		t.Errorf("timestamp = %d, want 200", got.Timestamp)
	}
	if got.MemberID != "m1" || got.Time != "18:45:30" {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestUpdateRejectsBadPatch(t *testing.T) {
	svc := NewService(&fakeStore{checkins: []CheckIn{{ID: "c1"}}})

	if _, err := svc.Update(context.Background(), "c1", UpdateCheckInInput{}); !IsErrBadRequest(err) {
		t.Errorf("empty patch: err = %v, want bad request", err)
	}

	badDate := "28/06/2024"
	if _, err := svc.Update(context.Background(), "c1", UpdateCheckInInput{Date: &badDate}); !IsErrBadRequest(err) {
		t.Errorf("bad date: err = %v, want bad request", err)
	}

	badTime := "6pm"
	if _, err := svc.Update(context.Background(), "c1", UpdateCheckInInput{Time: &badTime}); !IsErrBadRequest(err) {
		t.Errorf("bad time: err = %v, want bad request", err)
	}

	empty := " "
	if _, err := svc.Update(context.Background(), "c1", UpdateCheckInInput{MemberID: &empty}); !IsErrBadRequest(err) {
		t.Errorf("empty memberId: err = %v, want bad request", err)
	}
}

func TestListingsSortNewestFirst(t *testing.T) {
	store := &fakeStore{checkins: []CheckIn{
		{ID: "old", MemberID: "m1", Timestamp: 100},
		{ID: "newest", MemberID: "m1", Timestamp: 300},
		{ID: "middle", MemberID: "m1", Timestamp: 200},
		{ID: "other", MemberID: "m2", Timestamp: 250},
	}}
	svc := NewService(store)

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	wantAll := []string{"newest", "other", "middle", "old"}
	for i, id := range wantAll {
		if all[i].ID != id {
			t.Fatalf("ListAll order = %v, want %v", all, wantAll)
		}
	}

	mine, err := svc.ListByMember(context.Background(), "m1")
	if err != nil {
		t.Fatalf("ListByMember: %v", err)
	}
	wantMine := []string{"newest", "middle", "old"}
	for i, id := range wantMine {
		if mine[i].ID != id {
			t.Fatalf("ListByMember order = %v, want %v", mine, wantMine)
		}
	}
}

func TestListForMonthBoundaries(t *testing.T) {
	store := &fakeStore{checkins: []CheckIn{
		{ID: "before", Date: "2024-01-31"},
		{ID: "first", Date: "2024-02-01"},
		{ID: "last", Date: "2024-02-29"},
		{ID: "after", Date: "2024-03-01"},
	}}
	svc := NewService(store)

	got, err := svc.ListForMonth(context.Background(), 2024, 2)
	if err != nil {
		t.Fatalf("ListForMonth: %v", err)
	}
	if len(got) != 2 || got[0].ID != "first" || got[1].ID != "last" {
		t.Errorf("ListForMonth = %v, want first and last day only", got)
	}

	if _, err := svc.ListForMonth(context.Background(), 2024, 0); !IsErrBadRequest(err) {
		t.Errorf("month 0: err = %v, want bad request", err)
	}
}
