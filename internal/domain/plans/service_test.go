package plans

import (
	"context"
	"testing"
)

type fakeStore struct {
	plans   []Plan
	updates map[string]interface{}
}

func (f *fakeStore) Create(_ context.Context, p Plan) (*Plan, error) {
	p.ID = "p1"
	f.plans = append(f.plans, p)
	return &p, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*Plan, error) {
	for _, p := range f.plans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) Update(ctx context.Context, id string, updates map[string]interface{}) (*Plan, error) {
	f.updates = updates
	return f.Get(ctx, id)
}

func (f *fakeStore) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeStore) ListAll(_ context.Context) ([]Plan, error) {
	out := make([]Plan, len(f.plans))
	copy(out, f.plans)
	return out, nil
}

func (f *fakeStore) ListActive(_ context.Context) ([]Plan, error) {
	var out []Plan
	for _, p := range f.plans {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&fakeStore{})

	cases := []struct {
		name string
		in   CreatePlanInput
	}{
		{"missing name", CreatePlanInput{Price: 100, Duration: 1}},
		{"zero price", CreatePlanInput{Name: "Mensal", Price: 0, Duration: 1}},
		{"negative price", CreatePlanInput{Name: "Mensal", Price: -10, Duration: 1}},
		{"zero duration", CreatePlanInput{Name: "Mensal", Price: 100, Duration: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.in); !IsErrBadRequest(err) {
				t.Errorf("err = %v, want bad request", err)
			}
		})
	}
}

func TestCreateDefaultsBenefits(t *testing.T) {
	svc := NewService(&fakeStore{})

	got, err := svc.Create(context.Background(), CreatePlanInput{
		Name:     " Trimestral ",
		Price:    250,
		Duration: 3,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Name != "Trimestral" {
		t.Errorf("name = %q, want trimmed", got.Name)
	}
	if got.Benefits == nil {
		t.Error("benefits = nil, want empty slice")
	}
}

func TestListActiveOnly(t *testing.T) {
	store := &fakeStore{plans: []Plan{
		{ID: "p1", Name: "Mensal", Active: true},
		{ID: "p2", Name: "Antigo", Active: false},
		{ID: "p3", Name: "Anual", Active: true},
	}}
	svc := NewService(store)

	all, err := svc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all plans = %d, want 3", len(all))
	}

	active, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List active: %v", err)
	}
	if len(active) != 2 || active[0].ID != "p1" || active[1].ID != "p3" {
		t.Errorf("active plans = %v, want p1 and p3", active)
	}
}

func TestUpdateValidatesPatchedFields(t *testing.T) {
	svc := NewService(&fakeStore{plans: []Plan{{ID: "p1", Name: "Mensal"}}})

	if _, err := svc.Update(context.Background(), "p1", UpdatePlanInput{}); !IsErrBadRequest(err) {
		t.Errorf("empty patch: err = %v, want bad request", err)
	}

	badPrice := -5.0
	if _, err := svc.Update(context.Background(), "p1", UpdatePlanInput{Price: &badPrice}); !IsErrBadRequest(err) {
		t.Errorf("negative price: err = %v, want bad request", err)
	}
}
