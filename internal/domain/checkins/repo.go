package checkins

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Sidraque/Gym-NR/internal/dates"
	"github.com/Sidraque/Gym-NR/internal/firebase"
)

const collection = "checkIns"

type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.client.Collection(collection)
}

func (r *Repo) Insert(ctx context.Context, c CheckIn) (*CheckIn, error) {
	ref, _, err := r.col().Add(ctx, map[string]interface{}{
		"memberId":  c.MemberID,
		"date":      c.Date,
		"time":      c.Time,
		"timestamp": c.Timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}
	c.ID = ref.ID
	return &c, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*CheckIn, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if firebase.IsNotFound(err) {
			return nil, fmt.Errorf("%w: check-in not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load check-in: %w", err)
	}

	var c CheckIn
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to decode check-in: %w", err)
	}
	c.ID = doc.Ref.ID
	return &c, nil
}

func (r *Repo) Update(ctx context.Context, id string, updates map[string]interface{}) (*CheckIn, error) {
	_, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update check-in: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, q firestore.Query) ([]CheckIn, error) {
	iter := q.Documents(ctx)
	var out []CheckIn
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list check-ins: %w", err)
		}

		var c CheckIn
		if err := doc.DataTo(&c); err != nil {
			continue
		}
		c.ID = doc.Ref.ID
		out = append(out, c)
	}
	return out, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]CheckIn, error) {
	return r.list(ctx, r.col().Query)
}

func (r *Repo) ListByMember(ctx context.Context, memberID string) ([]CheckIn, error) {
	return r.list(ctx, r.col().Query.Where("memberId", "==", memberID))
}

// ListInMonth range-filters the stored date strings over the inclusive
// calendar-month window.
func (r *Repo) ListInMonth(ctx context.Context, year int, month time.Month) ([]CheckIn, error) {
	start, end := dates.MonthRange(year, month)
	q := r.col().Query.
		Where("date", ">=", start).
		Where("date", "<=", end)
	return r.list(ctx, q)
}
