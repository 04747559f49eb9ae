package plans

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Sidraque/Gym-NR/internal/firebase"
)

const collection = "plans"

type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.client.Collection(collection)
}

func (r *Repo) Create(ctx context.Context, p Plan) (*Plan, error) {
	ref, _, err := r.col().Add(ctx, map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"duration":    p.Duration,
		"benefits":    p.Benefits,
		"active":      p.Active,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	p.ID = ref.ID
	return &p, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Plan, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if firebase.IsNotFound(err) {
			return nil, fmt.Errorf("%w: plan not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	var p Plan
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func (r *Repo) Update(ctx context.Context, id string, updates map[string]interface{}) (*Plan, error) {
	_, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, q firestore.Query) ([]Plan, error) {
	iter := q.Documents(ctx)
	var out []Plan
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list plans: %w", err)
		}

		var p Plan
		if err := doc.DataTo(&p); err != nil {
			continue
		}
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]Plan, error) {
	return r.list(ctx, r.col().Query)
}

func (r *Repo) ListActive(ctx context.Context) ([]Plan, error) {
	return r.list(ctx, r.col().Where("active", "==", true))
}
