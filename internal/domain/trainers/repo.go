package trainers

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Sidraque/Gym-NR/internal/firebase"
)

const collection = "trainers"

type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.client.Collection(collection)
}

func (r *Repo) Create(ctx context.Context, t Trainer) (*Trainer, error) {
	ref, _, err := r.col().Add(ctx, map[string]interface{}{
		"name":      t.Name,
		"email":     t.Email,
		"phone":     t.Phone,
		"specialty": t.Specialty,
		"hireDate":  t.HireDate,
		"status":    t.Status,
		"schedule":  t.Schedule,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create trainer: %w", err)
	}
	t.ID = ref.ID
	return &t, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Trainer, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if firebase.IsNotFound(err) {
			return nil, fmt.Errorf("%w: trainer not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load trainer: %w", err)
	}

	var t Trainer
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("failed to decode trainer: %w", err)
	}
	t.ID = doc.Ref.ID
	return &t, nil
}

func (r *Repo) Update(ctx context.Context, id string, updates map[string]interface{}) (*Trainer, error) {
	_, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update trainer: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete trainer: %w", err)
	}
	return nil
}

func (r *Repo) ListAll(ctx context.Context) ([]Trainer, error) {
	iter := r.col().Documents(ctx)
	var out []Trainer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list trainers: %w", err)
		}

		var t Trainer
		if err := doc.DataTo(&t); err != nil {
			continue
		}
		t.ID = doc.Ref.ID
		out = append(out, t)
	}
	return out, nil
}
