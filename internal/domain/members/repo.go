package members

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Sidraque/Gym-NR/internal/firebase"
)

const collection = "members"

type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.client.Collection(collection)
}

// Insert writes the payment-date fields as explicit nulls so that every
// member document carries them from day one.
func (r *Repo) Insert(ctx context.Context, m Member) (*Member, error) {
	ref, _, err := r.col().Add(ctx, map[string]interface{}{
		"name":             m.Name,
		"email":            m.Email,
		"phone":            m.Phone,
		"registrationDate": m.RegistrationDate,
		"birthDate":        m.BirthDate,
		"plan":             m.Plan,
		"status":           m.Status,
		"lastPaymentDate":  nil,
		"nextPaymentDate":  nil,
		"notes":            m.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	m.ID = ref.ID
	return &m, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Member, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if firebase.IsNotFound(err) {
			return nil, fmt.Errorf("%w: member not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	var m Member
	if err := doc.DataTo(&m); err != nil {
		return nil, fmt.Errorf("failed to decode member: %w", err)
	}
	m.ID = doc.Ref.ID
	return &m, nil
}

func (r *Repo) Update(ctx context.Context, id string, updates map[string]interface{}) (*Member, error) {
	_, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return r.Get(ctx, id)
}

// Delete removes only the member document. Payments and check-ins that
// reference the member stay behind untouched.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

func (r *Repo) ListAll(ctx context.Context) ([]Member, error) {
	iter := r.col().Documents(ctx)
	var out []Member
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}

		var m Member
		if err := doc.DataTo(&m); err != nil {
			continue
		}
		m.ID = doc.Ref.ID
		out = append(out, m)
	}
	return out, nil
}

// CountRegisteredBefore counts members whose registrationDate is at or
// before the cutoff. The dashboard uses it for the end-of-last-month figure.
func (r *Repo) CountRegisteredBefore(ctx context.Context, cutoff time.Time) (int, error) {
	iter := r.col().Where("registrationDate", "<=", cutoff).Documents(ctx)
	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to count members: %w", err)
		}
		count++
	}
	return count, nil
}
