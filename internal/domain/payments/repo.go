package payments

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Sidraque/Gym-NR/internal/dates"
	"github.com/Sidraque/Gym-NR/internal/domain/members"
	"github.com/Sidraque/Gym-NR/internal/firebase"
)

const (
	collection        = "payments"
	membersCollection = "members"
)

type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.client.Collection(collection)
}

// Record inserts the payment and overwrites the member's renewal fields in
// one transaction, so a failed insert can never leave the member half
// updated. The member must already exist; the transaction aborts with
// NotFound otherwise.
func (r *Repo) Record(ctx context.Context, p Payment, renewal MemberRenewal) (*Payment, error) {
	payRef := r.col().NewDoc()
	memberRef := r.client.Collection(membersCollection).Doc(renewal.MemberID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(memberRef); err != nil {
			if firebase.IsNotFound(err) {
				return fmt.Errorf("%w: member not found", ErrNotFound)
			}
			return fmt.Errorf("failed to load member: %w", err)
		}

		if err := tx.Set(memberRef, map[string]interface{}{
			"lastPaymentDate": renewal.LastPaymentDate,
			"nextPaymentDate": renewal.NextPaymentDate,
			"plan":            renewal.PlanID,
			"status":          members.StatusActive,
		}, firestore.MergeAll); err != nil {
			return fmt.Errorf("failed to update member renewal: %w", err)
		}

		return tx.Create(payRef, map[string]interface{}{
			"memberId": p.MemberID,
			"planId":   p.PlanID,
			"amount":   p.Amount,
			"date":     p.Date,
			"dueDate":  p.DueDate,
			"method":   p.Method,
			"status":   p.Status,
			"notes":    p.Notes,
		})
	})
	if err != nil {
		if IsErrNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	p.ID = payRef.ID
	return &p, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Payment, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if firebase.IsNotFound(err) {
			return nil, fmt.Errorf("%w: payment not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	var p Payment
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode payment: %w", err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func (r *Repo) Update(ctx context.Context, id string, updates map[string]interface{}) (*Payment, error) {
	_, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, q firestore.Query) ([]Payment, error) {
	iter := q.Documents(ctx)
	var out []Payment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list payments: %w", err)
		}

		var p Payment
		if err := doc.DataTo(&p); err != nil {
			continue
		}
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]Payment, error) {
	return r.list(ctx, r.col().Query.OrderBy("date", firestore.Desc))
}

func (r *Repo) ListByMember(ctx context.Context, memberID string) ([]Payment, error) {
	q := r.col().Query.
		Where("memberId", "==", memberID).
		OrderBy("date", firestore.Desc)
	return r.list(ctx, q)
}

// TotalInMonth sums amounts over the inclusive calendar-month range. The
// range filter works on the stored date strings, which sort like dates.
func (r *Repo) TotalInMonth(ctx context.Context, year int, month time.Month) (float64, error) {
	start, end := dates.MonthRange(year, month)

	iter := r.col().
		Where("date", ">=", start).
		Where("date", "<=", end).
		Documents(ctx)

	total := 0.0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to sum payments: %w", err)
		}

		var p Payment
		if err := doc.DataTo(&p); err != nil {
			continue
		}
		total += p.Amount
	}
	return total, nil
}

// ListDueBetween returns payments whose dueDate falls in the inclusive
// [start, end] range, both in storage form.
func (r *Repo) ListDueBetween(ctx context.Context, start, end string) ([]Payment, error) {
	q := r.col().Query.
		Where("dueDate", ">=", start).
		Where("dueDate", "<=", end)
	return r.list(ctx, q)
}
