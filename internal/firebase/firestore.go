package firebase

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Firestore struct {
	Client *firestore.Client
}

func NewFirestore(ctx context.Context, app *firebase.App) (*Firestore, error) {
	c, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}
	return &Firestore{Client: c}, nil
}

func (f *Firestore) Close() {
	if f == nil || f.Client == nil {
		return
	}
	_ = f.Client.Close()
}

// IsNotFound reports whether err is Firestore saying the document does not
// exist. Transient failures (deadline, unavailable) are NOT a missing
// document and must not be reported as one.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
