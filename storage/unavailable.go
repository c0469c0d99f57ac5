package storage

import (
	"context"
	"fmt"

	"riderequest/pkg/models"
)

type unavailable struct {
	cause error
}

// NewUnavailable returns a store whose operations all fail with ErrUnavailable wrapping cause.
// The gateway runs on it when the real pool could not be built.
func NewUnavailable(cause error) IStorage {
	return &unavailable{cause: cause}
}

func (u *unavailable) err() error {
	if u.cause == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, u.cause)
}

func (u *unavailable) Ride() IRideStorage             { return u }
func (u *unavailable) Ping(ctx context.Context) error { return u.err() }
func (u *unavailable) Close()                         {}

func (u *unavailable) Create(ctx context.Context, userID, source, dest string) (*models.RideRequest, error) {
	return nil, u.err()
}

func (u *unavailable) GetAll(ctx context.Context) ([]*models.RideRequest, error) {
	return nil, u.err()
}
