package storage

import (
	"context"
	"errors"

	"riderequest/pkg/models"
)

// ErrUnavailable is returned by every operation of a store that could not be initialized.
var ErrUnavailable = errors.New("storage unavailable")

type IStorage interface {
	Ride() IRideStorage
	Ping(ctx context.Context) error
	Close()
}

type IRideStorage interface {
	// Create inserts one row and returns it with the store-assigned id and created_at.
	Create(ctx context.Context, userID, source, dest string) (*models.RideRequest, error)
	// GetAll returns every row, most recent first.
	GetAll(ctx context.Context) ([]*models.RideRequest, error)
}
