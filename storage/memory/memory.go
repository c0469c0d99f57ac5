// Package memory keeps ride requests in process memory. It backs the HTTP
// and service tests and is safe for concurrent use.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"riderequest/pkg/models"
	"riderequest/storage"
)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	rides  []models.RideRequest
	now    func() time.Time
}

func New() *Store {
	return &Store{
		nextID: 1,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for created_at.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Ride() storage.IRideStorage     { return s }
func (s *Store) Ping(ctx context.Context) error { return nil }
func (s *Store) Close()                         {}

func (s *Store) Create(ctx context.Context, userID, source, dest string) (*models.RideRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ride := models.RideRequest{
		ID:             &id,
		UserID:         userID,
		SourceLocation: source,
		DestLocation:   dest,
		CreatedAt:      s.now().UTC(),
	}
	s.rides = append(s.rides, ride)

	out := ride
	return &out, nil
}

func (s *Store) GetAll(ctx context.Context) ([]*models.RideRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rides := make([]*models.RideRequest, 0, len(s.rides))
	for i := range s.rides {
		ride := s.rides[i]
		rides = append(rides, &ride)
	}

	// Same order as the SQL store: created_at DESC, id DESC.
	sort.SliceStable(rides, func(i, j int) bool {
		if !rides[i].CreatedAt.Equal(rides[j].CreatedAt) {
			return rides[i].CreatedAt.After(rides[j].CreatedAt)
		}
		return *rides[i].ID > *rides[j].ID
	})
	return rides, nil
}
