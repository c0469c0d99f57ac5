package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"riderequest/pkg/logger"
	"riderequest/pkg/metrics"
	"riderequest/pkg/models"
	"riderequest/storage"
)

var ErrValidation = errors.New("missing required fields: source_location, dest_location, user_id")

// Outcome tells whether a submission reached the store.
type Outcome int

const (
	// OutcomePersisted: the store accepted the row; Ride carries id and created_at from the store.
	OutcomePersisted Outcome = iota + 1
	// OutcomeLoggedOnly: the write failed; Ride is a synthetic record with no id and a local timestamp.
	OutcomeLoggedOnly
)

func (o Outcome) String() string {
	switch o {
	case OutcomePersisted:
		return metrics.OutcomePersisted
	case OutcomeLoggedOnly:
		return metrics.OutcomeLoggedOnly
	}
	return "unknown"
}

type SubmitResult struct {
	Outcome Outcome
	Ride    *models.RideRequest
	// StoreErr is the write failure behind OutcomeLoggedOnly.
	StoreErr error
}

// Notifier is told about every accepted submission.
type Notifier interface {
	RideRequested(ctx context.Context, ride *models.RideRequest, persisted bool) error
}

type RideService interface {
	// Submit validates and stores a ride request. The only error it returns is
	// ErrValidation; store failures yield OutcomeLoggedOnly instead.
	Submit(ctx context.Context, req models.CreateRideRequest) (*SubmitResult, error)
	List(ctx context.Context) ([]*models.RideRequest, error)
}

type rideService struct {
	stg      storage.IRideStorage
	log      logger.ILogger
	notifier Notifier
	now      func() time.Time
}

func NewRideService(stg storage.IStorage, log logger.ILogger, notifier Notifier) RideService {
	return &rideService{
		stg:      stg.Ride(),
		log:      log,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *rideService) Submit(ctx context.Context, req models.CreateRideRequest) (*SubmitResult, error) {
	if req.SourceLocation == "" || req.DestLocation == "" || req.UserID == "" {
		metrics.RideRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, ErrValidation
	}

	s.log.Info("received ride request",
		logger.String("user_id", req.UserID),
		logger.String("source_location", req.SourceLocation),
		logger.String("dest_location", req.DestLocation),
	)

	var result *SubmitResult
	ride, err := s.stg.Create(ctx, req.UserID, req.SourceLocation, req.DestLocation)
	if err != nil {
		result = s.fallback(req, err)
	} else {
		s.log.Info("ride request stored", logger.Int64("id", *ride.ID))
		result = &SubmitResult{Outcome: OutcomePersisted, Ride: ride}
	}
	metrics.RideRequests.WithLabelValues(result.Outcome.String()).Inc()

	s.notify(ctx, result)
	return result, nil
}

// fallback builds the synthetic record returned when the write fails.
// Nothing is queued for a later retry; the log line is the only record.
func (s *rideService) fallback(req models.CreateRideRequest, storeErr error) *SubmitResult {
	ride := &models.RideRequest{
		UserID:         req.UserID,
		SourceLocation: req.SourceLocation,
		DestLocation:   req.DestLocation,
		CreatedAt:      s.now().UTC(),
	}

	s.log.Warning("database unavailable, ride request logged only",
		logger.String("user_id", ride.UserID),
		logger.String("source_location", ride.SourceLocation),
		logger.String("dest_location", ride.DestLocation),
		logger.Time("created_at", ride.CreatedAt),
		logger.Error(storeErr),
	)

	return &SubmitResult{Outcome: OutcomeLoggedOnly, Ride: ride, StoreErr: storeErr}
}

func (s *rideService) notify(ctx context.Context, result *SubmitResult) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.RideRequested(ctx, result.Ride, result.Outcome == OutcomePersisted); err != nil {
		s.log.Error("failed to notify dispatch", logger.Error(err))
	}
}

func (s *rideService) List(ctx context.Context) ([]*models.RideRequest, error) {
	rides, err := s.stg.GetAll(ctx)
	if err != nil {
		metrics.ListFailures.Inc()
		return nil, fmt.Errorf("fetch ride requests: %w", err)
	}
	return rides, nil
}
