package service

import (
	"riderequest/pkg/logger"
	"riderequest/storage"
)

type IServiceManager interface {
	Ride() RideService
}

type service struct {
	rideService RideService
}

// New wires the services over stg. notifier may be nil.
func New(stg storage.IStorage, log logger.ILogger, notifier Notifier) IServiceManager {
	return &service{
		rideService: NewRideService(stg, log, notifier),
	}
}

func (s *service) Ride() RideService {
	return s.rideService
}
