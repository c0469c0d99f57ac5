package models

import "time"

// RideRequestResponse is the envelope of POST /api/ride-request.
type RideRequestResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *RideRequest `json:"data,omitempty"`
}

// RideRequestListResponse is the envelope of GET /api/ride-requests.
type RideRequestListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []*RideRequest `json:"data"`
}

// ErrorResponse is returned when a read hits a store failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
