package models

import "time"

// RideRequest is a single submission. ID is nil when the row was never
// written to the store (logged-only fallback).
type RideRequest struct {
	ID             *int64    `json:"id,omitempty"`
	UserID         string    `json:"user_id"`
	SourceLocation string    `json:"source_location"`
	DestLocation   string    `json:"dest_location"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateRideRequest struct {
	SourceLocation string `json:"source_location"`
	DestLocation   string `json:"dest_location"`
	UserID         string `json:"user_id"`
}
