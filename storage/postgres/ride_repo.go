package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"riderequest/pkg/logger"
	"riderequest/pkg/models"
	"riderequest/storage"
)

type rideRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewRideRepo(db *pgxpool.Pool, log logger.ILogger) storage.IRideStorage {
	return &rideRepo{db: db, log: log}
}

func (r *rideRepo) Create(ctx context.Context, userID, source, dest string) (*models.RideRequest, error) {
	query := `
		INSERT INTO rides (user_id, source_location, dest_location)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, source_location, dest_location, created_at
	`
	ride, err := scanRide(r.db.QueryRow(ctx, query, userID, source, dest))
	if err != nil {
		r.log.Error("failed to create ride request", logger.String("user_id", userID), logger.Error(err))
		return nil, fmt.Errorf("insert ride request: %w", err)
	}

	return ride, nil
}

func (r *rideRepo) GetAll(ctx context.Context) ([]*models.RideRequest, error) {
	query := `
		SELECT id, user_id, source_location, dest_location, created_at
		FROM rides
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list ride requests", logger.Error(err))
		return nil, fmt.Errorf("list ride requests: %w", err)
	}
	defer rows.Close()

	rides := make([]*models.RideRequest, 0)
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ride request: %w", err)
		}
		rides = append(rides, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ride requests: %w", err)
	}
	return rides, nil
}

func scanRide(row pgx.Row) (*models.RideRequest, error) {
	var (
		id   int64
		ride models.RideRequest
	)
	if err := row.Scan(&id, &ride.UserID, &ride.SourceLocation, &ride.DestLocation, &ride.CreatedAt); err != nil {
		return nil, err
	}
	ride.ID = &id
	return &ride, nil
}
