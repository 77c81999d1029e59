package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/attendance"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
	"github.com/andes-hr/hr-backend-go/internal/pkg/geo"
)

type geofenceRepositoryImpl struct {
	db *database.DB
}

func NewGeofenceRepository(db *database.DB) attendance.GeofenceRepository {
	return &geofenceRepositoryImpl{db: db}
}

// Vertices are stored as JSONB; pgx marshals []geo.Coordinate transparently.

// Create implements attendance.GeofenceRepository.
func (r *geofenceRepositoryImpl) Create(ctx context.Context, g attendance.Geofence) (attendance.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO geofences (id, company_id, name, kind, active, center_lat, center_lng, radius_m, vertices, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	var centerLat, centerLng *float64
	if g.Fence.Center != nil {
		centerLat = &g.Fence.Center.Latitude
		centerLng = &g.Fence.Center.Longitude
	}

	err := q.QueryRow(ctx, query,
		g.CompanyID, g.Name, g.Fence.Kind, g.Fence.Active,
		centerLat, centerLng, g.Fence.RadiusMeters, g.Fence.Vertices,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return attendance.Geofence{}, fmt.Errorf("failed to create geofence: %w", err)
	}
	return g, nil
}

func scanGeofence(row pgx.Row) (attendance.Geofence, error) {
	var g attendance.Geofence
	var centerLat, centerLng *float64
	err := row.Scan(
		&g.ID, &g.CompanyID, &g.Name, &g.Fence.Kind, &g.Fence.Active,
		&centerLat, &centerLng, &g.Fence.RadiusMeters, &g.Fence.Vertices,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return attendance.Geofence{}, err
	}
	if centerLat != nil && centerLng != nil {
		g.Fence.Center = &geo.Coordinate{Latitude: *centerLat, Longitude: *centerLng}
	}
	return g, nil
}

// GetByID implements attendance.GeofenceRepository.
func (r *geofenceRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (attendance.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, kind, active, center_lat, center_lng, radius_m, vertices, created_at, updated_at
		FROM geofences
		WHERE id = $1 AND company_id = $2
	`

	g, err := scanGeofence(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Geofence{}, attendance.ErrGeofenceNotFound
		}
		return attendance.Geofence{}, fmt.Errorf("failed to get geofence: %w", err)
	}

	return g, nil
}

// List implements attendance.GeofenceRepository.
func (r *geofenceRepositoryImpl) List(ctx context.Context, companyID string) ([]attendance.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, kind, active, center_lat, center_lng, radius_m, vertices, created_at, updated_at
		FROM geofences
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	defer rows.Close()

	var fences []attendance.Geofence
	for rows.Next() {
		g, err := scanGeofence(rows)
		if err != nil {
			return nil, err
		}
		fences = append(fences, g)
	}

	return fences, rows.Err()
}

// Delete implements attendance.GeofenceRepository.
func (r *geofenceRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM geofences WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete geofence: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrGeofenceNotFound
	}
	return nil
}
