package postgres

import (
	"context"
	"database/sql"

	"proposalapi/internal/model"
	"proposalapi/internal/repository"
)

// DestinationPostgres is a PostgreSQL implementation of repository.DestinationRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DestinationPostgres struct {
	db *sql.DB
}

// NewDestinationPostgres creates a new DestinationPostgres repository.
func NewDestinationPostgres(db *sql.DB) *DestinationPostgres {
	return &DestinationPostgres{db: db}
}

var _ repository.DestinationRepository = (*DestinationPostgres)(nil)

// FindByID fetches a single destination by its ID.
// Returns sql.ErrNoRows when no destination matches.
func (r *DestinationPostgres) FindByID(ctx context.Context, id int64) (*model.Destination, error) {
	const q = `
		SELECT id, name, country, hero_image, created_at
		FROM destinations
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var d model.Destination
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Country,
		&d.HeroImage,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}
