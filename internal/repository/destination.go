package repository

import (
	"context"

	"proposalapi/internal/model"
)

// DestinationRepository defines read access to destination records.
// The generation pipeline only ever resolves a single destination by ID;
// FindByID returns sql.ErrNoRows when the destination does not exist.
type DestinationRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Destination, error)
}
