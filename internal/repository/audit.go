package repository

import (
	"context"

	"proposalapi/internal/model"
)

// AuditRepository persists proposal generation audit rows.
// Rows are insert-only; this service never reads or updates them.
type AuditRepository interface {
	Create(ctx context.Context, rec *model.AuditRecord) error
}
