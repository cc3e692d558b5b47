package postgres

import (
	"context"
	"database/sql"

	"proposalapi/internal/model"
	"proposalapi/internal/repository"
)

// AuditPostgres is a PostgreSQL implementation of repository.AuditRepository.
type AuditPostgres struct {
	db *sql.DB
}

// NewAuditPostgres creates a new AuditPostgres repository.
func NewAuditPostgres(db *sql.DB) *AuditPostgres {
	return &AuditPostgres{db: db}
}

var _ repository.AuditRepository = (*AuditPostgres)(nil)

// Create inserts a new audit row. Nullable FK columns are stored as NULL
// when the corresponding ID is zero.
func (r *AuditPostgres) Create(ctx context.Context, rec *model.AuditRecord) error {
	const q = `
		INSERT INTO proposal_audit
			(id, actor_id, customer_name, destination_id, package_id, form_snapshot,
			 filename, generation_type, file_size_kb, download_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	destID := sql.NullInt64{Int64: rec.DestinationID, Valid: rec.DestinationID > 0}
	pkgID := sql.NullInt64{Int64: rec.PackageID, Valid: rec.PackageID > 0}

	_, err := r.db.ExecContext(ctx, q,
		rec.ID,
		rec.ActorID,
		rec.CustomerName,
		destID,
		pkgID,
		[]byte(rec.FormSnapshot),
		rec.Filename,
		rec.GenerationType,
		rec.FileSizeKB,
		rec.DownloadCount,
		rec.CreatedAt,
	)
	return err
}
