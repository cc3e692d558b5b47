package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"proposalapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAuditPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAuditPostgres(db)
	ctx := context.Background()

	rec := &model.AuditRecord{
		ID:             "audit-uuid",
		ActorID:        "admin",
		CustomerName:   "Alice Smith",
		DestinationID:  7,
		FormSnapshot:   json.RawMessage(`{"customerInfo":{"customerName":"Alice Smith"}}`),
		Filename:       "Travel_Proposal_Alice_Smith_2025-01-05.pdf",
		GenerationType: model.GenerationScratch,
		FileSizeKB:     120,
		CreatedAt:      time.Now().UTC(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO proposal_audit").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, rec))
	})

	t.Run("insert failure", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO proposal_audit").
			WillReturnError(errors.New("insert fail"))

		assert.Error(t, repo.Create(ctx, rec))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
