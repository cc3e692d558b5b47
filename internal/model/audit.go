package model

import (
	"encoding/json"
	"time"
)

// Generation types recorded on audit rows. "scratch" means fully manual
// entry; "prepopulated" means the form was seeded from an existing package.
// Both are processed identically by the pipeline.
const (
	GenerationScratch      = "scratch"
	GenerationPrepopulated = "prepopulated"
)

// AuditRecord is one row per proposal generation attempt. Rows are
// inserted after a successful render and never updated by this service.
type AuditRecord struct {
	ID             string          `json:"id"`
	ActorID        string          `json:"actorId"`
	CustomerName   string          `json:"customerName"`
	DestinationID  int64           `json:"destinationId,omitempty"`
	PackageID      int64           `json:"packageId,omitempty"`
	FormSnapshot   json.RawMessage `json:"formSnapshot"`
	Filename       string          `json:"filename"`
	GenerationType string          `json:"generationType"`
	FileSizeKB     int64           `json:"fileSizeKb"`
	DownloadCount  int             `json:"downloadCount"`
	CreatedAt      time.Time       `json:"createdAt"`
}
