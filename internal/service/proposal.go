package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"proposalapi/internal/model"
	"proposalapi/internal/render"
	"proposalapi/internal/repository"
	"proposalapi/internal/storage"
)

const auditWriteTimeout = 10 * time.Second

// GenerateRequest is the service-level input for one generation attempt.
type GenerateRequest struct {
	Form           model.ProposalForm
	GenerationType string
	ActorID        string

	// DestinationID and PackageID are the legacy top-level request
	// parameters sent by the prepopulated flow; DestinationID doubles as
	// an enrichment reference when the form itself carries none.
	DestinationID int64
	PackageID     int64
}

// GenerateResult is returned to the HTTP boundary on success.
type GenerateResult struct {
	Document    model.GeneratedDocument
	DownloadURL string
}

// ProposalService defines the proposal generation use case.
type ProposalService interface {
	// Generate runs the full pipeline for one request: validate, enrich,
	// render HTML, rasterize PDF, persist, record audit. A *ValidationError
	// is returned for incomplete input; any other error is a generation
	// failure. The audit write is best-effort and never fails the result.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// proposalService is the concrete pipeline implementation. Each call is
// independent; the only shared resources are the injected collaborators.
type proposalService struct {
	destRepo  repository.DestinationRepository
	auditRepo repository.AuditRepository
	tmpl      *render.TemplateRenderer
	pdf       render.PDFRenderer
	store     storage.Storage

	now func() time.Time

	// auditWG tracks in-flight audit writes so shutdown and tests can
	// wait for them; callers of Generate never do.
	auditWG sync.WaitGroup
}

// NewProposalService constructs the generation pipeline.
func NewProposalService(
	destRepo repository.DestinationRepository,
	auditRepo repository.AuditRepository,
	tmpl *render.TemplateRenderer,
	pdf render.PDFRenderer,
	store storage.Storage,
) *proposalService {
	return &proposalService{
		destRepo:  destRepo,
		auditRepo: auditRepo,
		tmpl:      tmpl,
		pdf:       pdf,
		store:     store,
		now:       time.Now,
	}
}

var _ ProposalService = (*proposalService)(nil)

func (s *proposalService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if verr := ValidateProposalForm(&req.Form); verr != nil {
		return nil, verr
	}

	now := s.now()
	enriched := s.enrich(ctx, &req.Form, req.DestinationID)

	htmlContent, err := s.tmpl.Render(enriched, now)
	if err != nil {
		return nil, fmt.Errorf("render proposal html: %w", err)
	}

	pdfBytes, err := s.pdf.RenderPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("render proposal pdf: %w", err)
	}

	filename := ProposalFilename(req.Form.CustomerInfo.CustomerName, now)
	info, err := s.store.Put(ctx, filename, bytes.NewReader(pdfBytes), storage.PutOptions{
		Size:        int64(len(pdfBytes)),
		ContentType: "application/pdf",
		Metadata:    map[string]string{"customer-name": req.Form.CustomerInfo.CustomerName},
	})
	if err != nil {
		return nil, fmt.Errorf("persist proposal pdf: %w", err)
	}

	downloadURL, err := s.store.PublicURL(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("resolve download url: %w", err)
	}

	doc := model.GeneratedDocument{
		Filename:   filename,
		FilePath:   info.Key,
		FileSizeKB: (info.Size + 1023) / 1024,
	}

	s.recordAudit(req, doc, now)

	return &GenerateResult{Document: doc, DownloadURL: downloadURL}, nil
}

// recordAudit inserts the audit row on a detached goroutine with its own
// timeout. Failures are observability loss, not generation failure: they
// are logged and never surfaced to the caller.
func (s *proposalService) recordAudit(req GenerateRequest, doc model.GeneratedDocument, now time.Time) {
	snapshot, err := json.Marshal(req.Form)
	if err != nil {
		log.Printf("proposal: audit snapshot marshal failed: %v", err)
		snapshot = []byte("{}")
	}

	genType := req.GenerationType
	if genType != model.GenerationPrepopulated {
		genType = model.GenerationScratch
	}

	rec := &model.AuditRecord{
		ID:             uuid.NewString(),
		ActorID:        req.ActorID,
		CustomerName:   req.Form.CustomerInfo.CustomerName,
		DestinationID:  firstPositive(req.Form.TripDetails.DestinationID, req.DestinationID),
		PackageID:      req.PackageID,
		FormSnapshot:   snapshot,
		Filename:       doc.Filename,
		GenerationType: genType,
		FileSizeKB:     doc.FileSizeKB,
		DownloadCount:  0,
		CreatedAt:      now.UTC(),
	}

	s.auditWG.Add(1)
	go func() {
		defer s.auditWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := s.auditRepo.Create(ctx, rec); err != nil {
			log.Printf("proposal: audit write failed for %s: %v", rec.Filename, err)
		}
	}()
}

// Wait blocks until in-flight audit writes finish. Used on shutdown.
func (s *proposalService) Wait() {
	s.auditWG.Wait()
}

func firstPositive(vals ...int64) int64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
