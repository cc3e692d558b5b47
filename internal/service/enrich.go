package service

import (
	"context"
	"fmt"
	"log"

	"proposalapi/internal/model"
)

// enrich resolves the destination reference on a form into a display name
// and hero image. Lookups are best-effort: a proposal must still generate
// when destination metadata is temporarily unavailable, so failures are
// logged and the free-text destination (if any) is used as a fallback.
func (s *proposalService) enrich(ctx context.Context, form *model.ProposalForm, legacyDestinationID int64) *model.EnrichedProposal {
	enriched := &model.EnrichedProposal{
		ProposalForm: *form,
		Destination:  form.TripDetails.Destination,
	}

	destID := form.TripDetails.DestinationID
	if destID <= 0 {
		destID = legacyDestinationID
	}
	if destID <= 0 {
		return enriched
	}

	dest, err := s.destRepo.FindByID(ctx, destID)
	if err != nil {
		log.Printf("proposal: destination %d lookup failed, continuing without enrichment: %v", destID, err)
		return enriched
	}

	enriched.Destination = fmt.Sprintf("%s, %s", dest.Name, dest.Country)
	enriched.HeroImage = dest.HeroImage
	return enriched
}
