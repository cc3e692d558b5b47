package service

import (
	"strings"

	"proposalapi/internal/model"
)

// ValidationError identifies the first unmet required-field rule of a
// proposal form. It is surfaced to the dashboard as a 400 and stops the
// pipeline before any enrichment or rendering work.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateProposalForm checks required proposal fields in fixed order:
// customer name, package title, destination (ID or free text), positive
// package price. It returns the first violation only, or nil. Pure check,
// no side effects.
func ValidateProposalForm(f *model.ProposalForm) *ValidationError {
	if strings.TrimSpace(f.CustomerInfo.CustomerName) == "" {
		return &ValidationError{
			Field:   "customerInfo.customerName",
			Message: "Customer name is required",
		}
	}
	if strings.TrimSpace(f.TripDetails.PackageTitle) == "" {
		return &ValidationError{
			Field:   "tripDetails.packageTitle",
			Message: "Package title is required",
		}
	}
	if f.TripDetails.DestinationID <= 0 && strings.TrimSpace(f.TripDetails.Destination) == "" {
		return &ValidationError{
			Field:   "tripDetails.destination",
			Message: "Destination is required",
		}
	}
	if f.Pricing.TotalPackagePrice <= 0 {
		return &ValidationError{
			Field:   "pricing.totalPackagePrice",
			Message: "A valid total package price is required",
		}
	}
	return nil
}
