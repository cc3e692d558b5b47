package model

// Package model contains domain models/data structures.
// These are pure structs with no database-specific dependencies or tags,
// shared across the HTTP, service, and persistence layers.

// CustomerInfo holds the customer section of a proposal form.
// Only CustomerName is required; the rest is optional display data.
type CustomerInfo struct {
	CustomerName        string `json:"customerName"`
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone,omitempty"`
	TotalTravelers      int    `json:"totalTravelers,omitempty"`
	TravelStartDate     string `json:"travelStartDate,omitempty"` // YYYY-MM-DD
	TravelEndDate       string `json:"travelEndDate,omitempty"`   // YYYY-MM-DD
	SpecialRequirements string `json:"specialRequirements,omitempty"`
}

// TripDetails holds the trip section of a proposal form.
// The destination may be referenced by numeric ID (resolved against the
// destinations table) or as free text; at least one must be present.
type TripDetails struct {
	PackageTitle  string   `json:"packageTitle"`
	DestinationID int64    `json:"destinationId,omitempty"`
	Destination   string   `json:"destination,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Description   string   `json:"description,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
}

// PricingInfo holds the pricing section of a proposal form.
type PricingInfo struct {
	TotalPackagePrice float64 `json:"totalPackagePrice"`
	Currency          string  `json:"currency,omitempty"`
	PricingNotes      string  `json:"pricingNotes,omitempty"`
}

// ItineraryDay is a single day entry in the proposal itinerary.
// Entries are rendered in the order submitted; day numbers are not
// required to be contiguous or unique.
type ItineraryDay struct {
	DayNumber      int    `json:"dayNumber"`
	DayTitle       string `json:"dayTitle"`
	DayDescription string `json:"dayDescription,omitempty"`
}

// AdditionalInfo holds free-text terms and notes.
type AdditionalInfo struct {
	TermsAndConditions string `json:"termsAndConditions,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// ProposalForm is the root input for proposal generation.
type ProposalForm struct {
	CustomerInfo   CustomerInfo   `json:"customerInfo"`
	TripDetails    TripDetails    `json:"tripDetails"`
	Pricing        PricingInfo    `json:"pricing"`
	Inclusions     []string       `json:"inclusions,omitempty"`
	Exclusions     []string       `json:"exclusions,omitempty"`
	Itinerary      []ItineraryDay `json:"itinerary,omitempty"`
	AdditionalInfo AdditionalInfo `json:"additionalInfo,omitempty"`
}

// EnrichedProposal is a ProposalForm merged with destination details
// resolved from the destinations store. Destination and HeroImage stay
// empty when the lookup fails or no destination ID was supplied.
type EnrichedProposal struct {
	ProposalForm

	// Destination is the resolved "{name}, {country}" display string, or
	// the form's free-text destination as a fallback.
	Destination string `json:"destination"`
	HeroImage   string `json:"heroImage,omitempty"`
}

// GeneratedDocument describes a persisted proposal PDF.
// It is created once per successful render and never mutated.
type GeneratedDocument struct {
	Filename   string `json:"filename"`
	FilePath   string `json:"filePath"`
	FileSizeKB int64  `json:"fileSizeKb"`
}
