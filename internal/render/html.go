package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"math"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"proposalapi/internal/model"
	"proposalapi/web"
)

// ErrTemplateUnavailable indicates the proposal template asset could not
// be loaded or parsed. This is a deployment misconfiguration, not a user
// error, and aborts generation before any rendering cost is incurred.
var ErrTemplateUnavailable = errors.New("proposal template unavailable")

const longDateLayout = "January 2, 2006"

var pricePrinter = message.NewPrinter(language.English)

// proposalView is the flattened, pre-formatted data bound into the
// template. All value transforms (dates, price separators) happen here so
// the template itself stays logic-less.
type proposalView struct {
	CustomerName        string
	TotalTravelers      int
	TravelStartDate     string
	TravelEndDate       string
	SpecialRequirements string

	PackageTitle string
	Destination  string
	HeroImage    string
	Duration     string
	Description  string
	Highlights   []string

	Currency     string
	TotalPrice   string
	PricingNotes string

	Inclusions []string
	Exclusions []string
	Itinerary  []model.ItineraryDay

	Terms         string
	Notes         string
	GeneratedDate string
}

// TemplateRenderer binds an enriched proposal into the HTML proposal
// template. The embedded default template is parsed once at construction;
// an optional override file is loaded on every render so operators can
// swap it without a restart.
type TemplateRenderer struct {
	tpl          *template.Template
	overridePath string
}

// NewTemplateRenderer parses the embedded proposal template. A parse
// failure is fatal: the binary shipped with a broken asset.
func NewTemplateRenderer(overridePath string) (*TemplateRenderer, error) {
	tpl, err := template.ParseFS(web.Templates, "templates/proposal.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateUnavailable, err)
	}
	return &TemplateRenderer{tpl: tpl, overridePath: overridePath}, nil
}

// Render produces the final proposal HTML for the given enriched form.
// The now parameter supplies the displayed generation date.
func (r *TemplateRenderer) Render(p *model.EnrichedProposal, now time.Time) (string, error) {
	tpl := r.tpl
	if r.overridePath != "" {
		raw, err := os.ReadFile(r.overridePath)
		if err != nil {
			return "", fmt.Errorf("%w: read override %s: %v", ErrTemplateUnavailable, r.overridePath, err)
		}
		tpl, err = template.New("proposal.html").Parse(string(raw))
		if err != nil {
			return "", fmt.Errorf("%w: parse override %s: %v", ErrTemplateUnavailable, r.overridePath, err)
		}
	}

	view := proposalView{
		CustomerName:        p.CustomerInfo.CustomerName,
		TotalTravelers:      p.CustomerInfo.TotalTravelers,
		TravelStartDate:     formatLongDate(p.CustomerInfo.TravelStartDate),
		TravelEndDate:       formatLongDate(p.CustomerInfo.TravelEndDate),
		SpecialRequirements: p.CustomerInfo.SpecialRequirements,
		PackageTitle:        p.TripDetails.PackageTitle,
		Destination:         p.Destination,
		HeroImage:           p.HeroImage,
		Duration:            p.TripDetails.Duration,
		Description:         p.TripDetails.Description,
		Highlights:          p.TripDetails.Highlights,
		Currency:            p.Pricing.Currency,
		TotalPrice:          formatPrice(p.Pricing.TotalPackagePrice),
		PricingNotes:        p.Pricing.PricingNotes,
		Inclusions:          p.Inclusions,
		Exclusions:          p.Exclusions,
		Itinerary:           p.Itinerary,
		Terms:               p.AdditionalInfo.TermsAndConditions,
		Notes:               p.AdditionalInfo.Notes,
		GeneratedDate:       now.Format(longDateLayout),
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute proposal template: %w", err)
	}
	return buf.String(), nil
}

// formatLongDate turns a YYYY-MM-DD form value into "January 5, 2025".
// Missing or unparseable dates render as empty, not as an error.
func formatLongDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return ""
	}
	return t.Format(longDateLayout)
}

// formatPrice renders the total with locale thousands separators.
// Whole amounts drop the decimal part ("45,000"); fractional amounts keep
// two places ("45,000.50").
func formatPrice(v float64) string {
	if v == math.Trunc(v) {
		return pricePrinter.Sprintf("%.0f", v)
	}
	return pricePrinter.Sprintf("%.2f", v)
}
