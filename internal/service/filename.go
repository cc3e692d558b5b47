package service

import (
	"strings"
	"time"
)

// SanitizeCustomerName reduces a customer name to an identifier-safe
// token: letters and digits are kept, whitespace becomes underscores, all
// other characters are dropped, and runs of underscores are collapsed and
// trimmed. "Jane O'Brien" becomes "Jane_OBrien".
func SanitizeCustomerName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '-', r == '_':
			b.WriteByte('_')
		}
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return strings.Trim(out, "_")
}

// ProposalFilename builds the deterministic document filename for a
// customer and calendar date: Travel_Proposal_{name}_{YYYY-MM-DD}.pdf.
// Two generations for the same customer on the same day collide on the
// same filename; the later write replaces the earlier file.
func ProposalFilename(customerName string, t time.Time) string {
	return "Travel_Proposal_" + SanitizeCustomerName(customerName) + "_" + t.Format("2006-01-02") + ".pdf"
}
