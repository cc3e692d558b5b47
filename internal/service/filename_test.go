package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCustomerName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice Smith", "Alice_Smith"},
		{"Jane O'Brien", "Jane_OBrien"},
		{"  Bob  ", "Bob"},
		{"José García", "Jos_Garca"},
		{"Anne-Marie", "Anne_Marie"},
		{"a!@#$%b", "ab"},
		{"", ""},
		{"___", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeCustomerName(tt.in), "input %q", tt.in)
	}
}

func TestProposalFilename(t *testing.T) {
	date := time.Date(2025, time.January, 5, 23, 59, 0, 0, time.UTC)

	got := ProposalFilename("Jane O'Brien", date)
	assert.Equal(t, "Travel_Proposal_Jane_OBrien_2025-01-05.pdf", got)

	// Deterministic: same customer, same calendar date, same filename.
	again := ProposalFilename("Jane O'Brien", date.Add(-6*time.Hour))
	assert.Equal(t, got, again)
}
