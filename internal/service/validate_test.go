package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proposalapi/internal/model"
)

func validForm() model.ProposalForm {
	return model.ProposalForm{
		CustomerInfo: model.CustomerInfo{CustomerName: "Alice Smith"},
		TripDetails:  model.TripDetails{PackageTitle: "Bali Escape", Destination: "Bali, Indonesia"},
		Pricing:      model.PricingInfo{TotalPackagePrice: 45000, Currency: "INR"},
	}
}

func TestValidateProposalForm(t *testing.T) {
	t.Run("valid form passes", func(t *testing.T) {
		f := validForm()
		assert.Nil(t, ValidateProposalForm(&f))
	})

	t.Run("missing customer name", func(t *testing.T) {
		f := validForm()
		f.CustomerInfo.CustomerName = "  "
		verr := ValidateProposalForm(&f)
		require.NotNil(t, verr)
		assert.Equal(t, "customerInfo.customerName", verr.Field)
	})

	t.Run("missing package title", func(t *testing.T) {
		f := validForm()
		f.TripDetails.PackageTitle = ""
		verr := ValidateProposalForm(&f)
		require.NotNil(t, verr)
		assert.Equal(t, "tripDetails.packageTitle", verr.Field)
	})

	t.Run("missing destination", func(t *testing.T) {
		f := validForm()
		f.TripDetails.Destination = ""
		f.TripDetails.DestinationID = 0
		verr := ValidateProposalForm(&f)
		require.NotNil(t, verr)
		assert.Equal(t, "tripDetails.destination", verr.Field)
	})

	t.Run("destination id alone satisfies destination rule", func(t *testing.T) {
		f := validForm()
		f.TripDetails.Destination = ""
		f.TripDetails.DestinationID = 7
		assert.Nil(t, ValidateProposalForm(&f))
	})

	t.Run("zero price", func(t *testing.T) {
		f := validForm()
		f.Pricing.TotalPackagePrice = 0
		verr := ValidateProposalForm(&f)
		require.NotNil(t, verr)
		assert.Equal(t, "pricing.totalPackagePrice", verr.Field)
		assert.Contains(t, verr.Message, "package price")
	})

	t.Run("negative price", func(t *testing.T) {
		f := validForm()
		f.Pricing.TotalPackagePrice = -100
		require.NotNil(t, ValidateProposalForm(&f))
	})

	t.Run("first violation wins", func(t *testing.T) {
		// Missing both customer name and price: the customer-name rule
		// fires, never the price rule.
		f := validForm()
		f.CustomerInfo.CustomerName = ""
		f.Pricing.TotalPackagePrice = 0
		verr := ValidateProposalForm(&f)
		require.NotNil(t, verr)
		assert.Equal(t, "customerInfo.customerName", verr.Field)
	})
}
