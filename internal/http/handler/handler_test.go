package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"proposalapi/internal/model"
	repoMocks "proposalapi/internal/repository/mocks"
	"proposalapi/internal/service"
	serviceMocks "proposalapi/internal/service/mocks"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func postProposal(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/generate-proposal", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGenerateProposal(t *testing.T) {
	formData := model.ProposalForm{
		CustomerInfo: model.CustomerInfo{CustomerName: "Alice Smith", TotalTravelers: 2},
		TripDetails: model.TripDetails{
			PackageTitle: "Bali Escape",
			Destination:  "Bali, Indonesia",
			Duration:     "5 Days, 4 Nights",
		},
		Pricing: model.PricingInfo{TotalPackagePrice: 45000, Currency: "INR"},
		Itinerary: []model.ItineraryDay{
			{DayNumber: 1, DayTitle: "Arrival"},
		},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockProposalService)
		app := fiber.New()
		app.Post("/generate-proposal", GenerateProposal(mockSvc))

		mockSvc.On("Generate", mock.Anything, mock.MatchedBy(func(req service.GenerateRequest) bool {
			return req.Form.CustomerInfo.CustomerName == "Alice Smith" &&
				req.ActorID == "admin"
		})).Return(&service.GenerateResult{
			Document: model.GeneratedDocument{
				Filename:   "Travel_Proposal_Alice_Smith_2025-01-05.pdf",
				FilePath:   "Travel_Proposal_Alice_Smith_2025-01-05.pdf",
				FileSizeKB: 120,
			},
			DownloadURL: "/generated-documents/Travel_Proposal_Alice_Smith_2025-01-05.pdf",
		}, nil).Once()

		resp := postProposal(t, app, fiber.Map{
			"formData":       formData,
			"generationType": "scratch",
		})

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body generateProposalResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.True(t, body.Success)
		assert.Equal(t, "Travel_Proposal_Alice_Smith_2025-01-05.pdf", body.Filename)
		assert.Equal(t, "/generated-documents/Travel_Proposal_Alice_Smith_2025-01-05.pdf", body.DownloadURL)
		assert.Equal(t, int64(120), body.FileSize)
		mockSvc.AssertExpectations(t)
	})

	t.Run("actor header propagated", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockProposalService)
		app := fiber.New()
		app.Post("/generate-proposal", GenerateProposal(mockSvc))

		mockSvc.On("Generate", mock.Anything, mock.MatchedBy(func(req service.GenerateRequest) bool {
			return req.ActorID == "agent-17"
		})).Return(&service.GenerateResult{
			Document: model.GeneratedDocument{Filename: "f.pdf", FileSizeKB: 1},
		}, nil).Once()

		raw, _ := json.Marshal(fiber.Map{"formData": formData, "generationType": "prepopulated"})
		req := httptest.NewRequest(http.MethodPost, "/generate-proposal", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-ID", "agent-17")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failure yields 400 with message", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockProposalService)
		app := fiber.New()
		app.Post("/generate-proposal", GenerateProposal(mockSvc))

		mockSvc.On("Generate", mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{
				Field:   "pricing.totalPackagePrice",
				Message: "A valid total package price is required",
			}).Once()

		resp := postProposal(t, app, fiber.Map{"formData": model.ProposalForm{}})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Contains(t, body["error"], "package price")
	})

	t.Run("generation failure yields 500 with details", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockProposalService)
		app := fiber.New()
		app.Post("/generate-proposal", GenerateProposal(mockSvc))

		mockSvc.On("Generate", mock.Anything, mock.Anything).
			Return(nil, errors.New("render proposal pdf: browser crashed")).Once()

		resp := postProposal(t, app, fiber.Map{"formData": formData})

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Failed to generate proposal", body["error"])
		assert.Contains(t, body["details"], "browser crashed")
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockProposalService)
		app := fiber.New()
		app.Post("/generate-proposal", GenerateProposal(mockSvc))

		req := httptest.NewRequest(http.MethodPost, "/generate-proposal", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})
}

func TestGetDestination(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(repoMocks.MockDestinationRepository)
		app := fiber.New()
		app.Get("/destinations/:id", GetDestination(mockRepo))

		mockRepo.On("FindByID", mock.Anything, int64(7)).
			Return(&model.Destination{ID: 7, Name: "Bali", Country: "Indonesia"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/destinations/7", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var dest model.Destination
		json.NewDecoder(resp.Body).Decode(&dest)
		assert.Equal(t, "Bali", dest.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(repoMocks.MockDestinationRepository)
		app := fiber.New()
		app.Get("/destinations/:id", GetDestination(mockRepo))

		mockRepo.On("FindByID", mock.Anything, int64(99)).
			Return(nil, sql.ErrNoRows).Once()

		req := httptest.NewRequest(http.MethodGet, "/destinations/99", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockRepo := new(repoMocks.MockDestinationRepository)
		app := fiber.New()
		app.Get("/destinations/:id", GetDestination(mockRepo))

		req := httptest.NewRequest(http.MethodGet, "/destinations/abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
