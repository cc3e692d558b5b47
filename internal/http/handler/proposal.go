package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"proposalapi/internal/model"
	"proposalapi/internal/service"
)

// defaultActorID is recorded on audit rows when the dashboard does not
// identify the operator. Authentication is handled upstream.
const defaultActorID = "admin"

// generateProposalRequest is the POST /generate-proposal body. The
// top-level destinationId/packageId fields are sent by the prepopulated
// flow alongside the seeded form.
type generateProposalRequest struct {
	FormData       model.ProposalForm `json:"formData"`
	GenerationType string             `json:"generationType"`
	DestinationID  int64              `json:"destinationId"`
	PackageID      int64              `json:"packageId"`
}

// generateProposalResponse is the success contract consumed by the
// dashboard's proposal screen.
type generateProposalResponse struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"downloadUrl"`
	FileSize    int64  `json:"fileSize"`
	Message     string `json:"message"`
}

// GenerateProposal runs the proposal generation pipeline for one request.
// Validation problems come back as 400 with a single user-facing message;
// any render/persist failure is a 500 with operator details. The audit
// trail is written by the service and never affects this response.
func GenerateProposal(svc service.ProposalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req generateProposalRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		actorID := c.Get("X-Actor-ID")
		if actorID == "" {
			actorID = defaultActorID
		}

		res, err := svc.Generate(c.UserContext(), service.GenerateRequest{
			Form:           req.FormData,
			GenerationType: req.GenerationType,
			ActorID:        actorID,
			DestinationID:  req.DestinationID,
			PackageID:      req.PackageID,
		})
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": verr.Message,
				})
			}
			log.Printf("proposal generation failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to generate proposal",
				"details": err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(generateProposalResponse{
			Success:     true,
			Filename:    res.Document.Filename,
			DownloadURL: res.DownloadURL,
			FileSize:    res.Document.FileSizeKB,
			Message:     "Proposal generated successfully",
		})
	}
}
