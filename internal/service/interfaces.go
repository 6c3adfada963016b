package service

import (
	"context"

	"nird-intake/internal/analysis"
	"nird-intake/internal/domain"
)

// SubmissionService defines the intake persistence operations
type SubmissionService interface {
	// Create normalizes and validates a submission request, persists it
	// and returns the stored record plus the message analysis
	Create(ctx context.Context, req *domain.SubmissionRequest) (*domain.Submission, *analysis.Result, error)

	// List returns all submissions ordered by creation time descending
	List(ctx context.Context) ([]domain.Submission, error)

	// Get returns one submission or domain.ErrSubmissionNotFound
	Get(ctx context.Context, id string) (*domain.Submission, error)

	// Update re-validates the provided fields and replaces them
	Update(ctx context.Context, id string, req *domain.UpdateRequest) (*domain.Submission, error)

	// Delete removes a submission or returns domain.ErrSubmissionNotFound
	Delete(ctx context.Context, id string) error

	// Missions returns the pillar catalog
	Missions() []domain.MissionInfo
}
