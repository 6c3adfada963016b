package repository

import (
	"context"

	"nird-intake/internal/domain"
)

// SubmissionRepository defines persistence operations for submissions
type SubmissionRepository interface {
	// Create inserts a submission and returns it with its generated id
	Create(ctx context.Context, sub *domain.Submission) (*domain.Submission, error)

	// FindAll returns every submission ordered by creation time descending
	FindAll(ctx context.Context) ([]domain.Submission, error)

	// FindByID returns one submission or domain.ErrSubmissionNotFound
	FindByID(ctx context.Context, id string) (*domain.Submission, error)

	// Update applies the non-nil fields and returns the updated record,
	// or domain.ErrSubmissionNotFound if the id does not exist
	Update(ctx context.Context, id string, req *domain.UpdateRequest) (*domain.Submission, error)

	// Delete removes a submission or returns domain.ErrSubmissionNotFound
	Delete(ctx context.Context, id string) error
}
