package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"nird-intake/internal/analysis"
	"nird-intake/internal/domain"
	"nird-intake/internal/repository"
	"nird-intake/pkg/logger"
	"nird-intake/pkg/redis"
)

// submissionService implements SubmissionService over the document
// store, with an optional Redis read cache for the list and single
// record lookups. The cache is invalidated on every write.
type submissionService struct {
	repo  repository.SubmissionRepository
	cache *redis.Client
	log   *logger.Logger
}

// NewSubmissionService creates a new submission service. cache may be
// nil, in which case every read goes straight to the store.
func NewSubmissionService(repo repository.SubmissionRepository, cache *redis.Client, log *logger.Logger) SubmissionService {
	return &submissionService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create normalizes and validates a request, persists it and returns
// the stored record plus the deterministic message analysis
func (s *submissionService) Create(ctx context.Context, req *domain.SubmissionRequest) (*domain.Submission, *analysis.Result, error) {
	normalizeRequest(req)

	if err := validateRequest(req); err != nil {
		return nil, nil, err
	}

	sub := &domain.Submission{
		MissionType:  req.MissionType,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		SchoolName:   req.SchoolName,
		StudentCount: req.StudentCount,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create submission: %w", err)
	}

	s.invalidate(ctx, created.ID.Hex())

	result := analysis.Analyze(created.MissionType, created.Message)

	s.log.WithFields(map[string]interface{}{
		"submission_id":   created.ID.Hex(),
		"mission_type":    created.MissionType,
		"relevance_score": result.RelevanceScore,
	}).Info("Submission created")

	return created, &result, nil
}

// List returns all submissions newest-first, serving from cache when possible
func (s *submissionService) List(ctx context.Context) ([]domain.Submission, error) {
	if s.cache != nil {
		key := s.cache.KeyBuilder.KeySubmissionsAll()
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var subs []domain.Submission
			if err := json.Unmarshal([]byte(cached), &subs); err == nil {
				return subs, nil
			}
			// Unreadable cache entry, fall through to the store
			_ = s.cache.Delete(ctx, key)
		}
	}

	subs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	s.cacheSet(ctx, s.cacheKeyAll(), subs, redis.TTLSubmissionsAll)

	return subs, nil
}

// Get returns one submission, serving from cache when possible
func (s *submissionService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	if s.cache != nil {
		key := s.cache.KeyBuilder.KeySubmissionByID(id)
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var sub domain.Submission
			if err := json.Unmarshal([]byte(cached), &sub); err == nil {
				return &sub, nil
			}
			_ = s.cache.Delete(ctx, key)
		}
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, s.cacheKeyByID(id), sub, redis.TTLSubmissionByID)

	return sub, nil
}

// Update re-validates the provided fields, applies them and returns
// the updated record
func (s *submissionService) Update(ctx context.Context, id string, req *domain.UpdateRequest) (*domain.Submission, error) {
	normalizeUpdate(req)

	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	s.log.WithField("submission_id", id).Info("Submission updated")

	return updated, nil
}

// Delete removes a submission
func (s *submissionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	s.log.WithField("submission_id", id).Info("Submission deleted")

	return nil
}

// Missions returns the pillar catalog
func (s *submissionService) Missions() []domain.MissionInfo {
	return domain.MissionCatalog()
}

// validateRequest enforces the persistence schema: mission enum
// membership, required contact fields and a non-negative student count
func validateRequest(req *domain.SubmissionRequest) error {
	if !req.MissionType.IsValid() {
		return domain.NewValidationError("mission_type",
			"mission_type must be one of: independance, responsabilite, durabilite, apprentissage")
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return domain.NewValidationError("required",
			"Missing required fields: mission_type, first_name, last_name, email")
	}
	if req.StudentCount != nil && *req.StudentCount < 0 {
		return domain.NewValidationError("student_count", "student_count must not be negative")
	}
	return nil
}

// validateUpdate applies the same schema rules to the fields present
// in a partial update. A provided required field may not become empty.
func validateUpdate(req *domain.UpdateRequest) error {
	if req.MissionType != nil && !req.MissionType.IsValid() {
		return domain.NewValidationError("mission_type",
			"mission_type must be one of: independance, responsabilite, durabilite, apprentissage")
	}
	if (req.FirstName != nil && *req.FirstName == "") ||
		(req.LastName != nil && *req.LastName == "") ||
		(req.Email != nil && *req.Email == "") {
		return domain.NewValidationError("required",
			"Missing required fields: mission_type, first_name, last_name, email")
	}
	if req.StudentCount != nil && *req.StudentCount < 0 {
		return domain.NewValidationError("student_count", "student_count must not be negative")
	}
	return nil
}

// normalizeRequest trims every string field and lowercases the email,
// matching the store schema's trim/lowercase behavior
func normalizeRequest(req *domain.SubmissionRequest) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)
	req.SchoolName = strings.TrimSpace(req.SchoolName)
}

func normalizeUpdate(req *domain.UpdateRequest) {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(req.FirstName)
	trim(req.LastName)
	trim(req.Phone)
	trim(req.Message)
	trim(req.SchoolName)
	if req.Email != nil {
		*req.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
}

func (s *submissionService) cacheKeyAll() string {
	if s.cache == nil {
		return ""
	}
	return s.cache.KeyBuilder.KeySubmissionsAll()
}

func (s *submissionService) cacheKeyByID(id string) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.KeyBuilder.KeySubmissionByID(id)
}

// cacheSet stores a value in the cache, logging failures without
// surfacing them; the cache is an optimization, not a dependency
func (s *submissionService) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.log.WithError(err).Warn("Failed to marshal cache entry")
		return
	}

	if err := s.cache.Set(ctx, key, data, ttl); err != nil {
		s.log.WithError(err).Warn("Failed to write cache entry")
	}
}

// invalidate drops the list cache and the entry for the given id
func (s *submissionService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}

	keys := []string{
		s.cache.KeyBuilder.KeySubmissionsAll(),
		s.cache.KeyBuilder.KeySubmissionByID(id),
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log.WithError(err).Warn("Failed to invalidate submission cache")
	}
}
