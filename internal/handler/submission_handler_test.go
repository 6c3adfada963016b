package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"nird-intake/internal/analysis"
	"nird-intake/internal/domain"
	"nird-intake/pkg/logger"
)

type mockSubmissionService struct {
	mock.Mock
}

func (m *mockSubmissionService) Create(ctx context.Context, req *domain.SubmissionRequest) (*domain.Submission, *analysis.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Submission), args.Get(1).(*analysis.Result), args.Error(2)
}

func (m *mockSubmissionService) List(ctx context.Context) ([]domain.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Submission), args.Error(1)
}

func (m *mockSubmissionService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *mockSubmissionService) Update(ctx context.Context, id string, req *domain.UpdateRequest) (*domain.Submission, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *mockSubmissionService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSubmissionService) Missions() []domain.MissionInfo {
	args := m.Called()
	return args.Get(0).([]domain.MissionInfo)
}

func setupHandler(t *testing.T) (*mockSubmissionService, *chi.Mux) {
	t.Helper()

	svc := &mockSubmissionService{}
	log := &logger.Logger{Logger: zap.NewNop()}
	h := NewSubmissionHandler(svc, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		h.RegisterRoutes(r)
	})
	return svc, r
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSubmission(t *testing.T) {
	svc, router := setupHandler(t)

	stored := &domain.Submission{
		ID:          primitive.NewObjectID(),
		MissionType: domain.MissionDurabilite,
		FirstName:   "Jo",
		LastName:    "Annoted",
		Email:       "jo@ex.com",
		Message:     strings.Repeat("x", 20),
		CreatedAt:   time.Now().UTC(),
	}
	result := &analysis.Result{WordCount: 1, SentenceCount: 1, MatchedKeywords: []string{}}
	svc.On("Create", mock.Anything, mock.AnythingOfType("*domain.SubmissionRequest")).Return(stored, result, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/submissions", map[string]interface{}{
		"mission_type": "durabilite",
		"first_name":   "Jo",
		"last_name":    " Annoted",
		"email":        "jo@ex.com",
		"message":      strings.Repeat("x", 20),
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Submission created successfully", resp.Message)
	assert.Equal(t, stored.ID.Hex(), resp.ID)
	assert.Equal(t, domain.MissionDurabilite, resp.Data.MissionType)
	assert.NotNil(t, resp.Analysis)
}

func TestCreateSubmissionValidationError(t *testing.T) {
	svc, router := setupHandler(t)

	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, nil, domain.NewValidationError("required",
			"Missing required fields: mission_type, first_name, last_name, email"))

	rec := doRequest(t, router, http.MethodPost, "/api/submissions", map[string]interface{}{
		"mission_type": "durabilite",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields: mission_type, first_name, last_name, email", resp["error"])
}

func TestCreateSubmissionInvalidBody(t *testing.T) {
	_, router := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSubmissionPersistenceError(t *testing.T) {
	svc, router := setupHandler(t)

	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, nil, assert.AnError)

	rec := doRequest(t, router, http.MethodPost, "/api/submissions", map[string]interface{}{
		"mission_type": "durabilite",
		"first_name":   "Jo",
		"last_name":    "Annoted",
		"email":        "jo@ex.com",
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to create submission", resp["error"])
}

func TestListSubmissions(t *testing.T) {
	svc, router := setupHandler(t)

	newest := domain.Submission{ID: primitive.NewObjectID(), FirstName: "Trois", CreatedAt: time.Now().UTC()}
	middle := domain.Submission{ID: primitive.NewObjectID(), FirstName: "Deux", CreatedAt: time.Now().UTC().Add(-time.Hour)}
	oldest := domain.Submission{ID: primitive.NewObjectID(), FirstName: "Un", CreatedAt: time.Now().UTC().Add(-2 * time.Hour)}
	svc.On("List", mock.Anything).Return([]domain.Submission{newest, middle, oldest}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/submissions", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var subs []domain.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 3)
	// Newest first, as served by the store
	assert.Equal(t, "Trois", subs[0].FirstName)
	assert.Equal(t, "Un", subs[2].FirstName)
	assert.True(t, subs[0].CreatedAt.After(subs[1].CreatedAt))
}

func TestGetSubmission(t *testing.T) {
	svc, router := setupHandler(t)

	sub := &domain.Submission{ID: primitive.NewObjectID(), FirstName: "Jean", Email: "jean@example.com"}
	svc.On("Get", mock.Anything, sub.ID.Hex()).Return(sub, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/submissions/"+sub.ID.Hex(), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, "jean@example.com", got.Email)
}

func TestGetSubmissionNotFound(t *testing.T) {
	svc, router := setupHandler(t)
	svc.On("Get", mock.Anything, "unknown").Return(nil, domain.ErrSubmissionNotFound)

	rec := doRequest(t, router, http.MethodGet, "/api/submissions/unknown", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Submission not found", resp["error"])
}

func TestUpdateSubmission(t *testing.T) {
	svc, router := setupHandler(t)

	updated := &domain.Submission{ID: primitive.NewObjectID(), FirstName: "Jeanne"}
	svc.On("Update", mock.Anything, updated.ID.Hex(), mock.AnythingOfType("*domain.UpdateRequest")).
		Return(updated, nil)

	rec := doRequest(t, router, http.MethodPut, "/api/submissions/"+updated.ID.Hex(), map[string]interface{}{
		"first_name": "Jeanne",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp UpdateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Submission updated successfully", resp.Message)
	assert.Equal(t, "Jeanne", resp.Data.FirstName)
}

func TestUpdateSubmissionNotFound(t *testing.T) {
	svc, router := setupHandler(t)
	svc.On("Update", mock.Anything, "unknown", mock.Anything).
		Return(nil, domain.ErrSubmissionNotFound)

	rec := doRequest(t, router, http.MethodPut, "/api/submissions/unknown", map[string]interface{}{
		"first_name": "Jeanne",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSubmission(t *testing.T) {
	svc, router := setupHandler(t)
	svc.On("Delete", mock.Anything, "someid").Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/submissions/someid", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Submission deleted successfully", resp["message"])
}

func TestDeleteSubmissionTwice(t *testing.T) {
	svc, router := setupHandler(t)
	svc.On("Delete", mock.Anything, "someid").Return(nil).Once()
	svc.On("Delete", mock.Anything, "someid").Return(domain.ErrSubmissionNotFound).Once()

	first := doRequest(t, router, http.MethodDelete, "/api/submissions/someid", nil)
	second := doRequest(t, router, http.MethodDelete, "/api/submissions/someid", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestMissionsEndpoint(t *testing.T) {
	svc, router := setupHandler(t)
	svc.On("Missions").Return(domain.MissionCatalog())

	rec := doRequest(t, router, http.MethodGet, "/api/missions", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var missions []domain.MissionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &missions))
	assert.Len(t, missions, 4)
}

func TestHealthCheck(t *testing.T) {
	log := &logger.Logger{Logger: zap.NewNop()}
	h := NewHealthHandler(log)

	r := chi.NewRouter()
	r.Get("/api/health", h.Check)

	rec := doRequest(t, r, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "nird-intake", resp.Service)
}
