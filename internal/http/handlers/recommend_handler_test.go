// README: HTTP tests for the recommendations endpoint status mapping.
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fieldops/internal/http/handlers"
	"fieldops/internal/http/middleware"
	"fieldops/internal/logging"
	"fieldops/internal/modules/assignment"
	"fieldops/internal/modules/contractor"
	"fieldops/internal/modules/job"
	"fieldops/internal/modules/recommend"
	"fieldops/internal/types"
)

// ---------------------------------------------------------------------------
// Stub collaborators
// ---------------------------------------------------------------------------

type stubJobRepo struct{ jobs map[types.ID]*job.Job }

func (s *stubJobRepo) Get(_ context.Context, id types.ID) (*job.Job, error) {
	if j, ok := s.jobs[id]; ok {
		return j, nil
	}
	return nil, job.ErrNotFound
}

type stubContractorRepo struct {
	contractors map[types.ID]*contractor.Contractor
	active      []types.ID
	curated     map[types.ID][]types.ID
}

func (s *stubContractorRepo) Get(_ context.Context, id types.ID) (*contractor.Contractor, error) {
	if c, ok := s.contractors[id]; ok {
		return c, nil
	}
	return nil, contractor.ErrNotFound
}

func (s *stubContractorRepo) ActiveIDs(_ context.Context) ([]types.ID, error) {
	return s.active, nil
}

func (s *stubContractorRepo) DispatcherList(_ context.Context, id types.ID) ([]types.ID, error) {
	return s.curated[id], nil
}

type stubAssignmentRepo struct{}

func (s *stubAssignmentRepo) ByContractorOnDate(context.Context, types.ID, time.Time) ([]assignment.Assignment, error) {
	return nil, nil
}

type stubDistance struct{}

func (s *stubDistance) Estimate(context.Context, types.Point, types.Point) (types.DistanceEstimate, error) {
	return types.DistanceEstimate{Miles: 5, Minutes: 10}, nil
}

// ---------------------------------------------------------------------------
// Router fixture
// ---------------------------------------------------------------------------

func buildTestRouter(jobs *stubJobRepo, contractors *stubContractorRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := recommend.NewService(jobs, contractors, &stubAssignmentRepo{}, &stubDistance{}, logging.NewNop())
	r := gin.New()
	r.Use(middleware.Identity())
	h := handlers.NewRecommendHandler(svc)
	r.GET("/api/jobs/:id/recommendations", h.Get)
	return r
}

func futureJob() *job.Job {
	return &job.Job{
		ID:            "job1",
		Description:   "panel upgrade",
		JobType:       "electrical",
		ScheduledAt:   time.Now().UTC().Add(48 * time.Hour),
		DurationHours: 3,
	}
}

func activeContractor(id types.ID) *contractor.Contractor {
	rating := 4.0
	return &contractor.Contractor{
		ID:           id,
		Name:         "Ada",
		Active:       true,
		WorkStartMin: 9 * 60,
		WorkEndMin:   17 * 60,
		Rating:       &rating,
		ReviewCount:  3,
	}
}

func doGet(r *gin.Engine, path, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRecommendations_JobNotFound(t *testing.T) {
	r := buildTestRouter(&stubJobRepo{jobs: map[types.ID]*job.Job{}}, &stubContractorRepo{})
	w := doGet(r, "/api/jobs/missing/recommendations", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRecommendations_PastJob(t *testing.T) {
	j := futureJob()
	j.ScheduledAt = time.Now().UTC().Add(-time.Hour)
	r := buildTestRouter(&stubJobRepo{jobs: map[types.ID]*job.Job{"job1": j}}, &stubContractorRepo{})
	w := doGet(r, "/api/jobs/job1/recommendations", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRecommendations_Success(t *testing.T) {
	jobs := &stubJobRepo{jobs: map[types.ID]*job.Job{"job1": futureJob()}}
	contractors := &stubContractorRepo{
		contractors: map[types.ID]*contractor.Contractor{"c1": activeContractor("c1")},
		active:      []types.ID{"c1"},
	}
	r := buildTestRouter(jobs, contractors)

	w := doGet(r, "/api/jobs/job1/recommendations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res recommend.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if res.Message != recommend.MessageSuccess {
		t.Errorf("message = %q, want %q", res.Message, recommend.MessageSuccess)
	}
	if len(res.Recommendations) != 1 || res.Recommendations[0].ContractorID != "c1" {
		t.Errorf("unexpected recommendations: %+v", res.Recommendations)
	}
}

func TestRecommendations_ListOnlyRequiresIdentity(t *testing.T) {
	jobs := &stubJobRepo{jobs: map[types.ID]*job.Job{"job1": futureJob()}}
	r := buildTestRouter(jobs, &stubContractorRepo{})
	w := doGet(r, "/api/jobs/job1/recommendations?list_only=true", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without X-User-ID, got %d", w.Code)
	}
}

func TestRecommendations_ListOnlyUsesCuratedPool(t *testing.T) {
	jobs := &stubJobRepo{jobs: map[types.ID]*job.Job{"job1": futureJob()}}
	contractors := &stubContractorRepo{
		contractors: map[types.ID]*contractor.Contractor{
			"c1": activeContractor("c1"),
			"c2": activeContractor("c2"),
		},
		active:  []types.ID{"c1", "c2"},
		curated: map[types.ID][]types.ID{"disp1": {"c2"}},
	}
	r := buildTestRouter(jobs, contractors)

	w := doGet(r, "/api/jobs/job1/recommendations?list_only=true", "disp1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res recommend.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(res.Recommendations) != 1 || res.Recommendations[0].ContractorID != "c2" {
		t.Errorf("curated pool not respected: %+v", res.Recommendations)
	}
}
