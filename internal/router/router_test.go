package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"testing/fstest"
	"time"

	_ "github.com/Kunalsharma76/github-copilot-exercise/docs"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/dto"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/handler"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/mapper"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/repository"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/response"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type E2ETestSuite struct {
	repo   *repository.ActivityRepository
	server *httptest.Server
	client *http.Client
}

func setupE2ETest(t *testing.T) *E2ETestSuite {
	t.Helper()

	repo := repository.NewActivityRepository(repository.DefaultSeed())
	activityService := service.NewActivityService(repo)

	static := fstest.MapFS{
		"index.html": {Data: []byte("<h1>Mergington High School</h1>")},
	}

	r := SetupRouter(
		handler.NewActivityHandler(activityService, validator.New()),
		handler.NewRootHandler(static),
		handler.NewHealthHandler(repo),
		static,
		time.Second,
	)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &E2ETestSuite{
		repo:   repo,
		server: server,
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (s *E2ETestSuite) do(t *testing.T, method, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, s.server.URL+path, nil)
	require.NoError(t, err)
	resp, err := s.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func signupPath(activity, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
}

func (s *E2ETestSuite) listActivities(t *testing.T) response.ActivitiesResponse {
	t.Helper()
	resp := s.do(t, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.ActivitiesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestE2E_RootRedirect(t *testing.T) {
	s := setupE2ETest(t)

	resp := s.do(t, http.MethodGet, "/")

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/static/index.html", resp.Header.Get("Location"))
}

func TestE2E_StaticIndex(t *testing.T) {
	s := setupE2ETest(t)

	resp, err := http.Get(s.server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Mergington High School")
}

func TestE2E_StaticIndexSingleHop(t *testing.T) {
	s := setupE2ETest(t)

	resp := s.do(t, http.MethodGet, "/")
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)

	resp = s.do(t, http.MethodGet, resp.Header.Get("Location"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Mergington High School")
}

func TestE2E_GetActivities(t *testing.T) {
	s := setupE2ETest(t)

	got := s.listActivities(t)

	current, err := s.repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mapper.MapDomainDirectoryToDTO(current), got)
	assert.Equal(t, got, s.listActivities(t))
}

func TestE2E_SignupScenario(t *testing.T) {
	s := setupE2ETest(t)
	const target = "Chess Club"
	const email = "newstudent@mergington.edu"

	before := s.listActivities(t)
	require.Contains(t, before[target].Participants, "michael@mergington.edu")

	resp := s.do(t, http.MethodPost, signupPath(target, email))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msg response.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", msg.Message)

	after := s.listActivities(t)
	assert.Contains(t, after[target].Participants, email)
	assert.Len(t, after[target].Participants, len(before[target].Participants)+1)

	resp = s.do(t, http.MethodPost, signupPath(target, email))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Detail, "already signed up")
	assert.Len(t, s.listActivities(t)[target].Participants, len(after[target].Participants))
}

func TestE2E_NonexistentActivity(t *testing.T) {
	s := setupE2ETest(t)
	before := s.listActivities(t)

	resp := s.do(t, http.MethodPost, signupPath("Nonexistent", "test@x.com"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Activity not found", errResp.Detail)
	assert.Equal(t, before, s.listActivities(t))
}

func TestE2E_DuplicateOfSeededParticipant(t *testing.T) {
	s := setupE2ETest(t)
	dup := s.listActivities(t)["Chess Club"].Participants[0]

	resp := s.do(t, http.MethodPost, signupPath("Chess Club", dup))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestE2E_Unregister(t *testing.T) {
	s := setupE2ETest(t)

	resp := s.do(t, http.MethodDelete, "/activities/Chess%20Club/unregister?email=daniel%40mergington.edu")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, s.listActivities(t)["Chess Club"].Participants, "daniel@mergington.edu")
}

func TestE2E_Health(t *testing.T) {
	s := setupE2ETest(t)

	resp := s.do(t, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)

	resp = s.do(t, http.MethodHead, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestE2E_Metrics(t *testing.T) {
	s := setupE2ETest(t)
	s.do(t, http.MethodPost, signupPath("Gym Class", "metrics@mergington.edu"))

	resp := s.do(t, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "activity_signups_total")
	assert.Contains(t, string(body), "http_requests_total")
}

func TestE2E_SwaggerDoc(t *testing.T) {
	s := setupE2ETest(t)

	resp := s.do(t, http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Contains(t, doc["paths"], "/activities/{activity_name}/signup")
}
