// test/e2e/e2e_test.go
package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/api"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/config"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/logger"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/observability"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/models"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/registry"
)

// Shared across the test binary: the OTel Prometheus exporter registers on
// the process-global default registerer, so a second instance would make
// /metrics fail with duplicate metric families.
var testObs = observability.New("activities-server-e2e")

// startServer boots the full router over a real listener, the same wiring
// cmd/activities-server performs minus the signal handling.
func startServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:    config.AppConfig{Name: "activities-server-e2e"},
		Server: config.ServerConfig{Port: 8000, StaticDir: "../../static"},
	}
	reg := registry.New(logger.NewTestLogger(t))
	router := api.NewRouter(cfg, reg, logger.NewTestLogger(t), testObs)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client
}

func getActivities(t *testing.T, srv *httptest.Server, client *http.Client) map[string]models.Activity {
	t.Helper()
	resp, err := client.Get(srv.URL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities map[string]models.Activity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&activities))
	return activities
}

func do(t *testing.T, client *http.Client, method, url string) (*http.Response, map[string]string) {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestE2E_RootRedirectAndStaticUI(t *testing.T) {
	srv, client := startServer(t)

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/static/index.html", resp.Header.Get("Location"))

	index, err := client.Get(srv.URL + "/static/index.html")
	require.NoError(t, err)
	defer index.Body.Close()
	require.Equal(t, http.StatusOK, index.StatusCode)
	page, err := io.ReadAll(index.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Mergington High School")
}

func TestE2E_ChessClubFlow(t *testing.T) {
	srv, client := startServer(t)

	activities := getActivities(t, srv, client)
	require.Contains(t, activities, "Chess Club")
	assert.Equal(t, 12, activities["Chess Club"].MaxParticipants)

	signupURL := srv.URL + "/activities/Chess%20Club/signup?email=a@x.edu"
	resp, body := do(t, client, http.MethodPost, signupURL)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Signed up a@x.edu for Chess Club", body["message"])
	assert.Contains(t, getActivities(t, srv, client)["Chess Club"].Participants, "a@x.edu")

	resp, body = do(t, client, http.MethodPost, signupURL)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["detail"], "already signed up")

	resp, body = do(t, client, http.MethodDelete,
		srv.URL+"/activities/Chess%20Club/unregister?email=a@x.edu")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Unregistered a@x.edu from Chess Club", body["message"])
	assert.NotContains(t, getActivities(t, srv, client)["Chess Club"].Participants, "a@x.edu")
}

func TestE2E_UnknownActivityIs404ForBothMutations(t *testing.T) {
	srv, client := startServer(t)

	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		op := "signup"
		if method == http.MethodDelete {
			op = "unregister"
		}
		url := fmt.Sprintf("%s/activities/Nonexistent%%20Activity/%s?email=a@x.edu", srv.URL, op)
		resp, body := do(t, client, method, url)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s should 404", op)
		assert.Equal(t, "Activity not found", body["detail"])
	}
}

func TestE2E_MetricsExposed(t *testing.T) {
	srv, client := startServer(t)

	// Generate one successful signup so the counter exists.
	resp, _ := do(t, client, http.MethodPost,
		srv.URL+"/activities/Gym%20Class/signup?email=metrics@x.edu")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	metricsResp, err := client.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	require.Equal(t, http.StatusOK, metricsResp.StatusCode)

	exposition, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(exposition), "activity_signups_total"),
		"signup counter missing from /metrics")
}

func TestE2E_HealthEndpoint(t *testing.T) {
	srv, client := startServer(t)

	resp, body := do(t, client, http.MethodGet, srv.URL+"/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}
