package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "activity-signup-service/internal/http"
	"activity-signup-service/internal/model"
	"activity-signup-service/internal/observability"
	"activity-signup-service/internal/repository"
	"activity-signup-service/internal/service"
)

// testDirectory общий для всех тестов пакета; resetDirectory возвращает его к исходному каталогу.
var testDirectory = repository.NewSeededDirectory()

func resetDirectory(t *testing.T) {
	t.Helper()
	testDirectory.Reset()
	t.Cleanup(testDirectory.Reset)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	reg.MustRegister(observability.NewRosterCollector(testDirectory))
	svc := service.NewActivityService(testDirectory, observability.NewMetrics(reg), logger)

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>Mergington High School</h1>"), 0o644))

	h := httpapi.NewHandler(svc, logger, httpapi.Config{
		StaticDir: staticDir,
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
	return h.Router()
}

func do(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getActivities(t *testing.T, router http.Handler) model.Catalog {
	t.Helper()
	w := do(t, router, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, w.Code)

	var catalog model.Catalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	return catalog
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetActivities(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))

	for _, name := range []string{
		"Basketball Team", "Soccer Club", "Drama Club", "Chess Club", "Programming Class", "Gym Class",
	} {
		assert.Contains(t, raw, name)
	}

	for name, a := range raw {
		assert.Contains(t, a, "description", name)
		assert.Contains(t, a, "schedule", name)
		assert.Contains(t, a, "max_participants", name)
		require.Contains(t, a, "participants", name)
		assert.IsType(t, []any{}, a["participants"], name)
	}
}

func TestGetActivities_SeedParticipants(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)

	catalog := getActivities(t, router)
	assert.Contains(t, catalog["Chess Club"].Participants, "michael@mergington.edu")
	assert.Contains(t, catalog["Chess Club"].Participants, "daniel@mergington.edu")
	assert.Len(t, catalog["Basketball Team"].Participants, 0)
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedKey    string
		expectedParts  []string
	}{
		{
			name:           "Success",
			target:         "/activities/Basketball%20Team/signup?email=test@mergington.edu",
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedParts:  []string{"Signed up", "test@mergington.edu", "Basketball Team"},
		},
		{
			name:           "Activity not found",
			target:         "/activities/Fake%20Activity/signup?email=test@mergington.edu",
			expectedStatus: http.StatusNotFound,
			expectedKey:    "detail",
			expectedParts:  []string{"Activity not found"},
		},
		{
			name:           "Duplicate email",
			target:         "/activities/Chess%20Club/signup?email=michael@mergington.edu",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedParts:  []string{"already signed up"},
		},
		{
			name:           "Missing email",
			target:         "/activities/Chess%20Club/signup",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKey:    "detail",
			expectedParts:  []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetDirectory(t)
			router := newTestRouter(t)

			w := do(t, router, http.MethodPost, tt.target)
			require.Equal(t, tt.expectedStatus, w.Code)

			body := decodeBody(t, w)
			text, ok := body[tt.expectedKey].(string)
			require.True(t, ok, "missing %q in %s", tt.expectedKey, w.Body.String())
			for _, part := range tt.expectedParts {
				assert.Contains(t, text, part)
			}
		})
	}
}

func TestSignup_UpdatesParticipants(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)
	email := "newstudent@mergington.edu"

	w := do(t, router, http.MethodPost, "/activities/Soccer%20Club/signup?email="+email)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, getActivities(t, router)["Soccer Club"].Participants, email)
}

func TestSignup_TwiceKeepsFirst(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)
	target := "/activities/Drama%20Club/signup?email=twice@mergington.edu"

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, target).Code)
	require.Equal(t, http.StatusBadRequest, do(t, router, http.MethodPost, target).Code)

	participants := getActivities(t, router)["Drama Club"].Participants
	assert.Contains(t, participants, "twice@mergington.edu")
	assert.Len(t, participants, 2)
}

func TestSignup_MultipleStudents(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/activities/Art%20Workshop/signup?email=student1@mergington.edu")
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, router, http.MethodPost, "/activities/Art%20Workshop/signup?email=student2@mergington.edu")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t,
		[]string{"student1@mergington.edu", "student2@mergington.edu"},
		getActivities(t, router)["Art Workshop"].Participants,
	)
}

func TestUnregister(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedKey    string
		expectedPart   string
	}{
		{
			name:           "Success",
			target:         "/activities/Chess%20Club/unregister?email=michael@mergington.edu",
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedPart:   "Unregistered",
		},
		{
			name:           "Activity not found",
			target:         "/activities/Fake%20Activity/unregister?email=test@mergington.edu",
			expectedStatus: http.StatusNotFound,
			expectedKey:    "detail",
			expectedPart:   "Activity not found",
		},
		{
			name:           "Email not registered",
			target:         "/activities/Basketball%20Team/unregister?email=notregistered@mergington.edu",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedPart:   "not registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetDirectory(t)
			router := newTestRouter(t)

			w := do(t, router, http.MethodPost, tt.target)
			require.Equal(t, tt.expectedStatus, w.Code)

			text, ok := decodeBody(t, w)[tt.expectedKey].(string)
			require.True(t, ok)
			assert.Contains(t, text, tt.expectedPart)
		})
	}
}

func TestUnregister_UpdatesParticipants(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)
	email := "daniel@mergington.edu"

	w := do(t, router, http.MethodPost, "/activities/Chess%20Club/unregister?email="+email)
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotContains(t, getActivities(t, router)["Chess Club"].Participants, email)
}

func TestUnregister_AndSignupAgain(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)
	email := "test@mergington.edu"

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/activities/Soccer%20Club/signup?email="+email).Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/activities/Soccer%20Club/unregister?email="+email).Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/activities/Soccer%20Club/signup?email="+email).Code)

	assert.Contains(t, getActivities(t, router)["Soccer Club"].Participants, email)
}

func TestRootRedirect(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/")
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/static/index.html")
}

func TestStaticIndex(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/static/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mergington High School")
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetrics(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/activities/Gym%20Class/signup?email=m@mergington.edu").Code)

	w := do(t, router, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "activity_service_participant_operations_total")
	assert.Contains(t, w.Body.String(), `activity_service_roster_size{activity="Gym Class"} 3`)
}

func TestSignup_NameMustMatchExactly(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/activities/%20Chess%20Club/signup?email=x@mergington.edu")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeBody(t, w)["detail"], "Activity not found")

	w = do(t, router, http.MethodPost, "/activities/Chess%20Club%20/unregister?email=michael@mergington.edu")
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.Contains(t, getActivities(t, router)["Chess Club"].Participants, "michael@mergington.edu")
}

func TestSignup_EmailMustMatchExactly(t *testing.T) {
	resetDirectory(t)
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu%20")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/activities/Chess%20Club/unregister?email=%20daniel@mergington.edu")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["detail"], "not registered")

	assert.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu", "michael@mergington.edu "},
		getActivities(t, router)["Chess Club"].Participants,
	)
}
