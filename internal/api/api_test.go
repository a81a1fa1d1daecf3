package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/ghostgame/internal/api"
	"github.com/mcoot/ghostgame/internal/api/apierr"
	"github.com/mcoot/ghostgame/internal/api/response"
	"github.com/mcoot/ghostgame/internal/factory"
	"github.com/mcoot/ghostgame/internal/middleware"
	"github.com/mcoot/ghostgame/internal/testutil"
)

// testServer wraps the router with a mocked application
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestDictionary())

	router := api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
		MatchController: app.MatchController,
		Dictionary:      app.DictionaryService,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func createMatch(t *testing.T, ts *testServer) response.Match {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/matches", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	return decode[response.Match](t, rr)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.HealthResponse](t, rr)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, len(factory.TestWords), resp.DictionaryWords)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestCreateMatch(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("APIMATCH0001")

	m := createMatch(t, ts)
	assert.Equal(t, "APIMATCH0001", m.ID)
	assert.Equal(t, "awaiting_human", m.Status)
	assert.Equal(t, "ghost", m.Strategy)
	assert.Equal(t, "", m.Fragment)
	assert.Empty(t, m.Moves)
}

func TestCreateMatchWithStrategy(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/matches", map[string]string{"strategy": "random"})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "random", decode[response.Match](t, rr).Strategy)

	rr = ts.request(http.MethodPost, "/api/v1/matches", map[string]string{"strategy": "minimax"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownStrategy, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestFullMatchFlow(t *testing.T) {
	ts := newTestServer(t)
	m := createMatch(t, ts)

	// Human plays 'c'; the computer heads for "cat"/"car"
	rr := ts.request(http.MethodPost, "/api/v1/matches/"+m.ID+"/moves", map[string]string{"letter": "C"})
	require.Equal(t, http.StatusOK, rr.Code)
	move := decode[response.MoveResponse](t, rr)
	assert.Equal(t, "c", move.HumanLetter)
	assert.Equal(t, "a", move.ComputerLetter)
	assert.Equal(t, "continue", move.Outcome)
	assert.Equal(t, "ca", move.Match.Fragment)

	// Completing "cat" loses
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+m.ID+"/moves", map[string]string{"letter": "t"})
	require.Equal(t, http.StatusOK, rr.Code)
	move = decode[response.MoveResponse](t, rr)
	assert.Equal(t, "human_lost", move.Outcome)
	assert.Empty(t, move.ComputerLetter)
	assert.Equal(t, "computer", move.Match.Winner)

	// No more moves
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+m.ID+"/moves", map[string]string{"letter": "s"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeMatchComplete, decode[apierr.ErrorResponse](t, rr).Error.Code)

	// Get reflects the finished match
	rr = ts.request(http.MethodGet, "/api/v1/matches/"+m.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[response.Match](t, rr)
	assert.Equal(t, "human_lost", got.Status)
	assert.Len(t, got.Moves, 3)

	// Rematch clears it
	rr = ts.request(http.MethodPost, "/api/v1/matches/"+m.ID+"/rematch", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	reset := decode[response.Match](t, rr)
	assert.Equal(t, "awaiting_human", reset.Status)
	assert.Empty(t, reset.Moves)
}

func TestComputerLoses(t *testing.T) {
	ts := newTestServer(t)
	m := createMatch(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/matches/"+m.ID+"/moves", map[string]string{"letter": "o"})
	require.Equal(t, http.StatusOK, rr.Code)
	move := decode[response.MoveResponse](t, rr)
	assert.Equal(t, "computer_lost", move.Outcome)
	assert.Equal(t, "human", move.Match.Winner)
}

func TestInvalidMoves(t *testing.T) {
	ts := newTestServer(t)
	m := createMatch(t, ts)
	path := "/api/v1/matches/" + m.ID + "/moves"

	for _, letter := range []string{"", "ab", "1", "é"} {
		rr := ts.request(http.MethodPost, path, map[string]string{"letter": letter})
		assert.Equal(t, http.StatusBadRequest, rr.Code, "letter %q", letter)
		assert.Equal(t, apierr.CodeInvalidLetter, decode[apierr.ErrorResponse](t, rr).Error.Code)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestRematchInProgress(t *testing.T) {
	ts := newTestServer(t)
	m := createMatch(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/matches/"+m.ID+"/rematch", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeMatchInProgress, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestAbandonMatch(t *testing.T) {
	ts := newTestServer(t)
	m := createMatch(t, ts)

	rr := ts.request(http.MethodDelete, "/api/v1/matches/"+m.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/matches/"+m.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeMatchNotFound, decode[apierr.ErrorResponse](t, rr).Error.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/matches/"+m.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMatchNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/matches/NOPE/moves", map[string]string{"letter": "a"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDictionaryNotLoaded(t *testing.T) {
	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
		MatchController: app.MatchController,
		Dictionary:      app.DictionaryService,
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/matches", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, apierr.CodeDictionaryUnavailable, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestBundledDictionary(t *testing.T) {
	app, err := factory.New(factory.Config{DictionaryPath: "../../data/words.txt"})
	require.NoError(t, err)
	require.NoError(t, app.LoadDictionary(t.Context()))

	router := api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
		MatchController: app.MatchController,
		Dictionary:      app.DictionaryService,
	})
	ts := &testServer{handler: router}

	m := createMatch(t, ts)
	rr := ts.request(http.MethodPost, "/api/v1/matches/"+m.ID+"/moves", map[string]string{"letter": "g"})
	require.Equal(t, http.StatusOK, rr.Code)

	move := decode[response.MoveResponse](t, rr)
	assert.Equal(t, "g", move.HumanLetter)
	assert.NotEqual(t, "human_lost", move.Outcome)
}
