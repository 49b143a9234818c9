package wire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/response"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fixedScorer map[string]float64

func (s fixedScorer) Polarity(ctx context.Context, text string) (float64, error) {
	return s[text], nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithLogger(t, zap.NewNop())
}

func newTestRouterWithLogger(t *testing.T, logger *zap.Logger) http.Handler {
	t.Helper()

	config := &utils.Config{
		App:   utils.AppConfig{Name: "movie-reviews-test", Port: "0"},
		Store: utils.StoreConfig{Driver: utils.StoreDriverFile, File: filepath.Join(t.TempDir(), "movie_reviews.csv")},
		Session: utils.SessionConfig{
			Driver:     utils.SessionDriverMemory,
			TTLMinutes: 60,
		},
	}

	repo, err := repository.NewRepository(config, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(repo.Close)

	scorer := fixedScorer{
		"I loved it, fantastic!": 0.85,
		"Dreadful and boring.":   -0.7,
	}
	service := usecase.NewService(repo, scorer, zap.NewNop())

	return Wiring(service, config, logger).Router
}

type envelope[T any] struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    T                 `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// browser keeps the session cookie between page requests.
type browser struct {
	t      *testing.T
	h      http.Handler
	cookie *http.Cookie
}

func (b *browser) send(req *http.Request) string {
	b.t.Helper()
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}

	rec := httptest.NewRecorder()
	b.h.ServeHTTP(rec, req)
	require.Equal(b.t, http.StatusOK, rec.Code, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			b.cookie = c
		}
	}
	return rec.Body.String()
}

func (b *browser) open() string {
	return b.send(httptest.NewRequest(http.MethodGet, "/", nil))
}

func (b *browser) submit(values url.Values) string {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.send(req)
}

func TestHealth(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestFormPage_FirstVisit(t *testing.T) {
	b := &browser{t: t, h: newTestRouter(t)}

	page := b.open()

	require.NotNil(t, b.cookie)
	for _, movie := range usecase.SeedMovies {
		assert.Contains(t, page, `<option value="`+movie+`"`)
	}
	assert.Contains(t, page, `<option value="Titanic" selected>`)
	assert.NotContains(t, page, `name="new_movie"`)
	assert.NotContains(t, page, "Sentiment for your review")
	assert.NotContains(t, page, "<table>")
}

func TestFormPage_AddAnalyzeShowAll(t *testing.T) {
	b := &browser{t: t, h: newTestRouter(t)}
	b.open()

	page := b.submit(url.Values{"action": {"open_movie_input"}, "movie": {"Titanic"}})
	assert.Contains(t, page, `name="new_movie"`)

	page = b.submit(url.Values{"action": {"add_movie"}, "movie": {"Titanic"}, "new_movie": {"Dune"}})
	assert.Contains(t, page, "Movie &#39;Dune&#39; added to the list.")
	assert.Contains(t, page, `<option value="Dune" selected>Dune</option>`)
	assert.NotContains(t, page, `name="new_movie"`)

	page = b.submit(url.Values{"action": {"analyze"}, "movie": {"Dune"}, "review": {"I loved it, fantastic!"}})
	assert.Contains(t, page, "Sentiment for your review: <strong>Good</strong>")
	assert.Contains(t, page, "Your review and sentiment have been saved.")
	assert.Contains(t, page, "I loved it, fantastic!</textarea>")

	page = b.submit(url.Values{"action": {"show_all"}, "movie": {"Dune"}})
	assert.Contains(t, page, "<td>0</td><td>Dune</td><td></td><td></td>")
	assert.Contains(t, page, "<td>1</td><td>Dune</td><td>I loved it, fantastic!</td><td>Good</td>")
	assert.NotContains(t, page, "Sentiment for your review")
}

func TestFormPage_EmptyInputsShowErrors(t *testing.T) {
	h := newTestRouter(t)
	b := &browser{t: t, h: h}
	b.open()

	page := b.submit(url.Values{"action": {"analyze"}, "movie": {"Titanic"}, "review": {""}})
	assert.Contains(t, page, "Please enter a review before analyzing.")
	assert.NotContains(t, page, "Sentiment for your review")

	b.submit(url.Values{"action": {"open_movie_input"}})
	page = b.submit(url.Values{"action": {"add_movie"}, "new_movie": {""}})
	assert.Contains(t, page, "Please enter a movie name.")
	assert.Contains(t, page, `name="new_movie"`)

	reviews := decode[[]response.ReviewResponse](t, do(h, http.MethodGet, "/api/reviews", ""))
	assert.Empty(t, reviews.Data)
}

func TestFormPage_SessionsAreIsolated(t *testing.T) {
	h := newTestRouter(t)
	alice := &browser{t: t, h: h}
	bob := &browser{t: t, h: h}

	alice.open()
	page := alice.submit(url.Values{"action": {"open_movie_input"}})
	require.Contains(t, page, `name="new_movie"`)

	page = bob.open()
	assert.NotContains(t, page, `name="new_movie"`)
	assert.NotEqual(t, alice.cookie.Value, bob.cookie.Value)

	// Reopening the page keeps the revealed input for the same visitor.
	page = alice.open()
	assert.Contains(t, page, `name="new_movie"`)
}

func TestFormPage_StoredTitlesReachOtherSessions(t *testing.T) {
	h := newTestRouter(t)
	alice := &browser{t: t, h: h}
	alice.open()
	alice.submit(url.Values{"action": {"open_movie_input"}})
	alice.submit(url.Values{"action": {"add_movie"}, "new_movie": {"Dune"}})

	bob := &browser{t: t, h: h}
	page := bob.open()
	assert.Contains(t, page, `<option value="Dune">Dune</option>`)
}

func TestFormPage_UnknownAction(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("action=explode"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewAPI(t *testing.T) {
	h := newTestRouter(t)

	rec := do(h, http.MethodPost, "/api/reviews", `{"movie":"Avatar","review":"Dreadful and boring."}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[response.ReviewResponse](t, rec)
	assert.True(t, created.Status)
	assert.Equal(t, response.ReviewResponse{Movie: "Avatar", Review: "Dreadful and boring.", Sentiment: "Bad"}, created.Data)

	rec = do(h, http.MethodGet, "/api/reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]response.ReviewResponse](t, rec)
	assert.Equal(t, []response.ReviewResponse{created.Data}, list.Data)
}

func TestReviewAPI_BadInput(t *testing.T) {
	h := newTestRouter(t)

	rec := do(h, http.MethodPost, "/api/reviews", `{"movie":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodPost, "/api/reviews", `{"movie":"Avatar"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode[any](t, rec)
	assert.False(t, env.Status)
	assert.Equal(t, "This field is required", env.Errors["Review"])

	rec = do(h, http.MethodPost, "/api/sentiment", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSentimentAPI_DoesNotSave(t *testing.T) {
	h := newTestRouter(t)

	rec := do(h, http.MethodPost, "/api/sentiment", `{"text":"I loved it, fantastic!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decode[response.SentimentResponse](t, rec)
	assert.Equal(t, "Good", result.Data.Sentiment)
	assert.InDelta(t, 0.85, result.Data.Polarity, 1e-9)

	rec = do(h, http.MethodPost, "/api/sentiment", `{"text":"Something unscored."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Neutral", decode[response.SentimentResponse](t, rec).Data.Sentiment)

	list := decode[[]response.ReviewResponse](t, do(h, http.MethodGet, "/api/reviews", ""))
	assert.Empty(t, list.Data)
}

func TestMovieAPI(t *testing.T) {
	h := newTestRouter(t)

	rec := do(h, http.MethodPost, "/api/movies", `{"name":"Dune"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, response.MovieResponse{Name: "Dune", Added: true}, decode[response.MovieResponse](t, rec).Data)

	rec = do(h, http.MethodPost, "/api/movies", `{"name":"Dune"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.MovieResponse{Name: "Dune", Added: false}, decode[response.MovieResponse](t, rec).Data)

	rec = do(h, http.MethodGet, "/api/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	movies := decode[response.MovieListResponse](t, rec).Data
	assert.Equal(t, append(append([]string{}, usecase.SeedMovies...), "Dune"), movies.Movies)
	assert.Equal(t, 5, movies.Total)

	rec = do(h, http.MethodPost, "/api/movies", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccessLogCarriesSessionIDOnPageRoutes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := newTestRouterWithLogger(t, zap.New(core))

	b := &browser{t: t, h: h}
	b.open()
	do(h, http.MethodGet, "/health", "")

	entries := logs.FilterMessage("HTTP request").All()
	require.Len(t, entries, 2)

	page := entries[0].ContextMap()
	assert.Equal(t, "/", page["path"])
	assert.Equal(t, b.cookie.Value, page["session_id"])

	health := entries[1].ContextMap()
	assert.Equal(t, "/health", health["path"])
	assert.NotContains(t, health, "session_id")
}
