package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/movie-catalog-api/api"
	"github.com/metinatakli/movie-catalog-api/internal/domain"
	"github.com/metinatakli/movie-catalog-api/internal/mocks"
	"github.com/metinatakli/movie-catalog-api/internal/service"
	"github.com/metinatakli/movie-catalog-api/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &Application{
		config:    Config{Env: "test"},
		validator: validator.NewValidator(),
		logger:    logger,
	}

	app.movieService = service.NewMovieService(&mocks.MockMovieStore{Repo: &mocks.MockMovieRepo{}}, MoviesBasePath, logger)

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func withMovieStore(store domain.MovieStore) func(*Application) {
	return func(a *Application) {
		a.movieService = service.NewMovieService(store, MoviesBasePath, a.logger)
	}
}

func executeRequest(t *testing.T, method, url string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	r := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
