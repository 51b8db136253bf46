package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func executeRoutes(app *TestApp, req *http.Request) *http.Response {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec.Result()
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore nondeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func truncateMovies(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE movies RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(content))
	require.NoError(t, err)
}

func flushCache(t testing.TB, client *redis.Client) {
	require.NoError(t, client.FlushDB(context.Background()).Err())
}

func resetState(t testing.TB, app *TestApp) {
	truncateMovies(t, app.DB)
	flushCache(t, app.Cache)
}

func seedMovies(t testing.TB, app *TestApp) {
	resetState(t, app)
	executeSQLFile(t, app.DB, "testdata/movies.sql")
}
