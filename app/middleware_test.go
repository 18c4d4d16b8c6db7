package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverPanic(t *testing.T) {
	app := &application{
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	app.recoverPanic(next).ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Result().Header.Get("Connection"))
}

func TestRateLimit(t *testing.T) {
	app := &application{
		config: &Config{
			RateLimitRPS:     2,
			RateLimitBurst:   4,
			RateLimitEnabled: true,
		},
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(app.rateLimit(handler))
	defer server.Close()

	testCases := []struct {
		name           string
		requests       int
		expectedStatus int
	}{
		{
			name:           "within limit",
			requests:       4,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "over limit",
			requests:       6,
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var lastStatusCode int

			for i := 0; i < tc.requests; i++ {
				res, err := http.Get(server.URL)
				assert.NoError(t, err)
				res.Body.Close()

				lastStatusCode = res.StatusCode
			}

			assert.Equal(t, tc.expectedStatus, lastStatusCode)
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	app := &application{
		config: &Config{
			RateLimitRPS:     1,
			RateLimitBurst:   1,
			RateLimitEnabled: false,
		},
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(app.rateLimit(handler))
	defer server.Close()

	for i := 0; i < 10; i++ {
		res, err := http.Get(server.URL)
		assert.NoError(t, err)
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
	}
}

func TestAuthenticate(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	token := registerAndLogin(t, ts, "testuser", "Test User", "password123")

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "no header on an open route",
			header:         "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid token",
			header:         "Bearer " + token,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not a bearer header",
			header:         "Basic dGVzdDp0ZXN0",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "token missing or invalid",
		},
		{
			name:           "garbage token",
			header:         "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "token invalid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
			assert.NoError(t, err)

			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			res, err := ts.Client().Do(req)
			assert.NoError(t, err)

			status, _, body := readResponse(t, res)
			assert.Equal(t, tc.expectedStatus, status)

			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, body["error"])
			}
		})
	}
}

func TestRequireAuthUser(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, body := ts.post(t, "/api/blogs", map[string]any{
		"title": "HTML is easy",
		"url":   "https://reactpatterns.com/",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "token missing or invalid", body["error"])
}
