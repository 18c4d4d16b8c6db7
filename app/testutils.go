package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloglistapp/bloglist/internal/auditservice"
	"github.com/bloglistapp/bloglist/internal/blogservice"
	"github.com/bloglistapp/bloglist/internal/common"
	"github.com/bloglistapp/bloglist/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	if len(responseBody) == 0 {
		return res.StatusCode, res.Header, nil
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, envelope
}

// readResponseList is used for endpoints returning a bare JSON array.
func readResponseList(t *testing.T, res *http.Response) (int, []map[string]any) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var list []map[string]any
	err = json.Unmarshal(responseBody, &list)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, list
}

func newTestApplication(t *testing.T) (*application, *mongo.Database) {
	db := common.TestDB(t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	rabbitURI := common.TestRabbitMQ(t)
	rabbitmq, err := common.NewMessageBroker(rabbitURI)
	assert.NoError(t, err)

	err = common.SetupEventExchange(rabbitmq)
	assert.NoError(t, err)

	cfg, err := loadConfig("../.test.env")
	assert.NoError(t, err)

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	app := &application{
		config:       cfg,
		logger:       logger,
		userService:  userservice.NewUserService(db, rabbitmq, cache, []byte(cfg.TokenSecret)),
		blogService:  blogservice.NewBlogService(db, rabbitmq),
		auditService: auditservice.NewAuditService(rabbitmq, logger),
		broker:       rabbitmq,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = app.userService.EnsureIndexes(ctx)
	assert.NoError(t, err)

	return app, db
}

func (ts *testServer) request(t *testing.T, method, path string, payload any, token *string) *http.Response {
	var body io.Reader

	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return res
}

func (ts *testServer) post(t *testing.T, path string, data any, token *string) (int, http.Header, envelope) {
	return readResponse(t, ts.request(t, http.MethodPost, path, data, token))
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return readResponse(t, ts.request(t, http.MethodGet, path, nil, token))
}

func (ts *testServer) getList(t *testing.T, path string, token *string) (int, []map[string]any) {
	return readResponseList(t, ts.request(t, http.MethodGet, path, nil, token))
}

func (ts *testServer) put(t *testing.T, path string, payload any, token *string) (int, http.Header, envelope) {
	return readResponse(t, ts.request(t, http.MethodPut, path, payload, token))
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return readResponse(t, ts.request(t, http.MethodDelete, path, nil, token))
}
