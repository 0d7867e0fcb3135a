package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"socialmedia/database"
	"socialmedia/handlers"
	"socialmedia/mocks"
	"socialmedia/models"
	"socialmedia/repositories"
	"socialmedia/routes"
	"socialmedia/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.New("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	svc := service.New(repositories.NewAccountRepository(db, false), repositories.NewMessageRepository(db))
	return routes.SetupRoutes(handlers.NewHandler(svc), handlers.NewSystemHandler(sqlDB.PingContext))
}

// Helper function to perform HTTP requests
func performRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func registerAccount(t *testing.T, h http.Handler, username, password string) models.Account {
	t.Helper()
	resp := performRequest(h, http.MethodPost, "/register", fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var account models.Account
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &account))
	return account
}

func postMessage(h http.Handler, text string, postedBy int, epoch int64) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]any{"message_text": text, "posted_by": postedBy, "time_posted_epoch": epoch})
	return performRequest(h, http.MethodPost, "/messages", string(body))
}

func decodeMessage(t *testing.T, resp *httptest.ResponseRecorder) models.Message {
	t.Helper()
	var message models.Message
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &message), resp.Body.String())
	return message
}

func TestRegister(t *testing.T) {
	h := newTestServer(t)

	account := registerAccount(t, h, "bob", "password")
	assert.NotZero(t, account.ID)
	assert.Equal(t, "bob", account.Username)
	assert.Equal(t, "password", account.Password)

	// duplicate username
	resp := performRequest(h, http.MethodPost, "/register", `{"username":"bob","password":"different"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, resp.Body.String())

	for _, body := range []string{
		`{"username":"","password":"password"}`,
		`{"username":"   ","password":"password"}`,
		`{"username":"carol","password":"abc"}`,
		`{"username":"carol"`,
	} {
		resp := performRequest(h, http.MethodPost, "/register", body)
		assert.Equal(t, http.StatusBadRequest, resp.Code, body)
	}

	// rejected registrations wrote nothing
	resp = performRequest(h, http.MethodPost, "/login", `{"username":"carol","password":"password"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogin(t *testing.T) {
	h := newTestServer(t)
	account := registerAccount(t, h, "testuser1", "password")

	resp := performRequest(h, http.MethodPost, "/login", `{"username":"testuser1","password":"password"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))

	var got models.Account
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, account, got)

	for _, body := range []string{
		`{"username":"testuser1","password":"wrongpassword"}`,
		`{"username":"nobody","password":"password"}`,
		`{"username":"testuser1","password":"pas"}`,
		`not json`,
	} {
		resp := performRequest(h, http.MethodPost, "/login", body)
		assert.Equal(t, http.StatusUnauthorized, resp.Code, body)
		assert.Empty(t, resp.Body.String())
	}
}

func TestCreateMessage(t *testing.T) {
	h := newTestServer(t)
	account := registerAccount(t, h, "poster", "password")

	resp := postMessage(h, strings.Repeat("a", 255), account.ID, 1669947792)
	require.Equal(t, http.StatusOK, resp.Code)
	created := decodeMessage(t, resp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, account.ID, created.PostedBy)
	assert.Equal(t, int64(1669947792), created.TimePostedEpoch)

	// round trip
	resp = performRequest(h, http.MethodGet, fmt.Sprintf("/messages/%d", created.ID), "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, created, decodeMessage(t, resp))

	for name, rr := range map[string]*httptest.ResponseRecorder{
		"too long":       postMessage(h, strings.Repeat("a", 256), account.ID, 1669947792),
		"blank":          postMessage(h, "", account.ID, 1669947792),
		"unknown author": postMessage(h, "hello", account.ID+100, 1669947792),
	} {
		assert.Equal(t, http.StatusBadRequest, rr.Code, name)
		assert.Empty(t, rr.Body.String(), name)
	}
}

func TestGetAllMessages(t *testing.T) {
	h := newTestServer(t)

	resp := performRequest(h, http.MethodGet, "/messages", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	account := registerAccount(t, h, "poster", "password")
	require.Equal(t, http.StatusOK, postMessage(h, "one", account.ID, 1).Code)
	require.Equal(t, http.StatusOK, postMessage(h, "two", account.ID, 2).Code)

	resp = performRequest(h, http.MethodGet, "/messages", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var messages []models.Message
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &messages))
	assert.Len(t, messages, 2)
}

func TestGetAndDeleteMessage(t *testing.T) {
	h := newTestServer(t)
	account := registerAccount(t, h, "poster", "password")
	created := decodeMessage(t, postMessage(h, "delete me", account.ID, 1669947792))
	path := fmt.Sprintf("/messages/%d", created.ID)

	resp := performRequest(h, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, created, decodeMessage(t, resp))

	resp = performRequest(h, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, created, decodeMessage(t, resp))

	// gone: both answer 200 with an empty body
	resp = performRequest(h, http.MethodGet, path, "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Body.String())

	resp = performRequest(h, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Body.String())

	resp = performRequest(h, http.MethodGet, "/messages/9999", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Body.String())
}

func TestUpdateMessage(t *testing.T) {
	h := newTestServer(t)
	account := registerAccount(t, h, "poster", "password")
	created := decodeMessage(t, postMessage(h, "original", account.ID, 1669947792))
	path := fmt.Sprintf("/messages/%d", created.ID)

	resp := performRequest(h, http.MethodPatch, path, `{"message_text":"updated"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	updated := decodeMessage(t, resp)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "updated", updated.MessageText)
	assert.Equal(t, created.PostedBy, updated.PostedBy)
	assert.Equal(t, created.TimePostedEpoch, updated.TimePostedEpoch)

	for _, body := range []string{
		`{"message_text":""}`,
		fmt.Sprintf(`{"message_text":%q}`, strings.Repeat("b", 256)),
		`{`,
	} {
		resp := performRequest(h, http.MethodPatch, path, body)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	}

	// rejected updates left the row alone
	resp = performRequest(h, http.MethodGet, path, "")
	assert.Equal(t, "updated", decodeMessage(t, resp).MessageText)

	resp = performRequest(h, http.MethodPatch, "/messages/9999", `{"message_text":"updated"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetMessagesByAccount(t *testing.T) {
	h := newTestServer(t)
	first := registerAccount(t, h, "first", "password")
	second := registerAccount(t, h, "second", "password")

	require.Equal(t, http.StatusOK, postMessage(h, "one", first.ID, 1).Code)
	require.Equal(t, http.StatusOK, postMessage(h, "two", second.ID, 2).Code)
	require.Equal(t, http.StatusOK, postMessage(h, "three", first.ID, 3).Code)

	resp := performRequest(h, http.MethodGet, fmt.Sprintf("/accounts/%d/messages", first.ID), "")
	require.Equal(t, http.StatusOK, resp.Code)
	var messages []models.Message
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	for _, m := range messages {
		assert.Equal(t, first.ID, m.PostedBy)
	}

	resp = performRequest(h, http.MethodGet, "/accounts/9999/messages", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestMalformedPathID(t *testing.T) {
	h := newTestServer(t)

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/messages/abc"},
		{http.MethodDelete, "/messages/abc"},
		{http.MethodPatch, "/messages/abc"},
		{http.MethodGet, "/accounts/abc/messages"},
	} {
		resp := performRequest(h, req.method, req.path, `{"message_text":"x"}`)
		assert.Equal(t, http.StatusInternalServerError, resp.Code, req.path)
		assert.Empty(t, resp.Body.String(), req.path)
	}
}

func TestSystemEndpoints(t *testing.T) {
	h := newTestServer(t)

	resp := performRequest(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())

	resp = performRequest(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "http_request_duration_seconds")

	down := routes.SetupRoutes(handlers.NewHandler(nil), handlers.NewSystemHandler(func(context.Context) error {
		return errors.New("connection refused")
	}))
	resp = performRequest(down, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestStoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	messages := mocks.NewMockMessageRepository(ctrl)
	h := routes.SetupRoutes(handlers.NewHandler(service.New(accounts, messages)), handlers.NewSystemHandler(func(context.Context) error { return nil }))

	messages.EXPECT().GetAllMessages(gomock.Any()).Return([]models.Message{}, repositories.ErrStore)
	messages.EXPECT().GetMessagesByUserID(gomock.Any(), 1).Return(nil, repositories.ErrStore)
	messages.EXPECT().GetMessageByID(gomock.Any(), 1).Return(nil, repositories.ErrStore)
	accounts.EXPECT().Login(gomock.Any(), "bob", "password").Return(nil, repositories.ErrStore)

	resp := performRequest(h, http.MethodGet, "/messages", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = performRequest(h, http.MethodGet, "/accounts/1/messages", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Body.String())

	resp = performRequest(h, http.MethodGet, "/messages/1", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Body.String())

	resp = performRequest(h, http.MethodPost, "/login", `{"username":"bob","password":"password"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
