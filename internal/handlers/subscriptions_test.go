package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"vidtube/internal/middleware"
	"vidtube/internal/test"
	"vidtube/pkg/tasks"
)

func newSubscriptionRequest(method, channelID, subscriberID string) *http.Request {
	req := httptest.NewRequest(method, "/api/v1/subscriptions/c/"+url.PathEscape(channelID), nil)
	req = mux.SetURLVars(req, map[string]string{"channelId": channelID})
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, subscriberID)
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestToggleSubscription(t *testing.T) {
	t.Run("creates when absent", func(t *testing.T) {
		// 1. Setup mocks
		store, mock := test.NewMockStore(t)
		mockEnqueuer := &test.MockTaskEnqueuer{}
		h := New(store, mockEnqueuer)

		// 2. Define mock expectations: no existing row, then insert
		mock.ExpectQuery(`SELECT \* FROM subscriptions WHERE channel_id = \$1 AND subscriber_id = \$2`).
			WithArgs("validChannelId", "subscriber-1").
			WillReturnError(sql.ErrNoRows)
		rows := sqlmock.NewRows([]string{"id", "channel_id", "subscriber_id", "created_at"}).
			AddRow(1, "validChannelId", "subscriber-1", time.Now())
		mock.ExpectQuery(`INSERT INTO subscriptions`).
			WithArgs("validChannelId", "subscriber-1").
			WillReturnRows(rows)

		// 3. Call the handler
		rr := httptest.NewRecorder()
		h.ToggleSubscription(rr, newSubscriptionRequest(http.MethodPost, "validChannelId", "subscriber-1"))

		// 4. Assertions
		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "Subscription toggled successfully", body["message"])
		assert.Equal(t, true, body["subscribed"])

		assert.Len(t, mockEnqueuer.EnqueuedTasks, 1)
		assert.Equal(t, tasks.TypeRefreshChannelStats, mockEnqueuer.EnqueuedTasks[0].Type())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes when present", func(t *testing.T) {
		store, mock := test.NewMockStore(t)
		mockEnqueuer := &test.MockTaskEnqueuer{}
		h := New(store, mockEnqueuer)

		rows := sqlmock.NewRows([]string{"id", "channel_id", "subscriber_id", "created_at"}).
			AddRow(1, "validChannelId", "subscriber-1", time.Now())
		mock.ExpectQuery(`SELECT \* FROM subscriptions WHERE channel_id = \$1 AND subscriber_id = \$2`).
			WithArgs("validChannelId", "subscriber-1").
			WillReturnRows(rows)
		mock.ExpectExec(`DELETE FROM subscriptions`).
			WithArgs("validChannelId", "subscriber-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		rr := httptest.NewRecorder()
		h.ToggleSubscription(rr, newSubscriptionRequest(http.MethodPost, "validChannelId", "subscriber-1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "Subscription toggled successfully", body["message"])
		assert.Equal(t, false, body["subscribed"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid channel id", func(t *testing.T) {
		store, mock := test.NewMockStore(t)
		h := New(store, &test.MockTaskEnqueuer{})

		rr := httptest.NewRecorder()
		h.ToggleSubscription(rr, newSubscriptionRequest(http.MethodPost, "not a valid id", "subscriber-1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "error", body["status"])
		assert.NoError(t, mock.ExpectationsWereMet(), "storage must not be touched")
	})

	t.Run("missing subscriber identity", func(t *testing.T) {
		store, _ := test.NewMockStore(t)
		h := New(store, &test.MockTaskEnqueuer{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/c/validChannelId", nil)
		req = mux.SetURLVars(req, map[string]string{"channelId": "validChannelId"})
		rr := httptest.NewRecorder()
		h.ToggleSubscription(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetUserChannelSubscribers(t *testing.T) {
	t.Run("empty channel returns empty list", func(t *testing.T) {
		store, mock := test.NewMockStore(t)
		h := New(store, &test.MockTaskEnqueuer{})

		mock.ExpectQuery(`SELECT subscriber_id FROM subscriptions`).
			WithArgs("validChannelId").
			WillReturnRows(sqlmock.NewRows([]string{"subscriber_id"}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/subscriptions/c/validChannelId", nil)
		req = mux.SetURLVars(req, map[string]string{"channelId": "validChannelId"})
		rr := httptest.NewRecorder()
		h.GetUserChannelSubscribers(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, []any{}, body["subscribers"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lists subscribers", func(t *testing.T) {
		store, mock := test.NewMockStore(t)
		h := New(store, &test.MockTaskEnqueuer{})

		mock.ExpectQuery(`SELECT subscriber_id FROM subscriptions`).
			WithArgs("validChannelId").
			WillReturnRows(sqlmock.NewRows([]string{"subscriber_id"}).
				AddRow("subscriber-1").
				AddRow("subscriber-2"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/subscriptions/c/validChannelId", nil)
		req = mux.SetURLVars(req, map[string]string{"channelId": "validChannelId"})
		rr := httptest.NewRecorder()
		h.GetUserChannelSubscribers(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, []any{"subscriber-1", "subscriber-2"}, body["subscribers"])
	})

	t.Run("invalid channel id", func(t *testing.T) {
		store, _ := test.NewMockStore(t)
		h := New(store, &test.MockTaskEnqueuer{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/subscriptions/c/bad", nil)
		req = mux.SetURLVars(req, map[string]string{"channelId": ""})
		rr := httptest.NewRecorder()
		h.GetUserChannelSubscribers(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetSubscribedChannels(t *testing.T) {
	t.Run("no subscriptions returns empty list", func(t *testing.T) {
		store, mock := test.NewMockStore(t)
		h := New(store, &test.MockTaskEnqueuer{})

		mock.ExpectQuery(`SELECT channel_id FROM subscriptions`).
			WithArgs("subscriber-1").
			WillReturnRows(sqlmock.NewRows([]string{"channel_id"}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/subscriptions/u/subscriber-1", nil)
		req = mux.SetURLVars(req, map[string]string{"subscriberId": "subscriber-1"})
		rr := httptest.NewRecorder()
		h.GetSubscribedChannels(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, []any{}, body["channels"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid subscriber id", func(t *testing.T) {
		store, _ := test.NewMockStore(t)
		h := New(store, &test.MockTaskEnqueuer{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/subscriptions/u/x", nil)
		req = mux.SetURLVars(req, map[string]string{"subscriberId": "has spaces"})
		rr := httptest.NewRecorder()
		h.GetSubscribedChannels(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
