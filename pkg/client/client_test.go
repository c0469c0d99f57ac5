package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"riderequest/pkg/models"
)

func TestClient_SubmitSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/ride-request", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.CreateRideRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "123 Main St", req.SourceLocation)
		require.Equal(t, "456 Oak Ave", req.DestLocation)
		require.Equal(t, "user123", req.UserID)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"Ride request submitted successfully","data":{"id":7,"user_id":"user123","source_location":"123 Main St","dest_location":"456 Oak Ave","created_at":"2026-01-01T10:00:00Z"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	resp, err := c.Submit(context.Background(), "123 Main St", "456 Oak Ave", "user123")
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data.ID)
	require.Equal(t, int64(7), *resp.Data.ID)
}

func TestClient_SubmitLoggedOnlyIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"Ride request received (database unavailable, but data logged)","data":{"user_id":"u","source_location":"a","dest_location":"b","created_at":"2026-01-01T10:00:00Z"}}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, time.Second).Submit(context.Background(), "a", "b", "u")
	require.NoError(t, err)
	require.Nil(t, resp.Data.ID)
	require.Contains(t, resp.Message, "database unavailable")
}

func TestClient_SubmitBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Missing required fields: source_location, dest_location, user_id"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Submit(context.Background(), "a", "b", "")
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	require.Contains(t, httpErr.Message, "Missing required fields")
}

func TestClient_GetAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/ride-requests", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"count":2,"data":[{"id":2,"user_id":"b","source_location":"s","dest_location":"d","created_at":"2026-01-01T10:00:01Z"},{"id":1,"user_id":"a","source_location":"s","dest_location":"d","created_at":"2026-01-01T10:00:00Z"}]}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, time.Second).GetAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, resp.Count)
	require.Len(t, resp.Data, 2)
	require.Equal(t, "b", resp.Data[0].UserID)
}

func TestClient_GetAllServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Error fetching ride requests","error":"connection refused"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).GetAll(context.Background())
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	require.Equal(t, "Error fetching ride requests: connection refused", httpErr.Message)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).GetAll(context.Background())
	require.Error(t, err)
	var httpErr *HTTPError
	require.False(t, errors.As(err, &httpErr))
}

func TestErrorMessageFallsBackToBody(t *testing.T) {
	require.Equal(t, "404 page not found", errorMessage([]byte("404 page not found\n")))
}
