package fitbit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovacic/fitbeat/internal/fitbit"
)

func TestClient_ListActivitiesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/user/-/activities/list.json", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2025-02-08", r.URL.Query().Get("afterDate"))
		assert.Equal(t, "asc", r.URL.Query().Get("sort"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "40", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"activities": [
				{"logId": 555, "activityName": "Spinning", "startTime": "2025-03-01T19:00:00.000+08:00", "duration": 1800000},
				{"logId": 556, "activityName": "Walk", "startTime": "2025-03-02T08:00:00.000+08:00", "duration": 2400000}
			],
			"pagination": {"offset": 40, "limit": 100, "next": ""}
		}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	client := fitbit.NewClient("client-id", "client-secret", "https://localhost/callback", []string{"activity"}, server.Client())
	client.SetAPIBaseURL(server.URL)

	page, status, err := client.ListActivitiesPage(context.Background(), "access-token", "2025-02-08", 40, 100)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, page)
	assert.Len(t, page.Activities, 2)
	require.NotNil(t, page.Pagination)
	assert.Equal(t, 40, page.Pagination.Offset)
	assert.Empty(t, page.Pagination.Next)
}

func TestClient_ListActivitiesPage_unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired token", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := fitbit.NewClient("client-id", "client-secret", "https://localhost/callback", []string{"activity"}, server.Client())
	client.SetAPIBaseURL(server.URL)

	page, status, err := client.ListActivitiesPage(context.Background(), "stale-token", "2025-02-08", 0, 100)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Nil(t, page)
}

func TestClient_AuthCodeURL(t *testing.T) {
	client := fitbit.NewClient("client-id", "client-secret", "https://localhost/callback", []string{"activity", "profile"}, http.DefaultClient)

	authURL := client.AuthCodeURL("random-state")
	assert.Contains(t, authURL, "https://www.fitbit.com/oauth2/authorize")
	assert.Contains(t, authURL, "client_id=client-id")
	assert.Contains(t, authURL, "state=random-state")
	assert.Contains(t, authURL, "activity+profile")
}
